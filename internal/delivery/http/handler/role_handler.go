package handler

import (
	"med-ready/internal/delivery/http/dto"
	"med-ready/internal/delivery/http/middleware"
	"med-ready/internal/pkg/response"
	"med-ready/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RoleHandler struct {
	uc usecase.RoleUsecase
}

func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/career-paths")
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
}

func (h *RoleHandler) List(c fiber.Ctx) error {
	roles, err := h.uc.ListRoles(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		res = append(res, dto.RoleResponse{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Specialty:   r.Specialty,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *RoleHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	role, err := h.uc.GetRole(c.Context(), id)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	res := dto.RoleDetailResponse{
		RoleResponse: dto.RoleResponse{
			ID:          role.ID,
			Title:       role.Title,
			Description: role.Description,
			Specialty:   role.Specialty,
			SkillsCount: role.SkillsCount,
		},
		Requirements: dto.NewRoleRequirementResponses(role.Requirements),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
