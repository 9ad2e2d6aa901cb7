package handler

import (
	"med-ready/internal/delivery/http/dto"
	"med-ready/internal/delivery/http/middleware"
	"med-ready/internal/pkg/response"
	"med-ready/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type projectRecommendationsRequest struct {
	TargetRoleID uuid.UUID `json:"target_role_id"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// RegisterRoutes wires the authenticated recommendation endpoint; Browse
// is registered separately on the public router.
func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Post("/recommendations", h.Recommend)
}

func (h *ProjectHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/projects", h.Browse)
}

func (h *ProjectHandler) Recommend(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req projectRecommendationsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.RecommendProjects(c.Context(), userID, req.TargetRoleID)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	res := dto.ProjectRecommendationsResponse{
		SkillGaps:    len(out.BasedOnGaps),
		Projects:     dto.NewProjectResponses(out.Recommendations),
		BasedOnGaps:  out.BasedOnGaps,
		TotalFound:   out.TotalFound,
		UsedFallback: out.UsedFallback,
		Summary:      out.Summary,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ProjectHandler) Browse(c fiber.Ctx) error {
	recs, err := h.uc.BrowseProjects(c.Context(), c.Query("language"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProjectResponses(recs))
}
