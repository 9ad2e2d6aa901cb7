package handler

import (
	"errors"

	"med-ready/internal/delivery/http/dto"
	"med-ready/internal/delivery/http/middleware"
	"med-ready/internal/pkg/response"
	"med-ready/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AnalysisHandler struct {
	analysis usecase.AnalysisUsecase
	recs     usecase.RecommendationUsecase
	paths    usecase.LearningPathUsecase
}

type gapAnalysisRequest struct {
	TargetRoleID uuid.UUID `json:"target_role_id"`
}

type learningPathRequest struct {
	TargetRoleID uuid.UUID `json:"target_role_id"`
	Timeline     string    `json:"timeline"`
}

func NewAnalysisHandler(
	analysis usecase.AnalysisUsecase,
	recs usecase.RecommendationUsecase,
	paths usecase.LearningPathUsecase,
) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, recs: recs, paths: paths}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/analysis")
	grp.Post("/gap", h.AnalyzeGaps)
	grp.Post("/recommendations", h.RecommendCourses)
	grp.Post("/learning-path", h.GenerateLearningPath)
}

func (h *AnalysisHandler) AnalyzeGaps(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req gapAnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	analysis, err := h.analysis.AnalyzeGaps(c.Context(), userID, req.TargetRoleID)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGapAnalysisResponse(analysis))
}

func (h *AnalysisHandler) RecommendCourses(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req gapAnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.recs.RecommendCourses(c.Context(), userID, req.TargetRoleID)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	res := dto.CourseRecommendationsResponse{
		Analysis:        dto.NewGapAnalysisResponse(out.Analysis),
		Recommendations: dto.NewRecommendationResponse(out.Recommendations),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *AnalysisHandler) GenerateLearningPath(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req learningPathRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	lp, err := h.paths.GenerateLearningPath(c.Context(), userID, req.TargetRoleID, req.Timeline)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewLearningPathResponse(lp))
}

func mapAnalysisUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "target_role_id is required", nil, err)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Career path not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
