package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/middleware"
	"github.com/fadilmartias/career-compass/internal/usecase"
)

type RecommendationHandler struct {
	uc *usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(api fiber.Router) {
	grp := api.Group("/recommendations")
	grp.Get("/", h.List)
	grp.Get("/stats", h.Stats)
	grp.Patch("/:jobAnalysisId/:index/status", h.UpdateStatus)
}

func (h *RecommendationHandler) List(c *fiber.Ctx) error {
	filter := dto.RecommendationFilter{
		Priority: c.Query("priority"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	items, err := h.uc.Aggregate(middleware.UserID(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *RecommendationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *RecommendationHandler) UpdateStatus(c *fiber.Ctx) error {
	jobAnalysisID, err := uuid.Parse(c.Params("jobAnalysisId"))
	if err != nil {
		return apperror.NewValidationError("Invalid job analysis id", nil)
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || index < 0 {
		return apperror.NewValidationError("Invalid recommendation index", nil)
	}

	var req dto.UpdateRecommendationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	progress, err := h.uc.UpdateStatus(middleware.UserID(c), jobAnalysisID, index, req)
	if err != nil {
		return err
	}
	return c.JSON(progress)
}
