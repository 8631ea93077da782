package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/middleware"
	"github.com/fadilmartias/career-compass/internal/usecase"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(api fiber.Router) {
	grp := api.Group("/jobs")
	grp.Post("/analyze", middleware.RateLimiter(10, time.Minute), h.Analyze)
	grp.Get("/", h.List)
	grp.Get("/:id", h.Get)
	grp.Delete("/:id", h.Delete)
}

func (h *JobHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	resp, err := h.uc.Analyze(c.UserContext(), middleware.UserID(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	analyses, err := h.uc.List(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(analyses)
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperror.ErrNotFound
	}

	analysis, err := h.uc.Get(middleware.UserID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(analysis)
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperror.ErrNotFound
	}

	if err := h.uc.Delete(middleware.UserID(c), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job analysis deleted"})
}
