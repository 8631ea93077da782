package handler

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/config"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/middleware"
	"github.com/fadilmartias/career-compass/internal/usecase"
)

type ResumeHandler struct {
	uc            *usecase.ResumeUsecase
	maxUploadSize int
}

func NewResumeHandler(uc *usecase.ResumeUsecase, cfg *config.AppConfig) *ResumeHandler {
	return &ResumeHandler{uc: uc, maxUploadSize: cfg.MaxUploadSize}
}

func (h *ResumeHandler) RegisterRoutes(api fiber.Router) {
	grp := api.Group("/resume")
	grp.Post("/upload", h.Upload)
	grp.Post("/text", h.AddText)
	grp.Get("/", h.List)
	grp.Delete("/:id", h.Delete)
}

func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return apperror.NewValidationError("No resume file provided", nil)
	}
	if fileHeader.Size > int64(h.maxUploadSize) {
		return apperror.NewValidationError(
			fmt.Sprintf("File exceeds the maximum size of %d bytes", h.maxUploadSize), nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	resp, err := h.uc.Upload(c.UserContext(), middleware.UserID(c), fileHeader.Filename, data, mimeType)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ResumeHandler) AddText(c *fiber.Ctx) error {
	var req dto.ResumeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	resp, err := h.uc.AddText(c.UserContext(), middleware.UserID(c), req.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ResumeHandler) List(c *fiber.Ctx) error {
	resumes, err := h.uc.List(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resumes)
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperror.ErrNotFound
	}

	if err := h.uc.Delete(middleware.UserID(c), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Resume deleted"})
}
