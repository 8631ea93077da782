package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/middleware"
	"github.com/fadilmartias/career-compass/internal/usecase"
)

type SkillHandler struct {
	uc *usecase.SkillUsecase
}

func NewSkillHandler(uc *usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(api fiber.Router) {
	grp := api.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c *fiber.Ctx) error {
	skills, err := h.uc.List(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(skills)
}

func (h *SkillHandler) Add(c *fiber.Ctx) error {
	var req dto.AddSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	skill, err := h.uc.Add(middleware.UserID(c), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

func (h *SkillHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperror.ErrNotFound
	}

	var req dto.UpdateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	skill, err := h.uc.Update(middleware.UserID(c), id, req)
	if err != nil {
		return err
	}
	return c.JSON(skill)
}

func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apperror.ErrNotFound
	}

	if err := h.uc.Delete(middleware.UserID(c), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Skill deleted"})
}
