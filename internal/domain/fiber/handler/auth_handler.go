package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/usecase"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(api fiber.Router) {
	grp := api.Group("/auth")
	grp.Post("/register", h.Register)
	grp.Post("/login", h.Login)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	resp, err := h.uc.Register(req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	resp, err := h.uc.Login(req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
