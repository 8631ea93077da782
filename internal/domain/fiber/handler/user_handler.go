package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/middleware"
	"github.com/fadilmartias/career-compass/internal/usecase"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(api fiber.Router) {
	grp := api.Group("/user")
	grp.Get("/profile", h.Profile)
	grp.Patch("/profile", h.UpdateProfile)
	grp.Post("/change-password", h.ChangePassword)
	grp.Get("/export-data", h.ExportData)
	grp.Delete("/account", h.DeleteAccount)
}

func (h *UserHandler) Profile(c *fiber.Ctx) error {
	info, err := h.uc.Profile(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(info)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	info, err := h.uc.UpdateProfile(middleware.UserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(info)
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	if err := h.uc.ChangePassword(middleware.UserID(c), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}

func (h *UserHandler) ExportData(c *fiber.Ctx) error {
	data, err := h.uc.ExportData(middleware.UserID(c))
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("career-compass-data-%d.json", time.Now().UnixMilli())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	return c.JSON(data)
}

func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	var req dto.DeleteAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.NewValidationError("Invalid request body", nil)
	}

	if err := h.uc.DeleteAccount(middleware.UserID(c), req); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Account deleted"})
}
