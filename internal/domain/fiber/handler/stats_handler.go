package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fadilmartias/career-compass/internal/middleware"
	"github.com/fadilmartias/career-compass/internal/usecase"
)

type StatsHandler struct {
	uc *usecase.StatsUsecase
}

func NewStatsHandler(uc *usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(api fiber.Router) {
	api.Get("/stats/dashboard", h.Dashboard)
}

func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.uc.Dashboard(middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
