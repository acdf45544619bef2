package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ecopack/ecopack-api/internal/application/dashboard"
	"github.com/ecopack/ecopack-api/internal/application/dto"
)

// DashboardHandler resumen operativo (protegido, solo lectura).
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary GET /api/dashboard/summary
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
