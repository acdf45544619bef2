package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/application/ledger"
	"github.com/ecopack/ecopack-api/internal/application/usecase"
	"github.com/ecopack/ecopack-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP de órdenes (protegido).
// Crear una orden pasa por el libro de inventario: valida y descuenta stock
// en la misma transacción. No hay update ni delete.
type OrderHandler struct {
	placeOrder *ledger.PlaceOrderUseCase
	listUC     *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(placeOrder *ledger.PlaceOrderUseCase, listUC *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{placeOrder: placeOrder, listUC: listUC}
}

// Create POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.placeOrder.PlaceOrder(c.Context(), in)
	if err != nil {
		if ise, ok := domain.IsInsufficientStock(err); ok {
			// El mensaje lleva la cantidad exacta disponible.
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: ise.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id, bag_id y quantity_ordered > 0 son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente o bag no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.listUC.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(order)
}

// List GET /api/orders?limit=20&offset=0
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.listUC.List(dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
