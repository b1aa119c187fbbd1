package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// OrderHandler maneja las órdenes del usuario autenticado.
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	log *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar órdenes del usuario
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro de estado (all, pending, shipping, delivered, cancelled, returned_refunded)"
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	out, err := h.uc.ListByUser(userID, c.Query("status", "all"))
	if err != nil {
		return respondDomainError(c, h.log, "orders.list", userID, err)
	}
	if out.Count == 0 {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", "no hay órdenes"))
	}
	return c.JSON(dto.OK("órdenes obtenidas", out))
}

// Show godoc
// @Summary      Detalle de una orden propia
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Show(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Detail(GetUserID(c), id)
	if err != nil {
		return respondDomainError(c, h.log, "orders.show", id, err)
	}
	return c.JSON(dto.OK("orden obtenida", fiber.Map{"order": out}))
}

// Cancel godoc
// @Summary      Cancelar una orden propia
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.CancelOrderRequest  false  "Nota de cancelación"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CancelOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "cuerpo inválido"))
		}
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", "la nota no puede superar 500 caracteres"))
	}
	out, err := h.uc.Cancel(GetUserID(c), id, in.Note)
	if err != nil {
		return respondDomainError(c, h.log, "orders.cancel", id, err)
	}
	return c.JSON(dto.OK("orden cancelada", fiber.Map{"order": out}))
}
