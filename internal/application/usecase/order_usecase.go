package usecase

import (
	"time"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// Estados aceptados como filtro de listado.
var orderStatusFilters = map[string]bool{
	"all":                        true,
	entity.OrderPending:          true,
	entity.OrderShipping:         true,
	entity.OrderDelivered:        true,
	entity.OrderCancelled:        true,
	entity.OrderReturnedRefunded: true,
}

// OrderUseCase lecturas y cancelación de órdenes del propio usuario.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// ListByUser lista las órdenes del usuario filtradas por estado. Un filtro
// desconocido equivale a "all". Cada ítem indica si su producto fue
// soft-deleted después de la compra.
func (uc *OrderUseCase) ListByUser(userID, status string) (*dto.OrderListResponse, error) {
	if status == "" || !orderStatusFilters[status] {
		status = "all"
	}
	orders, err := uc.repo.ListByUser(userID, status)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Count:  len(orders),
		Orders: make([]dto.OrderResponse, 0, len(orders)),
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, dto.ToOrderResponse(o))
	}
	return out, nil
}

// Detail devuelve una orden del usuario con sus ítems. Solo el dueño puede
// verla; el producto de cada ítem aparece aunque ya esté soft-deleted.
func (uc *OrderUseCase) Detail(userID, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	out := dto.ToOrderResponse(order)
	return &out, nil
}

// Cancel cancela una orden del usuario. Solo el dueño puede cancelar y solo
// mientras la orden no haya sido despachada.
func (uc *OrderUseCase) Cancel(userID, orderID, note string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if !order.Cancellable() {
		return nil, domain.ErrOrderNotCancellable
	}
	order.OrderStatus = entity.OrderCancelled
	order.Note = note
	order.UpdatedAt = time.Now()
	if err := uc.repo.UpdateStatus(order); err != nil {
		return nil, err
	}
	out := dto.ToOrderResponse(order)
	return &out, nil
}
