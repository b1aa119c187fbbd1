package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden.
const (
	OrderPending          = "pending"
	OrderProcessing       = "processing"
	OrderShipping         = "shipping"
	OrderDelivered        = "delivered"
	OrderCancelled        = "cancelled"
	OrderReturnedRefunded = "returned_refunded"
)

// Order representa una orden de compra de un usuario.
type Order struct {
	ID          string
	UserID      string
	OrderStatus string
	Total       decimal.Decimal
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []*OrderItem
}

// Cancellable indica si la orden admite cancelación por parte del usuario.
// Solo se permite antes del despacho.
func (o *Order) Cancellable() bool {
	return o.OrderStatus == OrderPending || o.OrderStatus == OrderProcessing
}

// OrderItem es una línea de la orden. Conserva el precio al momento de la
// compra; el producto referenciado puede estar soft-deleted.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     decimal.Decimal

	Product *Product // incluye productos soft-deleted en listados de órdenes
}
