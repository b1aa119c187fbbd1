package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// CancelOrderRequest entrada para cancelar una orden.
type CancelOrderRequest struct {
	Note string `json:"note" validate:"max=500"`
}

// OrderItemResponse línea de una orden. StatusDeleted marca si el producto
// referenciado fue soft-deleted después de la compra.
type OrderItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	StatusDeleted int             `json:"status_deleted"`
}

// OrderResponse salida de una orden con sus ítems.
type OrderResponse struct {
	ID          string              `json:"id"`
	OrderStatus string              `json:"order_status"`
	Total       decimal.Decimal     `json:"total"`
	Note        string              `json:"note,omitempty"`
	ImageURL    string              `json:"image_url,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []OrderItemResponse `json:"items"`
}

// OrderListResponse lista de órdenes del usuario.
type OrderListResponse struct {
	Count  int             `json:"count"`
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse convierte la entidad con sus ítems. ImageURL toma la
// miniatura del primer producto disponible, como vista rápida en listados.
func ToOrderResponse(o *entity.Order) OrderResponse {
	out := OrderResponse{
		ID:          o.ID,
		OrderStatus: o.OrderStatus,
		Total:       o.Total,
		Note:        o.Note,
		CreatedAt:   o.CreatedAt,
		Items:       make([]OrderItemResponse, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		line := OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.Product != nil {
			line.ProductName = item.Product.Name
			if item.Product.IsDeleted() {
				line.StatusDeleted = 1
			}
			if out.ImageURL == "" {
				out.ImageURL = item.Product.ImgThumbnail
			}
		}
		out.Items = append(out.Items, line)
	}
	return out
}
