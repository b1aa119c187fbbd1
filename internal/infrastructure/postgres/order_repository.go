package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// GetByID obtiene una orden por ID con sus ítems (productos soft-deleted incluidos).
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, order_status, total, COALESCE(note, ''), created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.OrderStatus, &o.Total, &o.Note, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadItems(map[string]*entity.Order{o.ID: &o}, []string{o.ID}); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByUser lista las órdenes del usuario (status "all" = sin filtro), más
// recientes primero, con sus ítems y el producto de cada ítem aunque esté
// soft-deleted.
func (r *OrderRepo) ListByUser(userID, status string) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, order_status, total, COALESCE(note, ''), created_at, updated_at
		FROM orders
		WHERE user_id = $1 AND ($2 = 'all' OR order_status = $2)
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	byID := make(map[string]*entity.Order)
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.OrderStatus, &o.Total, &o.Note, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, &o)
		byID[o.ID] = &o
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err := r.loadItems(byID, ids); err != nil {
		return nil, err
	}
	return orders, nil
}

// loadItems carga los ítems de un conjunto de órdenes con un solo query,
// uniendo el producto sin filtrar tombstones.
func (r *OrderRepo) loadItems(byID map[string]*entity.Order, ids []string) error {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       p.name, p.slug, COALESCE(p.img_thumbnail, ''), p.deleted_at
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.OrderItem
		var product entity.Product
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&product.Name, &product.Slug, &product.ImgThumbnail, &product.DeletedAt); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		product.ID = item.ProductID
		item.Product = &product
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, &item)
		}
	}
	return rows.Err()
}

// UpdateStatus persiste el cambio de estado y la nota de la orden.
func (r *OrderRepo) UpdateStatus(order *entity.Order) error {
	query := `UPDATE orders SET order_status = $2, note = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderStatus, nullIfEmpty(order.Note), order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}
