package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	// GetByID obtiene la orden con sus ítems; el producto de cada ítem se
	// incluye aunque esté soft-deleted.
	GetByID(id string) (*entity.Order, error)
	// ListByUser lista las órdenes de un usuario, opcionalmente filtradas
	// por estado (status vacío o "all" = todas), de más reciente a más
	// antigua. Incluye ítems con su producto aunque esté soft-deleted.
	ListByUser(userID, status string) ([]*entity.Order, error)
	// UpdateStatus persiste un cambio de estado (y nota) de la orden.
	UpdateStatus(order *entity.Order) error
}
