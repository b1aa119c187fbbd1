package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El núcleo de catálogo solo necesita lecturas por categoría y la
// reasignación masiva usada durante el borrado de una categoría.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	// ListActiveByCategory lista productos activos (is_active y sin
	// tombstone) de una categoría, ordenados de más reciente a más antiguo.
	ListActiveByCategory(categoryID string) ([]*entity.Product, error)
	// ReassignCategory mueve todos los productos de fromCategoryID a
	// toCategoryID (incluye soft-deleted: el FK debe quedar consistente
	// también para tombstones) y devuelve cuántas filas se movieron.
	ReassignCategory(fromCategoryID, toCategoryID string) (int64, error)
}
