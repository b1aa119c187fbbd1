package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Todas las lecturas indican explícitamente si incluyen tombstones: salvo
// ListTrashed, los métodos operan solo sobre filas activas.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// FindByName busca por nombre exacto entre todas las categorías activas
	// (chequeo global usado en la creación).
	FindByName(name string) (*entity.Category, error)
	// FindSibling busca una categoría activa con el mismo nombre y el mismo
	// padre, excluyendo excludeID (chequeo por grupo de hermanas en update).
	FindSibling(name, parentID, excludeID string) (*entity.Category, error)
	// FindOrCreateBySlug inserta la categoría si no existe una fila con su
	// slug y devuelve la fila resultante, siempre activa: una fila existente
	// soft-deleted se resucita. Debe ser atómico bajo concurrencia (índice
	// único sobre slug + insert-on-conflict).
	FindOrCreateBySlug(category *entity.Category) (*entity.Category, error)
	Update(category *entity.Category) error
	// Search busca por substring (case-insensitive) en nombre o slug,
	// ordenado de más reciente a más antigua.
	Search(term string) ([]*entity.Category, error)
	ListRoots() ([]*entity.Category, error)
	ListChildren(parentID string) ([]*entity.Category, error)
	// ListAllChildren lista todas las categorías cuyo padre no es raíz.
	ListAllChildren() ([]*entity.Category, error)
	ListTrashed() ([]*entity.Category, error)
	// ReparentChildren mueve todas las hijas activas de fromParentID a
	// toParentID y devuelve cuántas filas se movieron.
	ReparentChildren(fromParentID, toParentID string) (int64, error)
	SoftDelete(id string) error
}
