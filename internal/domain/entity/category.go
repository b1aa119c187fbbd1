package entity

import "time"

// Slugs reservados para la rama de archivo. La rama se crea de forma
// perezosa en el primer borrado y nunca se elimina desde este subsistema.
const (
	ArchiveRootSlug  = "categoria-archivo"
	ArchiveRootName  = "Categoría de archivo"
	ArchiveChildSlug = "productos-eliminados"
	ArchiveChildName = "Productos eliminados"
)

// Category representa una categoría del catálogo. El árbol tiene como máximo
// dos niveles: categorías raíz y sus hijas directas.
type Category struct {
	ID        string
	Name      string
	Slug      string // único a nivel de tabla
	Image     string // URI pública, vacío si no tiene imagen
	ParentID  string // vacío si es raíz
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // tombstone: nil = activa

	Children []*Category // hijas directas, solo en lecturas con expansión
}

// IsRoot indica si la categoría es raíz (sin padre).
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}

// IsDeleted indica si la categoría está soft-deleted.
func (c *Category) IsDeleted() bool {
	return c.DeletedAt != nil
}
