package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Este subsistema solo muta
// CategoryID (reasignación durante el borrado de una categoría); el resto
// del ciclo de vida del producto pertenece a otro módulo.
type Product struct {
	ID           string
	Name         string
	Slug         string
	CategoryID   string
	ImgThumbnail string
	PriceRegular decimal.Decimal
	PriceSale    decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// IsDeleted indica si el producto está soft-deleted.
func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}
