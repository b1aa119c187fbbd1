package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// ImageUpload payload de imagen ya leído del multipart por el handler.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name     string       `json:"name" validate:"required,max=255"`
	ParentID string       `json:"parent_id" validate:"omitempty,uuid4"`
	Image    *ImageUpload `json:"-"`
}

// UpdateCategoryRequest entrada para actualizar una categoría. El slug
// explícito tiene prioridad sobre el derivado del nombre.
type UpdateCategoryRequest struct {
	Name     string       `json:"name" validate:"required,max=255"`
	Slug     *string      `json:"slug" validate:"omitempty,max=255"`
	ParentID string       `json:"parent_id" validate:"omitempty,uuid4"`
	Image    *ImageUpload `json:"-"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Slug      string             `json:"slug"`
	Image     string             `json:"image,omitempty"`
	ParentID  string             `json:"parent_id,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	DeletedAt *time.Time         `json:"deleted_at,omitempty"`
	Children  []CategoryResponse `json:"children,omitempty"`
}

// CategoryListResponse lista de categorías.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// DeleteCategoryResponse resultado del borrado: ids de la rama de archivo
// a la que se movieron productos y subcategorías huérfanas.
type DeleteCategoryResponse struct {
	ArchiveParentID string `json:"archive_parent_id"`
	ArchiveChildID  string `json:"archive_child_id"`
}

// CategoryProductResponse resumen de producto dentro de una categoría.
type CategoryProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	ImgThumbnail string          `json:"img_thumbnail,omitempty"`
	PriceRegular decimal.Decimal `json:"price_regular"`
	PriceSale    decimal.Decimal `json:"price_sale"`
}

// ToCategoryResponse convierte la entidad en su representación de salida,
// incluyendo hijas si vienen cargadas.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	out := CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Image:     c.Image,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		DeletedAt: c.DeletedAt,
	}
	for _, child := range c.Children {
		out.Children = append(out.Children, ToCategoryResponse(child))
	}
	return out
}

// ToCategoryListResponse convierte un slice de entidades.
func ToCategoryListResponse(list []*entity.Category) CategoryListResponse {
	items := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, ToCategoryResponse(c))
	}
	return CategoryListResponse{Categories: items}
}

// ToCategoryProductResponse convierte un producto a su resumen de catálogo.
func ToCategoryProductResponse(p *entity.Product) CategoryProductResponse {
	return CategoryProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		ImgThumbnail: p.ImgThumbnail,
		PriceRegular: p.PriceRegular,
		PriceSale:    p.PriceSale,
	}
}
