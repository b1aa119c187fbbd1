package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, slug, category_id, img_thumbnail, price_regular, price_sale, is_active, created_at, updated_at, deleted_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var thumb *string
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.CategoryID, &thumb,
		&p.PriceRegular, &p.PriceSale, &p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	p.ImgThumbnail = orEmpty(thumb)
	return &p, nil
}

// GetByID obtiene un producto activo por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND deleted_at IS NULL`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListActiveByCategory lista los productos activos de una categoría, más recientes primero.
func (r *ProductRepo) ListActiveByCategory(categoryID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category_id = $1 AND is_active AND deleted_at IS NULL
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ReassignCategory mueve todos los productos (también los soft-deleted, para
// mantener el FK consistente) de una categoría a otra.
func (r *ProductRepo) ReassignCategory(fromCategoryID, toCategoryID string) (int64, error) {
	query := `UPDATE products SET category_id = $2, updated_at = now() WHERE category_id = $1`
	cmd, err := r.q.Exec(context.Background(), query, fromCategoryID, toCategoryID)
	if err != nil {
		return 0, fmt.Errorf("reassign products: %w", err)
	}
	return cmd.RowsAffected(), nil
}
