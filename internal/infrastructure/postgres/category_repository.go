package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, name, slug, image, parent_id, created_at, updated_at, deleted_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var image, parentID *string
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &image, &parentID, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		return nil, err
	}
	c.Image = orEmpty(image)
	c.ParentID = orEmpty(parentID)
	return &c, nil
}

func (r *CategoryRepo) queryCategories(query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, image, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Slug, nullIfEmpty(category.Image),
		nullIfEmpty(category.ParentID), category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría activa por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND deleted_at IS NULL`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// FindByName busca por nombre exacto entre las categorías activas (chequeo global de creación).
func (r *CategoryRepo) FindByName(name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1 AND deleted_at IS NULL LIMIT 1`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return c, nil
}

// FindSibling busca una categoría activa con el mismo nombre en el mismo
// grupo de hermanas, excluyendo excludeID. IS NOT DISTINCT FROM trata NULL
// (raíz) como un grupo más.
func (r *CategoryRepo) FindSibling(name, parentID, excludeID string) (*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE name = $1 AND parent_id IS NOT DISTINCT FROM $2 AND id::text <> $3 AND deleted_at IS NULL
		LIMIT 1`
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, name, nullIfEmpty(parentID), excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find sibling category: %w", err)
	}
	return c, nil
}

// FindOrCreateBySlug inserta la categoría si su slug no existe y devuelve la
// fila resultante. ON CONFLICT sobre el índice único de slug hace que dos
// invocaciones concurrentes nunca dupliquen la fila; si la fila existente
// estaba soft-deleted se resucita, así la rama de archivo vuelve siempre activa.
func (r *CategoryRepo) FindOrCreateBySlug(category *entity.Category) (*entity.Category, error) {
	query := `
		INSERT INTO categories (id, name, slug, image, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug) DO UPDATE SET deleted_at = NULL, updated_at = excluded.updated_at
		RETURNING ` + categoryColumns
	c, err := scanCategory(r.q.QueryRow(context.Background(), query,
		category.ID, category.Name, category.Slug, nullIfEmpty(category.Image),
		nullIfEmpty(category.ParentID), category.CreatedAt, category.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("find-or-create category: %w", err)
	}
	return c, nil
}

// Update aplica todos los campos editables en un solo update.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories
		SET name = $2, slug = $3, image = $4, parent_id = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Slug, nullIfEmpty(category.Image),
		nullIfEmpty(category.ParentID), category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Search busca por substring case-insensitive en nombre o slug, activas, más recientes primero.
func (r *CategoryRepo) Search(term string) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE deleted_at IS NULL AND (name ILIKE '%' || $1 || '%' OR slug ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC`
	return r.queryCategories(query, term)
}

// ListRoots lista las categorías raíz activas, más recientes primero.
func (r *CategoryRepo) ListRoots() ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE parent_id IS NULL AND deleted_at IS NULL
		ORDER BY created_at DESC`
	return r.queryCategories(query)
}

// ListChildren lista las hijas activas de una categoría, más recientes primero.
func (r *CategoryRepo) ListChildren(parentID string) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE parent_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`
	return r.queryCategories(query, parentID)
}

// ListAllChildren lista todas las categorías activas con padre, más recientes primero.
func (r *CategoryRepo) ListAllChildren() ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE parent_id IS NOT NULL AND deleted_at IS NULL
		ORDER BY created_at DESC`
	return r.queryCategories(query)
}

// ListTrashed lista solo las categorías soft-deleted, borradas más recientemente primero.
func (r *CategoryRepo) ListTrashed() ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC`
	return r.queryCategories(query)
}

// ReparentChildren mueve las hijas activas de fromParentID a toParentID.
func (r *CategoryRepo) ReparentChildren(fromParentID, toParentID string) (int64, error) {
	query := `
		UPDATE categories SET parent_id = $2, updated_at = now()
		WHERE parent_id = $1 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, fromParentID, toParentID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrInUse
		}
		return 0, fmt.Errorf("reparent categories: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// SoftDelete marca la categoría como borrada (tombstone recuperable).
func (r *CategoryRepo) SoftDelete(id string) error {
	query := `UPDATE categories SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("soft delete category: %w", err)
	}
	return nil
}
