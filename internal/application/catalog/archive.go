package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// ResolveArchiveBranch localiza o crea la rama de archivo: la categoría raíz
// de archivo y su hija donde terminan productos y subcategorías huérfanas.
// Es idempotente; la atomicidad bajo invocaciones concurrentes la garantiza
// FindOrCreateBySlug (índice único sobre slug, nunca un caché en memoria).
// Debe llamarse con el repositorio atado a la transacción del borrado.
func ResolveArchiveBranch(catRepo repository.CategoryRepository) (root, child *entity.Category, err error) {
	now := time.Now()
	root, err = catRepo.FindOrCreateBySlug(&entity.Category{
		ID:        uuid.New().String(),
		Name:      entity.ArchiveRootName,
		Slug:      entity.ArchiveRootSlug,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, nil, err
	}
	child, err = catRepo.FindOrCreateBySlug(&entity.Category{
		ID:        uuid.New().String(),
		Name:      entity.ArchiveChildName,
		Slug:      entity.ArchiveChildSlug,
		ParentID:  root.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, nil, err
	}
	return root, child, nil
}
