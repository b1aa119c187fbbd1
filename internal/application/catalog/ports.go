package catalog

import (
	"context"

	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con los repositorios de categoría y producto
// atados a una misma transacción. Si fn devuelve error se hace rollback
// completo; no hay re-punteos parciales observables.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		catRepo repository.CategoryRepository,
		prodRepo repository.ProductRepository,
	) error) error
}

// BlobStorage almacena las imágenes de categorías. Delete es best-effort:
// se invoca después del commit y su fallo solo se registra.
type BlobStorage interface {
	Save(filename string, data []byte) (string, error)
	Delete(uri string) error
}
