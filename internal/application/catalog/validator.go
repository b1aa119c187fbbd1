package catalog

import (
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// TreeValidator aplica las invariantes del árbol de categorías: profundidad
// máxima de dos niveles y unicidad de nombre. Solo lecturas, sin efectos.
type TreeValidator struct {
	repo repository.CategoryRepository
}

// NewTreeValidator construye el validador con el puerto de persistencia.
func NewTreeValidator(repo repository.CategoryRepository) *TreeValidator {
	return &TreeValidator{repo: repo}
}

// ValidateParent verifica que parentID pueda usarse como padre. Vacío (raíz)
// siempre es válido; un padre inexistente es ErrNotFound; un padre que es a
// su vez subcategoría es ErrInvalidHierarchy (tope de dos niveles).
func (v *TreeValidator) ValidateParent(parentID string) error {
	if parentID == "" {
		return nil
	}
	parent, err := v.repo.GetByID(parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return domain.ErrNotFound
	}
	if !parent.IsRoot() {
		return domain.ErrInvalidHierarchy
	}
	return nil
}

// ValidateUniqueName verifica que el nombre no exista en el mismo grupo de
// hermanas (mismo padre, filas activas), excluyendo excludeID en updates.
func (v *TreeValidator) ValidateUniqueName(name, parentID, excludeID string) error {
	sibling, err := v.repo.FindSibling(name, parentID, excludeID)
	if err != nil {
		return err
	}
	if sibling != nil {
		return domain.ErrDuplicateName
	}
	return nil
}

// ValidateUniqueNameGlobal verifica que ninguna categoría activa use el
// nombre, sin importar el padre. Se usa solo en la creación: el sistema
// original valida global al crear y por grupo de hermanas al actualizar, y
// esa asimetría se conserva a propósito.
func (v *TreeValidator) ValidateUniqueNameGlobal(name string) error {
	existing, err := v.repo.FindByName(name)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateName
	}
	return nil
}
