package catalog

import (
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// QueryService lecturas del catálogo de categorías. Sin mutaciones.
type QueryService struct {
	catRepo  repository.CategoryRepository
	prodRepo repository.ProductRepository
}

// NewQueryService construye el servicio de consultas.
func NewQueryService(catRepo repository.CategoryRepository, prodRepo repository.ProductRepository) *QueryService {
	return &QueryService{catRepo: catRepo, prodRepo: prodRepo}
}

// ListTree lista el catálogo. Con término de búsqueda devuelve una lista
// plana (substring sobre nombre o slug, sin expandir hijas); sin término
// devuelve las raíces con sus hijas directas, de más reciente a más antigua.
func (s *QueryService) ListTree(search string) (*dto.CategoryListResponse, error) {
	if search != "" {
		list, err := s.catRepo.Search(search)
		if err != nil {
			return nil, err
		}
		out := dto.ToCategoryListResponse(list)
		return &out, nil
	}

	roots, err := s.catRepo.ListRoots()
	if err != nil {
		return nil, err
	}
	if err := s.attachChildren(roots); err != nil {
		return nil, err
	}
	out := dto.ToCategoryListResponse(roots)
	return &out, nil
}

// ListParentsWithChildren lista las raíces que tienen al menos una hija
// activa, con sus hijas adjuntas. Usada por la navegación de administración.
func (s *QueryService) ListParentsWithChildren() (*dto.CategoryListResponse, error) {
	roots, err := s.catRepo.ListRoots()
	if err != nil {
		return nil, err
	}
	if err := s.attachChildren(roots); err != nil {
		return nil, err
	}
	withChildren := make([]*entity.Category, 0, len(roots))
	for _, root := range roots {
		if len(root.Children) > 0 {
			withChildren = append(withChildren, root)
		}
	}
	out := dto.ToCategoryListResponse(withChildren)
	return &out, nil
}

// ListChildrenOnly lista las categorías cuyo padre no es raíz, de más
// reciente a más antigua.
func (s *QueryService) ListChildrenOnly() (*dto.CategoryListResponse, error) {
	children, err := s.catRepo.ListAllChildren()
	if err != nil {
		return nil, err
	}
	out := dto.ToCategoryListResponse(children)
	return &out, nil
}

// GetByID obtiene una categoría; con withChildren adjunta sus hijas directas.
func (s *QueryService) GetByID(id string, withChildren bool) (*dto.CategoryResponse, error) {
	category, err := s.catRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if withChildren {
		children, err := s.catRepo.ListChildren(category.ID)
		if err != nil {
			return nil, err
		}
		category.Children = children
	}
	out := dto.ToCategoryResponse(category)
	return &out, nil
}

// ListTrashed lista solo las categorías soft-deleted.
func (s *QueryService) ListTrashed() (*dto.CategoryListResponse, error) {
	trashed, err := s.catRepo.ListTrashed()
	if err != nil {
		return nil, err
	}
	out := dto.ToCategoryListResponse(trashed)
	return &out, nil
}

// ListProducts lista los productos activos de una subcategoría. Una raíz no
// tiene productos directos: se rechaza con ErrInvalidInput.
func (s *QueryService) ListProducts(categoryID string) ([]dto.CategoryProductResponse, error) {
	category, err := s.catRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.IsRoot() {
		return nil, domain.ErrInvalidInput
	}
	products, err := s.prodRepo.ListActiveByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ToCategoryProductResponse(p))
	}
	return items, nil
}

// attachChildren adjunta a cada raíz sus hijas directas con dos lecturas en
// total, evitando una consulta por raíz.
func (s *QueryService) attachChildren(roots []*entity.Category) error {
	children, err := s.catRepo.ListAllChildren()
	if err != nil {
		return err
	}
	byParent := make(map[string][]*entity.Category, len(roots))
	for _, child := range children {
		byParent[child.ParentID] = append(byParent[child.ParentID], child)
	}
	for _, root := range roots {
		root.Children = byParent[root.ID]
	}
	return nil
}
