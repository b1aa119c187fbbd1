package catalog_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

var stampMu sync.Mutex
var stampSeq int64

// nowStamp devuelve marcas estrictamente crecientes para que el orden
// "más reciente primero" de los listados sea determinista en los tests.
func nowStamp() time.Time {
	stampMu.Lock()
	defer stampMu.Unlock()
	stampSeq++
	return time.Unix(1700000000, 0).Add(time.Duration(stampSeq) * time.Second)
}

func seedCategory(r *memCategoryRepo, id, name, parentID string) *entity.Category {
	c := &entity.Category{
		ID:        id,
		Name:      name,
		Slug:      strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		ParentID:  parentID,
		CreatedAt: nowStamp(),
	}
	c.UpdatedAt = c.CreatedAt
	if err := r.Create(c); err != nil {
		panic(err)
	}
	return c
}

type memCategoryRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Category

	softDeleteErr error // fuerza un fallo en SoftDelete (simula 23503)
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{rows: make(map[string]*entity.Category)}
}

func copyCategory(c *entity.Category) *entity.Category {
	cp := *c
	cp.Children = nil
	if c.DeletedAt != nil {
		t := *c.DeletedAt
		cp.DeletedAt = &t
	}
	return &cp
}

func (r *memCategoryRepo) snapshot() map[string]*entity.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]*entity.Category, len(r.rows))
	for id, c := range r.rows {
		snap[id] = copyCategory(c)
	}
	return snap
}

func (r *memCategoryRepo) restore(snap map[string]*entity.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = snap
}

func (r *memCategoryRepo) Create(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.Slug == category.Slug {
			return domain.ErrDuplicateName
		}
	}
	r.rows[category.ID] = copyCategory(category)
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	return copyCategory(c), nil
}

func (r *memCategoryRepo) FindByName(name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.DeletedAt == nil && c.Name == name {
			return copyCategory(c), nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) FindSibling(name, parentID, excludeID string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.DeletedAt == nil && c.Name == name && c.ParentID == parentID && c.ID != excludeID {
			return copyCategory(c), nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) FindOrCreateBySlug(category *entity.Category) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.rows {
		if c.Slug == category.Slug {
			c.DeletedAt = nil // una fila tombstoned se resucita
			return copyCategory(c), nil
		}
	}
	r.rows[category.ID] = copyCategory(category)
	return copyCategory(category), nil
}

func (r *memCategoryRepo) Update(category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rows[category.ID]
	if !ok || current.DeletedAt != nil {
		return nil
	}
	for _, c := range r.rows {
		if c.ID != category.ID && c.Slug == category.Slug {
			return domain.ErrDuplicateName
		}
	}
	r.rows[category.ID] = copyCategory(category)
	return nil
}

func (r *memCategoryRepo) list(filter func(*entity.Category) bool) []*entity.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.rows {
		if filter(c) {
			out = append(out, copyCategory(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *memCategoryRepo) Search(term string) ([]*entity.Category, error) {
	t := strings.ToLower(term)
	return r.list(func(c *entity.Category) bool {
		return c.DeletedAt == nil &&
			(strings.Contains(strings.ToLower(c.Name), t) || strings.Contains(strings.ToLower(c.Slug), t))
	}), nil
}

func (r *memCategoryRepo) ListRoots() ([]*entity.Category, error) {
	return r.list(func(c *entity.Category) bool { return c.DeletedAt == nil && c.ParentID == "" }), nil
}

func (r *memCategoryRepo) ListChildren(parentID string) ([]*entity.Category, error) {
	return r.list(func(c *entity.Category) bool { return c.DeletedAt == nil && c.ParentID == parentID }), nil
}

func (r *memCategoryRepo) ListAllChildren() ([]*entity.Category, error) {
	return r.list(func(c *entity.Category) bool { return c.DeletedAt == nil && c.ParentID != "" }), nil
}

func (r *memCategoryRepo) ListTrashed() ([]*entity.Category, error) {
	return r.list(func(c *entity.Category) bool { return c.DeletedAt != nil }), nil
}

func (r *memCategoryRepo) ReparentChildren(fromParentID, toParentID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var moved int64
	for _, c := range r.rows {
		if c.DeletedAt == nil && c.ParentID == fromParentID {
			c.ParentID = toParentID
			moved++
		}
	}
	return moved, nil
}

func (r *memCategoryRepo) SoftDelete(id string) error {
	if r.softDeleteErr != nil {
		return r.softDeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[id]
	if !ok || c.DeletedAt != nil {
		return nil
	}
	now := nowStamp()
	c.DeletedAt = &now
	return nil
}

type memProductRepo struct {
	mu   sync.Mutex
	rows map[string]*entity.Product

	reassignErr error // fuerza un fallo en ReassignCategory
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{rows: make(map[string]*entity.Product)}
}

func copyProduct(p *entity.Product) *entity.Product {
	cp := *p
	if p.DeletedAt != nil {
		t := *p.DeletedAt
		cp.DeletedAt = &t
	}
	return &cp
}

func (r *memProductRepo) snapshot() map[string]*entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := make(map[string]*entity.Product, len(r.rows))
	for id, p := range r.rows {
		snap[id] = copyProduct(p)
	}
	return snap
}

func (r *memProductRepo) restore(snap map[string]*entity.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = snap
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return copyProduct(p), nil
}

func (r *memProductRepo) ListActiveByCategory(categoryID string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.rows {
		if p.DeletedAt == nil && p.IsActive && p.CategoryID == categoryID {
			out = append(out, copyProduct(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memProductRepo) ReassignCategory(fromCategoryID, toCategoryID string) (int64, error) {
	if r.reassignErr != nil {
		return 0, r.reassignErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var moved int64
	for _, p := range r.rows {
		if p.CategoryID == fromCategoryID {
			p.CategoryID = toCategoryID
			moved++
		}
	}
	return moved, nil
}

// memTxRunner simula la transacción tomando un snapshot de ambos repos y
// restaurándolo si el callback falla: la atomicidad observable es la misma.
type memTxRunner struct {
	cats  *memCategoryRepo
	prods *memProductRepo
}

func (tx *memTxRunner) Run(_ context.Context, fn func(
	catRepo repository.CategoryRepository,
	prodRepo repository.ProductRepository,
) error) error {
	catSnap := tx.cats.snapshot()
	prodSnap := tx.prods.snapshot()
	if err := fn(tx.cats, tx.prods); err != nil {
		tx.cats.restore(catSnap)
		tx.prods.restore(prodSnap)
		return err
	}
	return nil
}

// fakeBlobs registra cada Save/Delete.
type fakeBlobs struct {
	mu      sync.Mutex
	n       int
	saved   []string
	deleted []string

	deleteErr error
}

func (b *fakeBlobs) Save(filename string, _ []byte) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.n++
	uri := fmt.Sprintf("/storage/categories/%d_%s", b.n, filename)
	b.saved = append(b.saved, uri)
	return uri, nil
}

func (b *fakeBlobs) Delete(uri string) error {
	if b.deleteErr != nil {
		return b.deleteErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deleted = append(b.deleted, uri)
	return nil
}
