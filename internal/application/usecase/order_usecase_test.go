package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

type memOrderRepo struct {
	rows map[string]*entity.Order

	lastStatusFilter string
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{rows: make(map[string]*entity.Order)}
}

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) ListByUser(userID, status string) ([]*entity.Order, error) {
	r.lastStatusFilter = status
	var out []*entity.Order
	for _, o := range r.rows {
		if o.UserID != userID {
			continue
		}
		if status != "" && status != "all" && o.OrderStatus != status {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(order *entity.Order) error {
	current, ok := r.rows[order.ID]
	if !ok {
		return nil
	}
	current.OrderStatus = order.OrderStatus
	current.Note = order.Note
	current.UpdatedAt = order.UpdatedAt
	return nil
}

func seedOrder(r *memOrderRepo, id, userID, status string, createdAt time.Time) *entity.Order {
	o := &entity.Order{
		ID:          id,
		UserID:      userID,
		OrderStatus: status,
		Total:       decimal.NewFromInt(100),
		CreatedAt:   createdAt,
	}
	r.rows[id] = o
	return o
}

func TestListByUser_FiltroDesconocidoEquivaleATodas(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)
	base := time.Unix(1700000000, 0)
	seedOrder(repo, "o1", "u1", entity.OrderPending, base)
	seedOrder(repo, "o2", "u1", entity.OrderDelivered, base.Add(time.Minute))

	out, err := uc.ListByUser("u1", "cualquier-cosa")
	require.NoError(t, err)
	assert.Equal(t, "all", repo.lastStatusFilter)
	assert.Equal(t, 2, out.Count)
	// Más reciente primero.
	assert.Equal(t, "o2", out.Orders[0].ID)
}

func TestListByUser_FiltroPorEstado(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)
	base := time.Unix(1700000000, 0)
	seedOrder(repo, "o1", "u1", entity.OrderPending, base)
	seedOrder(repo, "o2", "u1", entity.OrderDelivered, base.Add(time.Minute))
	seedOrder(repo, "o3", "u2", entity.OrderPending, base)

	out, err := uc.ListByUser("u1", entity.OrderPending)
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "o1", out.Orders[0].ID)
}

func TestListByUser_MarcaProductosBorrados(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)
	deleted := time.Unix(1700000000, 0)
	o := seedOrder(repo, "o1", "u1", entity.OrderDelivered, deleted)
	o.Items = []*entity.OrderItem{
		{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 1, Price: decimal.NewFromInt(50),
			Product: &entity.Product{ID: "p1", Name: "Tenis Runner", ImgThumbnail: "/storage/p1.png"}},
		{ID: "i2", OrderID: "o1", ProductID: "p2", Quantity: 2, Price: decimal.NewFromInt(25),
			Product: &entity.Product{ID: "p2", Name: "Calcetines", DeletedAt: &deleted}},
	}

	out, err := uc.ListByUser("u1", "all")
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	order := out.Orders[0]
	require.Len(t, order.Items, 2)
	assert.Equal(t, 0, order.Items[0].StatusDeleted)
	assert.Equal(t, 1, order.Items[1].StatusDeleted)
	assert.Equal(t, "/storage/p1.png", order.ImageURL)
}

func TestDetail_ConItemsYProductoBorrado(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)
	deleted := time.Unix(1700000000, 0)
	o := seedOrder(repo, "o1", "u1", entity.OrderDelivered, deleted)
	o.Items = []*entity.OrderItem{
		{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 1, Price: decimal.NewFromInt(50),
			Product: &entity.Product{ID: "p1", Name: "Tenis Runner", DeletedAt: &deleted}},
	}

	out, err := uc.Detail("u1", "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", out.ID)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Tenis Runner", out.Items[0].ProductName)
	assert.Equal(t, 1, out.Items[0].StatusDeleted)
}

func TestDetail_SoloElDueno(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)
	seedOrder(repo, "o1", "u1", entity.OrderPending, time.Unix(1700000000, 0))

	_, err := uc.Detail("u2", "o1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDetail_NoExiste(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	_, err := uc.Detail("u1", "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_SoloElDueno(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)
	seedOrder(repo, "o1", "u1", entity.OrderPending, time.Unix(1700000000, 0))

	_, err := uc.Cancel("u2", "o1", "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCancel_NoExiste(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)

	_, err := uc.Cancel("u1", "fantasma", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_EstadosNoCancelables(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)
	base := time.Unix(1700000000, 0)
	for i, status := range []string{entity.OrderShipping, entity.OrderDelivered, entity.OrderCancelled, entity.OrderReturnedRefunded} {
		id := string(rune('a' + i))
		seedOrder(repo, id, "u1", status, base)
		_, err := uc.Cancel("u1", id, "")
		assert.ErrorIs(t, err, domain.ErrOrderNotCancellable, "estado %s", status)
	}
}

func TestCancel_PendienteYEnProceso(t *testing.T) {
	repo := newMemOrderRepo()
	uc := usecase.NewOrderUseCase(repo)
	base := time.Unix(1700000000, 0)
	seedOrder(repo, "o1", "u1", entity.OrderPending, base)
	seedOrder(repo, "o2", "u1", entity.OrderProcessing, base)

	out, err := uc.Cancel("u1", "o1", "me equivoqué de talla")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, out.OrderStatus)
	assert.Equal(t, "me equivoqué de talla", out.Note)

	_, err = uc.Cancel("u1", "o2", "")
	require.NoError(t, err)
	stored, _ := repo.GetByID("o2")
	assert.Equal(t, entity.OrderCancelled, stored.OrderStatus)
}
