package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/application/ledger"
	"github.com/ecopack/ecopack-api/internal/domain"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore simula la base de datos: bags por ID y órdenes insertadas.
type memStore struct {
	bags    map[string]*entity.Bag
	clients map[string]*entity.Client
	orders  []*entity.Order
}

func newMemStore() *memStore {
	return &memStore{
		bags:    make(map[string]*entity.Bag),
		clients: make(map[string]*entity.Client),
	}
}

// snapshot copia el estado para poder restaurarlo en rollback.
func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, b := range s.bags {
		bb := *b
		cp.bags[id] = &bb
	}
	for id, c := range s.clients {
		cc := *c
		cp.clients[id] = &cc
	}
	cp.orders = append(cp.orders, s.orders...)
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.bags = from.bags
	s.clients = from.clients
	s.orders = from.orders
}

type fakeBagRepo struct{ store *memStore }

func (r *fakeBagRepo) Create(bag *entity.Bag) error { r.store.bags[bag.ID] = bag; return nil }
func (r *fakeBagRepo) GetByID(id string) (*entity.Bag, error) {
	b, ok := r.store.bags[id]
	if !ok {
		return nil, nil
	}
	bb := *b
	return &bb, nil
}
func (r *fakeBagRepo) GetForUpdate(id string) (*entity.Bag, error) { return r.GetByID(id) }
func (r *fakeBagRepo) List(limit, offset int) ([]*entity.Bag, error) {
	out := make([]*entity.Bag, 0, len(r.store.bags))
	for _, b := range r.store.bags {
		bb := *b
		out = append(out, &bb)
	}
	return out, nil
}
func (r *fakeBagRepo) Update(bag *entity.Bag) error { r.store.bags[bag.ID] = bag; return nil }
func (r *fakeBagRepo) UpdateQuantity(id string, quantityBales int) error {
	b, ok := r.store.bags[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.QuantityBales = quantityBales
	return nil
}
func (r *fakeBagRepo) Delete(id string) error { delete(r.store.bags, id); return nil }

type fakeClientRepo struct{ store *memStore }

func (r *fakeClientRepo) Create(c *entity.Client) error { r.store.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.store.clients[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}
func (r *fakeClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(c *entity.Client) error                    { return nil }
func (r *fakeClientRepo) Delete(id string) error                           { return nil }

type fakeOrderRepo struct{ store *memStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.store.orders = append(r.store.orders, o)
	return nil
}
func (r *fakeOrderRepo) GetByID(id string) (*repository.OrderWithRefs, error) { return nil, nil }
func (r *fakeOrderRepo) List(limit, offset int) ([]*repository.OrderWithRefs, error) {
	return nil, nil
}

// fakeTxRunner emula la semántica transaccional: si fn falla, restaura el
// snapshot y no queda ningún efecto parcial.
type fakeTxRunner struct{ store *memStore }

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	bagRepo repository.BagRepository,
	orderRepo repository.OrderRepository,
) error) error {
	snap := tr.store.snapshot()
	if err := fn(&fakeBagRepo{store: tr.store}, &fakeOrderRepo{store: tr.store}); err != nil {
		tr.store.restore(snap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	testClientID = "00000000-0000-0000-0000-0000000000c1"
	testBagID    = "00000000-0000-0000-0000-0000000000b1"
)

// newFixture arma el caso de uso con un cliente y un bag con qty fardos.
func newFixture(qty int) (*ledger.PlaceOrderUseCase, *memStore) {
	store := newMemStore()
	store.clients[testClientID] = &entity.Client{ID: testClientID, Name: "Naivas Supermarket", Phone: "0712345678"}
	store.bags[testBagID] = &entity.Bag{
		ID:            testBagID,
		Variety:       entity.VarietyMedium,
		Color:         entity.ColorWhite,
		GSM:           80,
		QuantityBales: qty,
		Location:      entity.DefaultLocation,
	}
	uc := ledger.NewPlaceOrderUseCase(
		&fakeTxRunner{store: store},
		&fakeClientRepo{store: store},
		&fakeBagRepo{store: store},
	)
	return uc, store
}

func placeReq(qty int) dto.PlaceOrderRequest {
	return dto.PlaceOrderRequest{ClientID: testClientID, BagID: testBagID, QuantityOrdered: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Con stock suficiente la orden se registra y el bag queda con Q−R fardos.
func TestPlaceOrder_DescuentaStock(t *testing.T) {
	uc, store := newFixture(10)

	resp, err := uc.PlaceOrder(context.Background(), placeReq(4))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 6, store.bags[testBagID].QuantityBales, "el stock debe quedar en 10-4=6")
	require.Len(t, store.orders, 1, "debe registrarse exactamente una orden")
	assert.Equal(t, 4, store.orders[0].QuantityOrdered)
	assert.Equal(t, "Naivas Supermarket", resp.ClientName)
	assert.Equal(t, "#22 - White (80 GSM)", resp.BagLabel)
}

// Pedir más de lo disponible falla con InsufficientStockError y no cambia nada.
func TestPlaceOrder_StockInsuficiente_SinEfectos(t *testing.T) {
	uc, store := newFixture(6)

	resp, err := uc.PlaceOrder(context.Background(), placeReq(10))
	require.Error(t, err)
	assert.Nil(t, resp)

	ise, ok := domain.IsInsufficientStock(err)
	require.True(t, ok, "el error debe ser InsufficientStockError")
	assert.Equal(t, 6, ise.Available, "el error debe reportar los fardos disponibles")
	assert.Equal(t, 10, ise.Requested)
	assert.Contains(t, ise.Error(), "6", "el mensaje debe incluir la cantidad disponible")

	assert.Equal(t, 6, store.bags[testBagID].QuantityBales, "el stock no debe cambiar")
	assert.Empty(t, store.orders, "no debe registrarse ninguna orden")
}

// Repetir una colocación fallida no acumula descuentos ni órdenes parciales.
func TestPlaceOrder_FalloRepetido_Idempotente(t *testing.T) {
	uc, store := newFixture(6)

	for i := 0; i < 3; i++ {
		_, err := uc.PlaceOrder(context.Background(), placeReq(10))
		require.Error(t, err)
	}

	assert.Equal(t, 6, store.bags[testBagID].QuantityBales)
	assert.Empty(t, store.orders)
}

// Escenario completo: 10 fardos, sale una orden de 4, la siguiente de 10 falla
// reportando que solo quedan 6.
func TestPlaceOrder_EscenarioConsecutivo(t *testing.T) {
	uc, store := newFixture(10)

	_, err := uc.PlaceOrder(context.Background(), placeReq(4))
	require.NoError(t, err)
	assert.Equal(t, 6, store.bags[testBagID].QuantityBales)

	_, err = uc.PlaceOrder(context.Background(), placeReq(10))
	require.Error(t, err)

	ise, ok := domain.IsInsufficientStock(err)
	require.True(t, ok)
	assert.Equal(t, 6, ise.Available)

	require.Len(t, store.orders, 1, "solo la primera orden debe existir")
}

// Cantidad cero o negativa se rechaza antes de tocar la BD.
func TestPlaceOrder_CantidadInvalida(t *testing.T) {
	uc, store := newFixture(10)

	for _, qty := range []int{0, -1, -100} {
		_, err := uc.PlaceOrder(context.Background(), placeReq(qty))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	assert.Equal(t, 10, store.bags[testBagID].QuantityBales)
	assert.Empty(t, store.orders)
}

// Cliente o bag inexistente → ErrNotFound.
func TestPlaceOrder_ReferenciasInexistentes(t *testing.T) {
	uc, _ := newFixture(10)

	_, err := uc.PlaceOrder(context.Background(), dto.PlaceOrderRequest{
		ClientID: "no-existe", BagID: testBagID, QuantityOrdered: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.PlaceOrder(context.Background(), dto.PlaceOrderRequest{
		ClientID: testClientID, BagID: "no-existe", QuantityOrdered: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Agotar el stock exacto es válido: el bag queda en 0 y sigue existiendo.
func TestPlaceOrder_AgotaStockExacto(t *testing.T) {
	uc, store := newFixture(5)

	_, err := uc.PlaceOrder(context.Background(), placeReq(5))
	require.NoError(t, err)
	assert.Equal(t, 0, store.bags[testBagID].QuantityBales)

	// Con 0 fardos, cualquier pedido adicional falla.
	_, err = uc.PlaceOrder(context.Background(), placeReq(1))
	ise, ok := domain.IsInsufficientStock(err)
	require.True(t, ok)
	assert.Equal(t, 0, ise.Available)
}
