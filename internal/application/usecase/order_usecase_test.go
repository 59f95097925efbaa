package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuo-utente/gestione-ordini/internal/application/dto"
	"github.com/tuo-utente/gestione-ordini/internal/application/usecase"
	"github.com/tuo-utente/gestione-ordini/internal/domain"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store in memoria: stessa semantica degli adapter PostgreSQL, incluso il
// rollback della transazione (snapshot + ripristino in caso di errore).
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	customers map[int64]entity.Customer
	products  map[int64]entity.Product
	orders    map[int64]entity.Order
	lines     map[int64]entity.OrderLine
	nextOrder int64
	nextLine  int64
}

func newMemStore() *memStore {
	return &memStore{
		customers: map[int64]entity.Customer{},
		products:  map[int64]entity.Product{},
		orders:    map[int64]entity.Order{},
		lines:     map[int64]entity.OrderLine{},
		nextOrder: 1,
		nextLine:  1,
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.nextOrder, c.nextLine = s.nextOrder, s.nextLine
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.lines {
		c.lines[k] = v
	}
	return c
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) InsertOrder(_ context.Context, order *entity.Order) (int64, error) {
	if _, ok := r.s.customers[order.CustomerID]; !ok {
		return 0, domain.ErrCustomerNotFound
	}
	id := r.s.nextOrder
	r.s.nextOrder++
	o := *order
	o.ID = id
	r.s.orders[id] = o
	return id, nil
}

func (r *memOrderRepo) InsertLines(_ context.Context, orderID int64, lines []entity.OrderLine) error {
	for _, l := range lines {
		if _, ok := r.s.products[l.ProductID]; !ok {
			return domain.ErrNotFound
		}
		id := r.s.nextLine
		r.s.nextLine++
		l.ID = id
		l.OrderID = orderID
		r.s.lines[id] = l
	}
	return nil
}

func (r *memOrderRepo) ListSummaries(_ context.Context) ([]entity.OrderSummary, error) {
	ids := make([]int64, 0, len(r.s.orders))
	for id := range r.s.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []entity.OrderSummary
	for _, id := range ids {
		o := r.s.orders[id]
		count := 0
		for _, l := range r.s.lines {
			if l.OrderID == id {
				count++
			}
		}
		out = append(out, entity.OrderSummary{
			ID:          o.ID,
			DataOrdine:  o.DataOrdine,
			Stato:       o.Stato,
			Operatore:   o.Operatore,
			Cliente:     r.s.customers[o.CustomerID].Nome,
			NumProdotti: count,
		})
	}
	return out, nil
}

func (r *memOrderRepo) ListForDate(_ context.Context, date time.Time) ([]entity.PickListRow, error) {
	var out []entity.PickListRow
	for _, l := range r.s.lines {
		o := r.s.orders[l.OrderID]
		if !o.DataOrdine.Equal(date) {
			continue
		}
		c := r.s.customers[o.CustomerID]
		p := r.s.products[l.ProductID]
		out = append(out, entity.PickListRow{
			IDRiga:        l.ID,
			IDOrdine:      o.ID,
			DataOrdine:    o.DataOrdine,
			Operatore:     o.Operatore,
			Cliente:       c.Nome,
			ClienteZona:   c.Zona,
			Prodotto:      p.Nome,
			Quantita:      l.Quantita,
			PesoEffettivo: l.PesoEffettivo,
			Preparato:     l.Preparato,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cliente != out[j].Cliente {
			return out[i].Cliente < out[j].Cliente
		}
		return out[i].Prodotto < out[j].Prodotto
	})
	return out, nil
}

func (r *memOrderRepo) GetHeader(_ context.Context, id int64) (*entity.OrderHeader, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &entity.OrderHeader{
		ID:         o.ID,
		DataOrdine: o.DataOrdine,
		Stato:      o.Stato,
		Operatore:  o.Operatore,
		Cliente:    r.s.customers[o.CustomerID].Nome,
	}, nil
}

func (r *memOrderRepo) GetLines(_ context.Context, orderID int64) ([]entity.OrderLineDetail, error) {
	ids := make([]int64, 0)
	for id, l := range r.s.lines {
		if l.OrderID == orderID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []entity.OrderLineDetail
	for _, id := range ids {
		l := r.s.lines[id]
		out = append(out, entity.OrderLineDetail{
			Nome:          r.s.products[l.ProductID].Nome,
			Quantita:      l.Quantita,
			PesoEffettivo: l.PesoEffettivo,
			Preparato:     l.Preparato,
		})
	}
	return out, nil
}

func (r *memOrderRepo) UpdateLine(_ context.Context, lineID int64, peso decimal.NullDecimal, preparato bool) (int64, error) {
	l, ok := r.s.lines[lineID]
	if !ok {
		return 0, nil
	}
	l.PesoEffettivo = peso
	l.Preparato = preparato
	r.s.lines[lineID] = l
	return 1, nil
}

type memCustomerRepo struct{ s *memStore }

func (r *memCustomerRepo) List(_ context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range r.s.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCustomerRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.customers[id]
	return ok, nil
}

func (r *memCustomerRepo) BulkInsert(_ context.Context, customers []entity.Customer) error {
	for i, c := range customers {
		c.ID = int64(len(r.s.customers) + i + 1)
		r.s.customers[c.ID] = c
	}
	return nil
}

// memTxRunner simula la transazione: snapshot dello store, fn sullo store
// vivo, ripristino integrale se fn fallisce.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) RunOrder(_ context.Context, fn func(orders repository.OrderRepository) error) error {
	snapshot := r.s.clone()
	if err := fn(&memOrderRepo{s: r.s}); err != nil {
		*r.s = *snapshot
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newOrderFixture() (*usecase.OrderUseCase, *memStore) {
	s := newMemStore()
	s.customers[7] = entity.Customer{ID: 7, Nome: "Bob", Zona: "Nord"}
	s.customers[8] = entity.Customer{ID: 8, Nome: "Anna", Zona: "Sud"}
	s.products[3] = entity.Product{ID: 3, Nome: "Widget", Codice: "W01", Prezzo: decimal.NewFromInt(4)}
	s.products[4] = entity.Product{ID: 4, Nome: "Burro", Codice: "B01", Prezzo: decimal.NewFromInt(2), PesoVariabile: true}
	uc := usecase.NewOrderUseCase(&memOrderRepo{s: s}, &memCustomerRepo{s: s}, &memTxRunner{s: s})
	return uc, s
}

func peso(v string) decimal.NullDecimal {
	d, _ := decimal.NewFromString(v)
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Creazione seguita da lettura: il dettaglio restituisce esattamente le
// righe inviate, con prodotto risolto, peso nullo e preparato false.
func TestCreate_PoiGet_RestituisceLeRigheInviate(t *testing.T) {
	uc, _ := newOrderFixture()

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 7,
		Operatore: "alice",
		Righe: []dto.OrderLineRequest{
			{IDProdotto: 3, Quantita: 10},
		},
	})
	require.NoError(t, err)
	require.True(t, out.Success)
	require.NotZero(t, out.IDOrdine)

	detail, err := uc.Get(context.Background(), out.IDOrdine)
	require.NoError(t, err)

	assert.Equal(t, "Bob", detail.Cliente)
	assert.Equal(t, "aperto", detail.Stato)
	assert.Equal(t, "alice", detail.Operatore)
	assert.Equal(t, time.Now().Format("2006-01-02"), detail.DataOrdine)
	require.Len(t, detail.Prodotti, 1)
	assert.Equal(t, "Widget", detail.Prodotti[0].Nome)
	assert.Equal(t, 10, detail.Prodotti[0].Quantita)
	assert.False(t, detail.Prodotti[0].PesoEffettivo.Valid, "il peso nasce nullo")
	assert.False(t, detail.Prodotti[0].Preparato)
}

func TestCreate_ClienteSconosciuto_NessunOrdineCreato(t *testing.T) {
	uc, s := newOrderFixture()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 99,
		Operatore: "alice",
		Righe:     []dto.OrderLineRequest{{IDProdotto: 3, Quantita: 1}},
	})

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Empty(t, s.orders, "nessuna testata deve sopravvivere al fallimento")
	assert.Empty(t, s.lines)
}

// Se una riga fallisce dopo l'inserimento della testata, la transazione
// annulla tutto: niente testate orfane.
func TestCreate_RigaConProdottoInesistente_RollbackCompleto(t *testing.T) {
	uc, s := newOrderFixture()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 7,
		Operatore: "alice",
		Righe: []dto.OrderLineRequest{
			{IDProdotto: 3, Quantita: 2},
			{IDProdotto: 999, Quantita: 1}, // inesistente
		},
	})

	require.Error(t, err)
	assert.Empty(t, s.orders, "la testata inserita prima della riga fallita va annullata")
	assert.Empty(t, s.lines)
}

// Un ordine senza righe è valido e compare nel riepilogo con conteggio 0.
func TestCreate_OrdineVuotoValido_ConteggioZero(t *testing.T) {
	uc, _ := newOrderFixture()

	vuoto, err := uc.Create(context.Background(), dto.CreateOrderRequest{IDCliente: 7, Operatore: "alice"})
	require.NoError(t, err)

	pieno, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 8,
		Operatore: "marco",
		Righe: []dto.OrderLineRequest{
			{IDProdotto: 3, Quantita: 5},
			{IDProdotto: 4, Quantita: 2, PesoEffettivo: peso("1.350")},
		},
	})
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, vuoto.IDOrdine, list[0].ID, "riepilogo ordinato per id crescente")
	assert.Equal(t, 0, list[0].NumProdotti)
	assert.Equal(t, pieno.IDOrdine, list[1].ID)
	assert.Equal(t, 2, list[1].NumProdotti)
	assert.Equal(t, "Anna", list[1].Cliente)
}

func TestGet_OrdineInesistente(t *testing.T) {
	uc, _ := newOrderFixture()

	_, err := uc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La lista di prelievo è ordinata per cliente e poi prodotto: è l'ordine in
// cui il magazzino la lavora.
func TestListForDate_OrdinataPerClienteEProdotto(t *testing.T) {
	uc, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 7, // Bob
		Operatore: "alice",
		Righe:     []dto.OrderLineRequest{{IDProdotto: 4, Quantita: 1}, {IDProdotto: 3, Quantita: 2}},
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 8, // Anna
		Operatore: "alice",
		Righe:     []dto.OrderLineRequest{{IDProdotto: 3, Quantita: 9}},
	})
	require.NoError(t, err)

	oggi := time.Now().Format("2006-01-02")
	rows, err := uc.ListForDate(context.Background(), oggi)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Anna", "Bob", "Bob"}, []string{rows[0].Cliente, rows[1].Cliente, rows[2].Cliente})
	assert.Equal(t, "Burro", rows[1].Prodotto, "a parità di cliente decide il nome prodotto")
	assert.Equal(t, "Widget", rows[2].Prodotto)
	assert.Equal(t, "Sud", rows[0].ClienteZona)
}

func TestListForDate_DataMalformata(t *testing.T) {
	uc, _ := newOrderFixture()

	_, err := uc.ListForDate(context.Background(), "14/03/2025")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateLine_RigaInesistente_NessunEffetto(t *testing.T) {
	uc, s := newOrderFixture()

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 7,
		Operatore: "alice",
		Righe:     []dto.OrderLineRequest{{IDProdotto: 3, Quantita: 10}},
	})
	require.NoError(t, err)

	err = uc.UpdateLine(context.Background(), 99, dto.UpdateLineRequest{PesoEffettivo: peso("5.2"), Preparato: true})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Le altre righe restano intatte.
	detail, err := uc.Get(context.Background(), out.IDOrdine)
	require.NoError(t, err)
	assert.False(t, detail.Prodotti[0].PesoEffettivo.Valid)
	assert.False(t, detail.Prodotti[0].Preparato)
	assert.Len(t, s.lines, 1)
}

// Una riga non può risultare preparata senza peso registrato.
func TestUpdateLine_PreparatoSenzaPeso_Rifiutato(t *testing.T) {
	uc, _ := newOrderFixture()

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 7,
		Operatore: "alice",
		Righe:     []dto.OrderLineRequest{{IDProdotto: 4, Quantita: 1}},
	})
	require.NoError(t, err)

	detail, err := uc.Get(context.Background(), out.IDOrdine)
	require.NoError(t, err)
	require.Len(t, detail.Prodotti, 1)

	err = uc.UpdateLine(context.Background(), 1, dto.UpdateLineRequest{Preparato: true})
	assert.ErrorIs(t, err, domain.ErrLineNotWeighed)
}

func TestUpdateLine_PesaturaEConferma(t *testing.T) {
	uc, _ := newOrderFixture()

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 7,
		Operatore: "alice",
		Righe:     []dto.OrderLineRequest{{IDProdotto: 4, Quantita: 1}},
	})
	require.NoError(t, err)

	err = uc.UpdateLine(context.Background(), 1, dto.UpdateLineRequest{PesoEffettivo: peso("5.2"), Preparato: true})
	require.NoError(t, err)

	detail, err := uc.Get(context.Background(), out.IDOrdine)
	require.NoError(t, err)
	require.True(t, detail.Prodotti[0].PesoEffettivo.Valid)
	assert.Equal(t, "5.2", detail.Prodotti[0].PesoEffettivo.Decimal.String())
	assert.True(t, detail.Prodotti[0].Preparato)
}

func TestCreate_QuantitaNonPositiva(t *testing.T) {
	uc, s := newOrderFixture()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		IDCliente: 7,
		Operatore: "alice",
		Righe:     []dto.OrderLineRequest{{IDProdotto: 3, Quantita: 0}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.orders)
}
