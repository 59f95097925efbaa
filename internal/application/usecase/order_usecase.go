package usecase

import (
	"context"
	"time"

	"github.com/tuo-utente/gestione-ordini/internal/application/dto"
	"github.com/tuo-utente/gestione-ordini/internal/domain"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
)

// dateLayout granularità a giorno per data_ordine e lista di prelievo.
const dateLayout = "2006-01-02"

// OrderTxRunner esegue fn dentro una transazione con un OrderRepository
// legato alla tx. Lo implementa postgres.TxRunner; l'interfaccia qui evita
// l'import circolare e permette i fake nei test.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// OrderUseCase ciclo di vita ordine/righe: creazione atomica, riepiloghi,
// lista di prelievo, dettaglio, aggiornamento riga in pesatura.
type OrderUseCase struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	tx        OrderTxRunner
}

// NewOrderUseCase costruisce il caso d'uso.
func NewOrderUseCase(orders repository.OrderRepository, customers repository.CustomerRepository, tx OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{orders: orders, customers: customers, tx: tx}
}

// Create valida il cliente e persiste testata + righe in un'unica
// transazione: se una riga fallisce non resta nessuna testata orfana.
// Un ordine senza righe è valido. La data è quella odierna, solo giorno.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	found, err := uc.customers.Exists(ctx, in.IDCliente)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrCustomerNotFound
	}

	today, err := time.Parse(dateLayout, time.Now().Format(dateLayout))
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerID: in.IDCliente,
		DataOrdine: today,
		Operatore:  in.Operatore,
		Stato:      entity.StatoAperto,
	}
	lines := make([]entity.OrderLine, 0, len(in.Righe))
	for _, r := range in.Righe {
		if r.Quantita <= 0 {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.OrderLine{
			ProductID:     r.IDProdotto,
			Quantita:      r.Quantita,
			PesoEffettivo: r.PesoEffettivo,
			Preparato:     false,
		})
	}

	var orderID int64
	err = uc.tx.RunOrder(ctx, func(orders repository.OrderRepository) error {
		id, err := orders.InsertOrder(ctx, order)
		if err != nil {
			return err
		}
		orderID = id
		return orders.InsertLines(ctx, id, lines)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateOrderResponse{Success: true, IDOrdine: orderID}, nil
}

// List restituisce il riepilogo di tutti gli ordini (conteggio righe incluso,
// 0 per gli ordini vuoti).
func (uc *OrderUseCase) List(ctx context.Context) ([]dto.OrderSummaryResponse, error) {
	summaries, err := uc.orders.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.OrderSummaryResponse{
			ID:          s.ID,
			DataOrdine:  s.DataOrdine.Format(dateLayout),
			Stato:       s.Stato,
			Operatore:   s.Operatore,
			Cliente:     s.Cliente,
			NumProdotti: s.NumProdotti,
		})
	}
	return out, nil
}

// ListForDate restituisce la lista di prelievo del giorno richiesto
// (YYYY-MM-DD), ordinata per cliente e prodotto.
func (uc *OrderUseCase) ListForDate(ctx context.Context, data string) ([]dto.PickListRowResponse, error) {
	date, err := time.Parse(dateLayout, data)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.orders.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PickListRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PickListRowResponse{
			IDRiga:        r.IDRiga,
			IDOrdine:      r.IDOrdine,
			DataOrdine:    r.DataOrdine.Format(dateLayout),
			Operatore:     r.Operatore,
			Cliente:       r.Cliente,
			ClienteZona:   r.ClienteZona,
			Prodotto:      r.Prodotto,
			Quantita:      r.Quantita,
			PesoEffettivo: r.PesoEffettivo,
			Preparato:     r.Preparato,
		})
	}
	return out, nil
}

// Get restituisce testata e righe risolte di un ordine.
func (uc *OrderUseCase) Get(ctx context.Context, id int64) (*dto.OrderDetailResponse, error) {
	header, err := uc.orders.GetHeader(ctx, id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orders.GetLines(ctx, id)
	if err != nil {
		return nil, err
	}
	prodotti := make([]dto.OrderLineDetailResponse, 0, len(lines))
	for _, l := range lines {
		prodotti = append(prodotti, dto.OrderLineDetailResponse{
			Nome:          l.Nome,
			Quantita:      l.Quantita,
			PesoEffettivo: l.PesoEffettivo,
			Preparato:     l.Preparato,
		})
	}
	return &dto.OrderDetailResponse{
		ID:         header.ID,
		DataOrdine: header.DataOrdine.Format(dateLayout),
		Stato:      header.Stato,
		Operatore:  header.Operatore,
		Cliente:    header.Cliente,
		Prodotti:   prodotti,
	}, nil
}

// UpdateLine sovrascrive peso effettivo e flag preparato di una riga.
// Una riga può risultare preparata solo con un peso effettivo registrato.
// Zero righe aggiornate è un errore, non un no-op.
func (uc *OrderUseCase) UpdateLine(ctx context.Context, lineID int64, in dto.UpdateLineRequest) error {
	if in.Preparato && !in.PesoEffettivo.Valid {
		return domain.ErrLineNotWeighed
	}
	affected, err := uc.orders.UpdateLine(ctx, lineID, in.PesoEffettivo, in.Preparato)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
