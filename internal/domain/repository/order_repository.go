package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
)

// OrderRepository definisce la porta di persistenza per Order e righe.
// InsertOrder e InsertLines vanno chiamati dentro la stessa transazione
// (vedi TxRunner): mai una testata senza le sue righe.
type OrderRepository interface {
	// InsertOrder persiste la testata e restituisce l'id generato.
	InsertOrder(ctx context.Context, order *entity.Order) (int64, error)
	// InsertLines persiste le righe per l'ordine indicato. Lotto vuoto = no-op.
	InsertLines(ctx context.Context, orderID int64, lines []entity.OrderLine) error
	// ListSummaries: tutte le testate con nome cliente e conteggio righe
	// (LEFT JOIN: un ordine senza righe conta 0), ordinate per id crescente.
	ListSummaries(ctx context.Context) ([]entity.OrderSummary, error)
	// ListForDate: lista di prelievo del giorno, ordinata per nome cliente
	// e poi nome prodotto.
	ListForDate(ctx context.Context, date time.Time) ([]entity.PickListRow, error)
	// GetHeader restituisce (nil, nil) se l'ordine non esiste.
	GetHeader(ctx context.Context, id int64) (*entity.OrderHeader, error)
	GetLines(ctx context.Context, orderID int64) ([]entity.OrderLineDetail, error)
	// UpdateLine sovrascrive peso e preparato; riporta le righe aggiornate
	// (0 = riga inesistente, mai un no-op silenzioso).
	UpdateLine(ctx context.Context, lineID int64, peso decimal.NullDecimal, preparato bool) (int64, error)
}
