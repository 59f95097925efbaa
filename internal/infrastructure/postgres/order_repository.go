package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tuo-utente/gestione-ordini/internal/domain"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementazione della porta OrderRepository su PostgreSQL (pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository costruisce l'adapter di persistenza per gli ordini.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// InsertOrder persiste la testata e restituisce l'id generato.
func (r *OrderRepo) InsertOrder(ctx context.Context, order *entity.Order) (int64, error) {
	query := `
		INSERT INTO ordini (id_cliente, data_ordine, operatore, stato)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		order.CustomerID, order.DataOrdine, order.Operatore, order.Stato,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrCustomerNotFound
		}
		return 0, fmt.Errorf("insert ordine: %w", err)
	}
	return id, nil
}

// InsertLines persiste le righe dell'ordine. Va chiamato nella stessa
// transazione di InsertOrder.
func (r *OrderRepo) InsertLines(ctx context.Context, orderID int64, lines []entity.OrderLine) error {
	query := `
		INSERT INTO dettagli_ordini (id_ordine, id_prodotto, quantita, peso_effettivo, preparato)
		VALUES ($1, $2, $3, $4, $5)`
	for _, l := range lines {
		_, err := r.q.Exec(ctx, query, orderID, l.ProductID, l.Quantita, l.PesoEffettivo, l.Preparato)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound // prodotto inesistente
			}
			return fmt.Errorf("insert dettaglio ordine: %w", err)
		}
	}
	return nil
}

// ListSummaries restituisce tutte le testate con nome cliente e conteggio
// righe. LEFT JOIN sui dettagli: un ordine senza righe conta 0.
func (r *OrderRepo) ListSummaries(ctx context.Context) ([]entity.OrderSummary, error) {
	query := `
		SELECT o.id, o.data_ordine, o.stato, o.operatore, c.nome AS cliente, COUNT(d.id) AS num_prodotti
		FROM ordini o
		JOIN clienti c ON o.id_cliente = c.id
		LEFT JOIN dettagli_ordini d ON d.id_ordine = o.id
		GROUP BY o.id, o.data_ordine, o.stato, o.operatore, c.nome
		ORDER BY o.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ordini: %w", err)
	}
	defer rows.Close()
	var list []entity.OrderSummary
	for rows.Next() {
		var s entity.OrderSummary
		if err := rows.Scan(&s.ID, &s.DataOrdine, &s.Stato, &s.Operatore, &s.Cliente, &s.NumProdotti); err != nil {
			return nil, fmt.Errorf("scan riepilogo ordine: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListForDate restituisce la lista di prelievo del giorno: una riga per
// dettaglio, ordinata per cliente e poi prodotto come la lavora il magazzino.
func (r *OrderRepo) ListForDate(ctx context.Context, date time.Time) ([]entity.PickListRow, error) {
	query := `
		SELECT
			d.id AS id_riga,
			o.id AS id_ordine,
			o.data_ordine,
			o.operatore,
			c.nome AS cliente,
			c.zona AS cliente_zona,
			p.nome AS prodotto,
			d.quantita,
			d.peso_effettivo,
			d.preparato
		FROM ordini o
		JOIN clienti c ON o.id_cliente = c.id
		JOIN dettagli_ordini d ON d.id_ordine = o.id
		JOIN prodotti p ON d.id_prodotto = p.id
		WHERE o.data_ordine = $1
		ORDER BY c.nome ASC, p.nome ASC`
	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list ordini per giorno: %w", err)
	}
	defer rows.Close()
	var list []entity.PickListRow
	for rows.Next() {
		var pr entity.PickListRow
		if err := rows.Scan(
			&pr.IDRiga, &pr.IDOrdine, &pr.DataOrdine, &pr.Operatore,
			&pr.Cliente, &pr.ClienteZona, &pr.Prodotto,
			&pr.Quantita, &pr.PesoEffettivo, &pr.Preparato,
		); err != nil {
			return nil, fmt.Errorf("scan riga prelievo: %w", err)
		}
		list = append(list, pr)
	}
	return list, rows.Err()
}

// GetHeader restituisce la testata risolta con il nome cliente. (nil, nil) se assente.
func (r *OrderRepo) GetHeader(ctx context.Context, id int64) (*entity.OrderHeader, error) {
	query := `
		SELECT o.id, o.data_ordine, o.stato, o.operatore, c.nome AS cliente
		FROM ordini o
		JOIN clienti c ON o.id_cliente = c.id
		WHERE o.id = $1`
	var h entity.OrderHeader
	err := r.q.QueryRow(ctx, query, id).Scan(&h.ID, &h.DataOrdine, &h.Stato, &h.Operatore, &h.Cliente)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get testata ordine: %w", err)
	}
	return &h, nil
}

// GetLines restituisce le righe risolte con il nome prodotto.
func (r *OrderRepo) GetLines(ctx context.Context, orderID int64) ([]entity.OrderLineDetail, error) {
	query := `
		SELECT p.nome, d.quantita, d.peso_effettivo, d.preparato
		FROM dettagli_ordini d
		JOIN prodotti p ON d.id_prodotto = p.id
		WHERE d.id_ordine = $1
		ORDER BY d.id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get dettagli ordine: %w", err)
	}
	defer rows.Close()
	var list []entity.OrderLineDetail
	for rows.Next() {
		var d entity.OrderLineDetail
		if err := rows.Scan(&d.Nome, &d.Quantita, &d.PesoEffettivo, &d.Preparato); err != nil {
			return nil, fmt.Errorf("scan dettaglio ordine: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// UpdateLine sovrascrive peso effettivo e flag preparato. Riporta le righe
// toccate: 0 significa riga inesistente, mai un no-op silenzioso.
func (r *OrderRepo) UpdateLine(ctx context.Context, lineID int64, peso decimal.NullDecimal, preparato bool) (int64, error) {
	query := `
		UPDATE dettagli_ordini
		SET peso_effettivo = $2, preparato = $3
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, lineID, peso, preparato)
	if err != nil {
		return 0, fmt.Errorf("update dettaglio ordine: %w", err)
	}
	return tag.RowsAffected(), nil
}
