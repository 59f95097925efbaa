package postgres

import (
	"context"
	"fmt"

	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementazione della porta ProductRepository su PostgreSQL (pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository costruisce l'adapter di persistenza per i prodotti.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// List restituisce l'intero listino ordinato per id.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	query := `
		SELECT id, codice, nome, categoria, prezzo, peso_variabile
		FROM prodotti ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list prodotti: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Codice, &p.Nome, &p.Categoria, &p.Prezzo, &p.PesoVariabile); err != nil {
			return nil, fmt.Errorf("scan prodotto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// BulkInsert inserisce il lotto di prodotti importati. Nessuna deduplica:
// un import ripetuto produce righe duplicate (limite documentato).
func (r *ProductRepo) BulkInsert(ctx context.Context, products []entity.Product) error {
	query := `
		INSERT INTO prodotti (codice, nome, categoria, prezzo, peso_variabile)
		VALUES ($1, $2, $3, $4, $5)`
	for _, p := range products {
		if _, err := r.q.Exec(ctx, query, p.Codice, p.Nome, p.Categoria, p.Prezzo, p.PesoVariabile); err != nil {
			return fmt.Errorf("insert prodotto %q: %w", p.Codice, err)
		}
	}
	return nil
}
