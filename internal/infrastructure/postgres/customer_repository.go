package postgres

import (
	"context"
	"fmt"

	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementazione della porta CustomerRepository su PostgreSQL (pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository costruisce l'adapter di persistenza per i clienti.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List restituisce tutti i clienti ordinati per id.
func (r *CustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome, zona FROM clienti ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clienti: %w", err)
	}
	defer rows.Close()
	var list []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Nome, &c.Zona); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Exists verifica che il cliente esista (per la validazione in creazione ordine).
func (r *CustomerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var found bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clienti WHERE id = $1)`, id).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("exists cliente: %w", err)
	}
	return found, nil
}

// BulkInsert inserisce il lotto di clienti importati. Nessuna deduplica.
func (r *CustomerRepo) BulkInsert(ctx context.Context, customers []entity.Customer) error {
	for _, c := range customers {
		if _, err := r.q.Exec(ctx, `INSERT INTO clienti (nome, zona) VALUES ($1, $2)`, c.Nome, c.Zona); err != nil {
			return fmt.Errorf("insert cliente %q: %w", c.Nome, err)
		}
	}
	return nil
}
