package repository

import (
	"context"

	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
)

// ProductRepository definisce la porta di persistenza per Product.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	// BulkInsert inserisce l'intero lotto; nessuna deduplica né upsert
	// (codici ripetuti producono righe duplicate, limite documentato).
	BulkInsert(ctx context.Context, products []entity.Product) error
}
