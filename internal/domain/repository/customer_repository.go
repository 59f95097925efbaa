package repository

import (
	"context"

	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
)

// CustomerRepository definisce la porta di persistenza per Customer.
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)
	BulkInsert(ctx context.Context, customers []entity.Customer) error
}
