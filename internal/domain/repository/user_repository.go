package repository

import (
	"context"

	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
)

// UserRepository definisce la porta di persistenza per User (DIP).
// Le lookup restituiscono (nil, nil) quando l'utente non esiste.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	// UpdateRole riporta il numero di righe aggiornate: 0 = utente inesistente.
	UpdateRole(ctx context.Context, id int64, ruolo string) (int64, error)
}
