package usecase

import (
	"context"

	"github.com/tuo-utente/gestione-ordini/internal/application/dto"
	"github.com/tuo-utente/gestione-ordini/internal/domain"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
)

// UserUseCase gestione utenti: elenco e cambio ruolo.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase costruisce il caso d'uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List restituisce gli utenti senza hash.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{ID: u.ID, Username: u.Username, Ruolo: u.Ruolo})
	}
	return out, nil
}

// ChangeRole aggiorna il ruolo dell'utente indicato. I ruoli fuori enum
// vengono rifiutati in scrittura; l'autorizzazione (solo admin) è applicata
// a livello di rotta con RequireRole.
func (uc *UserUseCase) ChangeRole(ctx context.Context, targetID int64, ruolo string) error {
	if !entity.ValidRole(ruolo) {
		return domain.ErrInvalidRole
	}
	affected, err := uc.repo.UpdateRole(ctx, targetID, ruolo)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
