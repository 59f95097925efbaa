package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementazione della porta UserRepository su PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository costruisce l'adapter di persistenza per gli utenti.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// FindByUsername cerca un utente per username (match esatto). (nil, nil) se assente.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, ruolo
		FROM utenti WHERE username = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Ruolo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get utente by username: %w", err)
	}
	return &u, nil
}

// FindByID cerca un utente per id. (nil, nil) se assente.
func (r *UserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, ruolo
		FROM utenti WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Ruolo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get utente by id: %w", err)
	}
	return &u, nil
}

// List restituisce tutti gli utenti ordinati per id.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT id, username, password_hash, ruolo FROM utenti ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list utenti: %w", err)
	}
	defer rows.Close()
	var list []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Ruolo); err != nil {
			return nil, fmt.Errorf("scan utente: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// UpdateRole aggiorna il ruolo e riporta le righe toccate (0 = utente inesistente).
func (r *UserRepo) UpdateRole(ctx context.Context, id int64, ruolo string) (int64, error) {
	tag, err := r.q.Exec(ctx, `UPDATE utenti SET ruolo = $2 WHERE id = $1`, id, ruolo)
	if err != nil {
		return 0, fmt.Errorf("update ruolo utente: %w", err)
	}
	return tag.RowsAffected(), nil
}
