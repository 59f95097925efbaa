package auth

import (
	"context"

	"github.com/tuo-utente/gestione-ordini/internal/application/dto"
	"github.com/tuo-utente/gestione-ordini/internal/domain"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
	"github.com/tuo-utente/gestione-ordini/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configurazione per l'emissione dei token.
type JWTConfig struct {
	Secret string
	Issuer string
}

// dummyHash è un hash bcrypt di una password mai usata: quando lo username
// non esiste confrontiamo comunque contro questo, così utente sconosciuto e
// password errata costano lo stesso tempo e l'esterno non distingue i casi.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthUseCase casi d'uso di autenticazione: login ed emissione sessione.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase costruisce il caso d'uso di auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password e genera il token di sessione (2 giorni).
// Utente sconosciuto e password errata ritornano entrambi ErrUnauthorized:
// mai rivelare all'esterno quale dei due è accaduto.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (string, *dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(in.Password))
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, jwt.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Ruolo:    user.Ruolo,
	})
	if err != nil {
		return "", nil, err
	}
	return token, &dto.LoginResponse{Successo: true, Ruolo: user.Ruolo}, nil
}

// Verify valida un token e restituisce l'identità che trasporta.
func (uc *AuthUseCase) Verify(token string) (jwt.Identity, error) {
	id, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return jwt.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}
