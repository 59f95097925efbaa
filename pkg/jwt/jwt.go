package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL durata fissa della sessione: 2 giorni dall'emissione.
const TokenTTL = 48 * time.Hour

// Identity è il contenuto verificato del token di sessione.
type Identity struct {
	UserID   int64
	Username string
	Ruolo    string
}

// Claims include i claims standard JWT più i campi propri dell'applicazione.
// Ruolo viaggia nel token così il middleware autorizza senza interrogare la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Ruolo    string `json:"ruolo"` // "admin" | "operatore"
}

// Generate genera un token JWT firmato (HS256) valido per TokenTTL.
func Generate(secret, issuer string, id Identity) (string, error) {
	return generateWithTTL(secret, issuer, id, TokenTTL)
}

// generateWithTTL separato per poter testare scadenze arbitrarie.
func generateWithTTL(secret, issuer string, id Identity, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vuoto")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", id.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   id.UserID,
		Username: id.Username,
		Ruolo:    id.Ruolo,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma e scadenza e restituisce l'identità contenuta nel token.
// Ritorna errore se il token è invalido, scaduto o firmato con un altro secret.
func Parse(secret, tokenString string) (Identity, error) {
	if secret == "" {
		return Identity{}, fmt.Errorf("jwt: secret vuoto")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metodo di firma inatteso: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("claims invalidi")
	}
	return Identity{UserID: claims.UserID, Username: claims.Username, Ruolo: claims.Ruolo}, nil
}
