package entity

// Ruoli validi per User.
const (
	RoleAdmin     = "admin"
	RoleOperatore = "operatore"
)

// ValidRole riporta se il ruolo appartiene all'enum. I ruoli sconosciuti
// vengono rifiutati in scrittura, mai persistiti.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOperatore
}

// User rappresenta un utente del gestionale.
// Creato fuori banda (seed/SQL); qui è immutabile tranne il ruolo.
type User struct {
	ID           int64
	Username     string // univoco
	PasswordHash string // hash bcrypt, mai in chiaro dopo la persistenza
	Ruolo        string // admin, operatore
}
