package dto

// LoginRequest credenziali di accesso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse esito del login. Il token viaggia nel cookie di sessione,
// non nel corpo.
type LoginResponse struct {
	Successo bool   `json:"successo"`
	Ruolo    string `json:"ruolo"`
}

// IdentityResponse identità verificata della sessione corrente (GET /me).
type IdentityResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Ruolo    string `json:"ruolo"`
}
