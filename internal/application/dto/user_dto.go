package dto

// UserResponse utente senza hash della password.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Ruolo    string `json:"ruolo"`
}

// UpdateRoleRequest cambio ruolo (solo admin).
type UpdateRoleRequest struct {
	Ruolo string `json:"ruolo" validate:"required,oneof=admin operatore"`
}
