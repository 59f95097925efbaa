package dto

// ErrorResponse corpo di errore HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse esito positivo delle scritture ({success:true}, come il
// frontend storico si aspetta).
type SuccessResponse struct {
	Success bool `json:"success"`
}
