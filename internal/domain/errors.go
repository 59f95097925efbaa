package domain

import "errors"

// Errori di dominio (senza dipendenze esterne).
var (
	ErrNotFound         = errors.New("risorsa non trovata")
	ErrUserNotFound     = errors.New("utente non trovato")
	ErrCustomerNotFound = errors.New("cliente non trovato")
	ErrInvalidInput     = errors.New("input non valido")
	ErrInvalidRole      = errors.New("ruolo non valido")
	ErrLineNotWeighed   = errors.New("riga non pesata: preparato richiede un peso effettivo")
	ErrUnauthorized     = errors.New("non autorizzato")
	ErrForbidden        = errors.New("accesso negato")
	ErrDuplicate        = errors.New("risorsa duplicata")
)
