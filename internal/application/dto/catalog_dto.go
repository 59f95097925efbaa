package dto

import "github.com/shopspring/decimal"

// ProductResponse riga di listino.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Codice        string          `json:"codice"`
	Nome          string          `json:"nome"`
	Categoria     string          `json:"categoria"`
	Prezzo        decimal.Decimal `json:"prezzo"`
	PesoVariabile bool            `json:"peso_variabile"`
}

// CustomerResponse riga anagrafica cliente.
type CustomerResponse struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
	Zona string `json:"zona"`
}

// ImportProductRecord record dell'import massivo prodotti (corpo = array di record).
type ImportProductRecord struct {
	Codice        string          `json:"codice"`
	Nome          string          `json:"nome"`
	Categoria     string          `json:"categoria"`
	Prezzo        decimal.Decimal `json:"prezzo"`
	PesoVariabile bool            `json:"peso_variabile"`
}

// ImportCustomerRecord record dell'import massivo clienti.
type ImportCustomerRecord struct {
	Nome string `json:"nome"`
	Zona string `json:"zona"`
}
