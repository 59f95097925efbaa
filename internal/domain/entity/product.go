package entity

import "github.com/shopspring/decimal"

// Product rappresenta un prodotto a listino.
// PesoVariabile indica che la quantità va confermata con la pesatura fisica
// in fase di preparazione (salumi, formaggi al taglio, ecc.).
type Product struct {
	ID            int64
	Codice        string
	Nome          string
	Categoria     string
	Prezzo        decimal.Decimal
	PesoVariabile bool
}
