package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stati dell'ordine. Lo stato è impostato alla creazione e cambia solo
// indirettamente tramite le righe (fuori scope mutarlo via API).
const (
	StatoAperto = "aperto"
)

// Order è la testata dell'ordine. Un ordine senza righe è valido
// (prenotazione registrata a voce, righe aggiunte in un secondo momento).
type Order struct {
	ID         int64
	CustomerID int64
	DataOrdine time.Time // granularità a giorno
	Operatore  string    // chi ha raccolto l'ordine
	Stato      string
}

// OrderLine è una riga d'ordine: quantità richiesta più l'eventuale peso
// rilevato alla bilancia. Appartiene esclusivamente a un ordine.
type OrderLine struct {
	ID            int64
	OrderID       int64
	ProductID     int64
	Quantita      int
	PesoEffettivo decimal.NullDecimal // null finché non confermato in pesatura
	Preparato     bool
}

// OrderSummary riga del riepilogo ordini: testata + nome cliente + numero righe.
type OrderSummary struct {
	ID          int64
	DataOrdine  time.Time
	Stato       string
	Operatore   string
	Cliente     string
	NumProdotti int
}

// OrderHeader testata risolta (con nome cliente) per il dettaglio ordine.
type OrderHeader struct {
	ID         int64
	DataOrdine time.Time
	Stato      string
	Operatore  string
	Cliente    string
}

// OrderLineDetail riga risolta (con nome prodotto) per il dettaglio ordine.
type OrderLineDetail struct {
	Nome          string
	Quantita      int
	PesoEffettivo decimal.NullDecimal
	Preparato     bool
}

// PickListRow riga della lista di prelievo giornaliera: una riga per ogni
// dettaglio ordine del giorno, con cliente e prodotto risolti.
type PickListRow struct {
	IDRiga        int64
	IDOrdine      int64
	DataOrdine    time.Time
	Operatore     string
	Cliente       string
	ClienteZona   string
	Prodotto      string
	Quantita      int
	PesoEffettivo decimal.NullDecimal
	Preparato     bool
}
