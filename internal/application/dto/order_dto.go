package dto

import "github.com/shopspring/decimal"

// OrderLineRequest riga in ingresso alla creazione ordine. Il peso effettivo
// è opzionale (null finché la merce non passa in bilancia); preparato nasce
// sempre false.
type OrderLineRequest struct {
	IDProdotto    int64               `json:"id_prodotto" validate:"required"`
	Quantita      int                 `json:"quantita" validate:"required,min=1"`
	PesoEffettivo decimal.NullDecimal `json:"peso_effettivo"`
}

// CreateOrderRequest creazione ordine con le sue righe. Un ordine senza
// righe è valido.
type CreateOrderRequest struct {
	IDCliente int64              `json:"id_cliente" validate:"required"`
	Operatore string             `json:"operatore" validate:"required"`
	Righe     []OrderLineRequest `json:"righe"`
}

// CreateOrderResponse esito creazione con l'id generato.
type CreateOrderResponse struct {
	Success  bool  `json:"success"`
	IDOrdine int64 `json:"id_ordine"`
}

// OrderSummaryResponse riga del riepilogo ordini.
type OrderSummaryResponse struct {
	ID          int64  `json:"id"`
	DataOrdine  string `json:"data_ordine"`
	Stato       string `json:"stato"`
	Operatore   string `json:"operatore"`
	Cliente     string `json:"cliente"`
	NumProdotti int    `json:"num_prodotti"`
}

// PickListRequest giorno richiesto per la lista di prelievo (YYYY-MM-DD).
type PickListRequest struct {
	Data string `json:"data" validate:"required"`
}

// PickListRowResponse riga della lista di prelievo.
type PickListRowResponse struct {
	IDRiga        int64               `json:"id_riga"`
	IDOrdine      int64               `json:"id_ordine"`
	DataOrdine    string              `json:"data_ordine"`
	Operatore     string              `json:"operatore"`
	Cliente       string              `json:"cliente"`
	ClienteZona   string              `json:"cliente_zona"`
	Prodotto      string              `json:"prodotto"`
	Quantita      int                 `json:"quantita"`
	PesoEffettivo decimal.NullDecimal `json:"peso_effettivo"`
	Preparato     bool                `json:"preparato"`
}

// OrderLineDetailResponse riga risolta nel dettaglio ordine.
type OrderLineDetailResponse struct {
	Nome          string              `json:"nome"`
	Quantita      int                 `json:"quantita"`
	PesoEffettivo decimal.NullDecimal `json:"peso_effettivo"`
	Preparato     bool                `json:"preparato"`
}

// OrderDetailResponse testata + righe risolte.
type OrderDetailResponse struct {
	ID         int64                     `json:"id"`
	DataOrdine string                    `json:"data_ordine"`
	Stato      string                    `json:"stato"`
	Operatore  string                    `json:"operatore"`
	Cliente    string                    `json:"cliente"`
	Prodotti   []OrderLineDetailResponse `json:"prodotti"`
}

// UpdateLineRequest aggiornamento di una riga in preparazione: sovrascrive
// sempre entrambi i campi.
type UpdateLineRequest struct {
	PesoEffettivo decimal.NullDecimal `json:"peso_effettivo"`
	Preparato     bool                `json:"preparato"`
}
