package entity

// Customer rappresenta un cliente della distribuzione (punto vendita).
// Zona è l'area di consegna usata dal magazzino per raggruppare i giri.
type Customer struct {
	ID   int64
	Nome string
	Zona string
}
