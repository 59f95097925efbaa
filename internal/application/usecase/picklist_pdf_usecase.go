package usecase

import (
	"context"
	"time"

	"github.com/tuo-utente/gestione-ordini/internal/domain"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
)

// PickListPDFGenerator genera il PDF stampabile della lista di prelievo.
// Lo implementa pdf.MarotoPickListGenerator; l'interfaccia qui tiene il
// caso d'uso indipendente dalla libreria di rendering.
type PickListPDFGenerator interface {
	GeneratePickListPDF(ctx context.Context, date time.Time, rows []entity.PickListRow) ([]byte, error)
}

// PickListPDFUseCase produce la lista di prelievo del giorno in PDF, pronta
// per la stampa in magazzino.
type PickListPDFUseCase struct {
	orders repository.OrderRepository
	gen    PickListPDFGenerator
}

// NewPickListPDFUseCase costruisce il caso d'uso.
func NewPickListPDFUseCase(orders repository.OrderRepository, gen PickListPDFGenerator) *PickListPDFUseCase {
	return &PickListPDFUseCase{orders: orders, gen: gen}
}

// Generate carica le righe del giorno (già ordinate per cliente e prodotto)
// e le passa al generatore.
func (uc *PickListPDFUseCase) Generate(ctx context.Context, data string) ([]byte, error) {
	date, err := time.Parse(dateLayout, data)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.orders.ListForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return uc.gen.GeneratePickListPDF(ctx, date, rows)
}
