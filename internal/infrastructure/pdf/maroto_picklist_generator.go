// Package pdf implementa la stampa della lista di prelievo giornaliera.
//
// Layout della pagina A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Lista di prelievo + data del giorno                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELLA: Cliente | Zona | Prodotto | Qta | Peso | Prep.     │
//	│  (righe già ordinate per cliente e prodotto)                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: totale righe e righe ancora da preparare            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tuo-utente/gestione-ordini/internal/application/usecase"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.PickListPDFGenerator = (*MarotoPickListGenerator)(nil)

// MarotoPickListGenerator implementa usecase.PickListPDFGenerator con Maroto v2.
type MarotoPickListGenerator struct{}

// NewMarotoPickListGenerator costruisce il generatore.
func NewMarotoPickListGenerator() *MarotoPickListGenerator {
	return &MarotoPickListGenerator{}
}

// GeneratePickListPDF genera il PDF e ne restituisce i byte.
func (g *MarotoPickListGenerator) GeneratePickListPDF(_ context.Context, date time.Time, rows []entity.PickListRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista di prelievo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: genera documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: titolo a sinistra, data del giro a destra.
func headerRow(date time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("LISTA DI PRELIEVO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Preparazione ordini del giorno", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(date.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
		),
	)
}

// tableHeaderRow: intestazione della tabella di prelievo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cliente", 3, align.Left),
		h("Zona", 2, align.Left),
		h("Prodotto", 3, align.Left),
		h("Qta", 1, align.Center),
		h("Peso eff.", 2, align.Right),
		h("Prep.", 1, align.Center),
	)
}

// tableRows: una riga di tabella per ogni riga di prelievo.
func tableRows(rows []entity.PickListRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		peso := "—"
		if r.PesoEffettivo.Valid {
			peso = r.PesoEffettivo.Decimal.StringFixed(2) + " kg"
		}
		prep := "☐"
		if r.Preparato {
			prep = "✔"
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(r.Cliente, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.ClienteZona, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(3).Add(text.New(r.Prodotto, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantita), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(peso, props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(prep, props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// footerRow: conteggio righe totali e ancora da preparare.
func footerRow(rows []entity.PickListRow) core.Row {
	daPreparare := 0
	for _, r := range rows {
		if !r.Preparato {
			daPreparare++
		}
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Righe totali: %d   |   Da preparare: %d", len(rows), daPreparare), props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		),
	)
}
