package usecase

import (
	"context"
	"strings"

	"github.com/tuo-utente/gestione-ordini/internal/application/dto"
	"github.com/tuo-utente/gestione-ordini/internal/domain"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
	"github.com/tuo-utente/gestione-ordini/internal/domain/repository"
	"golang.org/x/text/unicode/norm"
)

// CatalogUseCase letture di listino/anagrafica e import massivi.
type CatalogUseCase struct {
	products  repository.ProductRepository
	customers repository.CustomerRepository
}

// NewCatalogUseCase costruisce il caso d'uso.
func NewCatalogUseCase(products repository.ProductRepository, customers repository.CustomerRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, customers: customers}
}

// ListProducts restituisce l'intero listino.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{
			ID:            p.ID,
			Codice:        p.Codice,
			Nome:          p.Nome,
			Categoria:     p.Categoria,
			Prezzo:        p.Prezzo,
			PesoVariabile: p.PesoVariabile,
		})
	}
	return out, nil
}

// ListCustomers restituisce l'intera anagrafica clienti.
func (uc *CatalogUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.CustomerResponse{ID: c.ID, Nome: c.Nome, Zona: c.Zona})
	}
	return out, nil
}

// ImportProducts valida e inserisce un lotto di prodotti. Il lotto è
// tutto-o-niente: un record malformato rifiuta l'intero import.
func (uc *CatalogUseCase) ImportProducts(ctx context.Context, records []dto.ImportProductRecord) error {
	products := make([]entity.Product, 0, len(records))
	for _, rec := range records {
		codice := cleanName(rec.Codice)
		nome := cleanName(rec.Nome)
		if codice == "" || nome == "" || rec.Prezzo.IsNegative() {
			return domain.ErrInvalidInput
		}
		products = append(products, entity.Product{
			Codice:        codice,
			Nome:          nome,
			Categoria:     cleanName(rec.Categoria),
			Prezzo:        rec.Prezzo,
			PesoVariabile: rec.PesoVariabile,
		})
	}
	return uc.products.BulkInsert(ctx, products)
}

// ImportCustomers valida e inserisce un lotto di clienti (tutto-o-niente).
func (uc *CatalogUseCase) ImportCustomers(ctx context.Context, records []dto.ImportCustomerRecord) error {
	customers := make([]entity.Customer, 0, len(records))
	for _, rec := range records {
		nome := cleanName(rec.Nome)
		if nome == "" {
			return domain.ErrInvalidInput
		}
		customers = append(customers, entity.Customer{Nome: nome, Zona: cleanName(rec.Zona)})
	}
	return uc.customers.BulkInsert(ctx, customers)
}

// cleanName rifila gli spazi e normalizza in NFC: i fogli di import arrivano
// da sistemi diversi e gli accentati ("Pralù", "Caffè") devono confrontarsi
// in modo consistente in ordinamento e ricerca.
func cleanName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
