package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tuo-utente/gestione-ordini/internal/application/dto"
	"github.com/tuo-utente/gestione-ordini/internal/application/usecase"
	"github.com/tuo-utente/gestione-ordini/internal/domain"
)

// CatalogHandler letture di listino/anagrafica e import massivi.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler costruisce l'handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts GET /prodotti
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	list, err := h.uc.ListProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ListCustomers GET /clienti
func (h *CatalogHandler) ListCustomers(c *fiber.Ctx) error {
	list, err := h.uc.ListCustomers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// ImportProducts POST /importa-prodotti: corpo = array di record; un corpo
// che non è un array di record rifiuta l'intero lotto.
func (h *CatalogHandler) ImportProducts(c *fiber.Ctx) error {
	var records []dto.ImportProductRecord
	if err := c.BodyParser(&records); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formato non valido: atteso un array di record"})
	}
	if err := h.uc.ImportProducts(c.Context(), records); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "record malformato: codice, nome e prezzo non negativo sono obbligatori"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ImportCustomers POST /importa-clienti
func (h *CatalogHandler) ImportCustomers(c *fiber.Ctx) error {
	var records []dto.ImportCustomerRecord
	if err := c.BodyParser(&records); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formato non valido: atteso un array di record"})
	}
	if err := h.uc.ImportCustomers(c.Context(), records); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "record malformato: nome obbligatorio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
