package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tuo-utente/gestione-ordini/internal/application/auth"
	"github.com/tuo-utente/gestione-ordini/internal/application/dto"
	"github.com/tuo-utente/gestione-ordini/internal/domain"
	pkgjwt "github.com/tuo-utente/gestione-ordini/pkg/jwt"
)

// AuthHandler gestisce login e identità di sessione.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler costruisce l'handler di auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /login: verifica le credenziali e imposta il cookie di sessione
// (httpOnly, 2 giorni). Credenziali errate e utente sconosciuto producono la
// stessa risposta 401: niente enumerazione degli username.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo non valido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username e password sono obbligatori"})
	}
	token, out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenziali non valide"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(pkgjwt.TokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Me GET /me: identità verificata della sessione corrente.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.IdentityResponse{
		ID:       GetUserID(c),
		Username: GetUsername(c),
		Ruolo:    GetRuolo(c),
	})
}
