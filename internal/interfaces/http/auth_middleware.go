package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tuo-utente/gestione-ordini/internal/application/dto"
	"github.com/tuo-utente/gestione-ordini/pkg/jwt"
)

// Nome del cookie di sessione.
const SessionCookie = "token"

// Locals keys per l'identità in Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRuolo    = "ruolo"
)

// AuthMiddleware valida il cookie di sessione e carica l'identità in
// c.Locals. Il gate è uniforme: ogni rotta protetta passa da qui, comprese
// quelle di ordini e listino.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token mancante"})
		}
		id, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalido o scaduto"})
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalUsername, id.Username)
		c.Locals(LocalRuolo, id.Ruolo)
		return c.Next()
	}
}

// RequireRole autorizza solo i ruoli indicati. Va usato DOPO AuthMiddleware.
//
// Comportamento:
//   - 401 se il token non trasporta un ruolo (sessione legacy).
//   - 403 se il ruolo non è tra quelli consentiti.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ruolo := GetRuolo(c)
		if ruolo == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "il token non contiene un ruolo"})
		}
		for _, r := range allowed {
			if ruolo == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "ruolo non autorizzato per questa operazione"})
	}
}

// GetUserID restituisce lo UserID dal contesto (dopo AuthMiddleware).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetUsername restituisce lo username dal contesto.
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRuolo restituisce il ruolo dal contesto.
func GetRuolo(c *fiber.Ctx) string {
	v := c.Locals(LocalRuolo)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
