package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tuo-utente/gestione-ordini/internal/application/auth"
	"github.com/tuo-utente/gestione-ordini/internal/application/usecase"
	"github.com/tuo-utente/gestione-ordini/internal/domain/entity"
)

// RouterDeps dipendenze per il router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CatalogUC   *usecase.CatalogUseCase
	OrderUC     *usecase.OrderUseCase
	PickListPDF *usecase.PickListPDFUseCase
	JWTSecret   string
}

// Router registra le rotte dell'API. Il gate di sessione è uniforme: tutto
// tranne /login richiede il cookie; import e cambio ruolo richiedono admin.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PickListPDF)

	// Auth (pubblico)
	app.Post("/login", authHandler.Login)

	// Rotte protette (cookie di sessione valido)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/me", authHandler.Me)

	// Gestione utenti
	protected.Get("/utenti", userHandler.List)
	protected.Patch("/utenti/:id", RequireRole(entity.RoleAdmin), userHandler.UpdateRole)

	// Listino e anagrafica
	protected.Get("/prodotti", catalogHandler.ListProducts)
	protected.Get("/clienti", catalogHandler.ListCustomers)
	protected.Post("/importa-prodotti", RequireRole(entity.RoleAdmin), catalogHandler.ImportProducts)
	protected.Post("/importa-clienti", RequireRole(entity.RoleAdmin), catalogHandler.ImportCustomers)

	// Ordini
	protected.Post("/ordini", orderHandler.Create)
	protected.Get("/ordini", orderHandler.List)
	protected.Get("/ordini/:id", orderHandler.Get)
	protected.Post("/ordini-per-giorno", orderHandler.ListForDate)
	protected.Get("/ordini-per-giorno/pdf", orderHandler.PickListPDF)
	protected.Patch("/dettagli-ordine/:id", orderHandler.UpdateLine)
}
