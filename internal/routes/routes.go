package routes

import (
	"time"

	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/config"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/handlers"
	"github.com/Dwekulo/Afya-Dental-Care-Web/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	invoiceHandler *handlers.InvoiceHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — login is public, registration is admin-only behind JWT.
	// Stricter rate limit on login: 10 req/min per IP.
	auth := api.Group("/auth")
	auth.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)
	auth.Post("/register", middleware.JWTProtected(cfg), authHandler.Register)

	// Everything below requires a verified bearer token; the permission
	// matrix itself lives in the services.
	jwt := middleware.JWTProtected(cfg)
	api.Get("/users", jwt, userHandler.List)
	api.Get("/invoices", jwt, invoiceHandler.List)
	api.Post("/invoices", jwt, invoiceHandler.Create)
	api.Get("/invoices/:id", jwt, invoiceHandler.Get)
	api.Put("/invoices/:id", jwt, invoiceHandler.Update)
	api.Delete("/invoices/:id", jwt, invoiceHandler.Delete)
}
