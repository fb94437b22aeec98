package router

import (
	"cinema-ticket-service/internal/module/ticket/handler"
	"cinema-ticket-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerTicket *handler.TicketHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/purchase", m.ValidateApiKey, handlerTicket.PurchaseTickets)

	return app

}
