package middleware

import (
	"cinema-ticket-service/config"
	"cinema-ticket-service/internal/pkg/errors"
	"cinema-ticket-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log *otelzap.Logger
	Cfg *config.Config
}

func (m *Middleware) ValidateApiKey(ctx *fiber.Ctx) error {
	// get api key from header
	apiKey := ctx.Get("X-Api-Key")
	if apiKey == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get api key from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get api key from header"))
	}

	if apiKey != m.Cfg.ApiKey {
		m.Log.Ctx(ctx.UserContext()).Error("error validate api key")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate api key"))
	}

	return ctx.Next()
}
