package helpers

import (
	"cinema-ticket-service/internal/pkg/errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(http.StatusOK).JSON(Response{
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	if custom, ok := err.(*errors.CustomError); ok {
		return ctx.Status(custom.Code).JSON(Response{
			Message: custom.Message,
		})
	}

	return ctx.Status(http.StatusInternalServerError).JSON(Response{
		Message: err.Error(),
	})
}
