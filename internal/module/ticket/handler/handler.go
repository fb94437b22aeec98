package handler

import (
	"cinema-ticket-service/internal/module/ticket/models/request"
	"cinema-ticket-service/internal/module/ticket/usecases"
	"cinema-ticket-service/internal/pkg/errors"
	"cinema-ticket-service/internal/pkg/helpers"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type TicketHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *TicketHandler) PurchaseTickets(ctx *fiber.Ctx) error {
	var req request.PurchaseTickets
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error validate request"))
	}

	// call usecase to purchase tickets
	resp, err := h.Usecase.PurchaseTickets(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error purchase tickets: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success purchase tickets")
}
