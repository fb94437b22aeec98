package handler_test

import (
	"cinema-ticket-service/internal/module/ticket/handler"
	"cinema-ticket-service/internal/module/ticket/mocks"
	"cinema-ticket-service/internal/module/ticket/models/request"
	"cinema-ticket-service/internal/module/ticket/models/response"
	"cinema-ticket-service/internal/module/ticket/usecases"
	log_internal "cinema-ticket-service/internal/pkg/log"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.TicketHandler
	ucm           *mocks.Usecase
	logMock       *otelzap.Logger
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	logMock := log_internal.Setup()
	validatorTest = validator.New()
	h = &handler.TicketHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	logMock = nil
	validatorTest = nil
	h = nil
	app = nil
}

func TestPurchaseTickets(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.PurchaseTickets{
			AccountID: 1,
			Tickets: []request.TicketTypeRequest{
				{Category: "ADULT", Count: 2},
			},
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/purchase")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		receipt := response.PurchaseReceipt{
			PurchaseID:  "00000000-0000-0000-0000-000000000000",
			AccountID:   1,
			TotalAmount: 50,
			TotalSeats:  2,
		}

		// mock usecase
		ucm.On("PurchaseTickets", mock.Anything, &payload).Return(receipt, nil)

		// test
		err := h.PurchaseTickets(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestPurchaseTicketsRejected(t *testing.T) {
	setup()
	defer teardown()
	t.Run("rejection maps to 400", func(t *testing.T) {
		// mock data
		payload := request.PurchaseTickets{
			AccountID: 1,
			Tickets: []request.TicketTypeRequest{
				{Category: "INFANT", Count: 1},
			},
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/purchase")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		// mock usecase
		ucm.On("PurchaseTickets", mock.Anything, &payload).Return(response.PurchaseReceipt{}, usecases.ErrMissingAdult)

		// test
		err := h.PurchaseTickets(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestPurchaseTicketsParseError(t *testing.T) {
	setup()
	defer teardown()
	t.Run("malformed body maps to 400", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/purchase")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody([]byte(`{"account_id": "not a number"}`))

		// test
		err := h.PurchaseTickets(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "PurchaseTickets")
	})
}
