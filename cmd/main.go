package main

import (
	"cinema-ticket-service/config"
	"cinema-ticket-service/internal/module/ticket/handler"
	"cinema-ticket-service/internal/module/ticket/repositories"
	"cinema-ticket-service/internal/module/ticket/usecases"
	"cinema-ticket-service/internal/pkg/http"
	"cinema-ticket-service/internal/pkg/httpclient"
	log_internal "cinema-ticket-service/internal/pkg/log"
	"cinema-ticket-service/internal/pkg/messagestream"
	"cinema-ticket-service/internal/pkg/middleware"
	router "cinema-ticket-service/internal/route"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.InitConfig()

	app := initService(cfg)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) *fiber.App {

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	ticketRepo := repositories.New(logger, httpClient, &cfg.PaymentService, &cfg.SeatReservationService)
	ticketUsecase := usecases.New(ticketRepo, logger, publisher)
	middleware := middleware.Middleware{
		Log: logZap,
		Cfg: cfg,
	}

	validator := validator.New()
	ticketHandler := handler.TicketHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   ticketUsecase,
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &ticketHandler, &middleware)

	return r

}
