package repositories

import (
	"bytes"
	"cinema-ticket-service/config"
	"cinema-ticket-service/internal/module/ticket/models/request"
	"cinema-ticket-service/internal/pkg/errors"
	"cinema-ticket-service/internal/pkg/log"
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	log                log.Logger
	httpClient         *circuit.HTTPClient
	cfgPayment         *config.PaymentServiceConfig
	cfgSeatReservation *config.SeatReservationServiceConfig
}

type Repositories interface {
	// http
	MakePayment(ctx context.Context, accountID int64, amount int) error
	ReserveSeats(ctx context.Context, accountID int64, totalSeats int) error
}

func New(log log.Logger, httpClient *circuit.HTTPClient, cfgPayment *config.PaymentServiceConfig, cfgSeatReservation *config.SeatReservationServiceConfig) Repositories {
	return &repositories{
		log:                log,
		httpClient:         httpClient,
		cfgPayment:         cfgPayment,
		cfgSeatReservation: cfgSeatReservation,
	}
}

// MakePayment implements Repositories.
func (r *repositories) MakePayment(ctx context.Context, accountID int64, amount int) error {
	payload := request.Payment{
		AccountID: accountID,
		Amount:    amount,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal payment request")
	}

	// http call to payment service
	url := fmt.Sprintf("http://%s:%s/api/private/payment", r.cfgPayment.Host, r.cfgPayment.Port)
	resp, err := r.httpClient.Post(url, "application/json", bytes.NewReader(jsonPayload))
	if err != nil {
		r.log.Error(ctx, "error call payment service", err)
		return errors.InternalServerError("error make payment")
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Error(ctx, "error make payment", resp.StatusCode)
		return errors.InternalServerError("error make payment")
	}

	return nil
}

// ReserveSeats implements Repositories.
func (r *repositories) ReserveSeats(ctx context.Context, accountID int64, totalSeats int) error {
	payload := request.SeatReservation{
		AccountID:  accountID,
		TotalSeats: totalSeats,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal seat reservation request")
	}

	// http call to seat reservation service
	url := fmt.Sprintf("http://%s:%s/api/private/seat/reserve", r.cfgSeatReservation.Host, r.cfgSeatReservation.Port)
	resp, err := r.httpClient.Post(url, "application/json", bytes.NewReader(jsonPayload))
	if err != nil {
		r.log.Error(ctx, "error call seat reservation service", err)
		return errors.InternalServerError("error reserve seats")
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Error(ctx, "error reserve seats", resp.StatusCode)
		return errors.InternalServerError("error reserve seats")
	}

	return nil
}
