package usecases

import (
	"cinema-ticket-service/internal/module/ticket/models/entity"
	"cinema-ticket-service/internal/module/ticket/models/request"
	"cinema-ticket-service/internal/module/ticket/models/response"
	"cinema-ticket-service/internal/module/ticket/repositories"
	"cinema-ticket-service/internal/pkg/errors"
	"cinema-ticket-service/internal/pkg/log"
	"context"
	"math"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Rejection reasons for a purchase. Each one aborts the call before any
// external side effect happens.
var (
	ErrInvalidAccount      = errors.BadRequest("account id must be a positive whole number")
	ErrEmptyRequest        = errors.BadRequest("at least one ticket type request is required")
	ErrInvalidRequestShape = errors.BadRequest("ticket category must be one of ADULT, CHILD, INFANT")
	ErrNonPositiveCount    = errors.BadRequest("ticket count must be greater than zero")
	ErrCapacityExceeded    = errors.BadRequest("cannot purchase more than 25 tickets at a time")
	ErrMissingAdult        = errors.BadRequest("child and infant tickets require at least one adult ticket")
	ErrInfantRatioExceeded = errors.BadRequest("number of infant tickets cannot exceed number of adult tickets")
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
}

type Usecase interface {
	// http
	PurchaseTickets(ctx context.Context, payload *request.PurchaseTickets) (response.PurchaseReceipt, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

// PurchaseTickets runs the purchase pipeline: account check, request shape
// check, aggregation, business rules, pricing and seat derivation, then the
// payment and seat reservation calls. The first failing check aborts the
// call; the external calls run only after every check passed.
func (u *usecase) PurchaseTickets(ctx context.Context, payload *request.PurchaseTickets) (response.PurchaseReceipt, error) {
	if err := validateAccount(payload.AccountID); err != nil {
		return response.PurchaseReceipt{}, err
	}

	items, err := validateTicketRequests(payload.Tickets)
	if err != nil {
		return response.PurchaseReceipt{}, err
	}

	counts := entity.AggregateTickets(items)

	if err := validateBusinessRules(counts); err != nil {
		return response.PurchaseReceipt{}, err
	}

	totalAmount := counts.TotalAmount()
	totalSeats := counts.TotalSeats()
	accountID := int64(payload.AccountID)

	// charge the account
	if err := u.repo.MakePayment(ctx, accountID, totalAmount); err != nil {
		u.log.Error(ctx, "error make payment", err)
		return response.PurchaseReceipt{}, err
	}

	// hold the seats
	if err := u.repo.ReserveSeats(ctx, accountID, totalSeats); err != nil {
		u.log.Error(ctx, "error reserve seats", err)
		return response.PurchaseReceipt{}, err
	}

	receipt := response.PurchaseReceipt{
		PurchaseID:  uuid.NewString(),
		AccountID:   accountID,
		TotalAmount: totalAmount,
		TotalSeats:  totalSeats,
	}

	u.publishPurchaseCompleted(ctx, receipt)

	return receipt, nil
}

// validateAccount accepts only positive whole account numbers. Zero covers
// absent ids, a fractional part marks a malformed id.
func validateAccount(accountID float64) error {
	if accountID <= 0 || accountID != math.Trunc(accountID) {
		return ErrInvalidAccount
	}
	return nil
}

// validateTicketRequests checks the raw items and converts them to entity
// ticket requests. It stops at the first offending element.
func validateTicketRequests(tickets []request.TicketTypeRequest) ([]entity.TicketTypeRequest, error) {
	if len(tickets) == 0 {
		return nil, ErrEmptyRequest
	}

	items := make([]entity.TicketTypeRequest, 0, len(tickets))
	for _, ticket := range tickets {
		category := entity.TicketCategory(ticket.Category)
		if !category.Valid() {
			return nil, ErrInvalidRequestShape
		}
		if ticket.Count <= 0 {
			return nil, ErrNonPositiveCount
		}
		items = append(items, entity.TicketTypeRequest{
			Category: category,
			Count:    ticket.Count,
		})
	}

	return items, nil
}

// validateBusinessRules applies the aggregate constraints in a fixed order
// so the first violated rule decides the surfaced reason.
func validateBusinessRules(counts entity.TicketCounts) error {
	if counts.Total() > entity.MaxTicketsPerPurchase {
		return ErrCapacityExceeded
	}
	if (counts[entity.Child] > 0 || counts[entity.Infant] > 0) && counts[entity.Adult] == 0 {
		return ErrMissingAdult
	}
	if counts[entity.Infant] > counts[entity.Adult] {
		return ErrInfantRatioExceeded
	}
	return nil
}

func (u *usecase) publishPurchaseCompleted(ctx context.Context, receipt response.PurchaseReceipt) {
	event := request.PurchaseCompleted{
		PurchaseID:  receipt.PurchaseID,
		AccountID:   receipt.AccountID,
		TotalAmount: receipt.TotalAmount,
		TotalSeats:  receipt.TotalSeats,
	}

	jsonPayload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal purchase completed event", err)
		return
	}

	// the purchase already happened, a publish failure must not undo it
	if err := u.publish.Publish("purchase_completed", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish purchase completed event", err)
	}
}
