package request

// PurchaseTickets is the purchase payload. AccountID stays a JSON number so
// the pipeline can reject fractional ids with the proper reason instead of a
// parse error.
type PurchaseTickets struct {
	AccountID float64             `json:"account_id"`
	Tickets   []TicketTypeRequest `json:"tickets"`
}

type TicketTypeRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Payment struct {
	AccountID int64 `json:"account_id" validate:"required"`
	Amount    int   `json:"amount"`
}

type SeatReservation struct {
	AccountID  int64 `json:"account_id" validate:"required"`
	TotalSeats int   `json:"total_seats"`
}

type PurchaseCompleted struct {
	PurchaseID  string `json:"purchase_id" validate:"required"`
	AccountID   int64  `json:"account_id" validate:"required"`
	TotalAmount int    `json:"total_amount"`
	TotalSeats  int    `json:"total_seats"`
}
