package entity

// TicketCategory is the closed set of ticket kinds sold in one purchase.
type TicketCategory string

const (
	Adult  TicketCategory = "ADULT"
	Child  TicketCategory = "CHILD"
	Infant TicketCategory = "INFANT"
)

// MaxTicketsPerPurchase caps the total tickets across all categories in a
// single purchase call.
const MaxTicketsPerPurchase = 25

var ticketPrices = map[TicketCategory]int{
	Adult:  25,
	Child:  15,
	Infant: 0,
}

func (c TicketCategory) Valid() bool {
	_, ok := ticketPrices[c]
	return ok
}

func (c TicketCategory) Price() int {
	return ticketPrices[c]
}

// TicketTypeRequest is one validated line of a purchase: a category from the
// closed set and a positive count.
type TicketTypeRequest struct {
	Category TicketCategory
	Count    int
}

// TicketCounts maps each category to its aggregated count for one purchase.
type TicketCounts map[TicketCategory]int

// AggregateTickets sums counts per category. Unseen categories default to
// zero and the input order never changes the result.
func AggregateTickets(items []TicketTypeRequest) TicketCounts {
	counts := TicketCounts{
		Adult:  0,
		Child:  0,
		Infant: 0,
	}

	for _, item := range items {
		counts[item.Category] += item.Count
	}

	return counts
}

func (tc TicketCounts) Total() int {
	return tc[Adult] + tc[Child] + tc[Infant]
}

// TotalAmount derives the monetary total from the fixed price table.
func (tc TicketCounts) TotalAmount() int {
	amount := 0
	for category, count := range tc {
		amount += category.Price() * count
	}
	return amount
}

// TotalSeats counts seats to reserve. Infants sit on adult laps and occupy
// no seat.
func (tc TicketCounts) TotalSeats() int {
	return tc[Adult] + tc[Child]
}
