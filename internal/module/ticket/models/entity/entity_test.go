package entity_test

import (
	"cinema-ticket-service/internal/module/ticket/models/entity"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateTickets(t *testing.T) {
	t.Run("sums counts per category", func(t *testing.T) {
		items := []entity.TicketTypeRequest{
			{Category: entity.Adult, Count: 2},
			{Category: entity.Child, Count: 3},
			{Category: entity.Adult, Count: 1},
		}

		counts := entity.AggregateTickets(items)

		assert.Equal(t, 3, counts[entity.Adult])
		assert.Equal(t, 3, counts[entity.Child])
		assert.Equal(t, 0, counts[entity.Infant])
		assert.Equal(t, 6, counts.Total())
	})

	t.Run("order independent", func(t *testing.T) {
		forward := []entity.TicketTypeRequest{
			{Category: entity.Adult, Count: 2},
			{Category: entity.Child, Count: 2},
			{Category: entity.Infant, Count: 1},
		}
		reversed := []entity.TicketTypeRequest{
			{Category: entity.Infant, Count: 1},
			{Category: entity.Child, Count: 2},
			{Category: entity.Adult, Count: 2},
		}

		assert.Equal(t, entity.AggregateTickets(forward), entity.AggregateTickets(reversed))
	})

	t.Run("empty input yields all zeroes", func(t *testing.T) {
		counts := entity.AggregateTickets(nil)

		assert.Equal(t, 0, counts.Total())
		assert.Equal(t, 0, counts.TotalAmount())
		assert.Equal(t, 0, counts.TotalSeats())
	})
}

func TestTicketCountsDerivations(t *testing.T) {
	testCases := []struct {
		name           string
		counts         entity.TicketCounts
		expectedAmount int
		expectedSeats  int
	}{
		{
			name:           "adults only",
			counts:         entity.TicketCounts{entity.Adult: 2},
			expectedAmount: 50,
			expectedSeats:  2,
		},
		{
			name:           "adults and children",
			counts:         entity.TicketCounts{entity.Adult: 2, entity.Child: 3},
			expectedAmount: 95,
			expectedSeats:  5,
		},
		{
			name:           "infants are free and seatless",
			counts:         entity.TicketCounts{entity.Adult: 2, entity.Child: 2, entity.Infant: 1},
			expectedAmount: 80,
			expectedSeats:  4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedAmount, tc.counts.TotalAmount())
			assert.Equal(t, tc.expectedSeats, tc.counts.TotalSeats())
		})
	}
}

func TestTicketCategory(t *testing.T) {
	t.Run("closed set", func(t *testing.T) {
		assert.True(t, entity.Adult.Valid())
		assert.True(t, entity.Child.Valid())
		assert.True(t, entity.Infant.Valid())
		assert.False(t, entity.TicketCategory("SENIOR").Valid())
		assert.False(t, entity.TicketCategory("").Valid())
	})

	t.Run("price table", func(t *testing.T) {
		assert.Equal(t, 25, entity.Adult.Price())
		assert.Equal(t, 15, entity.Child.Price())
		assert.Equal(t, 0, entity.Infant.Price())
	})
}
