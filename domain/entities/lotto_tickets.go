package entities

import (
	"fmt"
	"slices"
)

// LottoTickets is the frozen collection of tickets bought in one game
type LottoTickets struct {
	tickets []LottoTicket
}

// NewLottoTickets wraps manually built tickets
func NewLottoTickets(tickets []LottoTicket) *LottoTickets {
	return &LottoTickets{tickets: slices.Clone(tickets)}
}

// PurchaseTickets generates amount/TicketPrice tickets. A zero count yields an empty collection.
// A generator that cannot supply every ticket is rejected before any ticket is taken from it.
func PurchaseTickets(amount Money, generator TicketGenerator) (*LottoTickets, error) {
	count := amount.TicketCount()
	if bounded, ok := generator.(BoundedTicketGenerator); ok && bounded.Remaining() < count {
		return nil, fmt.Errorf("%w: %d requested, %d left", ErrGeneratorExhausted, count, bounded.Remaining())
	}
	tickets := make([]LottoTicket, 0, count)
	for i := 0; i < count; i++ {
		ticket, err := generator.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate ticket %d of %d: %w", i+1, count, err)
		}
		tickets = append(tickets, ticket)
	}
	return &LottoTickets{tickets: tickets}, nil
}

// CompareAll returns each ticket's match count against winning, in collection order
func (c *LottoTickets) CompareAll(winning LottoTicket) []int {
	counts := make([]int, len(c.tickets))
	for i, ticket := range c.tickets {
		counts[i] = ticket.MatchCount(winning)
	}
	return counts
}

// CompareAllBonus reports for each ticket whether it holds the bonus number.
// The result is index aligned with CompareAll.
func (c *LottoTickets) CompareAllBonus(bonus LottoNumber) []bool {
	matched := make([]bool, len(c.tickets))
	for i, ticket := range c.tickets {
		matched[i] = ticket.Contains(bonus)
	}
	return matched
}

func (c *LottoTickets) Size() int {
	return len(c.tickets)
}

// Tickets returns a copy of the collection
func (c *LottoTickets) Tickets() []LottoTicket {
	return slices.Clone(c.tickets)
}
