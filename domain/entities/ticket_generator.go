package entities

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// TicketGenerator produces one ticket per call
type TicketGenerator interface {
	Generate() (LottoTicket, error)
}

// BoundedTicketGenerator is a TicketGenerator that can only produce a limited number of tickets
type BoundedTicketGenerator interface {
	TicketGenerator
	Remaining() int
}

// WinningDrawer produces one winning combination per call
type WinningDrawer interface {
	Draw() (*WinningTicket, error)
}

// RandomTicketGenerator draws TicketSize unique numbers uniformly from the full number pool
type RandomTicketGenerator struct{}

// NewRandomTicketGenerator creates a generator backed by crypto/rand
func NewRandomTicketGenerator() *RandomTicketGenerator {
	return &RandomTicketGenerator{}
}

// Generate takes TicketSize numbers from a freshly shuffled pool
func (g *RandomTicketGenerator) Generate() (LottoTicket, error) {
	numbers, err := g.pick(TicketSize)
	if err != nil {
		return LottoTicket{}, err
	}
	return NewLottoTicketFromNumbers(numbers)
}

// Draw picks a random winning combination: TicketSize numbers plus a distinct bonus
func (g *RandomTicketGenerator) Draw() (*WinningTicket, error) {
	numbers, err := g.pick(TicketSize + 1)
	if err != nil {
		return nil, err
	}
	ticket, err := NewLottoTicketFromNumbers(numbers[:TicketSize])
	if err != nil {
		return nil, err
	}
	return &WinningTicket{ticket: ticket, bonus: numbers[TicketSize]}, nil
}

// pick shuffles the first count slots of the pool (partial Fisher-Yates) and returns them
func (g *RandomTicketGenerator) pick(count int) ([]LottoNumber, error) {
	pool := make([]LottoNumber, 0, MaxLottoNumber-MinLottoNumber+1)
	for v := MinLottoNumber; v <= MaxLottoNumber; v++ {
		pool = append(pool, LottoNumber{value: v})
	}

	for i := 0; i < count; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool)-i)))
		if err != nil {
			return nil, fmt.Errorf("random generation failed: %w", err)
		}
		j := i + int(n.Int64())
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:count], nil
}

// ManualTicketGenerator always produces the ticket for the numbers it was given
type ManualTicketGenerator struct {
	numbers []int
}

// NewManualTicketGenerator copies numbers so later caller mutation has no effect
func NewManualTicketGenerator(numbers []int) *ManualTicketGenerator {
	return &ManualTicketGenerator{numbers: append([]int(nil), numbers...)}
}

func (g *ManualTicketGenerator) Generate() (LottoTicket, error) {
	return NewLottoTicket(g.numbers)
}

// ErrGeneratorExhausted is returned by QueueTicketGenerator once every queued ticket was handed out
var ErrGeneratorExhausted = errors.New("no more queued tickets")

// QueueTicketGenerator replays a fixed list of tickets in order
type QueueTicketGenerator struct {
	tickets []LottoTicket
	next    int
}

// NewQueueTicketGenerator validates every entry up front
func NewQueueTicketGenerator(tickets [][]int) (*QueueTicketGenerator, error) {
	g := &QueueTicketGenerator{tickets: make([]LottoTicket, 0, len(tickets))}
	for i, numbers := range tickets {
		ticket, err := NewLottoTicket(numbers)
		if err != nil {
			return nil, fmt.Errorf("invalid queued ticket %d: %w", i+1, err)
		}
		g.tickets = append(g.tickets, ticket)
	}
	return g, nil
}

func (g *QueueTicketGenerator) Generate() (LottoTicket, error) {
	if g.next >= len(g.tickets) {
		return LottoTicket{}, ErrGeneratorExhausted
	}
	ticket := g.tickets[g.next]
	g.next++
	return ticket, nil
}

// Remaining returns how many queued tickets have not been generated yet
func (g *QueueTicketGenerator) Remaining() int {
	return len(g.tickets) - g.next
}
