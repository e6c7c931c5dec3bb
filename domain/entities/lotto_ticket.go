package entities

import (
	"fmt"
	"slices"
)

// TicketSize is the number of distinct numbers on every ticket
const TicketSize = 6

// LottoTicket is an immutable set of TicketSize distinct lotto numbers.
// Numbers are stored sorted ascending.
type LottoTicket struct {
	numbers [TicketSize]LottoNumber
}

// NewLottoTicket builds a ticket from raw integers, range checking each one
func NewLottoTicket(values []int) (LottoTicket, error) {
	numbers := make([]LottoNumber, 0, len(values))
	for _, v := range values {
		n, err := NewLottoNumber(v)
		if err != nil {
			return LottoTicket{}, err
		}
		numbers = append(numbers, n)
	}
	return NewLottoTicketFromNumbers(numbers)
}

// NewLottoTicketFromNumbers builds a ticket from already validated numbers.
// Repeated values collapse; the remaining set must contain exactly TicketSize numbers.
func NewLottoTicketFromNumbers(numbers []LottoNumber) (LottoTicket, error) {
	unique := make(map[LottoNumber]struct{}, len(numbers))
	for _, n := range numbers {
		unique[n] = struct{}{}
	}

	if len(unique) != TicketSize {
		if len(unique) != len(numbers) {
			return LottoTicket{}, fmt.Errorf("%w: %v", ErrDuplicate, numbers)
		}
		return LottoTicket{}, fmt.Errorf("%w: got %d", ErrWrongSize, len(unique))
	}

	sorted := make([]LottoNumber, 0, TicketSize)
	for n := range unique {
		sorted = append(sorted, n)
	}
	slices.SortFunc(sorted, LottoNumber.Compare)

	var ticket LottoTicket
	copy(ticket.numbers[:], sorted)
	return ticket, nil
}

// MatchCount returns how many numbers the two tickets share
func (t LottoTicket) MatchCount(other LottoTicket) int {
	count := 0
	for _, n := range t.numbers {
		if other.Contains(n) {
			count++
		}
	}
	return count
}

// Contains reports whether n is on the ticket
func (t LottoTicket) Contains(n LottoNumber) bool {
	_, found := slices.BinarySearchFunc(t.numbers[:], n, LottoNumber.Compare)
	return found
}

// Numbers returns the ticket numbers in ascending order
func (t LottoTicket) Numbers() []LottoNumber {
	return slices.Clone(t.numbers[:])
}

// Ints returns the ticket numbers as plain integers in ascending order
func (t LottoTicket) Ints() []int {
	out := make([]int, TicketSize)
	for i, n := range t.numbers {
		out[i] = n.Int()
	}
	return out
}

func (t LottoTicket) String() string {
	return fmt.Sprint(t.Ints())
}
