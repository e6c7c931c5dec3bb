package entities

import "fmt"

// TicketPrice is the cost of one ticket in currency units.
// Purchase and yield calculation both read it from here.
const TicketPrice int64 = 1000

// MaxPurchaseAmount caps a single purchase at 100,000 tickets
const MaxPurchaseAmount int64 = 100_000 * TicketPrice

// Money is an amount in currency units between 0 and MaxPurchaseAmount
type Money struct {
	amount int64
}

// NewMoney rejects negative amounts and amounts above MaxPurchaseAmount
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: must not be negative, got %d", ErrInvalidAmount, amount)
	}
	if amount > MaxPurchaseAmount {
		return Money{}, fmt.Errorf("%w: at most %d per purchase, got %d", ErrInvalidAmount, MaxPurchaseAmount, amount)
	}
	return Money{amount: amount}, nil
}

// Amount returns the raw amount
func (m Money) Amount() int64 {
	return m.amount
}

// TicketCount returns how many tickets the amount buys; any remainder is discarded
func (m Money) TicketCount() int {
	return int(m.amount / TicketPrice)
}
