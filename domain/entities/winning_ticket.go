package entities

import "fmt"

// WinningTicket is the drawn combination plus the bonus number
type WinningTicket struct {
	ticket LottoTicket
	bonus  LottoNumber
}

// NewWinningTicket validates the six winning numbers and the bonus together.
// numbers is only read, never modified.
func NewWinningTicket(numbers []int, bonus int) (*WinningTicket, error) {
	if numbers == nil {
		return nil, ErrNullInput
	}
	if len(numbers) != TicketSize {
		return nil, fmt.Errorf("%w: got %d winning numbers", ErrWrongSize, len(numbers))
	}

	seen := make(map[int]struct{}, TicketSize+1)
	for _, v := range numbers {
		seen[v] = struct{}{}
	}
	seen[bonus] = struct{}{}
	if len(seen) != TicketSize+1 {
		return nil, fmt.Errorf("%w: numbers %v, bonus %d", ErrDuplicate, numbers, bonus)
	}

	ticket, err := NewLottoTicket(numbers)
	if err != nil {
		return nil, err
	}
	bonusNumber, err := NewLottoNumber(bonus)
	if err != nil {
		return nil, err
	}

	return &WinningTicket{ticket: ticket, bonus: bonusNumber}, nil
}

func (w *WinningTicket) Ticket() LottoTicket {
	return w.ticket
}

func (w *WinningTicket) Bonus() LottoNumber {
	return w.bonus
}

// Match ranks a single ticket against the winning combination
func (w *WinningTicket) Match(ticket LottoTicket) Reward {
	return Rank(ticket.MatchCount(w.ticket), ticket.Contains(w.bonus))
}
