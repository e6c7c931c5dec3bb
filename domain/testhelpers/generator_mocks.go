package testhelpers

import (
	"lotto/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockTicketGenerator is a mock implementation of TicketGenerator
type MockTicketGenerator struct {
	mock.Mock
}

func (m *MockTicketGenerator) Generate() (entities.LottoTicket, error) {
	args := m.Called()
	return args.Get(0).(entities.LottoTicket), args.Error(1)
}

// MustTicket builds a ticket or panics; for fixtures only
func MustTicket(numbers ...int) entities.LottoTicket {
	ticket, err := entities.NewLottoTicket(numbers)
	if err != nil {
		panic(err)
	}
	return ticket
}

// MockWinningDrawer is a mock implementation of WinningDrawer
type MockWinningDrawer struct {
	mock.Mock
}

func (m *MockWinningDrawer) Draw() (*entities.WinningTicket, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WinningTicket), args.Error(1)
}

// MustWinning builds a winning ticket or panics; for fixtures only
func MustWinning(bonus int, numbers ...int) *entities.WinningTicket {
	winning, err := entities.NewWinningTicket(numbers, bonus)
	if err != nil {
		panic(err)
	}
	return winning
}
