package interfaces

import (
	"lotto/domain/entities"
)

// GameState is a stage of a single lotto run
type GameState string

const (
	GameStateCreated        GameState = "created"
	GameStatePurchased      GameState = "purchased"
	GameStateWinningEntered GameState = "winning_entered"
	GameStateScored         GameState = "scored"
)

// LottoGame defines the interface for one lotto run, from purchase to scoring
type LottoGame interface {
	// RunID identifies the run in logs
	RunID() string

	// State returns the current stage of the run
	State() GameState

	// Purchase buys amount/TicketPrice tickets. Only allowed once, from GameStateCreated.
	Purchase(amount int64) (*entities.LottoTickets, error)

	// Tickets returns the purchased collection, or nil before purchase
	Tickets() *entities.LottoTickets

	// EnterWinning validates and stores the winning numbers and bonus number.
	// A failed call leaves any previously entered winning ticket in place.
	EnterWinning(numbers []int, bonus int) error

	// ProduceResults counts tickets per reward tier. Every tier is present in the map.
	ProduceResults() (map[entities.Reward]int, error)

	// CalculateYield returns total prize over total spent (1.0 is break-even)
	CalculateYield() (float64, error)

	// Result returns the full scoring summary
	Result() (*entities.LottoResult, error)
}
