package services

import (
	"fmt"

	"lotto/domain/entities"
	"lotto/domain/events"
	"lotto/domain/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// lottoGame implements a single lotto run
type lottoGame struct {
	runID     string
	state     interfaces.GameState
	generator entities.TicketGenerator
	tickets   *entities.LottoTickets
	winning   *entities.WinningTicket
	publisher interfaces.EventPublisher

	scoredPublished bool
}

// NewLottoGame creates a game that buys its tickets from generator.
// publisher may be nil, in which case no events are sent.
func NewLottoGame(generator entities.TicketGenerator, publisher interfaces.EventPublisher) interfaces.LottoGame {
	return &lottoGame{
		runID:     uuid.NewString(),
		state:     interfaces.GameStateCreated,
		generator: generator,
		publisher: publisher,
	}
}

// NewLottoGameWithTickets creates a game that already holds the given tickets
func NewLottoGameWithTickets(tickets []entities.LottoTicket, publisher interfaces.EventPublisher) interfaces.LottoGame {
	g := &lottoGame{
		runID:     uuid.NewString(),
		state:     interfaces.GameStatePurchased,
		tickets:   entities.NewLottoTickets(tickets),
		publisher: publisher,
	}
	g.logger().WithField("ticket_count", g.tickets.Size()).Debug("game created with manual tickets")
	return g
}

func (g *lottoGame) RunID() string {
	return g.runID
}

func (g *lottoGame) State() interfaces.GameState {
	return g.state
}

func (g *lottoGame) Tickets() *entities.LottoTickets {
	return g.tickets
}

// Purchase buys tickets for amount
func (g *lottoGame) Purchase(amount int64) (*entities.LottoTickets, error) {
	if g.state != interfaces.GameStateCreated {
		return nil, fmt.Errorf("%w: tickets already purchased", entities.ErrIllegalState)
	}

	money, err := entities.NewMoney(amount)
	if err != nil {
		return nil, err
	}

	tickets, err := entities.PurchaseTickets(money, g.generator)
	if err != nil {
		g.logger().WithError(err).WithField("amount", amount).Error("failed to purchase tickets")
		return nil, fmt.Errorf("failed to purchase tickets: %w", err)
	}

	g.tickets = tickets
	g.state = interfaces.GameStatePurchased
	g.logger().WithFields(log.Fields{
		"amount":       amount,
		"ticket_count": tickets.Size(),
	}).Info("tickets purchased")

	g.publish(events.TicketsPurchasedEvent{
		RunID:       g.runID,
		Amount:      amount,
		TicketCount: tickets.Size(),
	})

	return tickets, nil
}

// EnterWinning stores the winning ticket; re-entry replaces it only when the new input is valid
func (g *lottoGame) EnterWinning(numbers []int, bonus int) error {
	if g.state == interfaces.GameStateCreated {
		return fmt.Errorf("%w: purchase tickets before entering winning numbers", entities.ErrIllegalState)
	}

	winning, err := entities.NewWinningTicket(numbers, bonus)
	if err != nil {
		g.logger().WithError(err).Debug("rejected winning numbers")
		return err
	}

	g.winning = winning
	g.state = interfaces.GameStateWinningEntered
	g.logger().WithFields(log.Fields{
		"winning_numbers": winning.Ticket().Ints(),
		"bonus":           winning.Bonus().Int(),
	}).Info("winning numbers entered")

	g.publish(events.WinningEnteredEvent{
		RunID:          g.runID,
		WinningNumbers: winning.Ticket().Ints(),
		BonusNumber:    winning.Bonus().Int(),
	})

	return nil
}

// ProduceResults counts tickets per reward tier
func (g *lottoGame) ProduceResults() (map[entities.Reward]int, error) {
	result, err := g.Result()
	if err != nil {
		return nil, err
	}
	return result.CountsCopy(), nil
}

// CalculateYield returns total prize over total spent, 0 for an empty collection
func (g *lottoGame) CalculateYield() (float64, error) {
	result, err := g.Result()
	if err != nil {
		return 0, err
	}
	return result.Yield(), nil
}

// Result scores every ticket. Nothing is cached; each call recomputes from the frozen tickets.
func (g *lottoGame) Result() (*entities.LottoResult, error) {
	if g.winning == nil {
		return nil, g.notScorable()
	}

	matchCounts := g.tickets.CompareAll(g.winning.Ticket())
	bonusMatched := g.tickets.CompareAllBonus(g.winning.Bonus())
	result := entities.NewLottoResult(matchCounts, bonusMatched)

	if g.state != interfaces.GameStateScored {
		g.state = interfaces.GameStateScored
		g.logger().WithFields(log.Fields{
			"ticket_count": result.TicketCount,
			"total_prize":  result.TotalPrize,
		}).Info("tickets scored")
	}

	// re-entering winning numbers rescores the game but never republishes
	if !g.scoredPublished {
		g.scoredPublished = true
		counts := make(map[string]int, len(result.Counts))
		for reward, count := range result.Counts {
			counts[string(reward)] = count
		}
		g.publish(events.GameScoredEvent{
			RunID:       g.runID,
			TicketCount: result.TicketCount,
			TotalPrize:  result.TotalPrize,
			Yield:       result.Yield(),
			Counts:      counts,
		})
	}

	return result, nil
}

func (g *lottoGame) notScorable() error {
	return fmt.Errorf("%w: winning numbers not entered (state %s)", entities.ErrIllegalState, g.state)
}

// publish sends event to the configured publisher. Failures are logged, never returned.
func (g *lottoGame) publish(event events.Event) {
	if g.publisher == nil {
		return
	}
	if err := g.publisher.Publish(event); err != nil {
		g.logger().WithError(err).WithField("event_type", event.Type()).Warn("failed to publish event")
	}
}

func (g *lottoGame) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"run_id": g.runID,
		"state":  g.state,
	})
}
