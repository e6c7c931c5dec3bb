package application

import (
	"lotto/domain/events"

	log "github.com/sirupsen/logrus"
)

// RegisterApplicationSubscriptions registers all application-level event subscriptions
func RegisterApplicationSubscriptions(bus *events.Bus) {
	bus.Subscribe(events.EventTypeTicketsPurchased, auditEvent)
	bus.Subscribe(events.EventTypeWinningEntered, auditEvent)
	bus.Subscribe(events.EventTypeGameScored, auditEvent)
}

// auditEvent writes one structured log line per game event
func auditEvent(event events.Event) {
	entry := log.WithField("event_type", event.Type())

	switch e := event.(type) {
	case events.TicketsPurchasedEvent:
		entry = entry.WithFields(log.Fields{
			"run_id":       e.RunID,
			"amount":       e.Amount,
			"ticket_count": e.TicketCount,
		})
	case events.WinningEnteredEvent:
		entry = entry.WithFields(log.Fields{
			"run_id":          e.RunID,
			"winning_numbers": e.WinningNumbers,
			"bonus":           e.BonusNumber,
		})
	case events.GameScoredEvent:
		entry = entry.WithFields(log.Fields{
			"run_id":       e.RunID,
			"ticket_count": e.TicketCount,
			"total_prize":  e.TotalPrize,
			"yield":        e.Yield,
		})
	default:
		entry.Warn("Unexpected event type")
		return
	}

	entry.Debug("Game event")
}
