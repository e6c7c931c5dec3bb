package metrics

import (
	"fmt"

	"lotto/domain/events"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

// Metric names
const (
	MetricNameEventsPublished  = "lotto_events_published_total"
	MetricNameTicketsPurchased = "lotto_tickets_purchased_total"
	MetricNameMoneySpent       = "lotto_money_spent_total"
	MetricNameGamesScored      = "lotto_games_scored_total"
	MetricNameRewards          = "lotto_rewards_total"
	MetricNamePrizeWon         = "lotto_prize_won_total"
	MetricNameLastYield        = "lotto_last_yield_ratio"
)

// Labels
const (
	LabelType   = "type"
	LabelReward = "reward"
)

// Collector turns game events into Prometheus metrics on its own registry
type Collector struct {
	registry *prometheus.Registry

	EventsPublished  *prometheus.CounterVec
	TicketsPurchased prometheus.Counter
	MoneySpent       prometheus.Counter
	GamesScored      prometheus.Counter
	Rewards          *prometheus.CounterVec
	PrizeWon         prometheus.Counter
	LastYield        prometheus.Gauge
}

// NewCollector creates a collector with every metric registered
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: "Total number of game events published",
		}, []string{LabelType}),
		TicketsPurchased: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricNameTicketsPurchased,
			Help: "Total number of tickets purchased",
		}),
		MoneySpent: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: "Total amount handed in for ticket purchases, including discarded change",
		}),
		GamesScored: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricNameGamesScored,
			Help: "Total number of games scored",
		}),
		Rewards: factory.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNameRewards,
			Help: "Total number of tickets per reward tier",
		}, []string{LabelReward}),
		PrizeWon: factory.NewCounter(prometheus.CounterOpts{
			Name: MetricNamePrizeWon,
			Help: "Total prize money won",
		}),
		LastYield: factory.NewGauge(prometheus.GaugeOpts{
			Name: MetricNameLastYield,
			Help: "Yield of the most recently scored game",
		}),
	}
}

// Register subscribes to all game events
func (c *Collector) Register(bus *events.Bus) {
	eventTypes := []events.EventType{
		events.EventTypeTicketsPurchased,
		events.EventTypeWinningEntered,
		events.EventTypeGameScored,
	}
	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, c.HandleEvent)
	}
}

// HandleEvent updates metrics for one event
func (c *Collector) HandleEvent(event events.Event) {
	c.EventsPublished.WithLabelValues(string(event.Type())).Inc()

	switch e := event.(type) {
	case events.TicketsPurchasedEvent:
		c.TicketsPurchased.Add(float64(e.TicketCount))
		c.MoneySpent.Add(float64(e.Amount))
	case events.GameScoredEvent:
		c.GamesScored.Inc()
		for reward, count := range e.Counts {
			c.Rewards.WithLabelValues(reward).Add(float64(count))
		}
		c.PrizeWon.Add(float64(e.TotalPrize))
		c.LastYield.Set(e.Yield)
	}
}

// Gatherer exposes the collector's registry
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile writes every metric in the text exposition format, replacing path atomically
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	log.WithField("path", path).Debug("Metrics written")
	return nil
}
