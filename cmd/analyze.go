package cmd

import (
	"fmt"
	"io"
	"strconv"

	"lotto/application"
	"lotto/config"
	"lotto/domain/entities"
	"lotto/domain/services"
	"lotto/domain/utils"

	log "github.com/sirupsen/logrus"
)

// DefaultAnalysisDraws is used when analyze is called without a draw count
const DefaultAnalysisDraws = 10_000

// Analyze prints the exact tier odds and checks them against simulated draws.
// args may hold the draw count. The simulated tickets come from LOTTO_MANUAL_TICKETS,
// or a single random ticket when that is unset.
func Analyze(args []string, out io.Writer) error {
	cfg, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := configureLogging(cfg); err != nil {
		return err
	}

	draws := DefaultAnalysisDraws
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("usage: lotto analyze [draws]: invalid draw count %q", args[0])
		}
		draws = n
	}

	formatter, err := utils.NewMoneyFormatter(cfg.Locale)
	if err != nil {
		return fmt.Errorf("failed to create money formatter: %w", err)
	}
	presenter := application.NewResultPresenter(out, formatter)

	tickets, err := analysisTickets(cfg)
	if err != nil {
		return err
	}

	presenter.Odds(services.TheoreticalOdds(), services.TotalOutcomes(), services.ExpectedYield())
	fmt.Fprintln(out)
	presenter.Tickets(tickets)

	report, err := services.SimulateDraws(tickets, draws, entities.NewRandomTicketGenerator())
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	presenter.Simulation(report)

	log.WithFields(log.Fields{
		"draws":      draws,
		"consistent": report.Consistent(),
	}).Info("Odds analysis finished")
	return nil
}

func analysisTickets(cfg *config.Config) (*entities.LottoTickets, error) {
	generator, err := newTicketGenerator(cfg)
	if err != nil {
		return nil, err
	}

	count := 1
	if queue, ok := generator.(*entities.QueueTicketGenerator); ok {
		count = queue.Remaining()
	}
	money, err := entities.NewMoney(int64(count) * entities.TicketPrice)
	if err != nil {
		return nil, err
	}
	return entities.PurchaseTickets(money, generator)
}
