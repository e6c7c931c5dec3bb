package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"lotto/application"
	"lotto/config"
	"lotto/domain/entities"
	"lotto/domain/events"
	"lotto/domain/services"
	"lotto/domain/utils"
	"lotto/metrics"

	log "github.com/sirupsen/logrus"
)

// userErrors are validation failures the user can fix by typing new input
var userErrors = []error{
	application.ErrNotNumeric,
	entities.ErrOutOfRange,
	entities.ErrWrongSize,
	entities.ErrDuplicate,
	entities.ErrNullInput,
	entities.ErrInvalidAmount,
}

// Run plays one lotto game on the console, reading answers from in and writing to out
func Run(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := configureLogging(cfg); err != nil {
		return err
	}

	formatter, err := utils.NewMoneyFormatter(cfg.Locale)
	if err != nil {
		return fmt.Errorf("failed to create money formatter: %w", err)
	}

	generator, err := newTicketGenerator(cfg)
	if err != nil {
		return err
	}

	bus := events.NewBus()
	application.RegisterApplicationSubscriptions(bus)
	collector := metrics.NewCollector()
	collector.Register(bus)

	game := services.NewLottoGame(generator, bus)
	console := &console{
		ctx:       ctx,
		scanner:   bufio.NewScanner(in),
		presenter: application.NewResultPresenter(out, formatter),
	}

	log.WithFields(log.Fields{
		"run_id":      game.RunID(),
		"environment": cfg.Environment,
	}).Info("Starting lotto game")

	for {
		amount, err := console.askAmount()
		if err != nil {
			return err
		}
		tickets, err := game.Purchase(amount)
		if err == nil {
			console.presenter.Tickets(tickets)
			break
		}
		if !isUserError(err) {
			return err
		}
		console.presenter.Error(err)
	}

	for {
		numbers, bonus, err := console.askWinning()
		if err != nil {
			return err
		}
		err = game.EnterWinning(numbers, bonus)
		if err == nil {
			break
		}
		if !isUserError(err) {
			return err
		}
		console.presenter.Error(err)
	}

	result, err := game.Result()
	if err != nil {
		return fmt.Errorf("failed to score tickets: %w", err)
	}
	console.presenter.Result(result)

	if cfg.MetricsFile != "" {
		if err := collector.WriteTextfile(cfg.MetricsFile); err != nil {
			log.WithError(err).Warn("Failed to export metrics")
		}
	}

	log.WithField("run_id", game.RunID()).Info("Lotto game finished")
	return nil
}

func configureLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func newTicketGenerator(cfg *config.Config) (entities.TicketGenerator, error) {
	if cfg.ManualTickets == "" {
		return entities.NewRandomTicketGenerator(), nil
	}

	tickets, err := application.ParseTicketList(cfg.ManualTickets)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LOTTO_MANUAL_TICKETS: %w", err)
	}
	generator, err := entities.NewQueueTicketGenerator(tickets)
	if err != nil {
		return nil, fmt.Errorf("failed to load LOTTO_MANUAL_TICKETS: %w", err)
	}
	log.WithField("ticket_count", generator.Remaining()).Info("Using manual ticket queue")
	return generator, nil
}

func isUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// console reads one answer per line and re-prompts on unparsable input
type console struct {
	ctx       context.Context
	scanner   *bufio.Scanner
	presenter *application.ResultPresenter
}

func (c *console) askAmount() (int64, error) {
	for {
		line, err := c.ask(application.PromptPurchaseAmount)
		if err != nil {
			return 0, err
		}
		amount, err := application.ParseAmount(line)
		if err == nil {
			return amount, nil
		}
		c.presenter.Error(err)
	}
}

func (c *console) askWinning() ([]int, int, error) {
	for {
		line, err := c.ask(application.PromptWinningNumbers)
		if err != nil {
			return nil, 0, err
		}
		numbers, err := application.ParseNumbers(line)
		if err != nil {
			c.presenter.Error(err)
			continue
		}

		line, err = c.ask(application.PromptBonusNumber)
		if err != nil {
			return nil, 0, err
		}
		bonus, err := application.ParseNumber(line)
		if err != nil {
			c.presenter.Error(err)
			continue
		}
		return numbers, bonus, nil
	}
}

func (c *console) ask(prompt string) (string, error) {
	if err := c.ctx.Err(); err != nil {
		return "", err
	}
	c.presenter.Prompt(prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return c.scanner.Text(), nil
}
