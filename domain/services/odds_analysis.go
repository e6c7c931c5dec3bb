package services

import (
	"errors"
	"fmt"
	"math"

	"lotto/domain/entities"

	log "github.com/sirupsen/logrus"
)

// minExpectedCount is the smallest expected tier count kept in the chi-squared test
const minExpectedCount = 5.0

// ErrInvalidDrawCount is returned when a simulation is asked for no draws
var ErrInvalidDrawCount = errors.New("draw count must be positive")

// chiSquaredCritical95 holds the 95% critical values indexed by degrees of freedom
var chiSquaredCritical95 = []float64{0, 3.841, 5.991, 7.815, 9.488, 11.070}

// TierOdds is the exact chance of one ticket landing in a reward tier on a single draw
type TierOdds struct {
	Reward entities.Reward
	// Outcomes counts winning combinations out of TotalOutcomes that produce Reward
	Outcomes    int64
	Probability float64
}

// TotalOutcomes is the number of distinct winning combinations, C(45, 6)
func TotalOutcomes() int64 {
	return binomial(poolSize(), entities.TicketSize)
}

// TheoreticalOdds returns the exact odds for every tier, in entities.Rewards() order.
//
// For k main numbers matched there are C(6,k)*C(39,6-k) draws. The bonus is then one of the
// 39 numbers left over, and it hits the ticket in 6-k of those cases.
func TheoreticalOdds() []TierOdds {
	pool := poolSize()
	rest := pool - entities.TicketSize
	outcomes := make(map[entities.Reward]int64)

	for k := 0; k <= entities.TicketSize; k++ {
		draws := binomial(entities.TicketSize, k) * binomial(rest, entities.TicketSize-k)
		bonusHits := int64(entities.TicketSize - k)
		outcomes[entities.Rank(k, true)] += draws * bonusHits
		outcomes[entities.Rank(k, false)] += draws * (int64(rest) - bonusHits)
	}

	total := TotalOutcomes()
	odds := make([]TierOdds, 0, len(outcomes))
	for _, reward := range entities.Rewards() {
		// every bonus split sums back to a multiple of rest
		combos := outcomes[reward] / int64(rest)
		odds = append(odds, TierOdds{
			Reward:      reward,
			Outcomes:    combos,
			Probability: float64(combos) / float64(total),
		})
	}
	return odds
}

// ExpectedYield is the long-run prize returned per unit spent on a single ticket
func ExpectedYield() float64 {
	var expectedPrize float64
	for _, tier := range TheoreticalOdds() {
		expectedPrize += tier.Probability * float64(tier.Reward.Prize())
	}
	return expectedPrize / float64(entities.TicketPrice)
}

// SimulationReport compares simulated draws against the exact odds
type SimulationReport struct {
	Draws            int
	TicketCount      int
	Observed         map[entities.Reward]int
	Expected         map[entities.Reward]float64
	TotalPrize       int64
	Yield            float64
	ChiSquared       float64
	DegreesOfFreedom int
}

// Consistent reports whether the observed tier distribution passes the chi-squared test at 95%.
// With fewer than two testable tiers there is nothing to reject.
func (r *SimulationReport) Consistent() bool {
	if r.DegreesOfFreedom <= 0 {
		return true
	}
	if r.DegreesOfFreedom >= len(chiSquaredCritical95) {
		return false
	}
	return r.ChiSquared < chiSquaredCritical95[r.DegreesOfFreedom]
}

// SimulateDraws scores tickets against draws winning combinations from drawer
func SimulateDraws(tickets *entities.LottoTickets, draws int, drawer entities.WinningDrawer) (*SimulationReport, error) {
	if draws <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDrawCount, draws)
	}
	if tickets == nil || tickets.Size() == 0 {
		return nil, errors.New("no tickets to simulate")
	}

	report := &SimulationReport{
		Draws:       draws,
		TicketCount: tickets.Size(),
		Observed:    make(map[entities.Reward]int),
		Expected:    make(map[entities.Reward]float64),
	}
	for _, reward := range entities.Rewards() {
		report.Observed[reward] = 0
	}

	for i := 0; i < draws; i++ {
		winning, err := drawer.Draw()
		if err != nil {
			return nil, fmt.Errorf("failed to draw winning numbers %d of %d: %w", i+1, draws, err)
		}
		result := entities.NewLottoResult(
			tickets.CompareAll(winning.Ticket()),
			tickets.CompareAllBonus(winning.Bonus()),
		)
		for reward, count := range result.Counts {
			report.Observed[reward] += count
		}
		report.TotalPrize += result.TotalPrize
	}

	plays := draws * tickets.Size()
	report.Yield = float64(report.TotalPrize) / float64(int64(plays)*entities.TicketPrice)

	testedTiers := 0
	for _, tier := range TheoreticalOdds() {
		expected := float64(plays) * tier.Probability
		report.Expected[tier.Reward] = expected
		if expected < minExpectedCount {
			continue
		}
		testedTiers++
		report.ChiSquared += math.Pow(float64(report.Observed[tier.Reward])-expected, 2) / expected
	}
	if testedTiers > 0 {
		report.DegreesOfFreedom = testedTiers - 1
	}

	log.WithFields(log.Fields{
		"draws":        draws,
		"ticket_count": tickets.Size(),
		"yield":        report.Yield,
		"chi_squared":  report.ChiSquared,
		"df":           report.DegreesOfFreedom,
	}).Debug("simulation finished")

	return report, nil
}

func poolSize() int {
	return entities.MaxLottoNumber - entities.MinLottoNumber + 1
}

func binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	result := int64(1)
	for i := 1; i <= k; i++ {
		result = result * int64(n-k+i) / int64(i)
	}
	return result
}
