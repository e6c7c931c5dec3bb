package application

import (
	"fmt"

	"lotto/domain/entities"
	"lotto/domain/services"
)

// Odds prints the exact chance of each winning tier for a single ticket
func (p *ResultPresenter) Odds(odds []services.TierOdds, total int64, expectedYield float64) {
	fmt.Fprintln(p.out, "당첨 확률")
	fmt.Fprintln(p.out, "---")
	for _, tier := range odds {
		if !tier.Reward.IsWinning() {
			continue
		}
		fmt.Fprintf(p.out, "%s (%s원) - %s / %s\n",
			describeReward(tier.Reward),
			p.formatter.FormatAmount(tier.Reward.Prize()),
			p.formatter.FormatAmount(tier.Outcomes),
			p.formatter.FormatAmount(total),
		)
	}
	fmt.Fprintf(p.out, "기대 수익률은 %s입니다.\n", p.formatter.FormatPercent(expectedYield))
}

// Simulation prints observed against expected tier counts and the chi-squared verdict
func (p *ResultPresenter) Simulation(report *services.SimulationReport) {
	fmt.Fprintf(p.out, "모의 추첨 %s회 (티켓 %d장)\n",
		p.formatter.FormatAmount(int64(report.Draws)), report.TicketCount)
	fmt.Fprintln(p.out, "---")
	for _, reward := range entities.Rewards() {
		if !reward.IsWinning() {
			continue
		}
		fmt.Fprintf(p.out, "%s - 관측 %d개 / 기대 %.2f개\n",
			describeReward(reward),
			report.Observed[reward],
			report.Expected[reward],
		)
	}
	fmt.Fprintf(p.out, "모의 수익률은 %s입니다.\n", p.formatter.FormatPercent(report.Yield))

	if report.DegreesOfFreedom == 0 {
		fmt.Fprintln(p.out, "χ² 검정을 하기에는 추첨 횟수가 부족합니다.")
		return
	}
	if report.Consistent() {
		fmt.Fprintf(p.out, "χ² = %.2f (자유도 %d) ✓ 이론 확률과 일치합니다.\n", report.ChiSquared, report.DegreesOfFreedom)
	} else {
		fmt.Fprintf(p.out, "χ² = %.2f (자유도 %d) ✗ 이론 확률과 차이가 큽니다.\n", report.ChiSquared, report.DegreesOfFreedom)
	}
}
