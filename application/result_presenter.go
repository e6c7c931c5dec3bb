package application

import (
	"fmt"
	"io"
	"strings"

	"lotto/domain/entities"
	"lotto/domain/utils"
)

// Console prompts
const (
	PromptPurchaseAmount = "구입금액을 입력해 주세요."
	PromptWinningNumbers = "지난 주 당첨 번호를 입력해 주세요."
	PromptBonusNumber    = "보너스 볼을 입력해 주세요."
)

// ResultPresenter writes game output for a console user
type ResultPresenter struct {
	out       io.Writer
	formatter *utils.MoneyFormatter
}

// NewResultPresenter creates a presenter writing to out
func NewResultPresenter(out io.Writer, formatter *utils.MoneyFormatter) *ResultPresenter {
	return &ResultPresenter{out: out, formatter: formatter}
}

// Prompt prints a question line
func (p *ResultPresenter) Prompt(message string) {
	fmt.Fprintln(p.out, message)
}

// Error prints a validation error so the user can try again
func (p *ResultPresenter) Error(err error) {
	fmt.Fprintf(p.out, "[ERROR] %v\n", err)
}

// Tickets prints the purchase count followed by every ticket in ascending order
func (p *ResultPresenter) Tickets(tickets *entities.LottoTickets) {
	fmt.Fprintf(p.out, "%d개를 구매했습니다.\n", tickets.Size())
	for _, ticket := range tickets.Tickets() {
		fmt.Fprintln(p.out, FormatTicket(ticket))
	}
	fmt.Fprintln(p.out)
}

// Result prints per-tier statistics and the yield
func (p *ResultPresenter) Result(result *entities.LottoResult) {
	fmt.Fprintln(p.out, "당첨 통계")
	fmt.Fprintln(p.out, "---")
	for _, reward := range entities.Rewards() {
		if !reward.IsWinning() {
			continue
		}
		fmt.Fprintf(p.out, "%s (%s원) - %d개\n",
			describeReward(reward),
			p.formatter.FormatAmount(reward.Prize()),
			result.Counts[reward],
		)
	}
	fmt.Fprintf(p.out, "총 당첨금은 %s원(%s)입니다.\n",
		p.formatter.FormatAmount(result.TotalPrize),
		utils.FormatShortNotation(result.TotalPrize),
	)
	fmt.Fprintf(p.out, "총 수익률은 %s입니다.\n", p.formatter.FormatPercent(result.Yield()))
}

// FormatTicket renders a ticket as "[1, 2, 3, 4, 5, 6]"
func FormatTicket(ticket entities.LottoTicket) string {
	numbers := ticket.Numbers()
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func describeReward(reward entities.Reward) string {
	if reward.RequiresBonus() {
		return fmt.Sprintf("%d개 일치, 보너스 볼 일치", reward.MatchCount())
	}
	return fmt.Sprintf("%d개 일치", reward.MatchCount())
}
