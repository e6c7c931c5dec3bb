package entities

import "maps"

// LottoResult summarizes how a ticket collection scored against a winning ticket
type LottoResult struct {
	Counts      map[Reward]int // every tier present, zero when unseen
	TicketCount int
	TotalPrize  int64
}

// NewLottoResult ranks each index-aligned (match count, bonus matched) pair
func NewLottoResult(matchCounts []int, bonusMatched []bool) *LottoResult {
	result := &LottoResult{
		Counts:      make(map[Reward]int, len(rewardTable)),
		TicketCount: len(matchCounts),
	}
	for _, reward := range Rewards() {
		result.Counts[reward] = 0
	}

	for i, matchCount := range matchCounts {
		reward := Rank(matchCount, bonusMatched[i])
		result.Counts[reward]++
		result.TotalPrize += reward.Prize()
	}

	return result
}

// CountsCopy returns the tier counts without exposing the internal map
func (r *LottoResult) CountsCopy() map[Reward]int {
	return maps.Clone(r.Counts)
}

// TotalSpent returns the money paid for all tickets
func (r *LottoResult) TotalSpent() int64 {
	return int64(r.TicketCount) * TicketPrice
}

// Yield returns total prize over total spent; 1.0 is break-even and an empty collection yields 0
func (r *LottoResult) Yield() float64 {
	spent := r.TotalSpent()
	if spent == 0 {
		return 0
	}
	return float64(r.TotalPrize) / float64(spent)
}
