package entities

// Reward is a payout tier determined by match count and, at five matches, the bonus number
type Reward string

// All reward tiers
const (
	RewardSixMatch           Reward = "six_match"
	RewardFiveMatchPlusBonus Reward = "five_match_plus_bonus"
	RewardFiveMatch          Reward = "five_match"
	RewardFourMatch          Reward = "four_match"
	RewardThreeMatch         Reward = "three_match"
	RewardNone               Reward = "no_reward"
)

type rewardRule struct {
	reward     Reward
	prize      int64
	matchCount int
	matches    func(matchCount int, bonusMatched bool) bool
}

// rewardTable is checked top to bottom; the first matching rule wins.
// Five-with-bonus precedes five-without so the bonus only decides that split.
var rewardTable = []rewardRule{
	{
		reward:     RewardSixMatch,
		prize:      2_000_000_000,
		matchCount: 6,
		matches:    func(c int, _ bool) bool { return c == 6 },
	},
	{
		reward:     RewardFiveMatchPlusBonus,
		prize:      30_000_000,
		matchCount: 5,
		matches:    func(c int, bonus bool) bool { return c == 5 && bonus },
	},
	{
		reward:     RewardFiveMatch,
		prize:      1_500_000,
		matchCount: 5,
		matches:    func(c int, bonus bool) bool { return c == 5 && !bonus },
	},
	{
		reward:     RewardFourMatch,
		prize:      50_000,
		matchCount: 4,
		matches:    func(c int, _ bool) bool { return c == 4 },
	},
	{
		reward:     RewardThreeMatch,
		prize:      5_000,
		matchCount: 3,
		matches:    func(c int, _ bool) bool { return c == 3 },
	},
	{
		reward:     RewardNone,
		prize:      0,
		matchCount: 0,
		matches:    func(c int, _ bool) bool { return c < 3 },
	},
}

// Rank maps a comparison result to its reward tier
func Rank(matchCount int, bonusMatched bool) Reward {
	for _, rule := range rewardTable {
		if rule.matches(matchCount, bonusMatched) {
			return rule.reward
		}
	}
	return RewardNone
}

// Rewards returns every tier in display order, lowest winning tier first and RewardNone last
func Rewards() []Reward {
	return []Reward{
		RewardThreeMatch,
		RewardFourMatch,
		RewardFiveMatch,
		RewardFiveMatchPlusBonus,
		RewardSixMatch,
		RewardNone,
	}
}

// Prize returns the fixed payout for the tier
func (r Reward) Prize() int64 {
	if rule, ok := r.rule(); ok {
		return rule.prize
	}
	return 0
}

// MatchCount returns the number of matched numbers the tier requires (0 for RewardNone)
func (r Reward) MatchCount() int {
	if rule, ok := r.rule(); ok {
		return rule.matchCount
	}
	return 0
}

// RequiresBonus returns true only for the five-plus-bonus tier
func (r Reward) RequiresBonus() bool {
	return r == RewardFiveMatchPlusBonus
}

// IsWinning returns true for every tier with a prize
func (r Reward) IsWinning() bool {
	return r.Prize() > 0
}

func (r Reward) rule() (rewardRule, bool) {
	for _, rule := range rewardTable {
		if rule.reward == r {
			return rule, true
		}
	}
	return rewardRule{}, false
}
