package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		matchCount   int
		bonusMatched bool
		want         Reward
	}{
		{name: "six matches", matchCount: 6, bonusMatched: false, want: RewardSixMatch},
		{name: "six matches ignores bonus", matchCount: 6, bonusMatched: true, want: RewardSixMatch},
		{name: "five matches with bonus", matchCount: 5, bonusMatched: true, want: RewardFiveMatchPlusBonus},
		{name: "five matches without bonus", matchCount: 5, bonusMatched: false, want: RewardFiveMatch},
		{name: "four matches", matchCount: 4, bonusMatched: false, want: RewardFourMatch},
		{name: "four matches ignores bonus", matchCount: 4, bonusMatched: true, want: RewardFourMatch},
		{name: "three matches", matchCount: 3, bonusMatched: true, want: RewardThreeMatch},
		{name: "two matches", matchCount: 2, bonusMatched: true, want: RewardNone},
		{name: "no matches", matchCount: 0, bonusMatched: false, want: RewardNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Rank(tt.matchCount, tt.bonusMatched))
		})
	}
}

func TestReward_Prize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(2_000_000_000), RewardSixMatch.Prize())
	assert.Equal(t, int64(30_000_000), RewardFiveMatchPlusBonus.Prize())
	assert.Equal(t, int64(1_500_000), RewardFiveMatch.Prize())
	assert.Equal(t, int64(50_000), RewardFourMatch.Prize())
	assert.Equal(t, int64(5_000), RewardThreeMatch.Prize())
	assert.Equal(t, int64(0), RewardNone.Prize())
	assert.Equal(t, int64(0), Reward("unknown").Prize())
}

func TestReward_Attributes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, RewardFiveMatchPlusBonus.MatchCount())
	assert.Equal(t, 3, RewardThreeMatch.MatchCount())
	assert.True(t, RewardFiveMatchPlusBonus.RequiresBonus())
	assert.False(t, RewardFiveMatch.RequiresBonus())
	assert.True(t, RewardThreeMatch.IsWinning())
	assert.False(t, RewardNone.IsWinning())
}

func TestRewards_CoversTable(t *testing.T) {
	t.Parallel()

	rewards := Rewards()
	assert.Len(t, rewards, len(rewardTable))
	for _, rule := range rewardTable {
		assert.Contains(t, rewards, rule.reward)
	}
	assert.Equal(t, RewardNone, rewards[len(rewards)-1])
}
