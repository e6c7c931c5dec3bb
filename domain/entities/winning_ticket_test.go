package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWinningTicket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		numbers []int
		bonus   int
		wantErr error
	}{
		{name: "valid", numbers: []int{1, 2, 3, 4, 5, 6}, bonus: 9},
		{name: "nil numbers", numbers: nil, bonus: 1, wantErr: ErrNullInput},
		{name: "five numbers", numbers: []int{1, 2, 3, 4, 5}, bonus: 1, wantErr: ErrWrongSize},
		{name: "seven numbers", numbers: []int{1, 2, 3, 4, 5, 6, 7}, bonus: 9, wantErr: ErrWrongSize},
		{name: "empty numbers", numbers: []int{}, bonus: 9, wantErr: ErrWrongSize},
		{name: "bonus repeats winning number", numbers: []int{1, 2, 3, 4, 5, 6}, bonus: 1, wantErr: ErrDuplicate},
		{name: "winning numbers repeat", numbers: []int{1, 1, 3, 4, 5, 6}, bonus: 9, wantErr: ErrDuplicate},
		{name: "winning number below range", numbers: []int{0, 2, 3, 4, 5, 6}, bonus: 9, wantErr: ErrOutOfRange},
		{name: "winning number above range", numbers: []int{1, 2, 3, 4, 5, 46}, bonus: 9, wantErr: ErrOutOfRange},
		{name: "bonus out of range", numbers: []int{1, 2, 3, 4, 5, 6}, bonus: 46, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			winning, err := NewWinningTicket(tt.numbers, tt.bonus)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, winning)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.numbers, winning.Ticket().Ints())
			assert.Equal(t, tt.bonus, winning.Bonus().Int())
		})
	}
}

func TestNewWinningTicket_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	numbers := []int{6, 5, 4, 3, 2, 1}
	_, err := NewWinningTicket(numbers, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, numbers)
	assert.Len(t, numbers, 6)

	_, err = NewWinningTicket(numbers, 6)
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, numbers)
}

func TestWinningTicket_Match(t *testing.T) {
	t.Parallel()

	winning, err := NewWinningTicket([]int{1, 2, 3, 4, 5, 6}, 7)
	require.NoError(t, err)

	tests := []struct {
		name   string
		ticket []int
		want   Reward
	}{
		{name: "all six", ticket: []int{1, 2, 3, 4, 5, 6}, want: RewardSixMatch},
		{name: "five plus bonus", ticket: []int{1, 2, 3, 4, 5, 7}, want: RewardFiveMatchPlusBonus},
		{name: "five without bonus", ticket: []int{1, 2, 3, 4, 5, 8}, want: RewardFiveMatch},
		{name: "four with bonus", ticket: []int{1, 2, 3, 4, 7, 8}, want: RewardFourMatch},
		{name: "three", ticket: []int{1, 2, 3, 10, 11, 12}, want: RewardThreeMatch},
		{name: "two with bonus", ticket: []int{1, 2, 7, 10, 11, 12}, want: RewardNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, winning.Match(mustTicket(t, tt.ticket...)))
		})
	}
}
