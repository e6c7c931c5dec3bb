package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLottoNumber(t *testing.T) {
	t.Parallel()

	for n := -5; n <= 50; n++ {
		got, err := NewLottoNumber(n)
		if n >= MinLottoNumber && n <= MaxLottoNumber {
			require.NoError(t, err, "n=%d", n)
			assert.Equal(t, n, got.Int())
		} else {
			assert.ErrorIs(t, err, ErrOutOfRange, "n=%d", n)
		}
	}
}

func TestLottoNumber_Equality(t *testing.T) {
	t.Parallel()

	a, err := NewLottoNumber(7)
	require.NoError(t, err)
	b, err := NewLottoNumber(7)
	require.NoError(t, err)
	c, err := NewLottoNumber(8)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.False(t, a == c)
	assert.Zero(t, a.Compare(b))
	assert.Negative(t, a.Compare(c))
	assert.Positive(t, c.Compare(a))
	assert.Equal(t, "7", a.String())
}
