package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_ManualTickets(t *testing.T) {
	setupTestConfig(t, "1,2,3,4,5,6;7,14,21,28,35,42")

	var out bytes.Buffer
	require.NoError(t, Analyze([]string{"2000"}, &out))

	output := out.String()
	assert.Contains(t, output, "6개 일치 (2,000,000,000원) - 1 / 8,145,060\n")
	assert.Contains(t, output, "기대 수익률은 49.0%입니다.\n")
	assert.Contains(t, output, "2개를 구매했습니다.\n[1, 2, 3, 4, 5, 6]\n[7, 14, 21, 28, 35, 42]\n")
	assert.Contains(t, output, "모의 추첨 2,000회 (티켓 2장)\n")
	assert.Contains(t, output, "χ² = ")
}

func TestAnalyze_RandomTicket(t *testing.T) {
	setupTestConfig(t, "")

	var out bytes.Buffer
	require.NoError(t, Analyze(nil, &out))
	assert.Contains(t, out.String(), "모의 추첨 10,000회 (티켓 1장)\n")
}

func TestAnalyze_InvalidDrawCount(t *testing.T) {
	setupTestConfig(t, "")

	for _, arg := range []string{"zero", "0", "-5"} {
		err := Analyze([]string{arg}, io.Discard)
		assert.ErrorContains(t, err, "invalid draw count", arg)
	}
}
