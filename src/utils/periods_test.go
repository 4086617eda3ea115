package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-server/src/utils"
)

func TestParsePeriod(t *testing.T) {
	t.Run("accepts every known token", func(t *testing.T) {
		for _, token := range []string{"1D", "1W", "1M", "3M", "6M", "1Y", "ALL"} {
			period, err := utils.ParsePeriod(token)
			require.NoError(t, err)
			assert.Equal(t, utils.Period(token), period)
		}
	})

	t.Run("empty defaults to one month", func(t *testing.T) {
		period, err := utils.ParsePeriod("")
		require.NoError(t, err)
		assert.Equal(t, utils.PeriodMonth, period)
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		for _, token := range []string{"2W", "1m", "all", "YTD"} {
			_, err := utils.ParsePeriod(token)
			assert.Error(t, err, token)
		}
	})
}

func TestCutoffDate(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, -1), utils.PeriodDay.CutoffDate(now))
	assert.Equal(t, now.AddDate(0, 0, -7), utils.PeriodWeek.CutoffDate(now))
	assert.Equal(t, now.AddDate(0, -1, 0), utils.PeriodMonth.CutoffDate(now))
	assert.Equal(t, now.AddDate(0, -3, 0), utils.PeriodThreeMonth.CutoffDate(now))
	assert.Equal(t, now.AddDate(0, -6, 0), utils.PeriodSixMonth.CutoffDate(now))
	assert.Equal(t, now.AddDate(-1, 0, 0), utils.PeriodYear.CutoffDate(now))
	assert.Equal(t, time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC), utils.PeriodAll.CutoffDate(now))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.57, utils.Round2(10.565))
	assert.Equal(t, 0.1, utils.Round2(0.1))
	assert.Equal(t, -3.33, utils.Round2(-10.0/3.0))
	assert.Equal(t, 0.0, utils.Round2(0))
}

func TestRound6(t *testing.T) {
	assert.Equal(t, 0.333333, utils.Round6(1.0/3.0))
	assert.Equal(t, 1.000001, utils.Round6(1.0000005))
}
