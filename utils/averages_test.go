package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageOfN_TrimmedMean(t *testing.T) {
	// 10s, 20s, 30s, 40s, 50s: best (10s) and worst (50s) are discarded,
	// ao5 = mean of 20s, 30s, 40s = 30s
	durations := []int64{10000, 20000, 30000, 40000, 50000}

	avg := AverageOfN(durations, 5)
	require.NotNil(t, avg)
	assert.InDelta(t, 30.0, *avg, 1e-9)
}

func TestAverageOfN_InsufficientData(t *testing.T) {
	durations := []int64{10000, 20000, 30000, 40000}

	assert.Nil(t, AverageOfN(durations, 5))
	assert.Nil(t, AverageOfN(nil, 5))
	assert.Nil(t, AverageOfN(durations, 12))
}

func TestAverageOfN_FifthSolveMakesItDefined(t *testing.T) {
	durations := []int64{10000, 20000, 30000, 40000}
	require.Nil(t, AverageOfN(durations, 5))

	durations = append(durations, 50000)
	assert.NotNil(t, AverageOfN(durations, 5))
}

func TestAverageOfN_UsesMostRecentWindow(t *testing.T) {
	// Only the last five solves count: 20s, 30s, 40s, 50s, 60s -> trim 20s and
	// 60s, average 30s, 40s, 50s
	durations := []int64{99000, 20000, 30000, 40000, 50000, 60000}

	avg := AverageOfN(durations, 5)
	require.NotNil(t, avg)
	assert.InDelta(t, 40.0, *avg, 1e-9)
}

func TestAverageOfN_TiesTrimEarliestSubmitted(t *testing.T) {
	// Two solves tie for worst (50s); the earlier one is discarded, the later
	// one stays in the average. Same rule for the tied best (10s).
	durations := []int64{50000, 10000, 10000, 50000, 30000}

	avg := AverageOfN(durations, 5)
	require.NotNil(t, avg)
	// trimmed: first 50s (worst) and first 10s (best); remaining 10s, 50s, 30s
	assert.InDelta(t, 30.0, *avg, 1e-9)
}

func TestAverageOfN_AllEqualDurations(t *testing.T) {
	durations := []int64{30000, 30000, 30000, 30000, 30000}

	avg := AverageOfN(durations, 5)
	require.NotNil(t, avg)
	assert.InDelta(t, 30.0, *avg, 1e-9)
}

func TestAverageOfN_Ao12(t *testing.T) {
	durations := make([]int64, 12)
	for i := range durations {
		durations[i] = int64((i + 1) * 1000) // 1s .. 12s
	}

	avg := AverageOfN(durations, 12)
	require.NotNil(t, avg)
	// trim 1s and 12s, average 2..11 = 6.5s
	assert.InDelta(t, 6.5, *avg, 1e-9)
}

func TestStreak(t *testing.T) {
	assert.Equal(t, 0, Streak(nil))
	assert.Equal(t, 1, Streak([]string{"2024-05-01"}))
	assert.Equal(t, 3, Streak([]string{"2024-04-29", "2024-04-30", "2024-05-01"}))

	// A gap resets the streak
	assert.Equal(t, 2, Streak([]string{"2024-04-27", "2024-04-30", "2024-05-01"}))
}

func TestStreak_AcrossMonthBoundary(t *testing.T) {
	assert.Equal(t, 2, Streak([]string{"2024-02-29", "2024-03-01"}))
}
