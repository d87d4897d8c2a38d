package utils

// AverageOfN computes the WCA-style rolling average over the most recent n
// solves: the single best and single worst of the window are discarded and the
// remaining n-2 durations are averaged. durations must be ordered oldest to
// newest and hold integer milliseconds; the result is in seconds.
//
// Returns nil when fewer than n solves exist. When several solves tie for best
// or worst, the earliest-submitted of the tied solves is the one discarded, so
// the trim is deterministic.
func AverageOfN(durations []int64, n int) *float64 {
	if n < 3 || len(durations) < n {
		return nil
	}

	window := durations[len(durations)-n:]

	bestIdx := 0
	for i, d := range window {
		if d < window[bestIdx] {
			bestIdx = i
		}
	}

	worstIdx := -1
	for i, d := range window {
		if i == bestIdx {
			continue
		}
		if worstIdx == -1 || d > window[worstIdx] {
			worstIdx = i
		}
	}

	var sum int64
	for i, d := range window {
		if i == bestIdx || i == worstIdx {
			continue
		}
		sum += d
	}

	avg := float64(sum) / float64(n-2) / 1000.0
	return &avg
}

// Streak counts the consecutive challenge days ending at the most recent solve.
// dayKeys must be ordered oldest to newest with no duplicates (the ledger
// guarantees at most one solve per day).
func Streak(dayKeys []string) int {
	if len(dayKeys) == 0 {
		return 0
	}

	streak := 1
	for i := len(dayKeys) - 1; i > 0; i-- {
		if dayKeys[i-1] != PreviousDayKey(dayKeys[i]) {
			break
		}
		streak++
	}
	return streak
}
