package services

import (
	"api/database"
	"api/models"
	"fmt"
	"sort"
)

// LeaderboardEntry is a ranked row of a day's leaderboard. Computed on read,
// never persisted.
type LeaderboardEntry struct {
	UserID          string  `json:"user_id"`
	Username        string  `json:"username"`
	Image           string  `json:"image,omitempty"`
	DayKey          string  `json:"day_key"`
	DurationSeconds float64 `json:"duration_seconds"`
	Rank            int     `json:"rank"`
}

// Rank orders a day's solve attempts into leaderboard entries. Durations are
// normalized from stored milliseconds by a fixed division, never guessed from
// magnitude. Ties on duration are broken by earlier submission, then by id so
// the ordering is reproducible; ranks are dense (1, 2, 3, ... with no gaps).
func Rank(attempts []models.SolveAttempt) []LeaderboardEntry {
	sorted := make([]models.SolveAttempt, len(attempts))
	copy(sorted, attempts)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].DurationMillis != sorted[j].DurationMillis {
			return sorted[i].DurationMillis < sorted[j].DurationMillis
		}
		if !sorted[i].SubmittedAt.Equal(sorted[j].SubmittedAt) {
			return sorted[i].SubmittedAt.Before(sorted[j].SubmittedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	entries := make([]LeaderboardEntry, len(sorted))
	for i, attempt := range sorted {
		entry := LeaderboardEntry{
			UserID:          attempt.UserID,
			DayKey:          attempt.DayKey,
			DurationSeconds: attempt.Seconds(),
			Rank:            i + 1,
		}
		if attempt.User != nil {
			entry.Username = attempt.User.Username
			entry.Image = attempt.User.ImageURL
		}
		entries[i] = entry
	}
	return entries
}

// LeaderboardFor computes the ranked leaderboard for the given day from all of
// that day's accepted solves. A day with no solves yields an empty list, not an
// error. Results pass through the optional cache; re-running on unchanged data
// yields an identical list either way.
func LeaderboardFor(dayKey string) ([]LeaderboardEntry, error) {
	if entries, ok := cachedLeaderboard(dayKey); ok {
		return entries, nil
	}

	var attempts []models.SolveAttempt
	if err := database.DB.Where("day_key = ?", dayKey).
		Preload("User").Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch solve attempts: %w", err)
	}

	entries := Rank(attempts)
	storeLeaderboard(dayKey, entries)
	return entries, nil
}
