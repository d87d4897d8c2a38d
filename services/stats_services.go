package services

import (
	"api/database"
	"api/models"
	"api/utils"
	"fmt"
	"time"
)

// UserStatsSnapshot is the derived statistics view of a user's solve history.
// Single, Ao5 and Ao12 are in seconds; nil means insufficient data.
type UserStatsSnapshot struct {
	UserID     string    `json:"user_id"`
	Single     *float64  `json:"single"`
	Ao5        *float64  `json:"ao5"`
	Ao12       *float64  `json:"ao12"`
	Streak     int       `json:"streak"`
	SolveCount int       `json:"solve_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RecomputeUserStats derives the user's statistics snapshot from their full
// ordered solve history and persists it onto the user row. The snapshot is
// always rebuilt from scratch rather than maintained incrementally, so a
// recompute can never drift from the ledger.
func RecomputeUserStats(userID string) (UserStatsSnapshot, error) {
	var attempts []models.SolveAttempt
	if err := database.DB.Where("user_id = ?", userID).
		Order("submitted_at ASC").Find(&attempts).Error; err != nil {
		return UserStatsSnapshot{}, fmt.Errorf("failed to fetch solve history: %w", err)
	}

	durations := make([]int64, len(attempts))
	dayKeys := make([]string, len(attempts))
	for i, attempt := range attempts {
		durations[i] = attempt.DurationMillis
		dayKeys[i] = attempt.DayKey
	}

	snapshot := UserStatsSnapshot{
		UserID:     userID,
		Ao5:        utils.AverageOfN(durations, 5),
		Ao12:       utils.AverageOfN(durations, 12),
		Streak:     utils.Streak(dayKeys),
		SolveCount: len(attempts),
		UpdatedAt:  time.Now(),
	}

	if len(attempts) > 0 {
		latest := attempts[len(attempts)-1].Seconds()
		snapshot.Single = &latest
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"single":           snapshot.Single,
			"ao5":              snapshot.Ao5,
			"ao12":             snapshot.Ao12,
			"streak":           snapshot.Streak,
			"stats_updated_at": snapshot.UpdatedAt,
		}).Error; err != nil {
		return UserStatsSnapshot{}, fmt.Errorf("failed to persist stats snapshot: %w", err)
	}

	return snapshot, nil
}
