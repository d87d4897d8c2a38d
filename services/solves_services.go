package services

import (
	"api/database"
	"api/metrics"
	"api/models"
	"api/utils"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInvalidDuration rejects non-positive solve durations
	ErrInvalidDuration = errors.New("duration must be a positive number of milliseconds")
	// ErrScrambleNotFound rejects submissions whose scramble id resolves to nothing
	ErrScrambleNotFound = errors.New("scramble not found")
	// ErrScrambleMismatch rejects submissions against a scramble that is not today's,
	// which guards against stale clients submitting after a day rollover
	ErrScrambleMismatch = errors.New("scramble does not belong to the current challenge day")
	// ErrAlreadySubmitted is a defined outcome, not a failure: the ledger already
	// holds a solve for this user and day, and SubmitSolve returns that solve
	ErrAlreadySubmitted = errors.New("already submitted a solve today")
)

// SubmitSolve validates and appends a solve to the ledger. At most one solve per
// (user, day) is ever accepted: the check and the insert are a single conditional
// write keyed on the (user_id, day_key) unique index, so concurrent submissions
// from the same user (duplicate taps, retried requests) race safely and exactly
// one wins. When the ledger already holds a solve, the existing attempt is
// returned together with ErrAlreadySubmitted so the caller can render it.
func SubmitSolve(userID string, scrambleID string, durationMillis int64, now time.Time) (models.SolveAttempt, error) {
	if durationMillis <= 0 {
		metrics.SolvesRejected.WithLabelValues("invalid_duration").Inc()
		return models.SolveAttempt{}, ErrInvalidDuration
	}

	scramble, err := GetScrambleByID(scrambleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.SolvesRejected.WithLabelValues("scramble_not_found").Inc()
			return models.SolveAttempt{}, ErrScrambleNotFound
		}
		return models.SolveAttempt{}, fmt.Errorf("failed to resolve scramble: %w", err)
	}

	dayKey := utils.DayKeyFor(now)
	if scramble.DayKey != dayKey {
		metrics.SolvesRejected.WithLabelValues("scramble_mismatch").Inc()
		return models.SolveAttempt{}, ErrScrambleMismatch
	}

	attempt := models.SolveAttempt{
		UserID:         userID,
		ScrambleID:     scramble.ID,
		DayKey:         dayKey,
		DurationMillis: durationMillis,
		SubmittedAt:    now,
	}

	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_key"}},
		DoNothing: true,
	}).Create(&attempt)
	if result.Error != nil {
		return models.SolveAttempt{}, fmt.Errorf("failed to insert solve attempt: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// First write won earlier, surface the recorded solve
		existing, err := GetSolveForDay(userID, dayKey)
		if err != nil {
			return models.SolveAttempt{}, fmt.Errorf("failed to fetch existing solve attempt: %w", err)
		}
		metrics.SolvesRejected.WithLabelValues("already_submitted").Inc()
		return existing, ErrAlreadySubmitted
	}

	metrics.SolvesAccepted.Inc()
	InvalidateLeaderboard(dayKey)

	return attempt, nil
}

// GetSolveForDay returns the user's accepted solve for the given day, if any
func GetSolveForDay(userID string, dayKey string) (models.SolveAttempt, error) {
	var attempt models.SolveAttempt
	err := database.DB.Where("user_id = ? AND day_key = ?", userID, dayKey).First(&attempt).Error
	return attempt, err
}

// GetSolveHistory returns all of a user's accepted solves, newest first
func GetSolveHistory(userID string) ([]models.SolveAttempt, error) {
	var attempts []models.SolveAttempt
	if err := database.DB.Where("user_id = ?", userID).
		Order("submitted_at DESC").Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch solve history: %w", err)
	}
	return attempts, nil
}
