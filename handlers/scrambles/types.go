package scrambles

import (
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrScrambleNotFound      = "Scramble not found"
	ErrFailedFetchScramble   = "Failed to fetch daily scramble"
	ErrFailedFetchHistory    = "Failed to fetch solve history"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedSubmitSolve     = "Failed to submit solve"
	ErrAlreadySubmittedToday = "Already submitted a solve today"
	ErrInvalidRequest        = "Invalid request data"
	ErrInvalidDayKey         = "Invalid day key, expected YYYY-MM-DD"
	ErrSubmitCooldown        = "Too many rejected submissions, wait before retrying"
)

// SubmitSolveRequest model for submitting a timed solve
type SubmitSolveRequest struct {
	ScrambleID     string `json:"scramble_id" binding:"required"`
	DurationMillis int64  `json:"duration_millis" binding:"required"`
}

// DailyScrambleResponse carries today's scramble plus the caller's recorded
// solve when one already exists, so a reloaded client can render it
type DailyScrambleResponse struct {
	Scramble         models.Scramble      `json:"scramble"`
	AlreadySubmitted bool                 `json:"already_submitted"`
	UserAttempt      *models.SolveAttempt `json:"user_attempt,omitempty"`
}

// SubmitSolveResponse carries the accepted attempt and the recomputed snapshot
type SubmitSolveResponse struct {
	Attempt models.SolveAttempt        `json:"attempt"`
	Stats   services.UserStatsSnapshot `json:"stats"`
}

// LeaderboardResponse is the ranked leaderboard for one challenge day
type LeaderboardResponse struct {
	DayKey      string                      `json:"day_key"`
	Leaderboard []services.LeaderboardEntry `json:"leaderboard"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
