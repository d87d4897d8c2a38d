package scrambles

import (
	"api/config"
	"api/middleware"
	"api/services"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var submitCooldown = middleware.NewSubmitCooldown(config.DefaultSubmitRateLimitConfig)

// SubmitSolve records the caller's timed solve for today's scramble
// @Summary Submit a timed solve
// @Description Submit the solve duration for today's scramble. At most one solve per user per day is accepted; a second submission returns 409 with the recorded attempt.
// @Tags Scrambles
// @Accept json
// @Produce json
// @Param request body SubmitSolveRequest true "Solve submission"
// @Success 201 {object} SubmitSolveResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]interface{}
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /scrambles/submit [post]
// @Security Bearer
func SubmitSolve(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	var request SubmitSolveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if !submitCooldown.Allowed(user.ID) {
		respondWithError(c, http.StatusTooManyRequests, ErrSubmitCooldown)
		return
	}

	attempt, err := services.SubmitSolve(user.ID, request.ScrambleID, request.DurationMillis, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadySubmitted):
			// A defined outcome, not a failure: return the recorded attempt so
			// the caller can render it instead of erroring silently
			c.JSON(http.StatusConflict, gin.H{
				"message": ErrAlreadySubmittedToday,
				"attempt": attempt,
			})
		case errors.Is(err, services.ErrInvalidDuration),
			errors.Is(err, services.ErrScrambleMismatch):
			submitCooldown.RecordRejection(user.ID)
			respondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrScrambleNotFound):
			submitCooldown.RecordRejection(user.ID)
			respondWithError(c, http.StatusBadRequest, ErrScrambleNotFound)
		default:
			log.Printf("Failed to submit solve for user %s: %v", user.ID, err)
			respondWithError(c, http.StatusInternalServerError, ErrFailedSubmitSolve)
		}
		return
	}

	submitCooldown.Reset(user.ID)

	stats, err := services.RecomputeUserStats(user.ID)
	if err != nil {
		// The solve is already in the ledger; stats can be recomputed on the
		// next read, so log instead of failing the submission
		log.Printf("Failed to recompute stats for user %s: %v", user.ID, err)
	}

	c.JSON(http.StatusCreated, SubmitSolveResponse{
		Attempt: attempt,
		Stats:   stats,
	})
}
