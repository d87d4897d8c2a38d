package scrambles

import (
	"api/middleware"
	"api/services"
	"api/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDailyScramble retrieves the scramble shared by all users for the current day
// @Summary Get today's scramble
// @Description Get the scramble for the current challenge day, creating it if it does not exist yet. Includes the caller's recorded solve when one exists.
// @Tags Scrambles
// @Produce json
// @Success 200 {object} DailyScrambleResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /scrambles/daily [get]
// @Security Bearer
func GetDailyScramble(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	dayKey := utils.Today()
	scramble, err := services.GetOrCreateScramble(dayKey)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchScramble)
		return
	}

	response := DailyScrambleResponse{Scramble: scramble}

	attempt, err := services.GetSolveForDay(user.ID, dayKey)
	if err == nil {
		response.AlreadySubmitted = true
		response.UserAttempt = &attempt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchScramble)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSolveHistory retrieves all solves recorded for a user, newest first
// @Summary Get a user's solve history
// @Description Get every accepted solve attempt of the specified user, ordered newest first
// @Tags Scrambles
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /scrambles/users/{user_id}/history [get]
// @Security Bearer
func GetSolveHistory(c *gin.Context) {
	_, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	userID := c.Param("user_id")

	history, err := services.GetSolveHistory(userID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchHistory)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
