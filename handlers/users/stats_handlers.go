package users

import (
	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUserStats retrieves the recomputed statistics snapshot for a user
// @Summary Get user statistics
// @Description Recompute and return the single/ao5/ao12/streak snapshot of the specified user from their ordered solve history
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} services.UserStatsSnapshot
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{user_id}/stats [get]
// @Security Bearer
func GetUserStats(c *gin.Context) {
    _, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    userID := c.Param("user_id")

    var user models.User
    if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    stats, err := services.RecomputeUserStats(userID)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedFetchStats)
        return
    }

    response.Success(c, http.StatusOK, stats)
}
