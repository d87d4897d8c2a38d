package users

import (
	"api/database"
	"api/middleware"
	"api/models"
	"api/utils/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUserProfile retrieves the authenticated user's profile
// @Summary Get User Profile
// @Description Get the profile information and statistics snapshot of the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /users/profile [get]
// @Security Bearer
func GetUserProfile(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    c.JSON(http.StatusOK, user)
}

// GetAllUsers retrieves all users with their statistics snapshots
// @Summary Get all users
// @Description Get every user together with their single/ao5/ao12/streak snapshot, e.g. to enrich the leaderboard
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users [get]
// @Security Bearer
func GetAllUsers(c *gin.Context) {
    _, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var users []models.User
    if err := database.DB.Order("username ASC").Find(&users).Error; err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedFetchUsers)
        return
    }

    c.JSON(http.StatusOK, users)
}

// GetUser retrieves a user's public profile
// @Summary Get a user
// @Description Get the public profile of the specified user
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{user_id} [get]
// @Security Bearer
func GetUser(c *gin.Context) {
    _, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return
    }

    var user models.User
    if err := database.DB.First(&user, "id = ?", c.Param("user_id")).Error; err != nil {
        response.Error(c, http.StatusNotFound, ErrUserNotFound)
        return
    }

    c.JSON(http.StatusOK, user)
}
