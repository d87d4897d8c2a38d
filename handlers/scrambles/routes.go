package scrambles

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to scrambles and solves
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	scrambles := r.Group("/scrambles")
	scrambles.Use(middleware.AuthMiddleware())
	{
		scrambles.GET("/daily", GetDailyScramble)
		scrambles.POST("/submit", SubmitSolve)

		// Leaderboard routes
		scrambles.GET("/leaderboard", GetLeaderboard)
		scrambles.GET("/leaderboard/export", ExportLeaderboardExcel)

		// History routes
		scrambles.GET("/users/:user_id/history", GetSolveHistory)
	}
}
