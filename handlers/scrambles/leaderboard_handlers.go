package scrambles

import (
	"api/middleware"
	"api/services"
	"api/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// GetLeaderboard retrieves the ranked leaderboard for a challenge day
// @Summary Get the daily leaderboard
// @Description Get the ranked leaderboard for the given day (defaults to today). A day with no solves returns an empty list.
// @Tags Scrambles
// @Produce json
// @Param day query string false "Challenge day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /scrambles/leaderboard [get]
// @Security Bearer
func GetLeaderboard(c *gin.Context) {
	_, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	dayKey, ok := dayKeyFromQuery(c)
	if !ok {
		return
	}

	entries, err := services.LeaderboardFor(dayKey)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchLeaderboard)
		return
	}

	c.JSON(http.StatusOK, LeaderboardResponse{
		DayKey:      dayKey,
		Leaderboard: entries,
	})
}

// ExportLeaderboardExcel exports a day's leaderboard as an XLSX file
// @Summary Export the daily leaderboard to Excel
// @Description Download the ranked leaderboard for the given day (defaults to today) as an XLSX attachment
// @Tags Scrambles
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param day query string false "Challenge day (YYYY-MM-DD), defaults to today"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /scrambles/leaderboard/export [get]
// @Security Bearer
func ExportLeaderboardExcel(c *gin.Context) {
	_, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	dayKey, ok := dayKeyFromQuery(c)
	if !ok {
		return
	}

	entries, err := services.LeaderboardFor(dayKey)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchLeaderboard)
		return
	}

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	sheet := xlsx.GetSheetName(0)
	headers := []string{"Rank", "Username", "Time (s)", "Day"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(sheet, cell, header)
	}

	for i, entry := range entries {
		row := i + 2
		xlsx.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.Rank)
		xlsx.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.Username)
		xlsx.SetCellValue(sheet, fmt.Sprintf("C%d", row), entry.DurationSeconds)
		xlsx.SetCellValue(sheet, fmt.Sprintf("D%d", row), entry.DayKey)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=leaderboard-%s.xlsx", dayKey))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xlsx.Write(c.Writer); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchLeaderboard)
	}
}

// dayKeyFromQuery resolves the ?day= query parameter, defaulting to today.
// Responds with 400 itself on a malformed key.
func dayKeyFromQuery(c *gin.Context) (string, bool) {
	raw := c.Query("day")
	if raw == "" {
		return utils.Today(), true
	}

	dayKey, err := utils.ParseDayKey(raw)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidDayKey)
		return "", false
	}
	return dayKey, true
}
