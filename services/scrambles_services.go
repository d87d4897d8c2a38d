package services

import (
	"api/database"
	"api/metrics"
	"api/models"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const scrambleLength = 20

var scrambleFaces = []string{"U", "D", "L", "R", "F", "B"}

// axis groups opposite faces: consecutive moves on the same face are never
// valid, and three moves in a row on the same axis are redundant
var scrambleAxis = map[string]int{"U": 0, "D": 0, "L": 1, "R": 1, "F": 2, "B": 2}

var scrambleModifiers = []string{"", "'", "2"}

// GenerateMoveSequence produces a WCA-notation 3x3 scramble
func GenerateMoveSequence() string {
	moves := make([]string, 0, scrambleLength)
	prevFace := ""
	prevPrevFace := ""

	for len(moves) < scrambleLength {
		face := scrambleFaces[rand.Intn(len(scrambleFaces))]
		if face == prevFace {
			continue
		}
		if prevPrevFace != "" && scrambleAxis[face] == scrambleAxis[prevFace] && scrambleAxis[face] == scrambleAxis[prevPrevFace] {
			continue
		}

		moves = append(moves, face+scrambleModifiers[rand.Intn(len(scrambleModifiers))])
		prevPrevFace = prevFace
		prevFace = face
	}

	return strings.Join(moves, " ")
}

// GetOrCreateScramble returns the single scramble assigned to the given day,
// generating and persisting it on first request. Concurrent first-callers
// converge on exactly one stored row: the insert is conditional on the day_key
// unique index, and the loser of the race reads back the winner's scramble.
func GetOrCreateScramble(dayKey string) (models.Scramble, error) {
	var scramble models.Scramble
	err := database.DB.Where("day_key = ?", dayKey).First(&scramble).Error
	if err == nil {
		return scramble, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Scramble{}, fmt.Errorf("failed to fetch scramble: %w", err)
	}

	candidate := models.Scramble{
		DayKey:       dayKey,
		MoveSequence: GenerateMoveSequence(),
	}

	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "day_key"}},
		DoNothing: true,
	}).Create(&candidate)
	if result.Error != nil {
		return models.Scramble{}, fmt.Errorf("failed to create scramble: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		metrics.ScramblesGenerated.Inc()
		return candidate, nil
	}

	// Lost the first-creation race, return the stored winner
	if err := database.DB.Where("day_key = ?", dayKey).First(&scramble).Error; err != nil {
		return models.Scramble{}, fmt.Errorf("failed to fetch scramble after conflict: %w", err)
	}
	return scramble, nil
}

// GetScrambleByID resolves a scramble id, e.g. to validate a submission
func GetScrambleByID(scrambleID string) (models.Scramble, error) {
	var scramble models.Scramble
	if err := database.DB.First(&scramble, "id = ?", scrambleID).Error; err != nil {
		return models.Scramble{}, err
	}
	return scramble, nil
}
