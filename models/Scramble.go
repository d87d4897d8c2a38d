package models

import "time"

// Scramble is the single move sequence shared by every user for one challenge day.
// DayKey is the natural key: the unique index makes concurrent first-creators for
// the same day converge on exactly one stored row. Immutable once created.
type Scramble struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	DayKey       string    `gorm:"type:varchar(10);not null;uniqueIndex;column:day_key" json:"day_key"`
	MoveSequence string    `gorm:"type:varchar(255);not null;column:move_sequence" json:"scramble"`
	CreatedAt    time.Time `gorm:"not null;default:now()" json:"created_at"`
}
