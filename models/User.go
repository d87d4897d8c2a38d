package models

import "time"

// User represents a cuber identity together with the denormalized statistics
// snapshot (single, ao5, ao12, streak) derived from their solve history
type User struct {
	ID             string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Username       string     `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Email          string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Password       string     `gorm:"type:varchar(255);not null" json:"-"`
	ImageURL       string     `gorm:"type:varchar(500);column:image_url" json:"image"`
	Single         *float64   `gorm:"type:numeric(10,3)" json:"single"`
	Ao5            *float64   `gorm:"type:numeric(10,3);column:ao5" json:"ao5"`
	Ao12           *float64   `gorm:"type:numeric(10,3);column:ao12" json:"ao12"`
	Streak         int        `gorm:"type:integer;not null;default:0" json:"streak"`
	StatsUpdatedAt *time.Time `gorm:"column:stats_updated_at" json:"stats_updated_at"`
	CreatedAt      time.Time  `gorm:"not null;default:now()" json:"created_at"`
	Attempts       []*SolveAttempt `gorm:"foreignKey:UserID" json:"-"`
}
