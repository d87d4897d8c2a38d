package models

import "time"

// SolveAttempt is one accepted timed solve. The ledger is append-only: the
// composite unique index on (user_id, day_key) enforces at most one accepted
// solve per user per challenge day, first write wins.
type SolveAttempt struct {
	ID             string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	UserID         string    `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_solve_attempts_user_day" json:"user_id"`
	ScrambleID     string    `gorm:"type:uuid;not null;column:scramble_id" json:"scramble_id"`
	DayKey         string    `gorm:"type:varchar(10);not null;column:day_key;uniqueIndex:idx_solve_attempts_user_day" json:"day_key"`
	DurationMillis int64     `gorm:"type:bigint;not null;column:duration_millis" json:"duration_millis"`
	SubmittedAt    time.Time `gorm:"not null;default:now();column:submitted_at" json:"submitted_at"`
	Scramble       *Scramble `gorm:"foreignKey:ScrambleID" json:"-"`
	User           *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Seconds returns the duration normalized to seconds. DurationMillis is always
// an integer count of milliseconds, so the divisor is fixed and unconditional.
func (a *SolveAttempt) Seconds() float64 {
	return float64(a.DurationMillis) / 1000.0
}
