package config

import "time"

// Rate limit configuration for repeated rejected submissions
type RateLimitConfig struct {
	RejectionsThreshold1 int           // Number of rejected submissions before first cooldown
	CooldownDuration1    time.Duration // First cooldown duration
	RejectionsThreshold2 int           // Number of rejected submissions before second cooldown
	CooldownDuration2    time.Duration // Second cooldown duration
}

var DefaultSubmitRateLimitConfig = RateLimitConfig{
	RejectionsThreshold1: 3,
	CooldownDuration1:    1 * time.Minute,
	RejectionsThreshold2: 5,
	CooldownDuration2:    5 * time.Minute,
}
