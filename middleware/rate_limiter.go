package middleware

import (
	"api/config"
	"api/metrics"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type RateLimiter struct {
    visitors map[string]*Visitor
    mu       sync.Mutex
    rate     int           // Maximum requests per minute
    burst    int           // Burst capacity
    interval time.Duration // Refill interval
}

type Visitor struct {
    tokens      int
    lastUpdated time.Time
}

func NewRateLimiter(rate int, burst int) *RateLimiter {
    return &RateLimiter{
        visitors: make(map[string]*Visitor),
        rate:     rate,
        burst:    burst,
        interval: time.Minute,
    }
}

func (rl *RateLimiter) getVisitor(ip string) *Visitor {
    rl.mu.Lock()
    defer rl.mu.Unlock()

    if visitor, exists := rl.visitors[ip]; exists {
        return visitor
    }

    visitor := &Visitor{
        tokens:      rl.burst,
        lastUpdated: time.Now(),
    }
    rl.visitors[ip] = visitor
    return visitor
}

func (rl *RateLimiter) Allow(ip string) bool {
    visitor := rl.getVisitor(ip)

    rl.mu.Lock()
    defer rl.mu.Unlock()

    // Refill tokens
    now := time.Now()
    elapsed := now.Sub(visitor.lastUpdated)
    refill := int(elapsed / rl.interval)
    if refill > 0 {
        visitor.tokens += refill * rl.rate
        if visitor.tokens > rl.burst {
            visitor.tokens = rl.burst
        }
        visitor.lastUpdated = now
    }

    // Check if request is allowed
    if visitor.tokens > 0 {
        visitor.tokens--
        return true
    }

    return false
}

func RateLimiterMiddleware(rl *RateLimiter) gin.HandlerFunc {
    return func(c *gin.Context) {
        ip := c.ClientIP()
        if !rl.Allow(ip) {
            // Record rate limiter rejection in metrics
            metrics.RateLimiterRejections.WithLabelValues(ip).Inc()

            c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
                "error": "Too many requests. Please try again later.",
            })
            return
        }
        c.Next()
    }
}

// SubmitCooldown throttles users who keep retrying rejected solve submissions.
// Tiers come from config.DefaultSubmitRateLimitConfig: a handful of rejections
// earns a short cooldown, persistent retrying a longer one. Accepted
// submissions never count against the user.
type SubmitCooldown struct {
    mu         sync.Mutex
    cfg        config.RateLimitConfig
    rejections map[string]int
    blockedAt  map[string]time.Time
}

func NewSubmitCooldown(cfg config.RateLimitConfig) *SubmitCooldown {
    return &SubmitCooldown{
        cfg:        cfg,
        rejections: make(map[string]int),
        blockedAt:  make(map[string]time.Time),
    }
}

// Allowed reports whether the user may attempt a submission right now
func (sc *SubmitCooldown) Allowed(userID string) bool {
    sc.mu.Lock()
    defer sc.mu.Unlock()

    blockedAt, blocked := sc.blockedAt[userID]
    if !blocked {
        return true
    }

    cooldown := sc.cfg.CooldownDuration1
    if sc.rejections[userID] >= sc.cfg.RejectionsThreshold2 {
        cooldown = sc.cfg.CooldownDuration2
    }

    if time.Since(blockedAt) >= cooldown {
        delete(sc.blockedAt, userID)
        return true
    }
    return false
}

// RecordRejection notes a rejected submission and starts a cooldown once a
// threshold is crossed
func (sc *SubmitCooldown) RecordRejection(userID string) {
    sc.mu.Lock()
    defer sc.mu.Unlock()

    sc.rejections[userID]++
    if sc.rejections[userID] == sc.cfg.RejectionsThreshold1 ||
        sc.rejections[userID] >= sc.cfg.RejectionsThreshold2 {
        sc.blockedAt[userID] = time.Now()
    }
}

// Reset clears the user's rejection history after an accepted submission
func (sc *SubmitCooldown) Reset(userID string) {
    sc.mu.Lock()
    defer sc.mu.Unlock()

    delete(sc.rejections, userID)
    delete(sc.blockedAt, userID)
}
