package ratelimiter

import (
	"context"
	"fmt"
	"sangha-service/internal/app/contracts"
	"time"

	"go.uber.org/zap"
)

// ContactLimiter bounds contact-form submissions per client IP with a
// fixed-window counter in Redis, keeping the public endpoint from being
// used as a mail cannon.
type ContactLimiter struct {
	redis        contracts.RedisRepository
	log          *zap.Logger
	windowSec    int
	maxPerWindow int
}

func NewContactLimiter(redis contracts.RedisRepository, log *zap.Logger, windowSec, maxPerWindow int) *ContactLimiter {
	if windowSec <= 0 {
		windowSec = 60
	}
	return &ContactLimiter{
		redis:        redis,
		log:          log,
		windowSec:    windowSec,
		maxPerWindow: maxPerWindow,
	}
}

// Allow reports whether the given client may submit now, with the
// seconds until the window resets when it may not.
func (l *ContactLimiter) Allow(ctx context.Context, clientIP string) (bool, int, error) {
	if l.maxPerWindow <= 0 {
		return true, 0, nil
	}

	now := time.Now().UTC()
	windowID := now.Unix() / int64(l.windowSec)
	key := fmt.Sprintf("CONTACT_LIMIT:%s:%d", clientIP, windowID)

	ttl := time.Duration(l.windowSec)*time.Second + time.Second
	count, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("ContactLimiter.Allow increment failed",
			zap.String("key", key),
			zap.Error(err))
		// Fail open: a redis outage should not take the contact form down.
		return true, 0, nil
	}

	if count > l.maxPerWindow {
		nextWindowStart := (windowID + 1) * int64(l.windowSec)
		retryAfter := int(nextWindowStart-now.Unix()) + 1
		return false, retryAfter, nil
	}
	return true, 0, nil
}
