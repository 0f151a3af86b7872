package ratelimiter

import "time"

// Config defines the token bucket.
type Config struct {
	Capacity       int           `env:"LOGIN_RATE_LIMIT_CAPACITY" envDefault:"5"`
	RefillRate     int           `env:"LOGIN_RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"LOGIN_RATE_LIMIT_REFILL_INTERVAL" envDefault:"1m"`
}

// ttl is the time an idle bucket needs to refill completely.
func (c Config) ttl() time.Duration {
	intervals := (c.Capacity + c.RefillRate - 1) / c.RefillRate
	return time.Duration(intervals+1) * c.RefillInterval
}

// Result is the outcome of a rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time // next refill
}

// RetryAfter is zero for allowed requests.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}
