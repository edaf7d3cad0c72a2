package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	signupCountKey = "waitlist:signup_count"
	signupCountTTL = 30 * time.Second
)

// SignupCount is a short-lived cache for the public signup counter.
// The counter is display-only social proof, so staleness within the
// TTL is acceptable and every error degrades to a database read.
type SignupCount struct {
	client redis.UniversalClient
}

func NewSignupCount(client redis.UniversalClient) *SignupCount {
	return &SignupCount{client: client}
}

func (c *SignupCount) Get(ctx context.Context) (int64, bool) {
	val, err := c.client.Get(ctx, signupCountKey).Result()
	if err != nil {
		return 0, false
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}

	return count, true
}

func (c *SignupCount) Set(ctx context.Context, count int64) {
	c.client.Set(ctx, signupCountKey, strconv.FormatInt(count, 10), signupCountTTL)
}

func (c *SignupCount) Invalidate(ctx context.Context) {
	c.client.Del(ctx, signupCountKey)
}
