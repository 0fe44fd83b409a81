package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	FixedWindow   = "fixed_window"
	SlidingWindow = "sliding_window"
)

type RateLimitRule struct {
	Name        string
	MaxRequests int
	Window      time.Duration
	Algorithm   string
}

var (
	ruleGeneratePayouts = RateLimitRule{Name: "payouts_generate", MaxRequests: 5, Window: time.Minute, Algorithm: FixedWindow}
	ruleDelete          = RateLimitRule{Name: "delete", MaxRequests: 10, Window: time.Minute, Algorithm: FixedWindow}
	ruleWrite           = RateLimitRule{Name: "write", MaxRequests: 30, Window: time.Minute, Algorithm: SlidingWindow}
	ruleView            = RateLimitRule{Name: "view", MaxRequests: 120, Window: time.Minute, Algorithm: SlidingWindow}
	ruleGlobalIP        = RateLimitRule{Name: "global_ip", MaxRequests: 1000, Window: time.Minute, Algorithm: SlidingWindow}
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
local limit = tonumber(ARGV[2])
if current == false then
	redis.call('SET', KEYS[1], 1, 'EX', ARGV[1])
	return {1, limit - 1}
end
local count = tonumber(current)
if count >= limit then
	return {0, 0}
end
local n = redis.call('INCR', KEYS[1])
return {1, limit - n}
`)

// members are unique per request so same-second hits are all counted
var slidingWindowScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local window_start = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, window_start)
local current = redis.call('ZCARD', KEYS[1])
if current >= limit then
	return {0, 0}
end
redis.call('ZADD', KEYS[1], now, ARGV[5])
redis.call('EXPIRE', KEYS[1], ARGV[4])
return {1, limit - current - 1}
`)

// RateLimiter throttles clients per IP using Redis. A nil client disables it.
type RateLimiter struct {
	rdb *redis.Client
}

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{rdb: rdb}
}

// ruleFor picks the rule by method and route template.
func ruleFor(route, method string) RateLimitRule {
	switch {
	case route == "/finance/payouts/generate":
		return ruleGeneratePayouts
	case method == http.MethodDelete:
		return ruleDelete
	case method == http.MethodPost || method == http.MethodPut:
		return ruleWrite
	default:
		return ruleView
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string, rule RateLimitRule) (bool, int, error) {
	var (
		res interface{}
		err error
	)
	switch rule.Algorithm {
	case FixedWindow:
		res, err = fixedWindowScript.Run(ctx, rl.rdb, []string{"rate:fw:" + key},
			int(rule.Window.Seconds()), rule.MaxRequests).Result()
	default:
		now := time.Now()
		res, err = slidingWindowScript.Run(ctx, rl.rdb, []string{"rate:sw:" + key},
			now.UnixMilli(), now.Add(-rule.Window).UnixMilli(), rule.MaxRequests,
			int(rule.Window.Seconds())+60, strconv.FormatInt(now.UnixNano(), 10)).Result()
	}
	if err != nil {
		return false, 0, err
	}

	values, ok := res.([]interface{})
	if !ok || len(values) != 2 {
		return false, 0, fmt.Errorf("unexpected rate limit reply %v", res)
	}
	allowed, _ := values[0].(int64)
	remaining, _ := values[1].(int64)
	if remaining < 0 {
		remaining = 0
	}
	return allowed == 1, int(remaining), nil
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.rdb == nil || c.Request.URL.Path == "/healthz" || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		ip := c.ClientIP()
		ctx := c.Request.Context()

		if ok, _, err := rl.allow(ctx, "global:ip:"+ip, ruleGlobalIP); err == nil && !ok {
			rl.reject(c, ruleGlobalIP, ip)
			return
		}

		rule := ruleFor(route, c.Request.Method)
		key := strings.Join([]string{rule.Name, c.Request.Method, route, ip}, ":")
		allowed, remaining, err := rl.allow(ctx, key, rule)
		if err != nil {
			// redis outages never block traffic
			log.Warn().Err(err).Str("rule", rule.Name).Msg("rate limiter unavailable")
			c.Next()
			return
		}
		if !allowed {
			rl.reject(c, rule, ip)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rule.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(rule.Window).Unix(), 10))
		c.Next()
	}
}

func (rl *RateLimiter) reject(c *gin.Context, rule RateLimitRule, ip string) {
	log.Warn().
		Str("rule", rule.Name).
		Str("ip", ip).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("rate limit exceeded")

	c.Header("X-RateLimit-Limit", strconv.Itoa(rule.MaxRequests))
	c.Header("X-RateLimit-Remaining", "0")
	c.Header("Retry-After", strconv.Itoa(int(rule.Window.Seconds())))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"success": false,
		"error":   fmt.Sprintf("Too many requests, please try again in %v", rule.Window),
		"code":    "RATE_LIMIT_EXCEEDED",
	})
}
