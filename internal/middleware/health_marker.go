package middleware

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis keys shared by the marker, the error handler and the health endpoints.
const (
	KeyReqTotal  = "health:global:req_total"
	KeyReqErrors = "health:global:req_errors"
	KeyResTime   = "health:global:res_time_total"
	KeyResCount  = "health:global:res_count"
	KeyStartTime = "health:global:start_time"
	KeyLastReq   = "health:global:last_request"
	KeyErrorLog  = "health:global:error_log"
)

// ErrorLogSize is how many 5xx entries the error log keeps.
const ErrorLogSize = 50

// StatsKeys lists every key the health reset clears.
func StatsKeys() []string {
	return []string{KeyReqTotal, KeyReqErrors, KeyResTime, KeyResCount, KeyStartTime, KeyLastReq, KeyErrorLog}
}

func skipStats(path string) bool {
	return strings.HasPrefix(path, "/health") ||
		strings.HasPrefix(path, "/static") ||
		strings.HasPrefix(path, "/favicon")
}

// HealthMarker records request stats in Redis. A nil client disables it.
func HealthMarker(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil || skipStats(c.Path()) {
			return c.Next()
		}

		start := time.Now()
		lastReq := map[string]interface{}{
			"time":   start,
			"ip":     c.IP(),
			"path":   c.OriginalURL(),
			"method": c.Method(),
		}
		b, _ := json.Marshal(lastReq)
		ctx := context.Background()
		pipe := rdb.Pipeline()
		pipe.Set(ctx, KeyLastReq, b, 0)
		pipe.Incr(ctx, KeyReqTotal)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Warn().Err(err).Msg("health marker: record request")
		}

		err := c.Next()

		// the error handler has not written the status yet when err != nil
		status := c.Response().StatusCode()
		if err != nil {
			status = statusFor(err)
		}
		ms := time.Since(start).Milliseconds()
		pipe = rdb.Pipeline()
		pipe.Incr(ctx, KeyResCount)
		pipe.IncrByFloat(ctx, KeyResTime, float64(ms))
		if status >= fiber.StatusInternalServerError {
			pipe.Incr(ctx, KeyReqErrors)
		}
		if _, perr := pipe.Exec(ctx); perr != nil {
			log.Warn().Err(perr).Msg("health marker: record response")
		}
		return err
	}
}
