package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func statusFor(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// ErrorPage renders an HTML error page.
type ErrorPage func(c *fiber.Ctx, code int, message string) error

// ErrorHandler is the global error handler. API and health routes get the standard error
// body; other routes get page, or a bare page when page is nil. 5xx errors are logged
// and, when rdb is set, pushed to the health error log.
func ErrorHandler(rdb *redis.Client, page ErrorPage) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := statusFor(err)
		message := "Internal Server Error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("trace_id", GetTraceID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", code).
				Msg("Request failed")
			recordError(rdb, c, err)
		}

		if strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/health") {
			return response.Error(c, message, code, nil)
		}
		if page != nil {
			perr := page(c, code, message)
			if perr == nil {
				return nil
			}
			log.Error().Err(perr).Msg("error page failed")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		title := strconv.Itoa(code)
		return c.Status(code).SendString("<!DOCTYPE html><title>" + title + "</title><h1>" + title + "</h1><p>" + html.EscapeString(message) + "</p>")
	}
}

func recordError(rdb *redis.Client, c *fiber.Ctx, err error) {
	if rdb == nil {
		return
	}
	entry, _ := json.Marshal(map[string]interface{}{
		"time":     time.Now(),
		"method":   c.Method(),
		"path":     c.OriginalURL(),
		"message":  err.Error(),
		"trace_id": GetTraceID(c),
	})
	ctx := context.Background()
	pipe := rdb.Pipeline()
	pipe.LPush(ctx, KeyErrorLog, entry)
	pipe.LTrim(ctx, KeyErrorLog, 0, ErrorLogSize-1)
	if _, perr := pipe.Exec(ctx); perr != nil {
		log.Warn().Err(perr).Msg("error handler: record error")
	}
}
