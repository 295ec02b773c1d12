package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowedSuffix  string // e.g. .hangky.vn
	AllowLocalhost bool   // development only
}

// CORS allows same-origin requests, origins ending with AllowedSuffix and, when enabled,
// localhost. Anything else gets 403 in the standard error shape.
func CORS(cfg CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		// No origin (e.g. same-origin GET or tools): allow
		if origin == "" || sameOrigin(origin, c.Hostname()) {
			return c.Next()
		}
		if allowedOrigin(cfg, origin) {
			setCORSHeaders(c, origin)
			if c.Method() == fiber.MethodOptions {
				return c.SendStatus(fiber.StatusNoContent)
			}
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error",
			"error": fiber.Map{
				"message":    "Not allowed by CORS",
				"statusCode": fiber.StatusForbidden,
				"details":    fiber.Map{},
			},
		})
	}
}

func allowedOrigin(cfg CORSConfig, origin string) bool {
	if cfg.AllowLocalhost && (strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:")) {
		return true
	}
	return cfg.AllowedSuffix != "" && strings.HasSuffix(strings.ToLower(origin), strings.ToLower(cfg.AllowedSuffix))
}

func sameOrigin(origin, host string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Hostname(), host)
}

func setCORSHeaders(c *fiber.Ctx, origin string) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
	c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Accept-Language, X-Trace-Id")
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
	c.Set(fiber.HeaderVary, fiber.HeaderOrigin)
}
