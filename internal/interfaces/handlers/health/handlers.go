package health

import (
	"encoding/json"
	"strconv"
	"time"

	healthsvc "github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/health"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const serviceName = "hangky-web"

// Handlers holds dependencies for health endpoints. Rdb may be nil.
type Handlers struct {
	Rdb            *redis.Client
	Catalog        healthsvc.CatalogCounter
	HealthAdminKey string
}

// Reset clears health stats in Redis. Requires query key=HEALTH_ADMIN_KEY.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	key := c.Query("key")
	if h.HealthAdminKey == "" || key != h.HealthAdminKey {
		return response.Error(c, "Unauthorized", fiber.StatusForbidden, nil)
	}
	if h.Rdb == nil {
		return response.Error(c, "Stats are disabled", fiber.StatusServiceUnavailable, nil)
	}
	ctx := c.UserContext()
	if err := h.Rdb.Del(ctx, middleware.StatsKeys()...).Err(); err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
	if err := h.Rdb.Set(ctx, middleware.KeyStartTime, strconv.FormatInt(time.Now().UnixMilli(), 10), 0).Err(); err != nil {
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Stats reset successfully", fiber.Map{"success": true}, nil)
}

// JSON returns the collected health data plus the service name.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(c.UserContext(), h.Rdb, h.Catalog)
	return c.JSON(fiber.Map{
		"service":      serviceName,
		"status":       result.Status,
		"runtime":      result.Runtime,
		"traffic":      result.Traffic,
		"content":      result.Content,
		"dependencies": result.Dependencies,
	})
}

// Errors returns the most recent 5xx entries, newest first.
func (h *Handlers) Errors(c *fiber.Ctx) error {
	out := make([]map[string]interface{}, 0)
	if h.Rdb == nil {
		return c.JSON(out)
	}
	entries, err := h.Rdb.LRange(c.UserContext(), middleware.KeyErrorLog, 0, middleware.ErrorLogSize-1).Result()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
	for _, s := range entries {
		var m map[string]interface{}
		if json.Unmarshal([]byte(s), &m) == nil && m != nil {
			out = append(out, m)
		}
	}
	return c.JSON(out)
}

// Dashboard returns the HTML status page.
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(c.UserContext(), h.Rdb, h.Catalog)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(healthsvc.RenderDashboardHTML(result))
}
