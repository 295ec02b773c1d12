package router

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/config"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/web"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:                    config.EnvTest,
		HealthAdminKey:         "secret",
		FrontendURLEndsWith:    ".hangky.vn",
		AnimationFrameInterval: 16 * time.Millisecond,
		DefaultLocale:          domain.LocaleEN,
	}
}

func setupRouterTest(t *testing.T, withRedis bool) (*fiber.App, *miniredis.Miniredis) {
	t.Helper()
	cat, err := content.Load()
	require.NoError(t, err)
	renderer, err := web.NewRenderer()
	require.NoError(t, err)
	var (
		mr  *miniredis.Miniredis
		rdb *redis.Client
	)
	if withRedis {
		mr = miniredis.RunT(t)
		rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
	}
	return newApp(testConfig(), cat, renderer, rdb), mr
}

func TestCreateApp_WithoutRedis(t *testing.T) {
	app, rdb, err := CreateApp(testConfig())
	require.NoError(t, err)
	assert.Nil(t, rdb)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRoutes_PagesAndAPI(t *testing.T) {
	app, _ := setupRouterTest(t, false)
	for _, tc := range []struct {
		path        string
		status      int
		contentType string
	}{
		{"/", 200, "text/html"},
		{"/portfolio?sector=fashion", 200, "text/html"},
		{"/policies/cookies", 200, "text/html"},
		{"/api/v1/portfolio", 200, "application/json"},
		{"/api/v1/insights/1", 200, "application/json"},
		{"/api/v1/sectors", 200, "application/json"},
		{"/health", 200, "text/html"},
		{"/no/such/page", 404, "text/html"},
		{"/api/v1/nope", 404, "application/json"},
	} {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), tc.contentType), resp.Header.Get("Content-Type"))
			assert.NotEmpty(t, resp.Header.Get("X-Trace-Id"))
		})
	}
}

func TestRoutes_APIContentLanguage(t *testing.T) {
	app, _ := setupRouterTest(t, false)
	req := httptest.NewRequest("GET", "/api/v1/categories", nil)
	req.Header.Set("Accept-Language", "vi-VN,vi;q=0.9,en;q=0.5")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "vi", resp.Header.Get("Content-Language"))
}

func TestRoutes_CORSOnlyOnAPI(t *testing.T) {
	app, _ := setupRouterTest(t, false)

	req := httptest.NewRequest("GET", "/api/v1/portfolio", nil)
	req.Header.Set("Origin", "https://www.hangky.vn")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "https://www.hangky.vn", resp.Header.Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/api/v1/portfolio", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest("GET", "/portfolio", nil)
	req.Header.Set("Origin", "https://evil.example")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRoutes_ContactAPIValidation(t *testing.T) {
	app, _ := setupRouterTest(t, false)
	req := httptest.NewRequest("POST", "/api/v1/contact", strings.NewReader(`{"name":"Jane Doe"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), `"consent"`)
}

func TestRoutes_HealthStatsCounted(t *testing.T) {
	app, mr := setupRouterTest(t, true)
	for _, p := range []string{"/", "/api/v1/portfolio", "/missing"} {
		_, err := app.Test(httptest.NewRequest("GET", p, nil), -1)
		require.NoError(t, err)
	}

	total, err := mr.Get(middleware.KeyReqTotal)
	require.NoError(t, err)
	assert.Equal(t, "3", total)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/json", nil), -1)
	require.NoError(t, err)
	var body struct {
		Status       string `json:"status"`
		Dependencies map[string]struct {
			Status string `json:"status"`
		} `json:"dependencies"`
		Traffic struct {
			TotalRequests int `json:"totalRequests"`
		} `json:"traffic"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "connected", body.Dependencies["redis"].Status)
	assert.Equal(t, "loaded", body.Dependencies["content"].Status)
	assert.Equal(t, 3, body.Traffic.TotalRequests)
}

func TestRoutes_HealthReset(t *testing.T) {
	app, _ := setupRouterTest(t, true)
	resp, err := app.Test(httptest.NewRequest("GET", "/health/reset?key=wrong", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/health/reset?key=secret", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandler_ServesThroughNetHTTP(t *testing.T) {
	app, _ := setupRouterTest(t, false)
	rec := httptest.NewRecorder()
	Handler(app).ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/sectors?lang=vi", nil))
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "vi", rec.Header().Get("Content-Language"))
	assert.Contains(t, rec.Body.String(), `"locale":"vi"`)
}
