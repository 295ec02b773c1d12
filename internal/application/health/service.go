package health

import (
	"context"
	"encoding/json"
	"runtime"
	"strconv"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// CatalogCounter reports per-collection record totals. *content.Catalog implements it.
type CatalogCounter interface {
	Counts() map[string]int
}

// Result is the body of /health/json and the data behind the dashboard.
type Result struct {
	Status       string               `json:"status"`
	Runtime      RuntimeInfo          `json:"runtime"`
	Traffic      TrafficInfo          `json:"traffic"`
	Content      map[string]int       `json:"content"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

type RuntimeInfo struct {
	UptimeSeconds int64      `json:"uptimeSeconds"`
	Memory        MemoryInfo `json:"memory"`
	Goroutines    int        `json:"goroutines"`
	Platform      string     `json:"platform"`
	GoVersion     string     `json:"goVersion"`
}

// MemoryInfo is in MB.
type MemoryInfo struct {
	Alloc    int `json:"alloc"`
	HeapUsed int `json:"heapUsed"`
}

type TrafficInfo struct {
	TotalRequests   int          `json:"totalRequests"`
	SuccessCount    int          `json:"successCount"`
	FailedCount     int          `json:"failedCount"`
	SuccessRate     string       `json:"successRate"`
	AvgResponseTime string       `json:"avgResponseTime"`
	LastRequest     *LastRequest `json:"lastRequest"`
}

// LastRequest is the entry the health marker writes for every counted request.
type LastRequest struct {
	Time   time.Time `json:"time"`
	IP     string    `json:"ip"`
	Path   string    `json:"path"`
	Method string    `json:"method"`
}

type DepStatus struct {
	Status string `json:"status"`
	PingMs *int64 `json:"pingMs"`
}

// Dependency states.
const (
	StatusConnected = "connected"
	StatusDisabled  = "disabled"
	StatusError     = "error"
	StatusLoaded    = "loaded"
	StatusEmpty     = "empty"
	OverallOK       = "ok"
	OverallIssue    = "issue"
)

var processStart = time.Now()

// CollectHealth gathers traffic stats from Redis, catalog totals and runtime data.
// A nil rdb reports Redis as disabled, which does not degrade the overall status.
func CollectHealth(ctx context.Context, rdb *redis.Client, cat CatalogCounter) Result {
	result := Result{
		Dependencies: make(map[string]DepStatus),
		Content:      map[string]int{},
	}

	contentStatus := StatusEmpty
	if cat != nil {
		result.Content = cat.Counts()
		if result.Content["portfolio"] > 0 && result.Content["insights"] > 0 {
			contentStatus = StatusLoaded
		}
	}
	result.Dependencies["content"] = DepStatus{Status: contentStatus}

	stats := TrafficInfo{SuccessRate: "100", AvgResponseTime: "0"}
	startTimeMs := processStart.UnixMilli()
	redisStatus := StatusDisabled
	var redisPingMs *int64

	if rdb != nil {
		start := time.Now()
		if err := rdb.Ping(ctx).Err(); err == nil {
			ms := time.Since(start).Milliseconds()
			redisPingMs = &ms
			redisStatus = StatusConnected
			startTimeMs = readStats(ctx, rdb, &stats, startTimeMs)
		} else {
			redisStatus = StatusError
		}
	}
	result.Dependencies["redis"] = DepStatus{Status: redisStatus, PingMs: redisPingMs}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	uptimeSec := (time.Now().UnixMilli() - startTimeMs) / 1000
	if uptimeSec < 0 {
		uptimeSec = 0
	}
	result.Runtime = RuntimeInfo{
		UptimeSeconds: uptimeSec,
		Memory:        MemoryInfo{Alloc: int(m.Alloc / 1024 / 1024), HeapUsed: int(m.HeapInuse / 1024 / 1024)},
		Goroutines:    runtime.NumGoroutine(),
		Platform:      runtime.GOOS + " (" + runtime.GOARCH + ")",
		GoVersion:     runtime.Version(),
	}
	result.Traffic = stats

	if contentStatus == StatusLoaded && redisStatus != StatusError {
		result.Status = OverallOK
	} else {
		result.Status = OverallIssue
	}
	return result
}

// readStats fills stats from the health marker keys and returns the recorded start time,
// writing one when none exists yet.
func readStats(ctx context.Context, rdb *redis.Client, stats *TrafficInfo, startTimeMs int64) int64 {
	vals, err := rdb.MGet(ctx,
		middleware.KeyReqTotal,
		middleware.KeyReqErrors,
		middleware.KeyResTime,
		middleware.KeyResCount,
		middleware.KeyStartTime,
		middleware.KeyLastReq,
	).Result()
	if err != nil {
		return startTimeMs
	}
	str := func(i int) string {
		s, _ := vals[i].(string)
		return s
	}

	if t, err := strconv.ParseInt(str(4), 10, 64); err == nil {
		startTimeMs = t
	} else {
		rdb.Set(ctx, middleware.KeyStartTime, startTimeMs, 0)
	}

	stats.TotalRequests, _ = strconv.Atoi(str(0))
	stats.FailedCount, _ = strconv.Atoi(str(1))
	stats.SuccessCount = stats.TotalRequests - stats.FailedCount
	if stats.TotalRequests > 0 {
		stats.SuccessRate = strconv.FormatFloat(float64(stats.SuccessCount)/float64(stats.TotalRequests)*100, 'f', 1, 64)
	}
	timeSum, _ := strconv.ParseFloat(str(2), 64)
	countSum, _ := strconv.Atoi(str(3))
	if countSum > 0 {
		stats.AvgResponseTime = strconv.FormatFloat(timeSum/float64(countSum), 'f', 2, 64)
	}
	if s := str(5); s != "" {
		var last LastRequest
		if json.Unmarshal([]byte(s), &last) == nil {
			stats.LastRequest = &last
		}
	}
	return startTimeMs
}
