package handler

import (
	"net/http"
	"sync"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/bootstrap"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/interfaces/router"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	site    http.Handler
	siteErr error
)

func load() {
	app, err := bootstrap.New()
	if err != nil {
		siteErr = err
		log.Error().Err(err).Msg("site bootstrap failed")
		return
	}
	site = router.Handler(app)
}

// Handler is the Vercel serverless entry point. All requests are rewritten here.
// A failed cold start answers 503 until the next instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(load)
	if siteErr != nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	r.RequestURI = r.URL.String()
	site.ServeHTTP(w, r)
}
