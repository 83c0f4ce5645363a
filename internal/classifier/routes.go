package classifier

import (
	"net/http"

	"github.com/PhishGuard/PG-Backend/internal/auth"
	"github.com/PhishGuard/PG-Backend/internal/config"
	"github.com/PhishGuard/PG-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}
	limiter := middleware.NewRateLimiter(config.App.CheckPerMinute, config.App.CheckBurst)

	r.Use(middleware.SessionMiddleware(sessionFetcher))
	r.Use(limiter.Middleware)
	r.Post("/", CheckHandler)

	return r
}
