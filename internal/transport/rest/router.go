package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/config"
	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/transport/middleware"
)

type accessTokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps carries everything NewRouter needs.
type RouterDeps struct {
	Log           *slog.Logger
	Chat          *ChatHandler
	Health        *HealthHandler
	Validator     accessTokenValidator
	Limiter       *middleware.RateLimiter
	CORS          config.CORSConfig
	RatePerMinute int
}

// NewRouter builds the HTTP routing table. Health probes are open; the chat
// endpoint sits behind auth and per-user rate limiting.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	chatChain := middleware.Chain(
		middleware.Auth(deps.Validator),
		deps.Limiter.Limit(deps.RatePerMinute),
	)
	mux.Handle("POST /api/{user_id}/chat", chatChain(http.HandlerFunc(deps.Chat.Chat)))

	base := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Log),
		middleware.Logger(deps.Log),
		middleware.CORS(deps.CORS),
	)
	return base(mux)
}
