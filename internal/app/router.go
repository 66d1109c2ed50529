package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Timurc390/Boardly/internal/config"
	"github.com/Timurc390/Boardly/internal/transport/middleware"
	"github.com/Timurc390/Boardly/internal/transport/rest"
	"github.com/Timurc390/Boardly/internal/transport/ws"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// routes groups the handlers mounted on the public mux.
type routes struct {
	health      *rest.HealthHandler
	me          *rest.MeHandler
	boards      *rest.BoardHandler
	lists       *rest.ListHandler
	cards       *rest.CardHandler
	labels      *rest.LabelHandler
	checklists  *rest.ChecklistHandler
	comments    *rest.CommentHandler
	attachments *rest.AttachmentHandler
	realtime    *ws.Handler
}

// newRouter mounts every handler and wraps the mux in the middleware chain.
// Metrics sits directly on the mux so it sees the matched pattern.
func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	tokens tokenValidator,
	limiter *middleware.RateLimiter,
	r routes,
) http.Handler {
	mux := http.NewServeMux()

	r.health.Register(mux)
	r.me.Register(mux)
	r.boards.Register(mux)
	r.lists.Register(mux)
	r.cards.Register(mux)
	r.labels.Register(mux)
	r.checklists.Register(mux)
	r.comments.Register(mux)
	r.attachments.Register(mux)
	r.realtime.Register(mux, limiter.Limit("ws", cfg.RateLimit.WebsocketPerMinute))

	mux.Handle("GET /metrics", promhttp.Handler())

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.ClientIP(cfg.Server.TrustForwardedFor),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit("api", cfg.RateLimit.APIPerMinute),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
		middleware.Auth(tokens),
		middleware.Metrics(),
	)

	return chain(mux)
}
