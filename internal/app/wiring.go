package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Timurc390/Boardly/internal/access"
	"github.com/Timurc390/Boardly/internal/adapter/postgres"
	activityrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/activity"
	attachmentrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/attachment"
	boardrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/board"
	cardrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/card"
	checklistrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/checklist"
	commentrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/comment"
	labelrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/label"
	listrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/list"
	userrepo "github.com/Timurc390/Boardly/internal/adapter/postgres/user"
	redisadapter "github.com/Timurc390/Boardly/internal/adapter/redis"
	"github.com/Timurc390/Boardly/internal/adapter/storage"
	"github.com/Timurc390/Boardly/internal/auth"
	"github.com/Timurc390/Boardly/internal/config"
	"github.com/Timurc390/Boardly/internal/domain"
	"github.com/Timurc390/Boardly/internal/realtime"
	"github.com/Timurc390/Boardly/internal/service/activity"
	"github.com/Timurc390/Boardly/internal/service/attachment"
	authsvc "github.com/Timurc390/Boardly/internal/service/auth"
	"github.com/Timurc390/Boardly/internal/service/board"
	"github.com/Timurc390/Boardly/internal/service/card"
	"github.com/Timurc390/Boardly/internal/service/checklist"
	"github.com/Timurc390/Boardly/internal/service/comment"
	"github.com/Timurc390/Boardly/internal/service/label"
	"github.com/Timurc390/Boardly/internal/service/list"
	"github.com/Timurc390/Boardly/internal/service/user"
	"github.com/Timurc390/Boardly/internal/transport/middleware"
	"github.com/Timurc390/Boardly/internal/transport/rest"
	"github.com/Timurc390/Boardly/internal/transport/ws"
)

// activityTimeout bounds each activity log write made after a commit.
const activityTimeout = 5 * time.Second

// dependencies is everything Run needs to serve and later release.
type dependencies struct {
	handler    http.Handler
	background []func(ctx context.Context) error
	closers    []func()
}

// close releases resources in reverse order of acquisition.
func (d *dependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// build connects to the backing stores and wires repositories, services and
// transport into one HTTP handler. On error everything acquired so far is
// released.
func build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (deps *dependencies, err error) {
	deps = &dependencies{}
	defer func() {
		if err != nil {
			deps.close()
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	deps.closers = append(deps.closers, pool.Close)

	checks := []rest.Check{{Name: "postgres", Pinger: pool}}

	// Repositories.
	users := userrepo.New(pool)
	boards := boardrepo.New(pool)
	lists := listrepo.New(pool)
	cards := cardrepo.New(pool)
	labels := labelrepo.New(pool)
	checklists := checklistrepo.New(pool)
	comments := commentrepo.New(pool)
	attachments := attachmentrepo.New(pool)
	activityLogs := activityrepo.New(pool)

	txManager := postgres.NewTxManager(pool)
	resolver := access.NewResolver(boards)
	guard := access.NewGuard(resolver)

	// Blob storage is optional; without it attachment writes report unavailable.
	var blobs *storage.BlobStore
	if cfg.Storage.Enabled {
		blobs, err = storage.New(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("connect to storage: %w", err)
		}
		checks = append(checks, rest.Check{Name: "storage", Pinger: blobs})
	}

	// Realtime broadcast.
	group := realtime.NewGroup(cfg.Realtime.SendBuffer)
	var broker realtime.Broker = realtime.NewMemoryBroker(group)
	if cfg.Realtime.Broker == config.BrokerRedis {
		client, err := redisadapter.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		deps.closers = append(deps.closers, func() { _ = client.Close() })

		redisBroker := redisadapter.NewBroker(logger, client, group)
		broker = redisBroker
		deps.background = append(deps.background, redisBroker.Run)
		checks = append(checks, rest.Check{Name: "redis", Pinger: rest.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})})
	}

	// Services.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager)

	activityService := activity.NewService(logger, activityLogs, users, activity.Options{
		Timeout:         activityTimeout,
		DefaultPageSize: cfg.Activity.DefaultPageSize,
		MaxPageSize:     cfg.Activity.MaxPageSize,
	})
	userService := user.NewService(logger, users, activityService, txManager)
	boardService := board.NewService(logger, boards, boards, lists, users, guard, activityService, txManager, board.Options{
		InviteDefaultRole: domain.Role(cfg.Board.InviteDefaultRole),
	})
	listService := list.NewService(logger, boards, lists, cards, checklists, guard, activityService, txManager)
	cardService := card.NewService(logger, boards, lists, cards, labels, checklists, guard, activityService, txManager)
	labelService := label.NewService(logger, boards, labels, guard, activityService, txManager)
	checklistService := checklist.NewService(logger, boards, cards, checklists, guard, activityService, txManager)
	commentService := comment.NewService(logger, boards, cards, comments, guard, activityService, txManager)
	attachmentService := attachment.NewService(logger, boards, cards, attachments, blobs, guard, activityService, txManager,
		attachment.Options{
			Enabled:    cfg.Storage.Enabled,
			PresignTTL: cfg.Storage.PresignTTL,
			MaxBytes:   cfg.Storage.MaxBytes,
		})
	realtimeService := realtime.NewService(logger, authService, boards, resolver, group, broker)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	deps.closers = append(deps.closers, limiter.Stop)

	deps.handler = newRouter(cfg, logger, authService, limiter, routes{
		health:      rest.NewHealthHandler(Version, checks...),
		me:          rest.NewMeHandler(userService, cardService, logger),
		boards:      rest.NewBoardHandler(boardService, logger),
		lists:       rest.NewListHandler(listService, logger),
		cards:       rest.NewCardHandler(cardService, logger),
		labels:      rest.NewLabelHandler(labelService, logger),
		checklists:  rest.NewChecklistHandler(checklistService, logger),
		comments:    rest.NewCommentHandler(commentService, logger),
		attachments: rest.NewAttachmentHandler(attachmentService, cfg.Storage.MaxBytes, logger),
		realtime:    ws.NewHandler(realtimeService, cfg.Realtime, logger),
	})

	return deps, nil
}

// NewHandler wires the application against cfg and returns its root handler
// with a function releasing everything build acquired. Background runners are
// not started, so the realtime channel only fans out within this process.
func NewHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	deps, err := build(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return deps.handler, deps.close, nil
}
