package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Timurc390/Boardly/internal/domain"
)

type activityRepo interface {
	Create(ctx context.Context, entry *domain.ActivityLog) (*domain.ActivityLog, error)
	DeleteOlderThan(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ActivityLog, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type profileReader interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

var (
	recordFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boardly",
		Subsystem: "activity",
		Name:      "record_failures_total",
		Help:      "Activity log writes that failed and were dropped.",
	})
	sweptTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "boardly",
		Subsystem: "activity",
		Name:      "retention_deleted_total",
		Help:      "Activity log rows removed by the retention sweep.",
	})
)

// Options tunes the recorder.
type Options struct {
	// Timeout bounds each storage call made on behalf of a log write.
	Timeout         time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

// Service is the activity recorder: an append-only per-user log with an
// opportunistic retention sweep. It must be called outside mutation
// transactions; callers drop its errors.
type Service struct {
	logs     activityRepo
	profiles profileReader
	opts     Options
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new activity Service.
func NewService(log *slog.Logger, logs activityRepo, profiles profileReader, opts Options) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 50
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = opts.DefaultPageSize
	}
	return &Service{
		logs:     logs,
		profiles: profiles,
		opts:     opts,
		now:      time.Now,
		log:      log.With("service", "activity"),
	}
}
