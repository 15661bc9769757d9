package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"parkease/internal/infra/events"
	"parkease/internal/infra/notify"
	"parkease/internal/infra/ratelimit"
	"parkease/internal/pkg/config"
	"parkease/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewMailer,
		fx.Annotate(
			notify.NewDispatcher,
			fx.As(new(shared.Notifier)),
		),
		NewRedis,
		NewRateLimiter,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (events.Publisher, error) {
	pub, err := events.New(cfg.Events)
	if err != nil {
		return nil, err
	}
	slog.Info("event publisher initialized", "driver", cfg.Events.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func NewMailer(cfg config.Config) (notify.Mailer, error) {
	m, err := notify.NewMailer(cfg.Mail)
	if err != nil {
		return nil, err
	}
	slog.Info("mailer initialized", "driver", cfg.Mail.Driver)
	return m, nil
}

// NewRedis returns nil when REDIS_ADDR is unset; the rate limiter then
// falls back to in-process buckets.
func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled() {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("failed to ping redis: %w", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}

func NewRateLimiter(cfg config.Config, rdb *redis.Client) ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit, rdb)
}
