package service

import (
	"context"
	"fmt"
	"todolist/config"
	"todolist/infras/otel"
	"todolist/infras/postgres"
	"todolist/shared/cache"
	"todolist/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

// Health reports whether the backing stores answer.
type Health interface {
	Check(ctx context.Context) error
}

type serviceImpl struct {
	db      *postgres.Connection
	counter cache.Counter
	cfg     *config.Config
	otel    otel.Otel
}

func New(db *postgres.Connection, counter cache.Counter, cfg *config.Config, otel otel.Otel) Health {
	return &serviceImpl{
		db:      db,
		counter: counter,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Check(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.db.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ping database")

		return fmt.Errorf("failed to ping database: %w", err)
	}

	if !s.cfg.App.RateLimiter.Enable {
		return nil
	}

	if err = s.counter.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ping cache")

		return fmt.Errorf("failed to ping cache: %w", err)
	}

	return nil
}
