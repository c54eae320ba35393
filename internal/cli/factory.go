package cli

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"

	"github.com/veldt-labs/detent/internal/config"
	"github.com/veldt-labs/detent/pkg/adapters/memory"
	"github.com/veldt-labs/detent/pkg/adapters/redis"
	"github.com/veldt-labs/detent/pkg/domain"
	"github.com/veldt-labs/detent/pkg/persistence/middleware"
	"github.com/veldt-labs/detent/pkg/ports"
	"github.com/veldt-labs/detent/pkg/session"
	"github.com/veldt-labs/detent/pkg/telemetry"
)

// Runtime bundles the wired components the serve command needs.
type Runtime struct {
	Manager  *session.Manager
	Env      *domain.Env
	Registry *prometheus.Registry

	closers []func() error
}

// Close releases the runtime's connections.
func (r *Runtime) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NewRuntime wires the snapshot store, telemetry, and session manager from
// the configuration. Redis is used when an address is configured; otherwise
// machines live in memory.
func NewRuntime(cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	rt := &Runtime{Registry: prometheus.NewRegistry()}

	metrics := telemetry.NewMetrics(rt.Registry)
	rt.Env = &domain.Env{
		Logger: logger,
		Hooks:  domain.Merge(metrics.Hooks(), telemetry.LogHooks(logger)),
	}

	store, locker, err := buildStore(cfg, rt)
	if err != nil {
		return nil, err
	}

	mgrOpts := []session.Option{
		session.WithLogger(logger),
		session.WithEnv(rt.Env),
	}
	if locker != nil {
		mgrOpts = append(mgrOpts, session.WithLocker(locker))
	}
	rt.Manager = session.NewManager(store, mgrOpts...)

	return rt, nil
}

func buildStore(cfg *config.Config, rt *Runtime) (ports.SnapshotStore, ports.DistributedLocker, error) {
	var (
		store  ports.SnapshotStore
		locker ports.DistributedLocker
	)

	if cfg.Redis.Addr != "" {
		client := backend.NewClient(&backend.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rt.closers = append(rt.closers, client.Close)
		store = redis.NewFromClient(client)
		locker = redis.NewLocker(client, "detent:lock:")
	} else {
		store = memory.NewStore()
	}

	if cfg.SnapshotKey != "" {
		key, err := hex.DecodeString(cfg.SnapshotKey)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid snapshot key: %w", err)
		}
		if len(key) != 32 {
			return nil, nil, fmt.Errorf("snapshot key must be 32 bytes, got %d", len(key))
		}
		store = middleware.Chain(store, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}))
	}

	return store, locker, nil
}
