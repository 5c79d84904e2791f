package app

import (
	"context"
	"fmt"

	"github.com/Elephant-Learning/Elephant-Backend/internal/adapter/memstore"
	"github.com/Elephant-Learning/Elephant-Backend/internal/adapter/postgres"
	"github.com/Elephant-Learning/Elephant-Backend/internal/config"
	"github.com/Elephant-Learning/Elephant-Backend/internal/store"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// backend is the opened entity store selected by store.driver.
type backend struct {
	set    store.Set
	pinger pinger
	driver string
	close  func()
}

func openStore(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		ms := memstore.New()
		return &backend{set: ms.Set(), pinger: ms, driver: cfg.Store.Driver, close: func() {}}, nil
	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &backend{set: postgres.NewSet(pool), pinger: pool, driver: cfg.Store.Driver, close: pool.Close}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
