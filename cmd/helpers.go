package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/datapurity/purity-cli/internal/config"
	"github.com/datapurity/purity-cli/internal/mapping"
	"github.com/datapurity/purity-cli/internal/pipeline"
	"github.com/datapurity/purity-cli/internal/store"
)

// newPipeline builds the pipeline, extending the column-mapping table from
// the configured locale file when one is set.
func newPipeline(cfg *config.Config) (*pipeline.Pipeline, error) {
	table := mapping.Default()
	if cfg.Clean.LocalePath != "" {
		extended, err := table.LoadLocale(cfg.Clean.LocalePath)
		if err != nil {
			return nil, eris.Wrap(err, "load locale table")
		}
		table = extended
	}
	return pipeline.New(table), nil
}

// openStore opens the configured run-history backend and runs migrations.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Store.Driver {
	case "sqlite":
		st, err = store.NewSQLite(cfg.Store.SQLitePath)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}
