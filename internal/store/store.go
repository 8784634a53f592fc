// Package store persists run summaries so operators can review past
// cleaning runs. The pipeline itself never touches the store.
package store

import (
	"context"

	"github.com/datapurity/purity-cli/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Source string `json:"source,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for run history.
type Store interface {
	// SaveRun persists a summary and returns it with ID and CreatedAt set.
	SaveRun(ctx context.Context, summary model.RunSummary) (*model.RunSummary, error)

	// GetRun returns the run with the given ID.
	GetRun(ctx context.Context, id string) (*model.RunSummary, error)

	// ListRuns returns runs matching the filter, newest first.
	ListRuns(ctx context.Context, filter RunFilter) ([]model.RunSummary, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
