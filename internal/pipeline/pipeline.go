// Package pipeline wires ingestion, decoding, column mapping, and cleaning
// into the single processing pass the rest of the tool builds on.
package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/datapurity/purity-cli/internal/cleanse"
	"github.com/datapurity/purity-cli/internal/decode"
	"github.com/datapurity/purity-cli/internal/ingest"
	"github.com/datapurity/purity-cli/internal/mapping"
	"github.com/datapurity/purity-cli/internal/model"
)

// Pipeline processes one uploaded file at a time. Each call allocates its
// own matrix, column map, and duplicate tracker, so a single Pipeline is
// safe for concurrent use.
type Pipeline struct {
	table *mapping.Table
}

// New creates a pipeline with the given column-mapping table. A nil table
// uses the built-in bilingual defaults.
func New(table *mapping.Table) *Pipeline {
	if table == nil {
		table = mapping.Default()
	}
	return &Pipeline{table: table}
}

// Process runs the full pass: dispatch by extension, decode to a matrix, map
// columns, then extract and validate row by row. TotalRows counts every
// decoded row; blank rows are counted in EmptyRows and produce no contact,
// so Cleaned length plus EmptyRows always equals TotalRows.
func (p *Pipeline) Process(ctx context.Context, name string, data []byte) (*model.ProcessedData, error) {
	start := time.Now()

	kind, payload, err := ingest.Resolve(name, data)
	if err != nil {
		return nil, err
	}

	matrix, err := decode.Decode(payload, kind)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: decode %q", name)
	}

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "pipeline: cancelled")
	}

	cols := p.table.Map(matrix.Headers)

	result := &model.ProcessedData{
		Headers:   matrix.Headers,
		Rows:      matrix.Rows,
		TotalRows: len(matrix.Rows),
	}

	tracker := cleanse.NewTracker()
	for _, row := range matrix.Rows {
		// Blank rows are dropped before extraction and before the duplicate
		// tracker sees them.
		if model.RowIsBlank(row) {
			result.EmptyRows++
			continue
		}

		contact := cleanse.Extract(row, cols, len(result.Cleaned)+1, tracker)
		if contact.HasIssue(model.IssueDuplicate) {
			result.Duplicates++
		}
		result.Cleaned = append(result.Cleaned, contact)
	}

	valid, warning, errored := result.StatusCounts()
	zap.L().Info("pipeline: processed file",
		zap.String("file", name),
		zap.Int("total_rows", result.TotalRows),
		zap.Int("empty_rows", result.EmptyRows),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("valid", valid),
		zap.Int("warning", warning),
		zap.Int("error", errored),
		zap.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}
