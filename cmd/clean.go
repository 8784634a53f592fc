package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datapurity/purity-cli/internal/export"
	"github.com/datapurity/purity-cli/internal/fetcher"
	"github.com/datapurity/purity-cli/internal/model"
	"github.com/datapurity/purity-cli/internal/pipeline"
)

var (
	cleanOut     string
	cleanJSON    bool
	cleanNoStore bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean <source>",
	Short: "Clean one contact file (local path, http(s) or ftp URL)",
	Long: `Runs the full cleaning pass on a single file and prints a summary.

Examples:
  purity clean contacts.csv
  purity clean exports.zip --out cleaned.xlsx
  purity clean https://example.com/contacts.xlsx --json
  purity clean ftp://files.example.com/leads.csv --out cleaned.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		result, name, err := cleanOne(ctx, args[0])
		if err != nil {
			return err
		}

		if !cleanNoStore {
			if err := recordRun(ctx, name, result); err != nil {
				zap.L().Warn("clean: record run", zap.Error(err))
			}
		}

		if cleanOut != "" {
			if err := writeExport(cleanOut, result.Cleaned); err != nil {
				return err
			}
			zap.L().Info("clean: exported", zap.String("out", cleanOut), zap.Int("contacts", len(result.Cleaned)))
		}

		if cleanJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return eris.Wrap(enc.Encode(result), "clean: encode result")
		}
		return nil
	},
}

func init() {
	cleanCmd.Flags().StringVar(&cleanOut, "out", "", "export cleaned contacts to this .xlsx or .csv path")
	cleanCmd.Flags().BoolVar(&cleanJSON, "json", false, "print the full result as JSON")
	cleanCmd.Flags().BoolVar(&cleanNoStore, "no-store", false, "skip recording the run in the history store")
	rootCmd.AddCommand(cleanCmd)
}

// cleanOne fetches one source and runs the pipeline on it.
func cleanOne(ctx context.Context, src string) (*model.ProcessedData, string, error) {
	pipe, err := newPipeline(cfg)
	if err != nil {
		return nil, "", err
	}
	return cleanOneWith(ctx, pipe, src)
}

func cleanOneWith(ctx context.Context, pipe *pipeline.Pipeline, src string) (*model.ProcessedData, string, error) {
	start := time.Now()

	f := newFetcher()
	name, data, err := f.Fetch(ctx, src)
	if err != nil {
		return nil, "", err
	}

	result, err := pipe.Process(ctx, name, data)
	if err != nil {
		return nil, "", err
	}

	valid, warning, errored := result.StatusCounts()
	zap.L().Info("clean: done",
		zap.String("source", src),
		zap.Int("total_rows", result.TotalRows),
		zap.Int("cleaned", len(result.Cleaned)),
		zap.Int("empty_rows", result.EmptyRows),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("valid", valid),
		zap.Int("warning", warning),
		zap.Int("error", errored),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, name, nil
}

func newFetcher() *fetcher.Fetcher {
	timeout := time.Duration(cfg.Fetch.TimeoutSecs) * time.Second
	return fetcher.NewWithOptions(
		fetcher.HTTPOptions{Timeout: timeout, MaxRetries: cfg.Fetch.MaxRetries},
		fetcher.FTPOptions{Timeout: timeout},
	)
}

// recordRun opens the configured store just long enough to save the summary.
func recordRun(ctx context.Context, name string, result *model.ProcessedData) error {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close() //nolint:errcheck

	_, err = st.SaveRun(ctx, model.NewRunSummary(name, result))
	return err
}

// writeExport picks the format by extension and writes the file.
func writeExport(path string, contacts []model.Contact) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "clean: create %q", path)
	}
	defer f.Close() //nolint:errcheck

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return export.XLSX(f, contacts)
	case ".csv":
		return export.CSV(f, contacts)
	default:
		return eris.Errorf("clean: unsupported export extension %q (use .xlsx or .csv)", filepath.Ext(path))
	}
}
