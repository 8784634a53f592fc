package main

import (
	"sync"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/datapurity/purity-cli/internal/model"
)

var batchConcurrency int

var batchCmd = &cobra.Command{
	Use:   "batch <source>...",
	Short: "Clean multiple contact files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		pipe, err := newPipeline(cfg)
		if err != nil {
			return err
		}

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(batchConcurrency)

		var mu sync.Mutex
		var summaries []model.RunSummary
		var succeeded, failed atomic.Int64

		for _, src := range args {
			g.Go(func() error {
				result, name, err := cleanOneWith(gCtx, pipe, src)
				if err != nil {
					failed.Add(1)
					zap.L().Error("batch: source failed",
						zap.String("source", src),
						zap.Error(err),
					)
					// One bad file does not abort the batch.
					return nil
				}
				succeeded.Add(1)

				saved, err := st.SaveRun(gCtx, model.NewRunSummary(name, result))
				if err != nil {
					zap.L().Warn("batch: record run", zap.String("source", src), zap.Error(err))
					return nil
				}

				mu.Lock()
				summaries = append(summaries, *saved)
				mu.Unlock()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "batch: wait")
		}

		zap.L().Info("batch: complete",
			zap.Int("sources", len(args)),
			zap.Int64("succeeded", succeeded.Load()),
			zap.Int64("failed", failed.Load()),
			zap.Int("recorded", len(summaries)),
		)

		if failed.Load() > 0 {
			return eris.Errorf("batch: %d of %d sources failed", failed.Load(), len(args))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "max files processed in parallel")
	rootCmd.AddCommand(batchCmd)
}
