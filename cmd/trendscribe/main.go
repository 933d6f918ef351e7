package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorhill/cronexpr"
	"github.com/spf13/cobra"

	"github.com/trendscribe/trendscribe/config"
	"github.com/trendscribe/trendscribe/internal/app"
	"github.com/trendscribe/trendscribe/internal/history"
	"github.com/trendscribe/trendscribe/internal/llm"
	"github.com/trendscribe/trendscribe/internal/post"
	"github.com/trendscribe/trendscribe/internal/source"
)

func main() {
	root := &cobra.Command{
		Use:   "trendscribe",
		Short: "Discover trending developer topics and publish one article per run",
	}

	var configPath string
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	run := &cobra.Command{
		Use:   "run",
		Short: "Execute one pipeline run",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pipeline, err := buildPipeline(configPath)
			if err != nil {
				return err
			}
			path, err := pipeline.Run(ctx)
			if err != nil {
				return err
			}
			if path == "" {
				fmt.Println("nothing to publish")
				return nil
			}
			fmt.Println(path)
			return nil
		},
	}

	var cronSpec string
	schedule := &cobra.Command{
		Use:   "schedule",
		Short: "Run the pipeline on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := cronexpr.Parse(cronSpec)
			if err != nil {
				return fmt.Errorf("invalid cron expression %q: %w", cronSpec, err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pipeline, err := buildPipeline(configPath)
			if err != nil {
				return err
			}

			logger := log.New(os.Stderr, "", log.LstdFlags)
			for {
				next := expr.Next(time.Now())
				logger.Printf("[SCHED] next run at %s", next.Format(time.RFC3339))
				select {
				case <-ctx.Done():
					logger.Printf("[SCHED] shutting down")
					return nil
				case <-time.After(time.Until(next)):
				}
				if _, err := pipeline.Run(ctx); err != nil {
					if ctx.Err() != nil {
						return nil
					}
					logger.Printf("[SCHED] run failed: %v", err)
				}
			}
		},
	}
	schedule.Flags().StringVar(&cronSpec, "cron", "0 8 * * *", "cron expression for run times")

	root.AddCommand(run, schedule)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildPipeline wires every component from configuration. Missing
// credentials surface here, before any network call is made.
func buildPipeline(configPath string) (*app.Pipeline, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	httpClient := source.NewHTTPClient(cfg.General.FetchTimeout)

	fetchers := []source.Fetcher{
		source.NewStackOverflowFetcher(cfg.Sources.StackOverflow, httpClient),
		source.NewDevtoFetcher(cfg.Sources.Devto, httpClient),
		source.NewRedditFetcher(cfg.Sources.Reddit, httpClient),
	}
	collector := source.NewCollector(fetchers, cfg.Sources.MaxCombined, logger)

	return app.NewPipeline(
		collector,
		llm.NewClient(cfg.LLM),
		history.NewGate(),
		history.NewStore(cfg.History.LedgerPath, logger),
		post.NewStore(cfg.Output.PostsDir),
		cfg.History.WindowDays,
		logger,
	), nil
}
