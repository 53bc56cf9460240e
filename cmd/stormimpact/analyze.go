package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/storm-impact-analysis/internal/config"
	"github.com/couchcryptid/storm-impact-analysis/internal/dataset"
	"github.com/couchcryptid/storm-impact-analysis/internal/observability"
	"github.com/couchcryptid/storm-impact-analysis/internal/pipeline"
	"github.com/couchcryptid/storm-impact-analysis/internal/report"
)

var (
	inputPath   string
	jsonPath    string
	metricsPath string
	topN        int
	yearFloor   int
	percentile  float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis over a Storm Events export",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the dataset (.csv, .csv.gz, or .csv.bz2)")
	analyzeCmd.Flags().StringVar(&jsonPath, "json", "", "also write the tables as JSON to this path")
	analyzeCmd.Flags().StringVar(&metricsPath, "metrics-file", "", "write run metrics in Prometheus text format to this path")
	analyzeCmd.Flags().IntVar(&topN, "top", 0, "rows per ranking table (overrides ANALYSIS_TOP_N)")
	analyzeCmd.Flags().IntVar(&yearFloor, "year-floor", 0, "first year of the observation window (overrides ANALYSIS_YEAR_FLOOR)")
	analyzeCmd.Flags().Float64Var(&percentile, "percentile", 0, "reconciliation scope quantile (overrides ANALYSIS_PERCENTILE)")
	_ = analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	p := pipeline.New(
		pipeline.LoaderFunc(dataset.Load),
		logger,
		metrics,
		pipeline.Options{
			YearFloor:  cfg.YearFloor,
			Percentile: cfg.Percentile,
			TopN:       cfg.TopN,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := p.Run(ctx, inputPath)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		return err
	}

	if err := report.WriteText(os.Stdout, res); err != nil {
		return err
	}

	if jsonPath != "" {
		if err := writeJSONFile(jsonPath, res); err != nil {
			logger.Error("json output failed", "path", jsonPath, "error", err)
			return err
		}
		logger.Info("tables written", "path", jsonPath)
	}

	if metricsPath != "" {
		if err := metrics.WriteTextfile(metricsPath); err != nil {
			logger.Error("metrics output failed", "path", metricsPath, "error", err)
			return err
		}
		logger.Info("metrics written", "path", metricsPath)
	}

	return nil
}

// loadConfig reads the environment config and applies any explicit flag
// overrides, re-validating afterwards.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("top") {
		cfg.TopN = topN
	}
	if cmd.Flags().Changed("year-floor") {
		cfg.YearFloor = yearFloor
	}
	if cmd.Flags().Changed("percentile") {
		cfg.Percentile = percentile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeJSONFile(path string, res *pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteJSON(f, res)
}
