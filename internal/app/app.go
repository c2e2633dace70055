package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/godilite/fredbasket/internal/config"
	"github.com/godilite/fredbasket/internal/report"
	"github.com/godilite/fredbasket/internal/service"
	"github.com/godilite/fredbasket/pkg/fred"
)

const topMoversCount = 5

// Params are the per-run report options collected from the CLI.
type Params struct {
	YearA        int
	YearB        int
	OutPath      string
	Plot         bool
	Weighted     bool
	WeightsPath  string
	PrintWeights bool
}

// App wires the FRED client, the inflation service and the reporter into a
// single-pass pipeline.
type App struct {
	logger  *zap.Logger
	service *service.InflationService
	params  Params
	stdout  io.Writer
}

// NewApp builds the pipeline from configuration.
func NewApp(cfg *config.Config, params Params, logger *zap.Logger) (*App, error) {
	client, err := fred.New(
		fred.WithBaseURL(cfg.FREDBaseURL),
		fred.WithAPIKey(cfg.FREDAPIKey),
		fred.WithTimeout(cfg.HTTPTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("fred client init failed: %w", err)
	}

	inflationService := service.NewInflationService(client, service.DefaultCatalog(), logger)

	return &App{
		logger:  logger,
		service: inflationService,
		params:  params,
		stdout:  os.Stdout,
	}, nil
}

// Run executes the pipeline once: fetch every basket series for both years,
// write the CSV, print the summary and movers, and optionally the weighted
// index and the charts.
func (a *App) Run(ctx context.Context) error {
	p := a.params

	rows, err := a.service.FetchBasket(ctx, p.YearA, p.YearB)
	if err != nil {
		return err
	}

	if err := a.writeCSV(rows); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Wrote CSV: %s\n", p.OutPath)

	summary, err := service.Unweighted(rows)
	switch {
	case errors.Is(err, service.ErrNoUsableRows):
		report.PrintUncomputable(a.stdout, p.YearA, p.YearB, len(rows))
	case err != nil:
		return err
	default:
		report.PrintUnweighted(a.stdout, p.YearA, p.YearB, summary)
	}

	if p.Weighted {
		if err := a.runWeighted(rows); err != nil {
			return err
		}
	}

	increases, decreases := service.TopMovers(rows, topMoversCount)
	report.PrintMovers(a.stdout, increases, decreases)

	if p.Plot && summary.ItemsUsed > 0 {
		if err := a.saveCharts(rows); err != nil {
			return err
		}
	}

	a.logger.Info("report complete",
		zap.Int("items_used", summary.ItemsUsed),
		zap.Int("items_total", len(rows)),
		zap.Int("year_a", p.YearA),
		zap.Int("year_b", p.YearB))
	return nil
}

func (a *App) writeCSV(rows []service.ComparisonRow) error {
	f, err := os.Create(a.params.OutPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", a.params.OutPath, err)
	}
	if err := report.WriteCSV(f, rows, a.params.YearA, a.params.YearB); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (a *App) runWeighted(rows []service.ComparisonRow) error {
	weights, err := service.LoadWeights(a.params.WeightsPath)
	if err != nil {
		return err
	}

	index, err := service.Weighted(rows, weights)
	if errors.Is(err, service.ErrNoUsableRows) {
		report.PrintWeightedUnavailable(a.stdout)
		return nil
	}
	if err != nil {
		return err
	}

	report.PrintWeighted(a.stdout, index, a.params.PrintWeights)
	return nil
}

func (a *App) saveCharts(rows []service.ComparisonRow) error {
	levelsPath := report.LevelsChartPath(a.params.YearA, a.params.YearB)
	changesPath := report.PctChangesChartPath(a.params.YearA, a.params.YearB)

	if err := report.SaveLevelsChart(rows, a.params.YearA, a.params.YearB, levelsPath); err != nil {
		return err
	}
	if err := report.SavePctChangesChart(rows, changesPath); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "\nSaved charts:\n  %s\n  %s\n", levelsPath, changesPath)
	return nil
}
