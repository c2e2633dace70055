package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/godilite/fredbasket/pkg/fred"
)

var (
	// ErrNoUsableRows means a statistic had no rows with both values present
	// and positive. Callers report "uncomputable", never zero.
	ErrNoUsableRows = errors.New("no usable basket rows")
	// ErrFetchFailure wraps transport-level and HTTP failures from the source.
	ErrFetchFailure = errors.New("series fetch failure")
)

// InflationService resolves the basket catalog against a series source and
// derives inflation statistics from the resulting comparison rows.
type InflationService struct {
	source  SeriesSource
	catalog []CatalogEntry
	logger  *zap.Logger
}

// NewInflationService creates a new InflationService instance.
func NewInflationService(source SeriesSource, catalog []CatalogEntry, logger *zap.Logger) *InflationService {
	if source == nil {
		panic("source must not be nil")
	}
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &InflationService{
		source:  source,
		catalog: catalog,
		logger:  logger,
	}
}

// Catalog returns the basket the service operates on, in iteration order.
func (s *InflationService) Catalog() []CatalogEntry {
	return s.catalog
}

// FetchBasket resolves every catalog entry into a ComparisonRow for the two
// requested years, strictly sequentially. A series/year window without usable
// observations yields an absent Amount; any transport or HTTP failure aborts
// the whole fetch.
func (s *InflationService) FetchBasket(ctx context.Context, yearA, yearB int) ([]ComparisonRow, error) {
	rows := make([]ComparisonRow, 0, len(s.catalog))
	for _, entry := range s.catalog {
		base, err := s.yearAmount(ctx, entry.SeriesID, yearA)
		if err != nil {
			return nil, fmt.Errorf("%w: %s year %d: %v", ErrFetchFailure, entry.SeriesID, yearA, err)
		}
		compare, err := s.yearAmount(ctx, entry.SeriesID, yearB)
		if err != nil {
			return nil, fmt.Errorf("%w: %s year %d: %v", ErrFetchFailure, entry.SeriesID, yearB, err)
		}

		rows = append(rows, ComparisonRow{
			Item:    entry.Item,
			Unit:    entry.Unit,
			Base:    base,
			Compare: compare,
			Source:  fmt.Sprintf("BLS Average Price via FRED (%s); annual mean of monthly", entry.SeriesID),
		})

		s.logger.Debug("fetched series pair",
			zap.String("series", entry.SeriesID),
			zap.Bool("base_present", base.Valid),
			zap.Bool("compare_present", compare.Valid))
	}
	return rows, nil
}

func (s *InflationService) yearAmount(ctx context.Context, seriesID string, year int) (Amount, error) {
	value, err := s.source.YearAverage(ctx, seriesID, year)
	if errors.Is(err, fred.ErrNoObservations) {
		s.logger.Warn("series has no usable observations",
			zap.String("series", seriesID),
			zap.Int("year", year))
		return Amount{}, nil
	}
	if err != nil {
		return Amount{}, err
	}
	return Amount{Value: value, Valid: true}, nil
}

// Unweighted computes the arithmetic mean of percentage changes and the
// geometric mean of price relatives over the usable rows.
func Unweighted(rows []ComparisonRow) (Summary, error) {
	summary := Summary{ItemsTotal: len(rows)}

	var pctSum, logSum float64
	for _, r := range rows {
		if !r.Usable() {
			continue
		}
		rel := r.Relative()
		pctSum += rel - 1.0
		logSum += math.Log(rel)
		summary.ItemsUsed++
	}

	if summary.ItemsUsed == 0 {
		return summary, ErrNoUsableRows
	}

	n := float64(summary.ItemsUsed)
	summary.Arithmetic = pctSum / n
	summary.Geometric = math.Exp(logSum/n) - 1.0
	return summary, nil
}

// PurchasingPower returns the remaining buying capacity of one currency unit
// after a percentage price change, and the implied loss. The two always sum
// to 1 for finite non-negative changes.
func PurchasingPower(pctChange float64) (remaining, loss float64) {
	remaining = 1.0 / (1.0 + pctChange)
	return remaining, 1.0 - remaining
}
