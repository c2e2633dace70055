package service

import "context"

// SeriesSource defines the interface for resolving a remote monthly price
// series into a yearly arithmetic mean.
type SeriesSource interface {
	YearAverage(ctx context.Context, seriesID string, year int) (float64, error)
}
