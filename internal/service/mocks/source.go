package mocks

import (
	"context"
	"errors"
)

// MockSeriesSource is a mock implementation of the SeriesSource interface
// for testing the service layer.
type MockSeriesSource struct {
	YearAverageFunc func(ctx context.Context, seriesID string, year int) (float64, error)
}

// YearAverage implements the SeriesSource interface
func (m *MockSeriesSource) YearAverage(ctx context.Context, seriesID string, year int) (float64, error) {
	if m.YearAverageFunc != nil {
		return m.YearAverageFunc(ctx, seriesID, year)
	}
	return 0, errors.New("YearAverageFunc not implemented")
}
