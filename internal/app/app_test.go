package app

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/godilite/fredbasket/internal/config"
	"github.com/godilite/fredbasket/internal/service"
)

// stubFRED answers every observations request with a fixed value per year so
// the whole pipeline can run against a local server.
func stubFRED(t *testing.T, valueByYear map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year := strings.SplitN(r.URL.Query().Get("observation_start"), "-", 2)[0]
		value, ok := valueByYear[year]
		if !ok {
			http.Error(w, "unexpected year", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"observations":[{"value":"%s"},{"value":"."},{"value":"%s"}]}`, value, value)
	}))
}

func newTestApp(t *testing.T, baseURL string, params Params) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{
		FREDAPIKey:  "test-key",
		FREDBaseURL: baseURL,
		HTTPTimeout: 5 * time.Second,
	}
	application, err := NewApp(cfg, params, zap.NewNop())
	assert.NoError(t, err)

	var out bytes.Buffer
	application.stdout = &out
	return application, &out
}

func TestNewApp(t *testing.T) {
	t.Run("missing API key fails client init", func(t *testing.T) {
		_, err := NewApp(&config.Config{FREDBaseURL: "https://api.stlouisfed.org"}, Params{}, zap.NewNop())

		assert.ErrorContains(t, err, "fred client init failed")
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline with weighted index", func(t *testing.T) {
		srv := stubFRED(t, map[string]string{"2000": "2.0", "2024": "3.0"})
		defer srv.Close()

		outPath := filepath.Join(t.TempDir(), "basket.csv")
		application, out := newTestApp(t, srv.URL, Params{
			YearA:        2000,
			YearB:        2024,
			OutPath:      outPath,
			Weighted:     true,
			PrintWeights: true,
		})

		err := application.Run(ctx)
		assert.NoError(t, err)

		f, err := os.Open(outPath)
		assert.NoError(t, err)
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		assert.NoError(t, err)
		assert.Len(t, records, len(service.DefaultCatalog())+1)
		assert.Equal(t, []string{"item", "unit", "year_2000", "year_2024", "source"}, records[0])
		assert.Equal(t, "2.000", records[1][2])
		assert.Equal(t, "3.000", records[1][3])

		text := out.String()
		assert.Contains(t, text, "Wrote CSV: "+outPath)
		assert.Contains(t, text, fmt.Sprintf("Items used: %d (of %d)", len(service.DefaultCatalog()), len(service.DefaultCatalog())))
		// every relative is 1.5, so both means are exactly 50%
		assert.Contains(t, text, "arithmetic mean of pct changes):  50.00%")
		assert.Contains(t, text, "geometric mean of relatives):     50.00%")
		assert.Contains(t, text, "WEIGHTED 'NECESSITIES' INDEX")
		assert.Contains(t, text, "Weighted pct change:  50.00%")
		assert.Contains(t, text, "Normalized category weights actually used:")
		assert.Contains(t, text, "Top item increases:")
		assert.Contains(t, text, "Top item decreases:")
	})

	t.Run("charts are written when plotting is enabled", func(t *testing.T) {
		srv := stubFRED(t, map[string]string{"2000": "1.0", "2024": "2.0"})
		defer srv.Close()

		dir := t.TempDir()
		prev, err := os.Getwd()
		assert.NoError(t, err)
		assert.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(prev) })

		application, out := newTestApp(t, srv.URL, Params{
			YearA:   2000,
			YearB:   2024,
			OutPath: filepath.Join(dir, "basket.csv"),
			Plot:    true,
		})

		err = application.Run(ctx)
		assert.NoError(t, err)

		assert.FileExists(t, filepath.Join(dir, "levels_2000_vs_2024.png"))
		assert.FileExists(t, filepath.Join(dir, "pct_changes_2000_vs_2024.png"))
		assert.Contains(t, out.String(), "Saved charts:")
	})

	t.Run("upstream failure aborts before output", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		outPath := filepath.Join(t.TempDir(), "basket.csv")
		application, _ := newTestApp(t, srv.URL, Params{YearA: 2000, YearB: 2024, OutPath: outPath})

		err := application.Run(ctx)

		assert.ErrorIs(t, err, service.ErrFetchFailure)
		_, statErr := os.Stat(outPath)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("empty series report uncomputable statistics", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"observations":[{"value":"."}]}`))
		}))
		defer srv.Close()

		outPath := filepath.Join(t.TempDir(), "basket.csv")
		application, out := newTestApp(t, srv.URL, Params{
			YearA:    2000,
			YearB:    2024,
			OutPath:  outPath,
			Weighted: true,
			Plot:     true,
		})

		err := application.Run(ctx)
		assert.NoError(t, err)

		text := out.String()
		assert.Contains(t, text, "Items used: 0 (of 13)")
		assert.Contains(t, text, "uncomputable")
		assert.Contains(t, text, "Weighted index: not computed")
		assert.NotContains(t, text, "Saved charts:")

		f, err := os.Open(outPath)
		assert.NoError(t, err)
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		assert.NoError(t, err)
		assert.Equal(t, "", records[1][2])
		assert.Equal(t, "", records[1][3])
	})
}
