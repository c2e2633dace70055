package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/godilite/fredbasket/internal/app"
	"github.com/godilite/fredbasket/internal/config"
)

func main() {
	_ = godotenv.Load(".env")

	var params app.Params

	cmd := &cobra.Command{
		Use:          "fredbasket",
		Short:        "Personal inflation report over a fixed FRED price basket",
		Long:         "Fetches BLS Average Price series from FRED for a fixed basket,\naverages them into two yearly reference points and reports inflation\nstatistics as CSV, console text and optional PNG charts.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadFromEnv()
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := config.NewLogger(cfg)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			defer logger.Sync()

			application, err := app.NewApp(cfg, params, logger)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&params.YearA, "year-a", 2000, "base year")
	cmd.Flags().IntVar(&params.YearB, "year-b", 2024, "compare year")
	cmd.Flags().StringVar(&params.OutPath, "out", "fred_basket.csv", "CSV output path")
	cmd.Flags().BoolVar(&params.Plot, "plot", false, "generate PNG charts")
	cmd.Flags().BoolVar(&params.Weighted, "weighted", false, "compute weighted 'necessities' index")
	cmd.Flags().StringVar(&params.WeightsPath, "weights", "", "path to JSON mapping {category: weight}")
	cmd.Flags().BoolVar(&params.PrintWeights, "print-weights", false, "print normalized weights actually used")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
