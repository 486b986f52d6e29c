package main

import (
	"database/sql"
	"fmt"
	"os"

	"fundingrank/internal"
	"fundingrank/internal/app"
	"fundingrank/internal/domain"
	"fundingrank/internal/logger"
	"fundingrank/internal/repository"
	"fundingrank/internal/util"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	strategiesFile string

	rankStrategy  string
	rankStart     string
	rankEnd       string
	noIncremental bool

	btStrategy       string
	btStart          string
	btEnd            string
	btInitialCapital float64
	btPositionSize   float64
	btFeeRate        float64
	btMaxPositions   int
	btEntryTopN      int
	btExitThreshold  int
	btExportCsv      string

	importFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "fundingrank",
		Short:         "funding rate pair ranking and backtesting",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&strategiesFile, "strategies-file", "", "YAML file with additional strategy definitions")

	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "compute and persist strategy rankings over a date range",
		RunE:  runRank,
	}
	rankCmd.Flags().StringVar(&rankStrategy, "strategy", "all", "strategy name, or 'all' for every registered strategy")
	rankCmd.Flags().StringVar(&rankStart, "start", "", "start date (YYYY-MM-DD)")
	rankCmd.Flags().StringVar(&rankEnd, "end", "", "end date (YYYY-MM-DD)")
	rankCmd.Flags().BoolVar(&noIncremental, "no-incremental", false, "recompute and replace dates that already have results")
	rankCmd.MarkFlagRequired("start")
	rankCmd.MarkFlagRequired("end")

	backtestCmd := &cobra.Command{
		Use:   "backtest",
		Short: "simulate a rotating portfolio over persisted rankings",
		RunE:  runBacktest,
	}
	backtestCmd.Flags().StringVar(&btStrategy, "strategy", internal.DefaultStrategy, "strategy whose rankings drive the simulation")
	backtestCmd.Flags().StringVar(&btStart, "start", "", "start date (YYYY-MM-DD)")
	backtestCmd.Flags().StringVar(&btEnd, "end", "", "end date (YYYY-MM-DD)")
	backtestCmd.Flags().Float64Var(&btInitialCapital, "initial-capital", 10000, "starting cash")
	backtestCmd.Flags().Float64Var(&btPositionSize, "position-size", 0.1, "fraction of initial capital per entry")
	backtestCmd.Flags().Float64Var(&btFeeRate, "fee-rate", 0, "fee rate applied on entry and exit")
	backtestCmd.Flags().IntVar(&btMaxPositions, "max-positions", 5, "maximum concurrent positions")
	backtestCmd.Flags().IntVar(&btEntryTopN, "entry-top-n", 5, "highest rank eligible for entry")
	backtestCmd.Flags().IntVar(&btExitThreshold, "exit-threshold", 10, "rank beyond which a held pair is rotated out")
	backtestCmd.Flags().StringVar(&btExportCsv, "export-csv", "", "write the event log to this CSV file")
	backtestCmd.MarkFlagRequired("start")
	backtestCmd.MarkFlagRequired("end")

	importCmd := &cobra.Command{
		Use:   "import-metrics",
		Short: "upsert return metrics from a CSV export",
		RunE:  runImportMetrics,
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "CSV file to import")
	importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(rankCmd, backtestCmd, importCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newDb() (*sql.DB, error) {
	godotenv.Load()

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	return dbConn, nil
}

func newRegistry() (*internal.StrategyRegistry, error) {
	registry := internal.NewStrategyRegistry()
	if strategiesFile != "" {
		if err := internal.LoadStrategies(strategiesFile, registry); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func runRank(cmd *cobra.Command, args []string) error {
	start, err := util.ParseDate(rankStart)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", rankStart, err)
	}
	end, err := util.ParseDate(rankEnd)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", rankEnd, err)
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	strategyNames := []string{rankStrategy}
	if rankStrategy == "all" {
		strategyNames = registry.Names()
	}

	dbConn, err := newDb()
	if err != nil {
		return err
	}
	defer dbConn.Close()

	ctx := logger.AddToContext(cmd.Context(), logger.New())
	service := app.NewRankingService(
		repository.NewReturnMetricsRepository(dbConn),
		repository.NewStrategyRankingRepository(dbConn),
	)

	mode := domain.RecomputeModeIncremental
	if noIncremental {
		mode = domain.RecomputeModeForced
	}

	for _, name := range strategyNames {
		strategy, err := registry.Get(name)
		if err != nil {
			return err
		}

		result, err := service.CalculateRankings(ctx, app.CalculateRankingsInput{
			Strategy: strategy,
			Start:    start,
			End:      end,
			Mode:     mode,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d dates computed, %d skipped, %d rows written\n",
			name, result.DatesComputed, result.DatesSkipped, result.RowsWritten)
	}

	return nil
}

func runBacktest(cmd *cobra.Command, args []string) error {
	start, err := util.ParseDate(btStart)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", btStart, err)
	}
	end, err := util.ParseDate(btEnd)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", btEnd, err)
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	// The registry only gates the name; the simulation consumes persisted
	// rankings, not the strategy definition.
	if _, err := registry.Get(btStrategy); err != nil {
		return err
	}

	dbConn, err := newDb()
	if err != nil {
		return err
	}
	defer dbConn.Close()

	ctx := logger.AddToContext(cmd.Context(), logger.New())
	handler := app.BacktestHandler{
		StrategyRankingRepository: repository.NewStrategyRankingRepository(dbConn),
		ReturnMetricsRepository:   repository.NewReturnMetricsRepository(dbConn),
		BacktestRepository:        repository.NewBacktestRepository(dbConn),
	}

	result, err := handler.Run(ctx, app.BacktestInput{
		StrategyName:   btStrategy,
		Start:          start,
		End:            end,
		InitialCapital: decimal.NewFromFloat(btInitialCapital),
		PositionSize:   btPositionSize,
		FeeRate:        btFeeRate,
		MaxPositions:   btMaxPositions,
		EntryTopN:      btEntryTopN,
		ExitThreshold:  btExitThreshold,
	})
	if err != nil {
		return err
	}

	printSummary(result)

	if btExportCsv != "" {
		f, err := os.Create(btExportCsv)
		if err != nil {
			return fmt.Errorf("failed to create export file %s: %w", btExportCsv, err)
		}
		defer f.Close()
		if err := app.ExportEventsCsv(f, result.Events); err != nil {
			return err
		}
		fmt.Printf("event log written to %s\n", btExportCsv)
	}

	return nil
}

func printSummary(result *app.BacktestResult) {
	s := result.Summary
	fmt.Printf("backtest %s\n", result.BacktestID)
	fmt.Printf("  final capital:    %s\n", s.FinalCapital.StringFixed(2))
	fmt.Printf("  total return:     %s\n", s.TotalReturn.StringFixed(2))
	fmt.Printf("  total roi:        %.4f\n", s.TotalRoi)
	fmt.Printf("  annualized roi:   %.4f\n", s.AnnualizedRoi)
	fmt.Printf("  days (P/L/B):     %d (%d/%d/%d)\n", s.TotalDays, s.ProfitDays, s.LossDays, s.BreakEvenDays)
	fmt.Printf("  win rate:         %.4f\n", s.WinRate)
	fmt.Printf("  max drawdown:     %.4f\n", s.MaxDrawdown)
	fmt.Printf("  trades:           %d\n", s.TotalTrades)
	fmt.Printf("  avg holding days: %.2f\n", s.AvgHoldingDays)
	if s.SharpeRatio != nil {
		fmt.Printf("  sharpe ratio:     %.4f\n", *s.SharpeRatio)
	} else {
		fmt.Printf("  sharpe ratio:     n/a\n")
	}
}

func runImportMetrics(cmd *cobra.Command, args []string) error {
	dbConn, err := newDb()
	if err != nil {
		return err
	}
	defer dbConn.Close()

	f, err := os.Open(importFile)
	if err != nil {
		return fmt.Errorf("failed to open metrics file %s: %w", importFile, err)
	}
	defer f.Close()

	ctx := logger.AddToContext(cmd.Context(), logger.New())
	service := app.NewMetricsImportService(repository.NewReturnMetricsRepository(dbConn))

	count, err := service.ImportCsv(ctx, f)
	if err != nil {
		return err
	}

	fmt.Printf("imported %d metric rows from %s\n", count, importFile)

	return nil
}
