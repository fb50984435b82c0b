package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"versematch/internal/analyzer"
	"versematch/internal/config"
	"versematch/internal/corpus"
	"versematch/internal/lexicon"
	"versematch/internal/logging"
	"versematch/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	useSamples bool
	jsonOutput bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "versematch",
	Short: "Identify Tamil classical verses and describe free text",
	Long: `versematch decides whether a piece of Tamil text is a verse from one of the
configured classical corpora (Thirukkural, Kamba Ramayanam, ...). Matches report
the verse with its meaning and metadata; anything else gets a word gloss and a
sentiment label.

Corpora are read from JSON files, SQLite, Postgres or bbolt as configured in
versematch.yaml. Use --samples to run against the bundled sample corpora.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env")

		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c

		zcfg := zap.NewProductionConfig()
		if cfg.Logging.Format == "console" {
			zcfg.Encoding = "console"
			zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		}
		if cfg.Logging.Level != "" {
			lvl, err := zap.ParseAtomicLevel(cfg.Logging.Level)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
			}
			zcfg.Level = lvl
		}
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if cfg.Logging.File != "" {
			zcfg.OutputPaths = []string{cfg.Logging.File}
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.SetBase(logger, cfg.Logging.Categories)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().BoolVar(&useSamples, "samples", false, "Use the bundled sample corpora instead of configured storage")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	booksCmd.Flags().StringVar(&authorFilter, "author", "", "Only books whose author contains this text")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
	importCmd.Flags().StringVar(&importFrom, "from", config.SourceJSON, "Source to read corpora from (json, sqlite, postgres, bolt)")
	importCmd.Flags().StringVar(&importTo, "to", "", "Store to write corpora to (sqlite, postgres, bolt)")
	_ = importCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(
		analyzeCmd,
		lookupCmd,
		statsCmd,
		booksCmd,
		serveCmd,
		importCmd,
		seedCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadLibrary reads every configured corpus. Database handles are released
// once the library is in memory.
func loadLibrary(ctx context.Context) (*corpus.Library, error) {
	if useSamples {
		return corpus.SampleLibrary()
	}
	set, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus sources: %w", err)
	}
	defer set.Close()

	timer := logging.StartTimer(logging.CategoryBoot, "load library")
	lib := set.Load(ctx, cfg.GetLoadTimeout())
	timer.StopWithInfo()
	return lib, nil
}

func newAnalyzer(ctx context.Context) (*analyzer.Analyzer, error) {
	lib, err := loadLibrary(ctx)
	if err != nil {
		return nil, err
	}
	return analyzer.New(lib, lexicon.Default(), cfg.Matching), nil
}
