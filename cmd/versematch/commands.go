package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"versematch/internal/api"
	"versematch/internal/config"
	"versematch/internal/corpus"
	"versematch/internal/logging"
	"versematch/internal/store"
)

var (
	authorFilter string
	serveAddr    string
	importFrom   string
	importTo     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Identify a verse or describe free text",
	Long: `Analyzes the given text, or standard input when no text is given.

Examples:
  versematch analyze "அகர முதல எழுத்தெல்லாம் ஆதி பகவன் முதற்றே உலகு"
  versematch analyze 391
  echo "நான் இன்று பள்ளிக்கு செல்கிறேன்" | versematch analyze`,
	RunE: runAnalyze,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [corpus] [number]",
	Short: "Print one verse by corpus key and number",
	Args:  cobra.ExactArgs(2),
	RunE:  runLookup,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show loaded and expected verse counts",
	RunE:  runStats,
}

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List the loaded corpora",
	RunE:  runBooks,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over HTTP",
	RunE:  runServe,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the configured corpora from one store into another",
	Long: `Reads every configured corpus from --from and writes it to --to.

Example:
  versematch import --from json --to sqlite`,
	RunE: runImport,
}

var seedCmd = &cobra.Command{
	Use:   "seed [dir]",
	Short: "Write the bundled sample corpora as JSON files",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSeed,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	a, err := newAnalyzer(commandContext(cmd))
	if err != nil {
		return err
	}
	res := a.Analyze(text)
	if jsonOutput {
		return printJSON(res)
	}
	fmt.Println(newStyles().renderResult(res))
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary(commandContext(cmd))
	if err != nil {
		return err
	}
	key, number := args[0], args[1]
	if _, ok := lib.Get(key); !ok {
		return fmt.Errorf("unknown corpus %q", key)
	}
	v, ok := lib.LookupByNumber(key, number)
	if !ok {
		return fmt.Errorf("%s has no verse %s", key, number)
	}
	if jsonOutput {
		return printJSON(v)
	}
	fmt.Println(newStyles().renderVerse(key, v))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary(commandContext(cmd))
	if err != nil {
		return err
	}
	stats := lib.Statistics()
	if jsonOutput {
		return printJSON(stats)
	}
	fmt.Println(newStyles().renderStats(stats))
	return nil
}

func runBooks(cmd *cobra.Command, args []string) error {
	lib, err := loadLibrary(commandContext(cmd))
	if err != nil {
		return err
	}
	books := lib.Books()
	if authorFilter != "" {
		keep := make(map[string]bool)
		for _, k := range lib.BooksByAuthor(authorFilter) {
			keep[k] = true
		}
		filtered := books[:0]
		for _, b := range books {
			if keep[b.Key] {
				filtered = append(filtered, b)
			}
		}
		books = filtered
	}
	if jsonOutput {
		return printJSON(books)
	}
	if len(books) == 0 {
		fmt.Println("No books found")
		return nil
	}
	fmt.Println(newStyles().renderBooks(books))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	a, err := newAnalyzer(ctx)
	if err != nil {
		return err
	}
	stats := a.Statistics()
	logging.Boot("serving %d books, %d verses", stats.TotalBooks, stats.TotalLoadedVerses)
	return api.NewServer(a, cfg).Start(ctx)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	if importFrom == importTo {
		return errors.New("--from and --to must differ")
	}

	src := *cfg
	src.Corpora = make([]config.CorpusConfig, len(cfg.Corpora))
	for i, cc := range cfg.Corpora {
		cc.Source = importFrom
		src.Corpora[i] = cc
	}
	set, err := store.Open(ctx, &src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer set.Close()

	w, closeWriter, err := store.OpenWriter(ctx, cfg, importTo)
	if err != nil {
		return fmt.Errorf("failed to open target: %w", err)
	}
	defer closeWriter()

	results, err := store.Import(ctx, set.Specs, w)
	for _, r := range results {
		fmt.Printf("imported %s: %d verses\n", r.Key, r.Verses)
	}
	return err
}

func runSeed(cmd *cobra.Command, args []string) error {
	dir := cfg.Storage.DataDir
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	for _, key := range corpus.SampleKeys() {
		data, err := corpus.SampleJSON(key)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, key+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
