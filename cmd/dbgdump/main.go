// Package main implements the dbgdump CLI, a YAML pretty-dumper driving the
// dbg printing helpers the way the surrounding engine would.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	goruntime "runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	yaml "gopkg.in/yaml.v3"

	"github.com/715d/dbgprint/pkg/dbg"
)

// Config holds all command-line configuration options for dbgdump.
type Config struct {
	Files   []string // the YAML files to dump
	Verbose bool     // enables detailed logging on stderr
	Mapping bool     // render scalar sequences as index -> value mappings
	Label   string   // root label prepended to every key path
}

const exitError = 2

var (
	// Set via ldflags during build.
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

var cfg Config

func main() {
	var rootCmd = &cobra.Command{
		Use:   "dbgdump [files...]",
		Short: "Pretty-dump YAML documents through the dbg printing helpers",
		Long: `dbgdump renders YAML documents as labelled debug output.

Mappings become "key = value" lines with dotted key paths, scalar sequences
become sized container listings, and scalars print as-is.`,
		Example: `  dbgdump state.yaml                  # Dump a single document
  dbgdump a.yaml b.yaml              # Dump several, banner per file
  dbgdump --mapping metrics.yaml     # Sequences as index -> value
  dbgdump --label cfg config.yaml    # Prefix every key path with "cfg"`,
		Args:              cobra.ArbitraryArgs,
		RunE:              runCommand,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version,
	}

	// Set custom version template to include build info.
	rootCmd.SetVersionTemplate(fmt.Sprintf("dbgdump version %s\n  commit: %s\n  built:  %s\n", version, gitCommit, buildTime))

	// Define flags.
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.Mapping, "mapping", false, "Render scalar sequences as index -> value mappings")
	rootCmd.PersistentFlags().StringVar(&cfg.Label, "label", "", "Root label prepended to every key path")

	if err := rootCmd.Execute(); err != nil {
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		var cErr codedError
		if errors.As(err, &cErr) {
			os.Exit(cErr.code)
		}
		os.Exit(exitError)
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errWithCode(errors.New("no input files"), exitError)
	}
	cfg.Files = args

	start := time.Now()
	slog.Info("loading documents", "files", cfg.Files)

	docs, err := loadFiles(cmd.Context(), cfg.Files)
	if err != nil {
		return errWithCode(fmt.Errorf("load: %w", err), exitError)
	}
	slog.Info("loaded documents", "num", len(docs), "dur", time.Since(start))

	// The dump is the tool's purpose, so the printer is always on.
	printer := dbg.New(os.Stdout, true)
	for i, doc := range docs {
		if len(docs) > 1 {
			printer.Varln("file", cfg.Files[i])
		}
		render(printer, cfg.Label, doc, cfg.Mapping)
	}
	return nil
}

// loadFiles decodes every file concurrently. Each goroutine writes to its own
// slice index, so output keeps the argument order regardless of which decode
// finishes first.
func loadFiles(ctx context.Context, files []string) ([]any, error) {
	docs := make([]any, len(files))

	var wg errgroup.Group
	wg.SetLimit(goruntime.NumCPU())
	for idx, file := range files {
		wg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			var doc any
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}
			docs[idx] = doc
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func setup(_ *cobra.Command, _ []string) error {
	// Disable logger unless verbose flag is set.
	slog.SetDefault(slog.New(slog.DiscardHandler))
	if cfg.Verbose {
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
	}
	return nil
}

func errWithCode(err error, code int) error {
	return &codedError{err: err, code: code}
}

type codedError struct {
	err  error
	code int
}

func (e codedError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}
