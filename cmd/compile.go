// Package cmd: compile command.
// This is the main command that orchestrates the pipeline:
// read list → fetch → clean → render → write.
//
// It resolves configuration, wires the pipeline and compiles either the
// given list files or every list in the sources directory.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gaurav-prasanna/wikibook/core"
	"github.com/gaurav-prasanna/wikibook/core/book"
	"github.com/gaurav-prasanna/wikibook/core/clean"
	"github.com/gaurav-prasanna/wikibook/core/extract"
	"github.com/gaurav-prasanna/wikibook/core/fetch"
	"github.com/gaurav-prasanna/wikibook/core/imagecache"
	"github.com/gaurav-prasanna/wikibook/core/normalize"
	"github.com/gaurav-prasanna/wikibook/core/output"
	"github.com/gaurav-prasanna/wikibook/core/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var compileCmd = &cobra.Command{
	Use:   "compile [list files...]",
	Short: "Compile article lists into offline books",
	Long: `Compile reads article lists (one URL per line), fetches and cleans every
article and writes one book per list into the results directory.

Without arguments every file in the sources directory is compiled.

Examples:
  wikibook compile
  wikibook compile sources/physics.txt
  wikibook compile --results ./out --format pdf
  wikibook compile --concurrency 4 --rate 2 --skip-failed`,
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	def := book.DefaultConfig()
	flags := compileCmd.Flags()
	flags.String("sources", def.SourcesDir, "Directory of article list files")
	flags.String("results", def.ResultsDir, "Directory for books and images")
	flags.String("format", def.Format, "Output format: "+strings.Join(book.Formats, ", "))
	flags.Int("concurrency", def.Concurrency, "Pages fetched in parallel per list")
	flags.Duration("timeout", def.Timeout, "Per-request timeout")
	flags.Float64("rate", def.Rate, "Maximum requests per second (0 = unlimited)")
	flags.Bool("skip-failed", def.SkipFailed, "Log and skip pages that fail instead of aborting")
	flags.String("user-agent", def.UserAgent, "User-Agent header (default: wikibook)")

	for key, name := range map[string]string{
		"sources":     "sources",
		"results":     "results",
		"format":      "format",
		"concurrency": "concurrency",
		"timeout":     "timeout",
		"rate":        "rate",
		"skip_failed": "skip-failed",
		"user_agent":  "user-agent",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger(cmd)
	compiler, err := newCompiler(cfg, log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var written []string
	if len(args) == 0 {
		written, err = compiler.CompileAll(ctx, cfg.SourcesDir)
		for _, path := range written {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
		}
		return err
	}

	for _, list := range args {
		path, err := compiler.Compile(ctx, list)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	}
	return nil
}

// loadConfig resolves flags, environment and config file into a Config.
func loadConfig() (book.Config, error) {
	cfg := book.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newCompiler wires the pipeline for cfg.
func newCompiler(cfg book.Config, log *slog.Logger) (*book.Compiler, error) {
	writer, err := output.New(cfg.ResultsDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output writer: %w", err)
	}

	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithRate(cfg.Rate),
	)
	images := imagecache.New(writer.OutputDir, fetcher, imagecache.WithLogger(log))

	cleaner, err := clean.New(clean.DefaultRules(), images, clean.WithLogger(log))
	if err != nil {
		return nil, err
	}

	renderer, err := selectRenderer(cfg.Format, writer.OutputDir)
	if err != nil {
		return nil, err
	}

	return &book.Compiler{
		Fetcher:     fetcher,
		Extractor:   extract.New(),
		Cleaner:     cleaner,
		Renderer:    renderer,
		Writer:      writer,
		Logger:      log,
		Style:       render.Stylesheet,
		Concurrency: cfg.Concurrency,
		SkipFailed:  cfg.SkipFailed,
	}, nil
}

// selectRenderer creates the Renderer for format.
func selectRenderer(format, imageDir string) (core.Renderer, error) {
	switch format {
	case "html", "":
		return render.NewHTMLRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(normalize.New()), nil
	case "json":
		return render.NewJSONRenderer(normalize.New()), nil
	case "pdf":
		return render.NewPDFRenderer(normalize.New(), imageDir), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
