// Package main provides the CLI entry point for cfd-go.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/cfd-go/pkg/cfd"
	"github.com/ukaji3/cfd-go/pkg/cfd/models"
	"github.com/ukaji3/cfd-go/pkg/cfd/parser"
	"github.com/ukaji3/cfd-go/pkg/cfd/render"
)

var (
	outputPath string
	format     string
	dataPath   string
	sheet      string
	fromDate   string
	toDate     string
	predict    string
	title      string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cfd [config.yaml]",
		Short: "Draw cumulative flow diagrams",
		Long: `cfd draws a cumulative flow diagram from a YAML or JSON chart
configuration and writes it as SVG, PNG or an SVG data URI.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&format, "format", "svg", "Output format: svg, png, datauri")
	rootCmd.Flags().StringVar(&dataPath, "data", "", "Read entries from this xlsx, csv, yaml or json file")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet (and optional range) for xlsx data")
	rootCmd.Flags().StringVar(&fromDate, "from", "", "First visible day (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&toDate, "to", "", "Last visible day (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&predict, "predict", "", "Project completion from this day (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&title, "title", "", "Chart title")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	cfd.SetLogger(logger)

	cfg, err := parser.LoadConfig(args[0])
	if err != nil {
		return err
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}
	cfg.Surface = render.NewSVG()

	var out bytes.Buffer
	if err := renderChart(cfd.New(cfg), format, &out); err != nil {
		return fmt.Errorf("drawing failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, out.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		slog.Info("chart written", "path", outputPath, "format", format, "bytes", out.Len())
		return nil
	}
	_, err = cmd.OutOrStdout().Write(out.Bytes())
	return err
}

// applyFlags overrides configuration values with command line flags.
func applyFlags(cfg *cfd.Config) error {
	if dataPath != "" {
		entries, err := parser.LoadEntries(dataPath, sheet)
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		if cfg.Data == nil {
			cfg.Data = &models.Dataset{}
		}
		cfg.Data.Entries = entries
	}

	dates := []struct {
		value string
		dst   **models.Date
		flag  string
	}{
		{fromDate, &cfg.FromDate, "from"},
		{toDate, &cfg.ToDate, "to"},
		{predict, &cfg.Predict, "predict"},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		parsed, err := models.ParseDate(d.value)
		if err != nil {
			return fmt.Errorf("invalid --%s: %w", d.flag, err)
		}
		*d.dst = cfd.DatePtr(parsed)
	}

	if title != "" {
		cfg.Title = title
	}
	return nil
}

// renderChart draws chart in the requested format onto w.
func renderChart(chart *cfd.Chart, format string, w io.Writer) error {
	switch format {
	case "svg":
		if err := chart.Draw(); err != nil {
			return err
		}
		_, err := io.WriteString(w, chart.Resolved().Config.Surface.Markup())
		return err
	case "datauri":
		uri, err := chart.Image()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, uri+"\n")
		return err
	case "png":
		return chart.PNG(w)
	default:
		return fmt.Errorf("invalid format: %s (must be svg, png, or datauri)", format)
	}
}
