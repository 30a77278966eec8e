// Package main provides the CLI entry point for finsheet.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/finsheet-go/internal/app"
	"github.com/ukaji3/finsheet-go/pkg/finsheet"
	"github.com/ukaji3/finsheet-go/pkg/finsheet/models"
	"github.com/ukaji3/finsheet-go/pkg/finsheet/output"
	"golang.org/x/sync/errgroup"
)

var (
	outputPath  string
	outDir      string
	pretty      bool
	format      string
	sheetName   string
	noSheetData bool
	sheetsDir   string
	showReport  bool
)

var (
	errWorkbookTooLarge = errors.New("workbook too large")
	errDuplicateOutput  = errors.New("duplicate output name")
)

// result is the outcome of parsing one input file.
type result struct {
	path   string
	data   *models.ParsedExcelData
	report *models.Report
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "finsheet [workbook.xlsx|workbook.xls...]",
		Short: "Extract financial statements from Data Sheet workbooks",
		Long: `finsheet reads company workbooks exported in the "Data Sheet" layout and
outputs meta data, profit & loss, quarterly results, balance sheet and cash flow
as JSON or YAML.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path for a single input (default: stdout)")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for per-input output files")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet to read (default: FINSHEET_SHEET_NAME or \"Data Sheet\")")
	rootCmd.Flags().BoolVar(&noSheetData, "no-sheet-data", false, "Omit the raw sheet snapshot from the output")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-input raw sheet snapshots")
	rootCmd.Flags().BoolVar(&showReport, "report", false, "Log rows skipped while parsing each input")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	logger := app.NewLogger(cfg, cmd.ErrOrStderr())

	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	if outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output takes a single input, got %d (use --out-dir)", len(args))
	}
	if outDir != "" || sheetsDir != "" {
		if err := checkBaseNames(args); err != nil {
			return err
		}
	}

	include := !noSheetData || sheetsDir != ""
	opts := finsheet.Options{
		SheetName:        cfg.SheetName,
		IncludeSheetData: &include,
		Logger:           logger,
	}
	if sheetName != "" {
		opts.SheetName = sheetName
	}

	results, err := parseAll(cmd.Context(), args, opts, cfg)
	if err != nil {
		return err
	}

	if showReport {
		for _, res := range results {
			logger.Info("parse report",
				"file", res.path,
				"degraded", res.report.Degraded(),
				"series", res.report.SeriesEmitted,
				"malformed_rows", res.report.MalformedRows,
				"unmapped_labels", len(res.report.UnmappedLabels),
				"ignored_markers", res.report.IgnoredMarkers,
				"ignored_headers", res.report.IgnoredHeaders,
			)
		}
	}

	// Write per-input sheet snapshots
	if sheetsDir != "" {
		if err := writeSheetFiles(results, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	if noSheetData {
		for _, res := range results {
			res.data.SheetData = nil
		}
	}

	// Write per-input output files
	if outDir != "" {
		if err := writeOutputFiles(results, outDir, outFormat); err != nil {
			return fmt.Errorf("failed to write output files: %w", err)
		}
		return nil
	}

	for i, res := range results {
		encoded, err := output.Encode(res.data, outFormat, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed for %s: %w", res.path, err)
		}
		if outputPath != "" {
			if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			continue
		}
		if outFormat == output.FormatYAML && i > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "---")
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(encoded), "\n"))
	}

	return nil
}

// parseAll parses every input concurrently and returns results in argument order.
func parseAll(ctx context.Context, paths []string, opts finsheet.Options, cfg *app.Config) ([]*result, error) {
	results := make([]*result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := readWorkbook(path, cfg.MaxWorkbookBytes)
			if err != nil {
				return err
			}
			data, report, err := finsheet.ParseWithReport(buf, opts)
			if err != nil {
				return fmt.Errorf("extraction failed for %s: %w", path, err)
			}
			results[i] = &result{path: path, data: data, report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// readWorkbook loads a workbook after checking it against the size limit.
func readWorkbook(path string, maxBytes int64) ([]byte, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", finsheet.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	if info.Size() > maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", errWorkbookTooLarge, path, info.Size(), maxBytes)
	}
	return os.ReadFile(path)
}

func writeOutputFiles(results []*result, dir string, outFormat output.Format) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, res := range results {
		encoded, err := output.Encode(res.data, outFormat, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, baseName(res.path)+"."+outFormat.Ext())
		if err := os.WriteFile(filename, encoded, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writeSheetFiles(results []*result, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, res := range results {
		for _, sheet := range res.data.SheetData {
			jsonData, err := output.SheetToJSON(&sheet, pretty)
			if err != nil {
				return err
			}

			filename := filepath.Join(dir, baseName(res.path)+".sheet.json")
			if err := os.WriteFile(filename, jsonData, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkBaseNames rejects inputs that would write the same per-input file.
func checkBaseNames(paths []string) error {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		name := baseName(path)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s and %s both write %q", errDuplicateOutput, prev, path, name)
		}
		seen[name] = path
	}
	return nil
}

// baseName strips the directory and extension from a path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
