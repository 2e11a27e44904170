// Package main provides the CLI entry point for exchart.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exchart-go/pkg/exchart"
	"github.com/ukaji3/exchart-go/pkg/exchart/config"
	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/narrative"
	"github.com/ukaji3/exchart-go/pkg/exchart/output"
	"github.com/ukaji3/exchart-go/pkg/exchart/render"
	"github.com/ukaji3/exchart-go/pkg/exchart/resolve"
	"golang.org/x/term"
)

var (
	configPath    string
	logLevel      string
	column        string
	value         string
	where         string
	vertices      []string
	vertexCount   int
	invert        bool
	roles         []string
	outputPath    string
	pretty        bool
	format        string
	htmlPath      string
	pngDir        string
	withNarrative bool
	useSample     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exchart [input.xlsx|input.csv]",
		Short: "Chart one entity's row across every sheet of a workbook",
		Long: `exchart picks an entity from the first sheet of a workbook, finds its
row in every sheet and builds five charts: radar (sheet 1), pie (sheet 2),
two bar charts (sheets 3 and 4) and a line chart (sheet 5).

Run with --sample and no input file to chart a built-in example workbook.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: exchart.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&column, "column", "c", "", "Filter column name or index on the first sheet (default: first column)")

	addChartFlags(rootCmd)
	rootCmd.Flags().StringVarP(&value, "value", "v", "", "Filter value (default: smallest value of the column)")
	rootCmd.Flags().StringVarP(&where, "where", "w", "", `Filter expression, e.g. 'Dept == "Sales" && Score > 80'`)
	rootCmd.Flags().StringSliceVar(&roles, "roles", nil, "Charts to build: radar, pie, bar1, bar2, line (default: all)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "auto", "Output format: auto, json, text")
	rootCmd.Flags().StringVar(&htmlPath, "html", "", "Write an HTML chart page to this path")
	rootCmd.Flags().StringVar(&pngDir, "png-dir", "", "Directory for per-chart PNG files")
	rootCmd.Flags().BoolVar(&useSample, "sample", false, "Chart the built-in sample workbook instead of an input file")

	valuesCmd := &cobra.Command{
		Use:   "values [input.xlsx|input.csv]",
		Short: "List the distinct values of the filter column",
		Args:  cobra.ExactArgs(1),
		RunE:  runValues,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [input.xlsx|input.csv]",
		Short: "Interactively select entities and view their charts",
		Args:  cobra.ExactArgs(1),
		RunE:  runBrowse,
	}
	addChartFlags(browseCmd)

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInitConfig,
	}

	rootCmd.AddCommand(valuesCmd, browseCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addChartFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&vertices, "vertices", nil, "Radar vertex columns in order (default: first numeric columns)")
	cmd.Flags().IntVar(&vertexCount, "vertex-count", 0, "Number of default radar vertices (2-10)")
	cmd.Flags().BoolVar(&invert, "invert", false, "Plot larger radar values closer to the center")
	cmd.Flags().BoolVar(&withNarrative, "narrative", false, "Generate a narrative description of the entity")
}

// setup loads the config and builds the logger shared by every command.
func setup() (*config.Config, *slog.Logger, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// runOptions merges config file settings with command-line flags.
func runOptions(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (exchart.Options, error) {
	chartCfg, err := cfg.ChartConfig()
	if err != nil {
		return exchart.Options{}, err
	}
	if cmd.Flags().Changed("vertices") {
		chartCfg.VertexColumns = vertices
	}
	if cmd.Flags().Changed("vertex-count") {
		chartCfg.VertexCount = vertexCount
	}
	if cmd.Flags().Changed("invert") {
		chartCfg.Invert = invert
	}

	opts := exchart.Options{Charts: chartCfg, Where: where, Logger: logger}
	for _, name := range roles {
		role, err := models.ParseRole(strings.TrimSpace(name))
		if err != nil {
			return exchart.Options{}, err
		}
		opts.Roles = append(opts.Roles, role)
	}
	return opts, nil
}

// filterColumn resolves the --column flag against the primary sheet.
func filterColumn(wb *models.Workbook) (int, error) {
	if column == "" {
		return 0, nil
	}
	primary, ok := wb.Primary()
	if !ok {
		return 0, nil
	}
	if idx := primary.Table.ColumnIndex(column); idx >= 0 {
		return idx, nil
	}
	idx, err := strconv.Atoi(column)
	if err != nil || idx < 0 || idx >= primary.Table.NumColumns() {
		return 0, fmt.Errorf("column %q not found in sheet %q", column, primary.Name)
	}
	return idx, nil
}

// selection builds the filter from --column and --value. A value that
// matches nothing is passed through as text and resolves to no data.
func selection(wb *models.Workbook, text string) (models.FilterSelection, error) {
	col, err := filterColumn(wb)
	if err != nil {
		return models.FilterSelection{}, err
	}
	sel := models.FilterSelection{ColumnIndex: col}
	if text == "" {
		return sel, nil
	}
	sel.Value = text
	if primary, ok := wb.Primary(); ok {
		if v, found := resolve.LookupValue(primary.Table, col, text); found {
			sel.Value = v
		}
	}
	return sel, nil
}

func addNarrative(ctx context.Context, res *exchart.Result, cfg *config.Config, logger *slog.Logger) {
	if !withNarrative && !cfg.Narrative.Enabled {
		return
	}
	if !res.Resolution.Found {
		return
	}
	client := narrative.NewClient(cfg.NarrativeClientConfig(logger))
	res.Narrative = client.Generate(ctx, res.EntityName(), res.Summary)
}

// loadWorkbook returns the sample workbook with --sample, otherwise the
// input file named by args.
func loadWorkbook(args []string, logger *slog.Logger) (*models.Workbook, error) {
	if useSample {
		if len(args) > 0 {
			return nil, errors.New("--sample does not take an input file")
		}
		return exchart.SampleWorkbook(), nil
	}
	if len(args) == 0 {
		return nil, errors.New("input file required (or use --sample)")
	}
	wb, err := exchart.Load(args[0], logger)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	return wb, nil
}

// selectionText is the --value text, defaulting to the sample entity when
// charting the sample workbook without a filter.
func selectionText() string {
	if useSample && value == "" && where == "" {
		return exchart.SampleEntity
	}
	return value
}

func run(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	wb, err := loadWorkbook(args, logger)
	if err != nil {
		return err
	}

	opts, err := runOptions(cmd, cfg, logger)
	if err != nil {
		return err
	}
	sel, err := selection(wb, selectionText())
	if err != nil {
		return err
	}

	res, err := exchart.Run(wb, sel, opts)
	if err != nil {
		return err
	}
	addNarrative(cmd.Context(), res, cfg, logger)

	if htmlPath != "" {
		if err := writeHTML(res, htmlPath); err != nil {
			return fmt.Errorf("failed to write html: %w", err)
		}
	}
	if pngDir != "" {
		if err := writePNGFiles(res, pngDir, logger); err != nil {
			return fmt.Errorf("failed to write png files: %w", err)
		}
	}

	return writeResult(res)
}

func useText() bool {
	switch format {
	case "text":
		return true
	case "json":
		return false
	}
	return outputPath == "" && term.IsTerminal(int(os.Stdout.Fd()))
}

func writeResult(res *exchart.Result) error {
	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if useText() {
		return render.Terminal(out, res)
	}

	jsonData, err := output.ToJSON(res, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(out, string(jsonData))
	return err
}

func writeHTML(res *exchart.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.HTML(f, res)
}

func writePNGFiles(res *exchart.Result, dir string, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, spec := range res.Charts {
		if !spec.Drawable() || spec.Role == models.RoleRadar {
			logger.Debug("png skipped", "role", spec.Role.String(), "status", string(spec.Status))
			continue
		}
		filename := filepath.Join(dir, spec.Role.String()+".png")
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		err = render.PNG(f, spec, res.EntityName())
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
	}
	return nil
}

func runValues(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}
	wb, err := exchart.Load(args[0], logger)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	col, err := filterColumn(wb)
	if err != nil {
		return err
	}

	primary, ok := wb.Primary()
	if !ok {
		return nil
	}
	for _, v := range resolve.DistinctValues(primary.Table, col) {
		fmt.Fprintln(cmd.OutOrStdout(), models.FormatValue(v))
	}
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := config.DefaultConfigPath()
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.InitConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
	return nil
}
