package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/codetestguard/internal/configloader"
	"github.com/yaklabco/codetestguard/internal/logging"
	"github.com/yaklabco/codetestguard/internal/ui/pretty"
	"github.com/yaklabco/codetestguard/pkg/config"
	"github.com/yaklabco/codetestguard/pkg/export"
	"github.com/yaklabco/codetestguard/pkg/fsutil"
	"github.com/yaklabco/codetestguard/pkg/record"
	"github.com/yaklabco/codetestguard/pkg/report"
)

// Sentinel errors used to pick an exit code.
var (
	// ErrConfig wraps configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")

	// ErrInvalidRecord wraps record decoding failures.
	ErrInvalidRecord = errors.New("invalid analysis record")
)

// Summary styles printed to stderr after a successful render.
const (
	summaryFull    = "full"
	summaryOneLine = "oneline"
)

type renderFlags struct {
	project   string
	format    string
	outputDir string
	timeZone  string
	summary   string
	stdout    bool
	quiet     bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [record]",
		Short: "Render an analysis record as a report artifact",
		Long:  renderLongDescription,
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.project, "project", "p", "", "Project name for the title and filename")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Artifact format: html, json, or yaml")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "Directory to write the artifact to")
	cmd.Flags().StringVar(&flags.timeZone, "time-zone", "", "IANA time zone for report timestamps")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "Write the artifact to stdout instead of a file")
	cmd.Flags().StringVar(&flags.summary, "summary", summaryFull, "Summary style: full or oneline")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress the summary")

	return cmd
}

const renderLongDescription = `Render an analysis record as a report artifact.

The record is read from the given file, or from stdin when the argument is
"-" or omitted. Files ending in .yaml or .yml are decoded as YAML; anything
else is decoded as JSON.

Examples:
  codetestguard render record.json                 # HTML report in the current directory
  codetestguard render record.json -p 订单服务       # Project-qualified title and filename
  codetestguard render record.json -f json         # Indented JSON data dump
  cat record.json | codetestguard render --stdout  # Stream the document to stdout`

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	if flags.summary != summaryFull && flags.summary != summaryOneLine {
		return fmt.Errorf("%w: invalid summary style %q; must be full or oneline", ErrUsage, flags.summary)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadRenderConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}
	logger := logging.New(level)
	ctx = logging.WithLogger(ctx, logger)

	input := fsutil.StdinPath
	if len(args) == 1 {
		input = args[0]
	}

	data, err := fsutil.ReadInput(ctx, input, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read record: %w", err)
	}

	rec, err := decodeRecord(input, data)
	if err != nil {
		return errors.Join(ErrInvalidRecord, err)
	}
	logger.Debug("record decoded",
		logging.FieldInput, input,
		logging.FieldReportID, rec.ID,
	)

	loc, err := cfg.Location()
	if err != nil {
		return errors.Join(ErrConfig, err)
	}
	mode, err := cfg.Mode()
	if err != nil {
		return errors.Join(ErrConfig, err)
	}
	format, err := export.ParseFormat(string(cfg.Format))
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	var saver export.Saver = &export.FileSaver{Dir: cfg.OutputDir, Mode: mode}
	if cfg.Stdout {
		saver = &export.WriterSaver{W: cmd.OutOrStdout()}
	}

	exporter, err := export.New(export.Options{
		Saver:    saver,
		Renderer: report.NewRenderer(report.Options{Locale: report.NewLocale(loc)}),
	})
	if err != nil {
		return fmt.Errorf("create exporter: %w", err)
	}

	artifact, err := exporter.Export(ctx, format, rec, cfg.ProjectName)
	if err != nil {
		return err
	}

	logger.Info("report exported",
		logging.FieldFormat, artifact.Format,
		logging.FieldOutput, artifact.Location,
	)

	if flags.quiet {
		return nil
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	errOut := cmd.ErrOrStderr()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, errOut))
	summary := report.Summarize(rec, cfg.ProjectName)
	if flags.summary == summaryOneLine {
		fmt.Fprint(errOut, styles.FormatSummaryOneLine(summary))
		return nil
	}
	fmt.Fprint(errOut, styles.FormatSummary(summary, artifact, pretty.TerminalWidth(errOut)))

	return nil
}

// loadRenderConfig merges explicitly set flags over the discovered
// configuration layers.
func loadRenderConfig(ctx context.Context, cmd *cobra.Command, flags *renderFlags) (*config.Config, error) {
	cliCfg := &config.Config{
		Format:      export.Format(flags.format),
		OutputDir:   flags.outputDir,
		TimeZone:    flags.timeZone,
		ProjectName: flags.project,
		Stdout:      flags.stdout,
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	logger := logging.Default()
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfigFiles, result.LoadedFrom)
	}

	return result.Config, nil
}

// decodeRecord picks the decoder from the input's extension.
func decodeRecord(path string, data []byte) (*record.AnalysisRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return record.DecodeYAML(data)
	default:
		return record.Decode(data)
	}
}
