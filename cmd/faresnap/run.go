package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/faresnap-go/internal/config"
	"github.com/ukaji3/faresnap-go/internal/logger"
	"github.com/ukaji3/faresnap-go/pkg/faresnap"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/output"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/source"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input.xlsx]",
		Short: "Compare TY and LY snapshots for one city pair and month",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCompare,
	}
	addSelectionFlags(cmd)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the comparison to this xlsx file")
	return cmd
}

func newChoicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "choices [input.xlsx]",
		Short: "List the cities and months present in a workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runChoices,
	}
	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	return cmd
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [input.xlsx]",
		Short: "Recompute a comparison every time the workbook changes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}
	addSelectionFlags(cmd)
	return cmd
}

// setup loads configuration, initializes logging and resolves the workbook path.
func setup(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	inputPath := cfg.Workbook.Path
	if len(args) == 1 {
		inputPath = args[0]
	}
	if inputPath == "" {
		return nil, "", errors.New("no workbook given (pass a path or set workbook.path)")
	}
	return cfg, inputPath, nil
}

func selection(cfg *config.Config) models.Selection {
	return models.Selection{
		Key: models.Key{
			FromCity: fromCity,
			ToCity:   toCity,
			Month:    month,
		},
		Family: cfg.Family(),
	}
}

func compareOptions(cfg *config.Config) faresnap.Options {
	window := cfg.Compare.Window
	validate := true
	return faresnap.Options{
		Window:            &window,
		ValidateSelection: &validate,
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, inputPath, err := setup(cmd, args)
	if err != nil {
		return err
	}

	book, err := faresnap.Load(inputPath, cfg.LoadOptions())
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	if err := book.Extractor.Validate(); err != nil {
		logger.Warn("Workbook layout: %v", err)
	}
	logger.Info("Loaded %d records from %s (%s)", book.Dataset.Len(), inputPath, book.Range)

	report, err := faresnap.Compare(book, selection(cfg), compareOptions(cfg))
	if err != nil {
		if faresnap.IsRequestError(err) {
			logger.Warn("Skipping comparison: %v", err)
		}
		return fmt.Errorf("comparison failed: %w", err)
	}

	data, err := render(report, cfg)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Write output
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	}

	// Write xlsx export
	if xlsxPath != "" {
		if err := output.ToWorkbook(report, xlsxPath); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		logger.Info("Wrote comparison workbook %s", xlsxPath)
	}

	return nil
}

func runChoices(cmd *cobra.Command, args []string) error {
	cfg, inputPath, err := setup(cmd, args)
	if err != nil {
		return err
	}

	book, err := faresnap.Load(inputPath, cfg.LoadOptions())
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	data, err := output.ChoicesToJSON(book.Dataset.Choices(), cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, inputPath, err := setup(cmd, args)
	if err != nil {
		return err
	}

	store := source.New(inputPath, cfg.LoadOptions())
	book, err := store.Reload()
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	out := cmd.OutOrStdout()
	sel := selection(cfg)
	opts := compareOptions(cfg)
	emit(out, book, sel, opts, cfg)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = store.Watch(ctx, func(book *faresnap.Book, err error) {
		if err != nil {
			return
		}
		emit(out, book, sel, opts, cfg)
	})
	logger.Info("Watch stopped")
	return err
}

// emit computes and prints one report. Request errors are logged, not returned,
// so a bad edit to the workbook does not end the watch.
func emit(w io.Writer, book *faresnap.Book, sel models.Selection, opts faresnap.Options, cfg *config.Config) {
	report, err := faresnap.Compare(book, sel, opts)
	if err != nil {
		logger.Warn("Skipping comparison for %s: %v", sel.Key, err)
		return
	}
	data, err := render(report, cfg)
	if err != nil {
		logger.Error("Serialization failed: %v", err)
		return
	}
	if _, err := w.Write(data); err != nil {
		logger.Error("Failed to write report: %v", err)
	}
}

func render(report *models.Report, cfg *config.Config) ([]byte, error) {
	if cfg.Output.Format == "json" {
		data, err := output.ToJSON(report, cfg.Output.Pretty)
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	var buf bytes.Buffer
	if err := output.WriteTable(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
