// Package main provides the CLI entry point for faresnap.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	outputPath string
	xlsxPath   string
	fromCity   string
	toCity     string
	month      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "faresnap",
		Short: "Compare this-year and last-year fare snapshots",
		Long: `faresnap reads a fare snapshot workbook and compares this-year (TY) and
last-year (LY) average fares or passenger counts for a city pair and month
across the snapshot dates, with rolling mean and Bollinger bands.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().String("sheet", "", "Worksheet holding the snapshot table")
	rootCmd.PersistentFlags().Int("header-row", 0, "1-based header row")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newCompareCmd(), newChoicesCmd(), newWatchCmd())
	return rootCmd
}

// addSelectionFlags registers the flags naming one comparison request.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fromCity, "from", "", "Origin city")
	cmd.Flags().StringVar(&toCity, "to", "", "Destination city")
	cmd.Flags().StringVar(&month, "month", "", "Travel month")
	cmd.Flags().String("metric", "", "Metric family: fare or pax")
	cmd.Flags().Int("window", 0, "Rolling window size")
	cmd.Flags().String("format", "", "Output format: table or json")
	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("month")
}
