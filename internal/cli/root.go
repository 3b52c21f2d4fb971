// Package cli wires the command-line surface: run, export, and dbhealth.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "disclosure-etl",
	Short: "Extracts Thai asset-disclosure filings into relational tables",
	Long: `disclosure-etl reads scanned NACC asset and liability disclosure
filings, OCRs them, parses the pages with an LLM, merges per-page fragments
into one canonical record per filing, and normalizes the result into
relational tables with CSV, JSON, and XLSX exports.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dbhealthCmd)
}

func initConfig() {
	viper.SetEnvPrefix("DISCLOSURE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newLogger builds the process logger. Everything downstream receives it
// by injection.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
