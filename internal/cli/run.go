package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/nacc-tools/disclosure-etl/constants"
	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/export"
	"github.com/nacc-tools/disclosure-etl/internal/llm"
	"github.com/nacc-tools/disclosure-etl/internal/merge"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
	"github.com/nacc-tools/disclosure-etl/internal/ocr"
	"github.com/nacc-tools/disclosure-etl/internal/pipeline"
	"github.com/nacc-tools/disclosure-etl/internal/registry"
	"github.com/nacc-tools/disclosure-etl/internal/store"
)

var (
	runInputDir    string
	runRegistryDir string
	runMode        string
	runPageWorkers int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process filings end to end and write all exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cfg := common.LoadConfig()
		if runMode != "" {
			cfg.Parse.Mode = constants.ParseMode(runMode)
		}
		if runPageWorkers > 0 {
			cfg.Parse.PageWorkers = runPageWorkers
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		reg, err := registry.Load(runRegistryDir, logger)
		if err != nil {
			return err
		}

		st, err := store.Open(ctx, cfg.Store, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		parser := llm.NewClient(cfg.LLM, logger)
		proc := pipeline.NewProcessor(
			cfg.Parse,
			ocr.NewExtractor(cfg.OCR, logger),
			parser,
			parser,
			merge.NewMerger(logger),
			normalize.NewNormalizer(reg, normalize.NewSequence(), logger),
			export.NewService(cfg.Parse.OutputPrefix, cfg.Parse.OutputDir, logger),
			reg,
			logger,
		)

		if err := proc.Run(ctx, runInputDir); err != nil {
			return err
		}
		return proc.Finalize(ctx, st)
	},
}

func init() {
	runCmd.Flags().StringVar(&runInputDir, "input", "./input", "directory of filing PDFs")
	runCmd.Flags().StringVar(&runRegistryDir, "registry", "./registry", "directory of registry CSVs")
	runCmd.Flags().StringVar(&runMode, "mode", "", "parse mode: combined or page_by_page")
	runCmd.Flags().IntVar(&runPageWorkers, "page-workers", 0, "page parse concurrency")
}
