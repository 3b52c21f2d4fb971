package cli

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/store"
)

var dbhealthCmd = &cobra.Command{
	Use:   "dbhealth",
	Short: "Check connectivity to the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg := common.LoadConfig()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		st, err := store.Open(ctx, cfg.Store, logger)
		if err != nil {
			return err
		}
		defer st.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := st.HealthCheck(pingCtx); err != nil {
			logger.Error("dbhealth.fail", "error", err)
			return err
		}
		logger.Info("dbhealth.ok")
		return nil
	},
}
