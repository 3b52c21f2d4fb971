package cli

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nacc-tools/disclosure-etl/internal/aggregate"
	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/entity"
	"github.com/nacc-tools/disclosure-etl/internal/export"
	"github.com/nacc-tools/disclosure-etl/internal/normalize"
	"github.com/nacc-tools/disclosure-etl/internal/registry"
	"github.com/nacc-tools/disclosure-etl/internal/store"
)

var exportRegistryDir string

// exportCmd rebuilds the relational exports from existing canonical JSON
// artifacts, without touching OCR or the LLM.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-normalize canonical artifacts and rewrite exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg := common.LoadConfig()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		reg, err := registry.Load(exportRegistryDir, logger)
		if err != nil {
			return err
		}

		artifactDir := filepath.Join(cfg.Parse.OutputDir, "json")
		paths, err := filepath.Glob(filepath.Join(artifactDir, "*.json"))
		if err != nil {
			return common.WrapError(err, "glob artifacts")
		}
		sort.Strings(paths)

		type artifact struct {
			doc     entity.CanonicalDocument
			info    *registry.DocInfo
			ordinal int
			path    string
		}
		arts := make([]artifact, 0, len(paths))
		for _, path := range paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return common.WrapError(err, "read artifact")
			}
			var doc entity.CanonicalDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				logger.Error("export.artifact.decode_failed", "path", path, "error", err)
				continue
			}
			art := artifact{doc: doc, ordinal: -1, path: path}
			for i := range reg.Docs {
				if reg.Docs[i].DocID == doc.DocID {
					art.info = &reg.Docs[i]
					art.ordinal = i
					break
				}
			}
			if art.info == nil {
				logger.Warn("export.artifact.unregistered", "doc_id", doc.DocID, "error", common.ErrReferenceMiss)
			}
			arts = append(arts, art)
		}

		// registry input order first, unregistered stragglers after
		sort.Slice(arts, func(i, j int) bool {
			a, b := arts[i], arts[j]
			if (a.ordinal >= 0) != (b.ordinal >= 0) {
				return a.ordinal >= 0
			}
			if a.ordinal != b.ordinal {
				return a.ordinal < b.ordinal
			}
			return a.path < b.path
		})

		norm := normalize.NewNormalizer(reg, normalize.NewSequence(), logger)
		for i := range arts {
			if _, err := norm.Process(&arts[i].doc, arts[i].info, nil); err != nil {
				logger.Error("export.artifact.normalize_failed", "path", arts[i].path, "error", err)
			}
		}

		svc := export.NewService(cfg.Parse.OutputPrefix, cfg.Parse.OutputDir, logger)
		if err := svc.WriteCSVs(&norm.Tables); err != nil {
			return err
		}
		aggs := aggregate.NewAggregator(logger).Aggregate(&norm.Tables)
		if err := svc.WriteAggregatesCSV(aggs); err != nil {
			return err
		}
		if _, err := svc.WriteSummaryXLSX(&norm.Tables, aggs); err != nil {
			return err
		}

		if cfg.Store.DSN != "" || cfg.Store.Path != "" {
			st, err := store.Open(ctx, cfg.Store, logger)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Migrate(ctx); err != nil {
				return err
			}
			if err := st.InsertTables(ctx, &norm.Tables); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportRegistryDir, "registry", "./registry", "directory of registry CSVs")
}
