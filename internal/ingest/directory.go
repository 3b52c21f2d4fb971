// Package ingest discovers filing PDFs on disk and pairs them with their
// registry identity.
package ingest

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nacc-tools/disclosure-etl/internal/common"
	"github.com/nacc-tools/disclosure-etl/internal/registry"
)

// Filing is one discovered input file.
type Filing struct {
	Path string
	// Info is the registry row matched by filename, nil when unregistered.
	Info *registry.DocInfo

	ordinal int
}

// DirStats summarizes a discovery walk.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Unregistered uint32
}

// DiscoverFilings walks root, keeps PDFs, skips hidden entries, and looks
// each file up in the registry by base name. Registered filings come back
// in registry input order, which every downstream export preserves;
// unregistered stragglers follow in path order.
func DiscoverFilings(root string, reg *registry.Registry, logger *slog.Logger) ([]Filing, DirStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("input directory is required")
	}

	var filings []Filing
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		stats.Matched++

		base := filepath.Base(path)
		info := reg.DocByLocation(base)
		if info == nil {
			stats.Unregistered++
		}
		filings = append(filings, Filing{Path: path, Info: info, ordinal: reg.DocOrdinal(base)})
		return nil
	})
	if err != nil {
		return nil, stats, common.WrapError(err, "walk input dir")
	}

	sort.Slice(filings, func(i, j int) bool {
		a, b := filings[i], filings[j]
		if (a.ordinal >= 0) != (b.ordinal >= 0) {
			return a.ordinal >= 0
		}
		if a.ordinal != b.ordinal {
			return a.ordinal < b.ordinal
		}
		return a.Path < b.Path
	})

	logger.Info("ingest.discover.ok",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"unregistered", stats.Unregistered,
	)
	return filings, stats, nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
