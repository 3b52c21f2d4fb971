package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nacc-tools/disclosure-etl/internal/registry"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
}

func TestDiscoverFilings(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "filing_101.pdf"))
	touch(t, filepath.Join(dir, "sub", "filing_100.pdf"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, ".hidden.pdf"))
	touch(t, filepath.Join(dir, ".cache", "stale.pdf"))

	reg := registry.New(nil)
	reg.AddDoc(registry.DocInfo{DocID: "D1", NaccID: 100, DocLocationURL: "filing_100.pdf"})

	filings, stats, err := DiscoverFilings(dir, reg, nil)
	require.NoError(t, err)

	require.Len(t, filings, 2)
	// registered filing leads, the unregistered straggler follows
	assert.Equal(t, filepath.Join(dir, "sub", "filing_100.pdf"), filings[0].Path)
	require.NotNil(t, filings[0].Info)
	assert.Equal(t, "D1", filings[0].Info.DocID)
	assert.Equal(t, filepath.Join(dir, "filing_101.pdf"), filings[1].Path)
	assert.Nil(t, filings[1].Info)

	assert.Equal(t, uint32(3), stats.Scanned)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(1), stats.Unregistered)
}

func TestDiscoverFilingsRegistryOrderBeatsPathOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a_second.pdf"))
	touch(t, filepath.Join(dir, "z_first.pdf"))

	// registry rows arrive in the opposite of path order
	reg := registry.New(nil)
	reg.AddDoc(registry.DocInfo{DocID: "D1", NaccID: 100, DocLocationURL: "z_first.pdf"})
	reg.AddDoc(registry.DocInfo{DocID: "D2", NaccID: 101, DocLocationURL: "a_second.pdf"})

	filings, _, err := DiscoverFilings(dir, reg, nil)
	require.NoError(t, err)

	require.Len(t, filings, 2)
	assert.Equal(t, "D1", filings[0].Info.DocID)
	assert.Equal(t, "D2", filings[1].Info.DocID)
}

func TestDiscoverFilingsEmptyRoot(t *testing.T) {
	_, _, err := DiscoverFilings("  ", registry.New(nil), nil)
	assert.Error(t, err)
}

func TestDiscoverFilingsUppercaseExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "FILING.PDF"))

	filings, _, err := DiscoverFilings(dir, registry.New(nil), nil)
	require.NoError(t, err)
	require.Len(t, filings, 1)
}
