package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPaths(t *testing.T) Paths {
	base := t.TempDir()
	return New(filepath.Join(base, "temp_images"), filepath.Join(base, "browser_profiles"))
}

func TestPrepareScratchStartsClean(t *testing.T) {
	p := testPaths(t)

	require.NoError(t, os.MkdirAll(p.Scratch, 0755))
	stale := filepath.Join(p.Scratch, "leftover.jpg")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0644))

	require.NoError(t, p.PrepareScratch())

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "stale payloads must be wiped")

	entries, err := os.ReadDir(p.Scratch)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnsureProfilePersists(t *testing.T) {
	p := testPaths(t)

	existed, err := p.EnsureProfile()
	require.NoError(t, err)
	assert.False(t, existed)

	existed, err = p.EnsureProfile()
	require.NoError(t, err)
	assert.True(t, existed, "second run must see the profile from the first")
}

func TestCleanScratchRemovesEverything(t *testing.T) {
	p := testPaths(t)
	require.NoError(t, p.PrepareScratch())
	require.NoError(t, os.WriteFile(filepath.Join(p.Scratch, "image_0.jpg"), []byte("x"), 0644))

	p.CleanScratch()

	_, err := os.Stat(p.Scratch)
	assert.True(t, os.IsNotExist(err))
}
