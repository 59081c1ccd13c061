package images

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldcorr/internal"
)

func testLogger() *internal.Logger {
	return internal.NewLogger(internal.LogLevelError)
}

func TestDuplicateAnalyzedImages(t *testing.T) {
	dir := t.TempDir()
	jpgBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01}
	jpegBytes := []byte{0xFF, 0xD8, 0xFF, 0xE1, 0x02, 0x03}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "plot7_analyzed.jpg"), jpgBytes, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plot8_analyzed.jpeg"), jpegBytes, 0o644))

	copied, err := NewDuplicator(dir, testLogger()).Run()
	require.NoError(t, err)
	assert.Equal(t, 2, copied)

	got, err := os.ReadFile(filepath.Join(dir, "plot7_correlated.jpg"))
	require.NoError(t, err)
	assert.Equal(t, jpgBytes, got, "copy must be byte-for-byte")

	got, err = os.ReadFile(filepath.Join(dir, "plot8_correlated.jpeg"))
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, got)
}

func TestDuplicateIgnoresNonMatching(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plot7.jpg"), []byte("raw"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plot7_analyzed.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("text"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub_analyzed.jpg"), 0o755))

	before, err := os.ReadDir(dir)
	require.NoError(t, err)

	copied, err := NewDuplicator(dir, testLogger()).Run()
	require.NoError(t, err)
	assert.Equal(t, 0, copied)

	after, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "no new files expected")
}

func TestDuplicateOverwritesExistingCopy(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x_analyzed.jpg"), []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x_correlated.jpg"), []byte("stale"), 0o644))

	copied, err := NewDuplicator(dir, testLogger()).Run()
	require.NoError(t, err)
	assert.Equal(t, 1, copied)

	got, err := os.ReadFile(filepath.Join(dir, "x_correlated.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestDuplicateMissingDirectory(t *testing.T) {
	_, err := NewDuplicator(filepath.Join(t.TempDir(), "nope"), testLogger()).Run()
	assert.Error(t, err)
}
