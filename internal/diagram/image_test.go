package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportShearCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "sfd.png")
	require.NoError(t, ExportShear(testDiagram(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportMomentFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bmd.png", "bmd.svg", "bmd.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportMoment(testDiagram(), path))
		_, err := os.Stat(path)
		assert.NoError(t, err, name)
	}
}

func TestExportDefaultsToPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfd")
	require.NoError(t, ExportShear(testDiagram(), path))

	_, err := os.Stat(path + ".png")
	assert.NoError(t, err)
}
