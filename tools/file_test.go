package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFileWithPanicOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0644))

	data := PanicOnError(ReadFile(path))
	require.Equal(t, "log_level: info\n", string(data))
}

func TestPanicOnErrorPanics(t *testing.T) {
	require.Panics(t, func() {
		PanicOnError(ReadFile(filepath.Join(t.TempDir(), "missing.yml")))
	})
}
