package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFile writes content to name inside a fresh temporary directory and
// returns the file's path. The directory is removed when the test ends.
func CreateTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "Failed to create temporary file")
	return path
}
