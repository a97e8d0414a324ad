package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arlovane/mersig/internal/config"
	"github.com/arlovane/mersig/internal/output"
)

// setupTestEnv swaps the package-level globals for an isolated test config
// rooted at a fresh temp directory, returning the directory and a cleanup
// func that restores the originals.
func setupTestEnv(t *testing.T) (string, func()) {
	t.Helper()

	origCfg := cfg
	origLogger := logger
	origFormatter := formatter

	tmpDir, err := os.MkdirTemp("", "mersig-cli-test")
	require.NoError(t, err)

	testCfg := config.Defaults()
	testCfg.Home = tmpDir
	cfg = testCfg

	logger = config.NullLogger()
	formatter = output.NewFormatter(output.FormatText, os.Stdout)

	cleanup := func() {
		cfg = origCfg
		logger = origLogger
		formatter = origFormatter
		_ = os.RemoveAll(tmpDir)
	}

	return tmpDir, cleanup
}
