package check_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rosecheck/rosecheck/check"
	"github.com/stretchr/testify/require"
)

func TestLoadRunParametersFillsFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	content := "num_cases: 250\nseed: 123\nmax_shrinks: 10\nworkers: 4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	params, err := check.LoadRunParameters(path)
	require.NoError(t, err)

	require.Equal(t, 250, params.NumCases)
	require.Equal(t, int64(123), params.Seed)
	require.Equal(t, 10, params.MaxShrinks)
	require.Equal(t, 4, params.Workers)
}

func TestLoadRunParametersDefaultsUnsetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o600))

	params, err := check.LoadRunParameters(path)
	require.NoError(t, err)

	require.Equal(t, int64(7), params.Seed)
	require.Equal(t, 100, params.NumCases, "unset num_cases falls back to the default")
}

func TestLoadRunParametersMissingFile(t *testing.T) {
	_, err := check.LoadRunParameters(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
