package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFixtures(t *testing.T) {
	out, _, err := execute(t, "validate", fixturesDir)
	require.NoError(t, err)
	assert.Contains(t, out, "(swipe_right)")
	assert.Contains(t, out, "(baseline_persists)")
	assert.Contains(t, out, "All scenarios valid.")
}

func TestValidateInvalid(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "ok.yaml", failingScenario)
	bad := writeScenario(t, dir, "bad.yaml", "name: bad\nsteps:\n  - action: teleport\nassertions: []\n")

	out, _, err := execute(t, "validate", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "1 of 2 files invalid")
	assert.Contains(t, out, "✗ "+bad)
	assert.Contains(t, out, "(wrong_count)", "assertion failures do not make a file invalid")
	assert.NotContains(t, out, "All scenarios valid.")
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "bad.yaml", "name: bad\n")

	out, _, err := execute(t, "validate", "--format", "json", dir)
	require.Error(t, err)

	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code    string           `json:"code"`
			Details ValidationReport `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	require.Len(t, resp.Error.Details.Files, 1)
	assert.False(t, resp.Error.Details.Files[0].Valid)
	assert.NotEmpty(t, resp.Error.Details.Files[0].Error)
}

func TestValidateVerboseGoesToStderr(t *testing.T) {
	file := filepath.Join(fixturesDir, "double_tap.yaml")
	out, errOut, err := execute(t, "validate", "-v", "--format", "json", file)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Validating "+file)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "stdout must stay valid JSON")
	assert.Equal(t, "ok", resp.Status)
}

func TestValidateMissingPath(t *testing.T) {
	_, _, err := execute(t, "validate", "/nonexistent/file.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
