package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: passing
description: "45 degree shot"
launch:
  speed: 2000
  angle_deg: 45
assertions:
  - type: frame_count
    count: 120
  - type: animation_samples
    count: 23
`

const failingScenario = `
name: failing
description: "wrong flight duration"
launch:
  speed: 2000
  angle_deg: 45
assertions:
  - type: flight_duration
    value: 10
`

func TestTestCommandMissingArgs(t *testing.T) {
	_, err := execute(NewTestCommand(testRootOptions("text")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestTestCommandNonExistentScenariosDir(t *testing.T) {
	out, err := execute(NewTestCommand(testRootOptions("text")), "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
	assert.Contains(t, out, "Error [E001]: scenarios directory not found: /nonexistent/scenarios")
}

func TestTestCommandEmptyScenariosDir(t *testing.T) {
	out, err := execute(NewTestCommand(testRootOptions("text")), t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommandPassing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "passing.yaml", passingScenario)

	out, err := execute(NewTestCommand(testRootOptions("text")), dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ passing")
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total")
}

func TestTestCommandFailing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "passing.yaml", passingScenario)
	writeFile(t, dir, "failing.yaml", failingScenario)

	out, err := execute(NewTestCommand(testRootOptions("text")), dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ failing")
	assert.Contains(t, out, "assertion 0 (flight_duration) failed")
	assert.Contains(t, out, "Test Summary: 1 passed, 1 failed, 2 total")
}

func TestTestCommandLoadError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "name: broken\n")

	out, err := execute(NewTestCommand(testRootOptions("text")), dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ broken.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestTestCommandFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "passing.yaml", passingScenario)
	writeFile(t, dir, "failing.yaml", failingScenario)

	out, err := execute(NewTestCommand(testRootOptions("text")), dir, "--filter", "pass*")
	require.NoError(t, err)
	assert.Contains(t, out, "1 total")
	assert.NotContains(t, out, "failing")
}

func TestTestCommandInvalidFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "passing.yaml", passingScenario)

	_, err := execute(NewTestCommand(testRootOptions("text")), dir, "--filter", "[")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestTestCommandGoldenUpdateAndCompare(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "passing.yaml", passingScenario)

	out, err := execute(NewTestCommand(testRootOptions("text")), dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ passing (golden updated)")

	goldenPath := filepath.Join(dir, "golden", "passing.golden")
	data, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scenario_name":"passing"`)
	assert.Contains(t, string(data), `"frames":120`)

	// Unchanged scenario matches its golden file.
	_, err = execute(NewTestCommand(testRootOptions("text")), dir)
	require.NoError(t, err)

	// A tampered golden file fails.
	require.NoError(t, os.WriteFile(goldenPath, []byte(`{"frames":1}`), 0644))
	out, err = execute(NewTestCommand(testRootOptions("text")), dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "summary does not match golden file")
}

func TestTestCommandJSONFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "failing.yaml", failingScenario)

	out, err := execute(NewTestCommand(testRootOptions("json")), dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
		Error  *CLIError  `json:"error"`
		RunID  string     `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "run-1", resp.RunID)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeTestFailed, resp.Error.Code)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Scenarios, 1)
	assert.NotEmpty(t, resp.Data.Scenarios[0].Errors)
}

func TestTestCommandJSONGolden(t *testing.T) {
	out, err := execute(NewTestCommand(testRootOptions("json")), filepath.Join("..", "harness", "testdata", "scenarios"))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "test_json", []byte(out))
}

func TestFindScenarioFilesSkipsGolden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", passingScenario)
	writeFile(t, dir, "nested/b.yml", passingScenario)
	writeFile(t, dir, "golden/c.yaml", passingScenario)
	writeFile(t, dir, "notes.txt", "ignored")

	files, err := findScenarioFiles(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "nested", "b.yml"),
	}, files)
}

func TestGoldenFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("scenarios", "golden", "howitzer.golden"), goldenFilePath(filepath.Join("scenarios", "howitzer.yaml")))
}
