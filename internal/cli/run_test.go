package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillvm/quill/internal/harness"
	"github.com/quillvm/quill/internal/testutil"
)

const isolationScenario = `name: cli-isolation
locals:
  - name: depth
    initial: 0
script:
  - op: write
    target: depth
    value: 5
    expect_prev: 0
  - op: spawn
    as: child
  - op: switch
    to: child
  - op: read
    target: depth
    expect: 5
`

func TestRun_TextOutput(t *testing.T) {
	path := testutil.WriteScenario(t, isolationScenario)

	out, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "scenario cli-isolation: 4 step(s)")
	assert.Contains(t, out, "[main] write depth 5 -> 0")
	assert.Contains(t, out, "[child] read depth -> 5")
}

func TestRun_JSONOutput(t *testing.T) {
	path := testutil.WriteScenario(t, isolationScenario)

	out, err := execute(t, "--format", "json", "run", path)
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   harness.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "cli-isolation", resp.Data.ScenarioName)
	assert.Len(t, resp.Data.Trace, 4)
}

func TestRun_MissingFileIsCommandError(t *testing.T) {
	_, err := execute(t, "run", "does/not/exist.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRun_FailedExpectationIsFailure(t *testing.T) {
	path := testutil.WriteScenario(t, `name: failing
locals:
  - name: x
    initial: 1
script:
  - op: read
    target: x
    expect: 2
`)

	_, err := execute(t, "run", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenario failing failed")
}

func TestFormatEvent(t *testing.T) {
	ev := harness.TraceEvent{Seq: 3, Op: "write", Ctx: "main", Target: "x", Value: "5", Result: "0"}
	assert.Equal(t, "  3  [main] write x 5 -> 0", formatEvent(ev))

	ev = harness.TraceEvent{Seq: 10, Op: "switch", Ctx: "main", Target: "child"}
	assert.Equal(t, " 10  [main] switch child", formatEvent(ev))
}
