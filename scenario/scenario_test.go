package scenario

import (
	"path/filepath"
	"testing"

	"github.com/phanxgames/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_Fixtures(t *testing.T) {
	paths, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			sc, err := LoadScenario(path)
			require.NoError(t, err)
			assert.NotEmpty(t, sc.Name)
			assert.NotEmpty(t, sc.Steps)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParse_Options(t *testing.T) {
	sc, err := Parse([]byte(`
name: opts
options:
  swipe_threshold: 20
  long_press_ms: 250
steps:
  - action: tap
assertions: []
`))
	require.NoError(t, err)
	opts := sc.Options.Options()
	assert.Equal(t, 20.0, opts.SwipeThreshold)
	assert.Equal(t, int64(250), opts.LongPressDelay.Milliseconds())
	assert.Zero(t, opts.DoubleTapDelay, "unset durations keep the default")
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "not yaml",
			yaml: "name: [",
			want: "failed to parse YAML",
		},
		{
			name: "missing steps",
			yaml: "name: x\nassertions: []\n",
			want: "schema validation",
		},
		{
			name: "unknown top-level field",
			yaml: "name: x\nstep: []\nsteps: [{action: tap}]\nassertions: []\n",
			want: "schema validation",
		},
		{
			name: "unknown action",
			yaml: "name: x\nsteps: [{action: fling}]\nassertions: []\n",
			want: "schema validation",
		},
		{
			name: "negative option",
			yaml: "name: x\noptions: {swipe_threshold: -1}\nsteps: [{action: tap}]\nassertions: []\n",
			want: "schema validation",
		},
		{
			name: "start without contacts",
			yaml: "name: x\nsteps: [{action: start}]\nassertions: []\n",
			want: "at least one contact",
		},
		{
			name: "event_count without event",
			yaml: "name: x\nsteps: [{action: tap}]\nassertions: [{type: event_count, count: 1}]\n",
			want: "assertions[0]",
		},
		{
			name: "final_state without state",
			yaml: "name: x\nsteps: [{action: tap}]\nassertions: [{type: final_state}]\n",
			want: "state is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSchema_Compiles(t *testing.T) {
	s, err := Schema()
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestRun_FailedAssertionsAreReported(t *testing.T) {
	sc := &Scenario{
		Name:  "failing",
		Steps: []gesture.ScriptStep{{Action: gesture.ActionTap}},
		Assertions: []Assertion{
			{Type: AssertEventCount, Event: "tap", Count: 2},
			{Type: AssertNoEvent, Event: "tap"},
			{Type: AssertEventOrder, Events: []string{"swipe", "tap"}},
			{Type: AssertFinalState, State: map[string]any{"last_swipe": "left"}},
			{Type: AssertFinalState, State: map[string]any{"last_pinch_scale": 1.5}},
		},
	}
	result, err := Run(sc, RunOptions{})
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 5)
	assert.Contains(t, result.Errors[0], "expected 2 tap, got 1")
	assert.Contains(t, result.Errors[1], "no tap")
	assert.Contains(t, result.Errors[2], "[swipe tap]")
	assert.Contains(t, result.Errors[3], "last_swipe=none")
	assert.Contains(t, result.Errors[4], "unset")
	assert.Contains(t, result.Text(), "FAIL event_count")
}

func TestRun_InvalidScenario(t *testing.T) {
	_, err := Run(&Scenario{Name: "empty"}, RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}

func TestRun_IsDeterministic(t *testing.T) {
	sc, err := LoadScenario("testdata/scenarios/long_press_drag.yaml")
	require.NoError(t, err)
	a, err := Run(sc, RunOptions{})
	require.NoError(t, err)
	b, err := Run(sc, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, a.Text(), b.Text())
	assert.True(t, a.Pass, a.Errors)
}

func TestValuesMatch(t *testing.T) {
	assert.True(t, valuesMatch(2, 2.0000000001))
	assert.True(t, valuesMatch(1.5, 1.5))
	assert.False(t, valuesMatch("2", 2.0))
	assert.True(t, valuesMatch(true, true))
	assert.False(t, valuesMatch("up", "down"))
}
