package scenario

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden runs the scenario and compares Result.Text with
// testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./scenario -update
func RunWithGolden(t *testing.T, sc *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(sc, RunOptions{})
	if err != nil {
		return nil, err
	}
	AssertGolden(t, sc.Name, result)
	return result, nil
}

// AssertGolden compares an existing result with its golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(result.Text()))
}
