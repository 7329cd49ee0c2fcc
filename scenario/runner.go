package scenario

import (
	"fmt"
	"strings"

	"github.com/phanxgames/gesture"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of running a scenario.
type Result struct {
	Name   string       `json:"name"`
	Pass   bool         `json:"pass"`
	Trace  []TraceEntry `json:"trace"`
	Final  FinalState   `json:"final"`
	Errors []string     `json:"errors,omitempty"`
}

// AddError records a failed assertion.
func (r *Result) AddError(err error) {
	r.Errors = append(r.Errors, err.Error())
	r.Pass = false
}

// Text renders the trace and final state, one line each, followed by any
// assertion failures. This is the golden file format.
func (r *Result) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Name)
	for _, e := range r.Trace {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	b.WriteString(r.Final.String())
	b.WriteByte('\n')
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "FAIL %s\n", e)
	}
	return b.String()
}

// RunOptions tunes a run without changing the scenario.
type RunOptions struct {
	// Logger receives recognizer debug output when Debug is set.
	Logger logrus.FieldLogger
	Debug  bool
}

// Run plays the scenario on a fresh recognizer and evaluates its assertions.
// The returned error is non-nil only when the scenario itself is invalid;
// failed assertions are reported in Result.Errors.
func Run(sc *Scenario, ro RunOptions) (*Result, error) {
	if err := validateScenario(sc); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	sched := gesture.NewManualScheduler(Epoch)
	opts := sc.Options.Options()
	opts.Scheduler = sched
	opts.Logger = ro.Logger
	opts.Debug = ro.Debug

	result := &Result{Name: sc.Name, Pass: true, Trace: []TraceEntry{}}
	rec := gesture.New(opts, gesture.Handlers{})
	rec.SetEventSink(gesture.EventSinkFunc(func(ev gesture.Event) {
		result.Trace = append(result.Trace, newTraceEntry(ev))
	}))

	surface := gesture.NewInjectSurface()
	binding := gesture.NewBinding(rec, true)
	binding.Attach(surface)
	defer binding.Detach()

	gesture.NewScriptRunner(&gesture.Script{Steps: sc.Steps}, surface, sched).Run()
	result.Final = newFinalState(rec.State())

	for _, a := range sc.Assertions {
		if err := evaluate(a, result); err != nil {
			result.AddError(err)
		}
	}
	return result, nil
}
