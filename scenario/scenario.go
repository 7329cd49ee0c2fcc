package scenario

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/phanxgames/gesture"
	"gopkg.in/yaml.v3"
)

// Scenario is one replayable gesture test.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what the scenario demonstrates.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Options overrides recognizer defaults.
	Options FileOptions `yaml:"options,omitempty" json:"options,omitempty"`

	// Steps are played in order by a gesture.ScriptRunner.
	Steps []gesture.ScriptStep `yaml:"steps" json:"steps"`

	// Assertions are evaluated after the last step.
	Assertions []Assertion `yaml:"assertions" json:"assertions"`
}

// FileOptions is the file form of gesture.Options. Durations are whole
// milliseconds; zero keeps the default.
type FileOptions struct {
	SwipeThreshold  float64 `yaml:"swipe_threshold,omitempty" json:"swipe_threshold,omitempty"`
	PinchThreshold  float64 `yaml:"pinch_threshold,omitempty" json:"pinch_threshold,omitempty"`
	RotateThreshold float64 `yaml:"rotate_threshold,omitempty" json:"rotate_threshold,omitempty"`
	LongPressMs     int     `yaml:"long_press_ms,omitempty" json:"long_press_ms,omitempty"`
	DoubleTapMs     int     `yaml:"double_tap_ms,omitempty" json:"double_tap_ms,omitempty"`
}

// Options converts the file form into recognizer options.
func (o FileOptions) Options() gesture.Options {
	return gesture.Options{
		SwipeThreshold:  o.SwipeThreshold,
		PinchThreshold:  o.PinchThreshold,
		RotateThreshold: o.RotateThreshold,
		LongPressDelay:  time.Duration(o.LongPressMs) * time.Millisecond,
		DoubleTapDelay:  time.Duration(o.DoubleTapMs) * time.Millisecond,
	}
}

// Assertion type constants.
const (
	AssertEventCount = "event_count"
	AssertEventOrder = "event_order"
	AssertNoEvent    = "no_event"
	AssertFinalState = "final_state"
)

// Assertion checks the trace or the final state.
type Assertion struct {
	// Type is one of event_count, event_order, no_event, final_state.
	Type string `yaml:"type" json:"type"`

	// Event names the gesture for event_count and no_event.
	Event string `yaml:"event,omitempty" json:"event,omitempty"`

	// Count is the exact number of Event occurrences for event_count.
	Count int `yaml:"count,omitempty" json:"count,omitempty"`

	// Events must appear in this relative order for event_order. Other
	// events may appear in between.
	Events []string `yaml:"events,omitempty" json:"events,omitempty"`

	// State is a subset of the final state for final_state. Keys are
	// swiping, pinching, rotating, long_pressing, last_swipe,
	// last_pinch_scale and last_rotate_angle.
	State map[string]any `yaml:"state,omitempty" json:"state,omitempty"`
}

// LoadScenario reads, validates and decodes a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse validates YAML scenario data against the schema, decodes it
// strictly and checks the cross-field rules the schema cannot express.
func Parse(data []byte) (*Scenario, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateScenario(&sc); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &sc, nil
}

func validateScenario(sc *Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("name is required")
	}
	script := gesture.Script{Steps: sc.Steps}
	if err := script.Validate(); err != nil {
		return err
	}
	for i, a := range sc.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	return nil
}

func validateAssertion(index int, a Assertion) error {
	switch a.Type {
	case AssertEventCount, AssertNoEvent:
		if _, err := gesture.ParseEventType(a.Event); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
	case AssertEventOrder:
		if len(a.Events) == 0 {
			return fmt.Errorf("assertions[%d]: events list is required for event_order", index)
		}
		for _, name := range a.Events {
			if _, err := gesture.ParseEventType(name); err != nil {
				return fmt.Errorf("assertions[%d]: %w", index, err)
			}
		}
	case AssertFinalState:
		if len(a.State) == 0 {
			return fmt.Errorf("assertions[%d]: state is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
