package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quillvm/quill/internal/value"
)

// Scenario defines one scripted exercise of the subsystem.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario demonstrates.
	Description string `yaml:"description,omitempty"`

	// Locals declares plain thread-locals, created in the main context
	// before the script runs.
	Locals []Decl `yaml:"locals,omitempty"`

	// Params declares parameters, bound in the scenario namespace under
	// their names.
	Params []Decl `yaml:"params,omitempty"`

	// Script is the operation sequence. Execution starts in the "main"
	// context.
	Script []Step `yaml:"script"`

	// Final checks values per context after the script finishes.
	Final []FinalCheck `yaml:"final,omitempty"`
}

// Decl declares a thread-local or parameter.
type Decl struct {
	// Name is the declaration's display name and script handle.
	Name string `yaml:"name"`

	// Initial is the value observed before the first write.
	// Scalars only: null, bool, integer, string.
	Initial interface{} `yaml:"initial"`

	// Lazy wraps Initial in a deferred computation and sets the lazy
	// flag, so the first read forces it.
	Lazy bool `yaml:"lazy,omitempty"`
}

// Step is one scripted operation.
//
// Ops:
//   - "read":   read Target in the current context
//   - "write":  store Value into Target, checking ExpectPrev if set
//   - "call":   invoke the parameter Target with Args
//   - "spawn":  spawn a child of the current context, labeled As
//   - "switch": make the context labeled To current
type Step struct {
	Op     string        `yaml:"op"`
	Target string        `yaml:"target,omitempty"`
	Value  interface{}   `yaml:"value,omitempty"`
	Args   []interface{} `yaml:"args,omitempty"`
	As     string        `yaml:"as,omitempty"`
	To     string        `yaml:"to,omitempty"`

	// Expect is the expected result of a read or call.
	Expect interface{} `yaml:"expect,omitempty"`

	// ExpectPrev is the expected previous value returned by a write.
	ExpectPrev interface{} `yaml:"expect_prev,omitempty"`

	// ExpectError is a substring the operation's error must contain.
	// Steps without it must succeed.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// FinalCheck asserts a value observed in a context after the script.
type FinalCheck struct {
	Ctx    string      `yaml:"ctx"`
	Target string      `yaml:"target"`
	Expect interface{} `yaml:"expect"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks structural requirements before a run.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario must have a name")
	}
	if len(s.Script) == 0 {
		return fmt.Errorf("scenario must have a script")
	}
	for i, d := range s.Locals {
		if d.Name == "" {
			return fmt.Errorf("locals[%d]: missing name", i)
		}
	}
	for i, d := range s.Params {
		if d.Name == "" {
			return fmt.Errorf("params[%d]: missing name", i)
		}
	}
	for i, step := range s.Script {
		switch step.Op {
		case "read", "write", "call":
			if step.Target == "" {
				return fmt.Errorf("script[%d]: op %q requires a target", i, step.Op)
			}
		case "spawn":
			if step.As == "" {
				return fmt.Errorf("script[%d]: spawn requires a label (as)", i)
			}
		case "switch":
			if step.To == "" {
				return fmt.Errorf("script[%d]: switch requires a label (to)", i)
			}
		default:
			return fmt.Errorf("script[%d]: unknown op %q", i, step.Op)
		}
	}
	return nil
}

// convertValue maps a YAML scalar onto a runtime value.
// Floats are rejected: scenario expectations compare formatted values,
// and float formatting is a portability trap.
func convertValue(raw interface{}) (value.Value, error) {
	switch v := raw.(type) {
	case nil:
		return value.Null{}, nil
	case bool:
		return value.Bool(v), nil
	case int:
		return value.Int(int64(v)), nil
	case int64:
		return value.Int(v), nil
	case string:
		return value.Str(v), nil
	case float64:
		return nil, fmt.Errorf("floats are not supported in scenarios: %v", v)
	default:
		return nil, fmt.Errorf("unsupported scenario value type %T", raw)
	}
}
