package harness

import (
	"fmt"

	"github.com/quillvm/quill/internal/value"
)

// checkExpect compares an operation's actual result against a scenario
// expectation. A nil expectation checks nothing. Comparison happens on
// formatted values, so expectations read the same way traces do.
func checkExpect(what string, actual value.Value, expected interface{}) error {
	if expected == nil {
		return nil
	}
	want, err := convertValue(expected)
	if err != nil {
		return fmt.Errorf("bad expectation for %s: %w", what, err)
	}
	if !value.Equal(actual, want) {
		return fmt.Errorf("%s: expected %s, got %s",
			what, value.Format(want), value.Format(actual))
	}
	return nil
}
