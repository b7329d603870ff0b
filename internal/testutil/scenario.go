// Package testutil provides small helpers shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteScenario drops scenario YAML into a temp dir and returns its
// path. The file lives for the duration of the test.
func WriteScenario(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}
