package radix

import (
	"testing"
)

func TestVersion(t *testing.T) {
	// Test binaries carry build info for the module under test, so
	// Version must resolve to something printable, never panic or
	// return the empty string.
	if v := Version(); v == "" {
		t.Error("Version returned an empty string")
	}
}
