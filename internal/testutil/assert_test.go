package testutil

import (
	"errors"
	"testing"
)

// TestAssertEqual tests the success path of the diff-based assertion
func TestAssertEqual(t *testing.T) {
	AssertEqual(t, 42, 42)
	AssertEqual(t, "abc", "abc", "strings with context")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3}, "slice %d", 1)
}

// TestAssertNoError tests the nil-error success path
func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}

// TestAssertError tests the non-nil-error success path
func TestAssertError(t *testing.T) {
	AssertError(t, errors.New("boom"))
}

// TestAssertBooleans tests the boolean assertions
func TestAssertBooleans(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false)
}

// TestFormatMessage tests message formatting variants
func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"move %s", "e2e4"}, "move e2e4"},
		{"non-string", []interface{}{7}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
