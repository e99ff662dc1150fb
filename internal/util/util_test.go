package util

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestContainsUpper(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"all lowercase", "hello", false},
		{"all uppercase", "HELLO", true},
		{"mixed case", "hEllo", true},
		{"empty string", "", false},
		{"numbers only", "12345", false},
		{"with uppercase at end", "hellO", true},
		{"with uppercase at start", "Hello", true},
		{"unicode lowercase", "こんにちは", false},
		{"unicode uppercase", "Ärger", true},
		{"regexp class", `\w+`, false},
		{"special chars", "!@#$%", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, ContainsUpper(tt.input))
		})
	}
}

type mockExitStatusError struct {
	status int
	msg    string
}

func (e *mockExitStatusError) Error() string   { return e.msg }
func (e *mockExitStatusError) ExitStatus() int { return e.status }

func TestGetExitStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedFound  bool
	}{
		{"exit status 0", &mockExitStatusError{status: 0, msg: "test"}, 0, true},
		{"exit status 1", &mockExitStatusError{status: 1, msg: "test"}, 1, true},
		{"exit status 42", &mockExitStatusError{status: 42, msg: "test"}, 42, true},
		{"plain error", errors.New("plain"), 1, false},
		{"wrapped with fmt", fmt.Errorf("wrapper: %w", &mockExitStatusError{status: 2, msg: "inner"}), 2, true},
		{"wrapped with pkg/errors", errors.Wrap(&mockExitStatusError{status: 3, msg: "inner"}, "wrapper"), 3, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, found := GetExitStatus(tt.err)
			require.Equal(t, tt.expectedStatus, status)
			require.Equal(t, tt.expectedFound, found)
		})
	}
}

func TestIsTty(t *testing.T) {
	t.Parallel()
	require.False(t, IsTty("not a file"), "values without a file descriptor are never terminals")

	f, err := os.Create(filepath.Join(t.TempDir(), "regular"))
	require.NoError(t, err)
	defer f.Close()
	require.False(t, IsTty(f), "regular files are not terminals")
}
