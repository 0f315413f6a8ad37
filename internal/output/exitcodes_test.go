package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name        string
		err         *ExitError
		wantCode    int
		wantMessage string
	}{
		{"user error", NewUserError("unknown page \"nope\""), ExitUserError, "unknown page \"nope\""},
		{"system error", NewSystemError("listen failed"), ExitSystemError, "listen failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("address already in use")
	err := NewSystemErrorWithCause("cannot listen on :4000", underlying)

	if err.Code != ExitSystemError {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystemError)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
	if err.Error() != "cannot listen on :4000" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"user error", NewUserError("bad input"), ExitUserError},
		{"system error", NewSystemError("io"), ExitSystemError},
		{"wrapped system error", fmt.Errorf("serving: %w", NewSystemError("io")), ExitSystemError},
		{"plain error", errors.New("plain"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
