package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeProcess, "rasterizer exited with code %d", 1)

	if err.Code != ErrCodeProcess {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeProcess)
	}

	if err.Message != "rasterizer exited with code 1" {
		t.Errorf("Message = %v, want %v", err.Message, "rasterizer exited with code 1")
	}

	expected := "PROCESS_ERROR: rasterizer exited with code 1"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, cause, "create directory")

	if err.Code != ErrCodeIO {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIO)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeDecode, "test"),
			code:     ErrCodeDecode,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeDecode, "test"),
			code:     ErrCodeProcess,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeProcess, New(ErrCodeDecode, "inner"), "outer"),
			code:     ErrCodeProcess,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeDecode,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeDecode,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is(%v, %v) = %v, want %v", tt.err, tt.code, got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"structured error", New(ErrCodeDirectory, "walk failed"), ErrCodeDirectory},
		{"wrapped structured error", Wrap(ErrCodeIO, errors.New("disk full"), "write"), ErrCodeIO},
		{"plain error", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"structured error", New(ErrCodeProcess, "exited with code 1"), "exited with code 1"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}
