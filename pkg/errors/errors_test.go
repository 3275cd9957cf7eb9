// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/sddkit/sddkit/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "agent_unknown_error",
			code:    errors.ErrAgentUnknown,
			message: "no such agent",
			wantStr: "[AGENT_UNKNOWN] no such agent",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
		{
			name:    "dest_conflict_error",
			code:    errors.ErrDestConflict,
			message: "two artifacts share a destination",
			wantStr: "[DEST_CONFLICT] two artifacts share a destination",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrSourceMissing, "source %q not found under %s", "shared/steering", "/tmp/templates")
	want := `[SOURCE_MISSING] source "shared/steering" not found under /tmp/templates`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrWriteFile, "could not write destination")

		if err.Code != errors.ErrWriteFile {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrWriteFile)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[WRITE_FAILED] could not write destination: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("wrapped error should match with errors.Is")
		}

		if got := stderrors.Unwrap(err); got != baseErr {
			t.Errorf("Unwrap() = %v, want %v", got, baseErr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrWriteFile, "ignored"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(stderrors.New("disk full"), errors.ErrBackup, "backing up %s", "README.md")
		want := "[BACKUP_FAILED] backing up README.md: disk full"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrDestConflict, "duplicate destination").
		WithDetail("path", "docs/a.md").
		WithDetail("artifact", "extra-docs")

	if err.Details["path"] != "docs/a.md" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "docs/a.md")
	}

	if err.Details["artifact"] != "extra-docs" {
		t.Errorf("WithDetail() artifact = %v, want %v", err.Details["artifact"], "extra-docs")
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"source": "agents/claudecode/commands",
		"dest":   ".claude/commands/kiro",
		"count":  7,
	}

	err := errors.New(errors.ErrSourceMissing, "cannot stat source").
		WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrManifestInvalid, "error 1")
	err2 := errors.New(errors.ErrManifestInvalid, "error 2")
	err3 := errors.New(errors.ErrManifestParse, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with InstallError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Wrap(stderrors.New("eacces"), errors.ErrRenderRead, "reading template")

	if !errors.IsErrorCode(err, errors.ErrRenderRead) {
		t.Error("IsErrorCode should match the wrapping code")
	}
	if errors.IsErrorCode(err, errors.ErrRenderJSON) {
		t.Error("IsErrorCode should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrRenderRead) {
		t.Error("IsErrorCode should not match plain errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrConfigValid, "bad value")); got != errors.ErrConfigValid {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrConfigValid)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrKiroDirInvalid, "escapes project root").WithDetail("dir", "../outside")

	details := errors.GetErrorDetails(err)
	if details == nil || details["dir"] != "../outside" {
		t.Errorf("GetErrorDetails() = %v, want dir entry", details)
	}

	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails(plain) = %v, want nil", got)
	}
}
