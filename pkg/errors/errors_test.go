// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/annofix/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "encoding_error",
			code:    errors.ErrEncoding,
			message: "non-text content",
			wantStr: "[ENCODING] non-text content",
		},
		{
			name:    "replace_error",
			code:    errors.ErrReplace,
			message: "cannot replace file",
			wantStr: "[REPLACE] cannot replace file",
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

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileRead, "read failed")

		if err.Code != errors.ErrFileRead {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileRead)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[FILE_READ] read failed: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("wrapped error should satisfy errors.Is on the base error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrFileRead, "read failed")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWrapf(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	err := errors.Wrapf(baseErr, errors.ErrFileOpen, "cannot open %s", "Foo.java")
	if err.Message != "cannot open Foo.java" {
		t.Errorf("Wrapf() message = %q, want %q", err.Message, "cannot open Foo.java")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrScratchCreate, "scratch failed")

	if !errors.IsErrorCode(err, errors.ErrScratchCreate) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrReplace) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrReplace) {
		t.Error("IsErrorCode() should not match a non-annofix error")
	}

	wrapped := errors.Wrap(err, errors.ErrWalk, "outer")
	if !errors.IsErrorCode(wrapped, errors.ErrWalk) {
		t.Error("IsErrorCode() should match the outermost code")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrEncoding, "x")); got != errors.ErrEncoding {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrEncoding)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrReplace, "replace failed").
		WithDetail("path", "/src/Foo.java")

	if err.Details["path"] != "/src/Foo.java" {
		t.Errorf("WithDetail() did not record detail, got %v", err.Details["path"])
	}
}
