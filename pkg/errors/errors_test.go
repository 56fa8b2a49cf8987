// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/dokv/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "key not found",
			wantStr: "[NOT_FOUND] key not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "odd number of arguments",
			wantStr: "[INVALID_INPUT] odd number of arguments",
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
	err := errors.Newf(errors.ErrCodecUnknown, "unknown codec %q", "ini")
	if err.Message != `unknown codec "ini"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
	if err.Code != errors.ErrCodecUnknown {
		t.Errorf("Newf() code = %v, want %v", err.Code, errors.ErrCodecUnknown)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrStoreOpen, "opening"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
		if err := errors.Wrapf(nil, errors.ErrStoreOpen, "opening %s", "x"); err != nil {
			t.Errorf("Wrapf(nil) = %v, want nil", err)
		}
	})

	t.Run("wrapped_error_is_reachable", func(t *testing.T) {
		base := &fs.PathError{Op: "open", Path: "store.kv", Err: fs.ErrPermission}
		err := errors.Wrapf(base, errors.ErrStoreOpen, "failed to read %s", "store.kv")

		if !stderrors.Is(err, fs.ErrPermission) {
			t.Error("wrapped permission error should be reachable via errors.Is")
		}

		var pathErr *fs.PathError
		if !stderrors.As(err, &pathErr) {
			t.Fatal("errors.As should find the *fs.PathError")
		}
		if pathErr.Path != "store.kv" {
			t.Errorf("PathError.Path = %q", pathErr.Path)
		}

		want := "[STORE_OPEN] failed to read store.kv: open store.kv: permission denied"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestIs(t *testing.T) {
	err := errors.Wrap(stderrors.New("boom"), errors.ErrStoreWrite, "write failed")

	if !stderrors.Is(err, errors.New(errors.ErrStoreWrite, "")) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(err, errors.New(errors.ErrStoreEncode, "")) {
		t.Error("errors with different codes should not match")
	}
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrStoreDecode, "bad snapshot").
		WithDetail("path", "/tmp/store.kv").
		WithDetails(map[string]interface{}{"codec": "json", "size": 12})

	details := errors.GetErrorDetails(err)
	if details["path"] != "/tmp/store.kv" {
		t.Errorf("path detail = %v", details["path"])
	}
	if details["codec"] != "json" {
		t.Errorf("codec detail = %v", details["codec"])
	}
	if details["size"] != 12 {
		t.Errorf("size detail = %v", details["size"])
	}

	var zero errors.DokvError
	zero.WithDetail("k", "v")
	if zero.Details["k"] != "v" {
		t.Error("WithDetail should initialize a nil map")
	}

	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("plain errors have no details")
	}
}

func TestErrorCodeHelpers(t *testing.T) {
	inner := errors.New(errors.ErrStoreEncode, "cannot encode value")
	outer := errors.Wrap(inner, errors.ErrInternal, "sync failed")

	if !errors.IsErrorCode(inner, errors.ErrStoreEncode) {
		t.Error("IsErrorCode should match the direct code")
	}
	// errors.As stops at the outermost DokvError
	if got := errors.GetErrorCode(outer); got != errors.ErrInternal {
		t.Errorf("GetErrorCode(outer) = %v, want %v", got, errors.ErrInternal)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
	if errors.IsErrorCode(nil, errors.ErrUnknown) {
		t.Error("nil error has no code")
	}
}
