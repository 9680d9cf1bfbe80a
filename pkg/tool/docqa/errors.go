package docqa

import (
	"fmt"
	"strings"
)

// UnsupportedFileTypeError rejects a reference whose extension is outside the
// allow-list, before any file read or network call.
type UnsupportedFileTypeError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFileTypeError) Error() string {
	ext := e.Ext

	if ext == "" {
		ext = "(none)"
	}

	return fmt.Sprintf("unsupported file type %s for %q, supported types: %s", ext, e.Path, strings.Join(SupportedExtensions, ", "))
}

// UploadError aborts the batch when uploading a local file or fetching its
// signed url fails. There is no retry and no partial-batch continuation.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %q: %v", e.Path, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// InferenceError aborts the batch when the completion call fails or returns
// nothing usable. No local fallback is attempted.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference: %v", e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}
