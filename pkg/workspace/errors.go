package workspace

import (
	"errors"
	"fmt"
	"io/fs"
)

const (
	ErrorInvalidPath      = "invalid_path"
	ErrorOutsideOutput    = "outside_output"
	ErrorPathNotFound     = "path_not_found"
	ErrorPermissionDenied = "permission_denied"
	ErrorIO               = "io_error"
)

// Error is a categorized output-path failure with a stable category name.
type Error struct {
	Category string
	Detail   string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Detail == "" {
		return e.Category
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Detail)
}

// NewError creates a categorized workspace error.
func NewError(category string, detail string) error {
	return &Error{Category: category, Detail: detail}
}

// CategoryFromError returns the stable category for an error when available.
func CategoryFromError(err error) string {
	if err == nil {
		return ""
	}

	var categorized *Error
	if errors.As(err, &categorized) {
		return categorized.Category
	}

	if errors.Is(err, fs.ErrNotExist) {
		return ErrorPathNotFound
	}
	if errors.Is(err, fs.ErrPermission) {
		return ErrorPermissionDenied
	}

	return ErrorIO
}

// NormalizeIOError converts OS-level errors into stable category errors.
func NormalizeIOError(err error, detail string) error {
	if err == nil {
		return nil
	}

	category := CategoryFromError(err)
	switch category {
	case ErrorPathNotFound:
		return NewError(category, "path does not exist")
	case ErrorPermissionDenied:
		return NewError(category, "operation not permitted")
	default:
		if detail == "" {
			detail = err.Error()
		}
		return NewError(category, detail)
	}
}
