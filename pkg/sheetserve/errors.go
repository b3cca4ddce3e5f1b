package sheetserve

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable indicates the workbook could not be opened or read.
var ErrSourceUnavailable = errors.New("workbook source unavailable")

// SourceError reports which workbook failed to load and why.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("workbook %q unavailable: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is matches the ErrSourceUnavailable sentinel so callers can test with
// errors.Is while Unwrap still exposes the underlying cause.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
