package calc

import (
	"fmt"

	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/pkg/errors"
)

// ErrMissingInput is returned when a file path or the operation was not selected.
var ErrMissingInput = errors.New("missing input")

// ErrInvalidOperation aliases the operator's sentinel so callers only need this package.
var ErrInvalidOperation = setop.ErrInvalidOperation

// FileAccessError reports that one of the two input files could not be read.
// Slot is 1 for the first selected file and 2 for the second.
type FileAccessError struct {
	Slot int
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read file%d error: %v", e.Slot, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// IsMissingInput reports whether err was caused by an incomplete request.
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

// IsInvalidOperation reports whether err was caused by an undefined operation.
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// AsFileAccessError returns the FileAccessError in err's chain, if any.
func AsFileAccessError(err error) (*FileAccessError, bool) {
	var fileErr *FileAccessError
	if errors.As(err, &fileErr) {
		return fileErr, true
	}
	return nil, false
}
