package sheets

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the named staff row, off record, or a cell matching
	// the given token does not exist in the sheet.
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded means no empty column remains in the staff
	// member's reserved leave band.
	ErrCapacityExceeded = errors.New("no leave slot available")

	// ErrPermissionDenied means the current credential cannot write to the
	// sheet. Writes are rejected before any request is issued.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidation means the supplied token does not match the accepted
	// date grammar. Rejected locally, before any sheet call.
	ErrValidation = errors.New("invalid date format")
)

// TransportError wraps a failed HTTP exchange with the sheet backend.
// Cell writes are idempotent, so callers may retry the whole operation.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sheets request: %v", e.Err)
	}
	return fmt.Sprintf("sheets request: status=%d body=%s", e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }
