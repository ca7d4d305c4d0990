package grid

import (
	"errors"
	"fmt"
)

// ErrRejected matches every error returned by Result.Err.
var ErrRejected = errors.New("grid: operation rejected")

// Reason explains why an operation was rejected.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonTooFewCells
	ReasonUnitSpan
	ReasonLastLine
	ReasonOutOfRange
	ReasonHiddenCell
	ReasonSplitsMerge
	ReasonInvalidSize
	ReasonNotEditing
	ReasonNotBrowsing
	ReasonNoSelection
	ReasonMultipleCells
	ReasonNoChange
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonTooFewCells:
		return "too few cells"
	case ReasonUnitSpan:
		return "cell is not merged"
	case ReasonLastLine:
		return "would remove the last row or column"
	case ReasonOutOfRange:
		return "index out of range"
	case ReasonHiddenCell:
		return "cell is hidden by a merge"
	case ReasonSplitsMerge:
		return "area cuts through a merged cell"
	case ReasonInvalidSize:
		return "invalid size"
	case ReasonNotEditing:
		return "not editing"
	case ReasonNotBrowsing:
		return "not browsing"
	case ReasonNoSelection:
		return "no selection"
	case ReasonMultipleCells:
		return "more than one cell selected"
	case ReasonNoChange:
		return "no change"
	default:
		return "unknown"
	}
}

// Result reports whether an operation was applied or rejected.
//
// Rejected operations leave all state untouched. Clamped is set when an
// applied resize had its requested size raised to MinSize.
type Result struct {
	Applied bool
	Reason  Reason
	Clamped bool
}

// Ok is the result of an applied operation.
func Ok() Result { return Result{Applied: true} }

// Reject is the result of a rejected operation.
func Reject(r Reason) Result { return Result{Reason: r} }

func (r Result) Rejected() bool { return !r.Applied }

// Err returns nil for applied results and a *RejectedError otherwise.
func (r Result) Err() error {
	if r.Applied {
		return nil
	}
	return &RejectedError{Reason: r.Reason}
}

func (r Result) String() string {
	if r.Applied {
		if r.Clamped {
			return "ok (clamped)"
		}
		return "ok"
	}
	return "rejected: " + r.Reason.String()
}

// RejectedError carries the rejection reason and matches ErrRejected.
type RejectedError struct {
	Reason Reason
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("grid: operation rejected: %s", e.Reason)
}

func (e *RejectedError) Is(target error) bool { return target == ErrRejected }
