// ABOUTME: Sentinel configuration errors reported at construction time
// ABOUTME: Callers match with errors.Is; messages carry the offending detail

package toggle

import "errors"

var (
	// ErrCurrentNotInValues means the selected value is not part of the value list.
	ErrCurrentNotInValues = errors.New("current value is not in values")
	// ErrDuplicateValue means two entries of the value list compare equal.
	ErrDuplicateValue = errors.New("duplicate value")
	// ErrConflictingOptions means two mutually exclusive options were both supplied.
	ErrConflictingOptions = errors.New("conflicting options")
	// ErrNoContent means neither of two alternative options was supplied.
	ErrNoContent = errors.New("no content builder")
	// ErrInvalidDuration means a negative animation duration.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidGeometry means a negative or non-finite size.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrDualRequiresTwoValues means the dual style got other than two values.
	ErrDualRequiresTwoValues = errors.New("dual switch requires exactly two values")
	// ErrUnknownCurve means a curve name that is not registered.
	ErrUnknownCurve = errors.New("unknown curve")
)
