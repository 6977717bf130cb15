package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup by identifier yields no record.
	ErrNotFound = errors.New("not found")
	// ErrQuotaExhausted is returned when a conditional quota consumption
	// matched no row, either because the quota was already 0 or because a
	// concurrent dispatch consumed it first.
	ErrQuotaExhausted = errors.New("quota exhausted")
	// ErrInvalidCampaign marks a campaign payload that cannot be stored.
	ErrInvalidCampaign = errors.New("invalid campaign")
	// ErrLengthMismatch marks a trace whose position and timestamp
	// sequences decode to different lengths.
	ErrLengthMismatch = errors.New("positions and timestamps differ in length")
	// ErrNoOpenDispatch is returned when a unit reports left-over quota for
	// a campaign it holds no unsettled dispatch of, or reports more than it
	// was handed.
	ErrNoOpenDispatch = errors.New("no open dispatch")
)

// DecodeError describes a route trace payload that failed to decode.
type DecodeError struct {
	RouteID int64
	Field   string
	Token   string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("decode route %d %s token %q: %v", e.RouteID, e.Field, e.Token, e.Err)
	}
	return fmt.Sprintf("decode route %d %s: %v", e.RouteID, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// SkippedCampaignsError lists stored campaigns left out of a result because
// they could not be decoded. The result itself is still usable.
type SkippedCampaignsError struct {
	IDs []int64
	Err error
}

func (e *SkippedCampaignsError) Error() string {
	return fmt.Sprintf("skipped campaigns %v: %v", e.IDs, e.Err)
}

func (e *SkippedCampaignsError) Unwrap() error { return e.Err }

// StoreError wraps a failure of the durable store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// PreconditionError reports invalid geometry input.
type PreconditionError struct {
	Field string
	Value string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Value)
}
