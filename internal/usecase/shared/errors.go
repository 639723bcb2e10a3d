package shared

import (
	"fmt"
	"strings"

	"voicefront/internal/domain/booking"
	"voicefront/internal/domain/catalog"
	"voicefront/internal/pkg/errs"
)

// Sentinel errors for outcomes the handler layer maps to spoken responses.
// Handlers match these with errors.Is; errors carrying payloads below are
// matched with errors.As.
var (
	ErrItemNotFound      = errs.New("item not found")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrNotAvailable      = errs.New("not available for requested dates")
	ErrAlreadyCancelled  = errs.New("booking already cancelled")
	ErrNothingToChange   = errs.New("nothing to change")
	ErrNoChangeRequested = errs.New("change request matches existing booking")
	ErrEngineUnavailable = errs.New("reservation engine unavailable")
	ErrEngineRejected    = errs.New("reservation engine rejected request")
	ErrUnauthorised      = errs.New("reservation engine rejected credentials")
)

// MissingFieldsError reports required inputs the caller must collect from the
// speaker before the operation can proceed.
type MissingFieldsError struct {
	Fields []string
	Prompt string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func NewMissingFields(prompt string, fields ...string) *MissingFieldsError {
	return &MissingFieldsError{Fields: fields, Prompt: prompt}
}

// AmbiguousItemsError carries the candidate items the speaker must choose
// between. Never resolved automatically.
type AmbiguousItemsError struct {
	Spoken     string
	Candidates []catalog.Item
}

func (e *AmbiguousItemsError) Error() string {
	return fmt.Sprintf("%d items match %q", len(e.Candidates), e.Spoken)
}

// AmbiguousBookingsError carries multiple bookings matching a lookup.
type AmbiguousBookingsError struct {
	Matches []booking.Booking
}

func (e *AmbiguousBookingsError) Error() string {
	return fmt.Sprintf("%d bookings match", len(e.Matches))
}
