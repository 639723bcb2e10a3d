package commands

import (
	"context"
	"log/slog"

	"voicefront/internal/domain/booking"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/pkg/errs"
	"voicefront/internal/usecase/queries"
	"voicefront/internal/usecase/shared"
)

type LookupInput struct {
	BookingID string
	Email     string
	Phone     string
	Name      string
}

func (l LookupInput) toQuery() queries.CheckBookingInput {
	return queries.CheckBookingInput{BookingID: l.BookingID, Email: l.Email, Phone: l.Phone, Name: l.Name}
}

type CancelBookingInput struct {
	Lookup LookupInput
	Reason string
}

type CancelBookingResult struct {
	Booking queries.BookingView
}

// CancelBooking voids a booking. Cancelling an already-cancelled booking is
// a reported no-op: the engine is not written to a second time.
type CancelBooking struct {
	gw            shared.ReservationGateway
	finder        *queries.CheckBookingQuery
	defaultRegion string
}

func NewCancelBooking(gw shared.ReservationGateway, finder *queries.CheckBookingQuery, defaultRegion string) *CancelBooking {
	return &CancelBooking{gw: gw, finder: finder, defaultRegion: defaultRegion}
}

func (c *CancelBooking) Execute(ctx context.Context, in CancelBookingInput) (CancelBookingResult, error) {
	b, err := c.finder.Find(ctx, in.Lookup.toQuery())
	if err != nil {
		return CancelBookingResult{}, err
	}
	if b.IsCancelled() {
		return CancelBookingResult{Booking: queries.NewBookingView(b, c.defaultRegion)},
			errs.Mark(errs.Newf("booking %s already cancelled", b.ID), shared.ErrAlreadyCancelled)
	}

	if err := c.gw.CancelBooking(ctx, b.ID); err != nil {
		return CancelBookingResult{}, shared.MapGatewayError(err)
	}
	if in.Reason != "" {
		// The cancellation already stands; a failed note is not worth failing
		// the whole call over.
		if err := c.gw.AppendNote(ctx, b.ID, "Cancellation reason: "+in.Reason); err != nil {
			slog.WarnContext(ctx, "failed to append cancellation note",
				slog.String("booking_id", b.ID), slog.Any("error", err))
		}
	}

	updated, err := c.gw.GetBooking(ctx, b.ID)
	if err != nil {
		// The write succeeded; fall back to the pre-cancel read.
		updated = b
	}
	return CancelBookingResult{Booking: queries.NewBookingView(updated, c.defaultRegion)}, nil
}

type ModifyBookingInput struct {
	Lookup   LookupInput
	Name     string
	Email    string
	Phone    string
	Date     string // spoken; resolved before writing
	EndDate  string
	Quantity string
	Note     string
}

func (in ModifyBookingInput) hasAnything() bool {
	return in.Name != "" || in.Email != "" || in.Phone != "" ||
		in.Date != "" || in.EndDate != "" || in.Quantity != "" || in.Note != ""
}

type ModifyBookingResult struct {
	Booking queries.BookingView
}

// ModifyBooking writes only the fields the speaker asked to change, then
// re-reads the booking so the response reflects what the engine stored. The
// engine may apply side effects on write (price recalculation), which is why
// the re-read is authoritative.
type ModifyBooking struct {
	gw            shared.ReservationGateway
	finder        *queries.CheckBookingQuery
	resolver      *dates.Resolver
	defaultRegion string
}

func NewModifyBooking(gw shared.ReservationGateway, finder *queries.CheckBookingQuery, resolver *dates.Resolver, defaultRegion string) *ModifyBooking {
	return &ModifyBooking{gw: gw, finder: finder, resolver: resolver, defaultRegion: defaultRegion}
}

func (m *ModifyBooking) buildUpdates(in ModifyBookingInput) (booking.FieldUpdates, error) {
	var u booking.FieldUpdates
	if in.Name != "" {
		u.CustomerName = &in.Name
	}
	if in.Email != "" {
		u.CustomerEmail = &in.Email
	}
	if in.Phone != "" {
		u.CustomerPhone = &in.Phone
	}
	if in.Date != "" {
		start, err := m.resolver.ResolveDate(in.Date)
		if err != nil {
			return booking.FieldUpdates{}, err
		}
		iso := start.ISO()
		u.StartDate = &iso
		end := iso
		if in.EndDate != "" {
			resolved, err := m.resolver.ResolveDate(in.EndDate)
			if err != nil {
				return booking.FieldUpdates{}, err
			}
			end = resolved.ISO()
		}
		u.EndDate = &end
	}
	if in.Quantity != "" {
		if qty := dates.ResolveQuantity(in.Quantity); qty > 0 {
			u.Quantity = &qty
		}
	}
	if in.Note != "" {
		u.Note = &in.Note
	}
	return u, nil
}

func (m *ModifyBooking) Execute(ctx context.Context, in ModifyBookingInput) (ModifyBookingResult, error) {
	if !in.hasAnything() {
		// Nothing requested; the engine is never contacted.
		return ModifyBookingResult{}, errs.Mark(errs.New("no fields to update"), shared.ErrNothingToChange)
	}
	updates, err := m.buildUpdates(in)
	if err != nil {
		return ModifyBookingResult{}, err
	}
	if updates.Empty() {
		return ModifyBookingResult{}, errs.Mark(errs.New("no usable fields to update"), shared.ErrNothingToChange)
	}

	b, err := m.finder.Find(ctx, in.Lookup.toQuery())
	if err != nil {
		return ModifyBookingResult{}, err
	}
	if b.IsCancelled() {
		return ModifyBookingResult{}, errs.Mark(errs.Newf("booking %s is cancelled", b.ID), shared.ErrAlreadyCancelled)
	}

	if err := m.gw.UpdateBooking(ctx, b.ID, updates); err != nil {
		return ModifyBookingResult{}, shared.MapGatewayError(err)
	}

	updated, err := m.gw.GetBooking(ctx, b.ID)
	if err != nil {
		return ModifyBookingResult{}, shared.MapGatewayError(err)
	}
	return ModifyBookingResult{Booking: queries.NewBookingView(updated, m.defaultRegion)}, nil
}
