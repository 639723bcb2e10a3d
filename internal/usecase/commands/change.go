package commands

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"voicefront/internal/domain/booking"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/pkg/errs"
	"voicefront/internal/usecase/queries"
	"voicefront/internal/usecase/shared"
)

type ChangeBookingInput struct {
	Lookup   LookupInput
	NewItem  string
	NewDate  string
	NewEnd   string
	NewTime  string
	Quantity string
}

// ChangeBookingResult reports the two halves of a change independently. A
// change is a cancellation plus a fresh booking, and the second half can fail
// after the first has already happened.
type ChangeBookingResult struct {
	Cancelled bool
	Rebooked  bool
	Old       queries.BookingView
	New       queries.BookingView
}

// ChangeBooking moves a booking to a new item, date, or time by cancelling
// the old booking and creating a new one with the same customer details.
type ChangeBooking struct {
	gw            shared.ReservationGateway
	finder        *queries.CheckBookingQuery
	create        *CreateBooking
	resolver      *dates.Resolver
	defaultRegion string
}

func NewChangeBooking(
	gw shared.ReservationGateway,
	finder *queries.CheckBookingQuery,
	create *CreateBooking,
	resolver *dates.Resolver,
	defaultRegion string,
) *ChangeBooking {
	return &ChangeBooking{gw: gw, finder: finder, create: create, resolver: resolver, defaultRegion: defaultRegion}
}

func (c *ChangeBooking) Execute(ctx context.Context, in ChangeBookingInput) (ChangeBookingResult, error) {
	if in.NewItem == "" && in.NewDate == "" && in.NewTime == "" {
		return ChangeBookingResult{}, errs.Mark(errs.New("no new item, date, or time"), shared.ErrNoChangeRequested)
	}

	old, err := c.finder.Find(ctx, in.Lookup.toQuery())
	if err != nil {
		return ChangeBookingResult{}, err
	}
	if old.IsCancelled() {
		return ChangeBookingResult{}, errs.Mark(errs.Newf("booking %s is cancelled", old.ID), shared.ErrAlreadyCancelled)
	}

	target, err := c.buildTarget(in, old)
	if err != nil {
		return ChangeBookingResult{}, err
	}
	if unchanged(in, old, target) {
		return ChangeBookingResult{}, errs.Mark(errs.New("requested change matches current booking"), shared.ErrNoChangeRequested)
	}

	oldView := queries.NewBookingView(old, c.defaultRegion)

	if err := c.gw.CancelBooking(ctx, old.ID); err != nil {
		return ChangeBookingResult{Old: oldView}, shared.MapGatewayError(err)
	}
	// The cancellation stands either way; the note is audit trail only.
	if err := c.gw.AppendNote(ctx, old.ID, "Cancelled for a change request; replacement booking to follow."); err != nil {
		slog.WarnContext(ctx, "failed to append change note",
			slog.String("booking_id", old.ID), slog.Any("error", err))
	}

	result := ChangeBookingResult{Cancelled: true, Old: oldView}
	created, err := c.create.Execute(ctx, target)
	if err != nil {
		// The old booking is already gone. Report the half-done state so the
		// caller can tell the customer exactly where they stand.
		return result, err
	}
	result.Rebooked = true
	result.New = created.Booking
	return result, nil
}

// buildTarget merges the requested changes over the existing booking's item,
// dates, and customer details.
func (c *ChangeBooking) buildTarget(in ChangeBookingInput, old booking.Booking) (CreateBookingInput, error) {
	target := CreateBookingInput{
		Item:     in.NewItem,
		Date:     in.NewDate,
		EndDate:  in.NewEnd,
		Time:     in.NewTime,
		Quantity: in.Quantity,
		Name:     old.Customer.Name,
		Email:    old.Customer.Email,
		Phone:    old.Customer.Phone,
	}

	// Resolve the spoken date up front so "move it to the 15th" compares
	// against the stored date, not against the raw phrase.
	if in.NewDate != "" {
		resolved, err := c.resolver.ResolveDate(in.NewDate)
		if err != nil {
			return CreateBookingInput{}, err
		}
		target.Date = resolved.ISO()
	}

	item, hasItem := old.PrimaryItem()
	if target.Item == "" && hasItem {
		target.Item = item.Name
	}
	if target.Date == "" {
		target.Date = old.StartDate
		if target.Date == "" && hasItem {
			target.Date = item.StartDate
		}
	}
	if target.Quantity == "" && hasItem && item.Quantity > 0 {
		target.Quantity = strconv.Itoa(item.Quantity)
	}

	if target.Item == "" {
		return CreateBookingInput{}, shared.NewMissingFields("Which activity should the new booking be for?", "item")
	}
	if target.Date == "" {
		return CreateBookingInput{}, shared.NewMissingFields("What date should I move the booking to?", "date")
	}
	return target, nil
}

// unchanged detects a "change" to the values the booking already has.
func unchanged(in ChangeBookingInput, old booking.Booking, target CreateBookingInput) bool {
	if in.NewTime != "" {
		return false
	}
	sameDate := target.Date == old.StartDate
	if !sameDate {
		return false
	}
	if in.NewItem == "" {
		return true
	}
	item, ok := old.PrimaryItem()
	return ok && strings.EqualFold(target.Item, item.Name)
}
