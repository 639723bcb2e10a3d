package commands

import (
	"context"
	"fmt"

	"voicefront/internal/domain/booking"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/pkg/errs"
	"voicefront/internal/pkg/speech"
	"voicefront/internal/usecase/queries"
	"voicefront/internal/usecase/shared"
)

type CreateBookingInput struct {
	Item     string
	Date     string
	EndDate  string
	Time     string
	Quantity string
	Name     string
	Email    string
	Phone    string
	Note     string
}

type CreateBookingResult struct {
	Step shared.Step
	// FailedAfter is the last step that completed when Step is FAILED.
	FailedAfter shared.Step
	Booking     queries.BookingView
}

// CreateBooking walks the engine's linear booking flow: rate, open session,
// submit customer form, commit. A failure at any step parks the attempt; no
// step is retried or skipped.
type CreateBooking struct {
	gw            shared.ReservationGateway
	resolver      *dates.Resolver
	defaultRegion string
}

func NewCreateBooking(gw shared.ReservationGateway, resolver *dates.Resolver, defaultRegion string) *CreateBooking {
	return &CreateBooking{gw: gw, resolver: resolver, defaultRegion: defaultRegion}
}

func (c *CreateBooking) Execute(ctx context.Context, in CreateBookingInput) (CreateBookingResult, error) {
	if err := validateCreate(in); err != nil {
		return CreateBookingResult{Step: shared.StepFailed}, err
	}

	item, err := shared.ResolveItem(ctx, c.gw, in.Item)
	if err != nil {
		return CreateBookingResult{Step: shared.StepFailed}, err
	}

	start, err := c.resolver.ResolveDate(in.Date)
	if err != nil {
		return CreateBookingResult{Step: shared.StepFailed}, err
	}
	end := start
	if in.EndDate != "" {
		if end, err = c.resolver.ResolveDate(in.EndDate); err != nil {
			return CreateBookingResult{Step: shared.StepFailed}, err
		}
	}

	note := in.Note
	if in.Time != "" {
		tod, err := dates.ResolveTimeOfDay(in.Time)
		if err != nil {
			return CreateBookingResult{Step: shared.StepFailed}, err
		}
		note = appendNote(note, fmt.Sprintf("Requested time: %s", tod))
	}

	qty := dates.ResolveQuantity(in.Quantity)
	if qty == 0 {
		qty = 1
	}

	slip, err := c.gw.RateItem(ctx, item.ID, start.ISO(), end.ISO(), qty)
	if err != nil {
		return CreateBookingResult{Step: shared.StepFailed}, shared.MapItemGatewayError(err)
	}
	if !slip.Bookable() {
		// No slip means the dates are closed. The session endpoint is never
		// touched for an unbookable range.
		return CreateBookingResult{Step: shared.StepFailed},
			errs.Mark(errs.Newf("%s not bookable %s to %s", item.Name, start.ISO(), end.ISO()), shared.ErrNotAvailable)
	}

	sessionID, err := c.gw.CreateSession(ctx, slip)
	if err != nil {
		return CreateBookingResult{Step: shared.StepFailed, FailedAfter: shared.StepRated}, shared.MapGatewayError(err)
	}

	first, last := speech.SplitName(in.Name)
	form := booking.CustomerForm{
		FirstName: first,
		LastName:  last,
		Email:     in.Email,
		Phone:     in.Phone,
		Note:      note,
	}
	if err := c.gw.SubmitCustomerForm(ctx, sessionID, form); err != nil {
		return CreateBookingResult{Step: shared.StepFailed, FailedAfter: shared.StepSessionCreated}, shared.MapGatewayError(err)
	}

	b, err := c.gw.CommitSession(ctx, sessionID)
	if err != nil {
		return CreateBookingResult{Step: shared.StepFailed, FailedAfter: shared.StepFormSubmitted}, shared.MapGatewayError(err)
	}

	view := queries.NewBookingView(b, c.defaultRegion)
	if view.ItemName == "" {
		view.ItemName = item.Name
	}
	if view.StartDate == "" {
		view.StartDate = start.ISO()
	}
	return CreateBookingResult{Step: shared.StepCommitted, Booking: view}, nil
}

// validateCreate collects every missing required field in one pass so the
// speaker is asked once, not once per field.
func validateCreate(in CreateBookingInput) error {
	var fields []string
	var prompts []string

	if in.Item == "" {
		fields = append(fields, "item")
		prompts = append(prompts, "what you would like to book")
	}
	if in.Date == "" {
		fields = append(fields, "date")
		prompts = append(prompts, "what date")
	}
	if in.Name == "" {
		fields = append(fields, "name")
		prompts = append(prompts, "a name for the booking")
	}
	if in.Email == "" && in.Phone == "" {
		fields = append(fields, "email", "phone")
		prompts = append(prompts, "an email address or phone number")
	}
	if len(fields) == 0 {
		return nil
	}
	prompt := fmt.Sprintf("I still need %s.", speech.JoinList(prompts, "and"))
	return shared.NewMissingFields(prompt, fields...)
}

func appendNote(note, extra string) string {
	if note == "" {
		return extra
	}
	return note + " | " + extra
}
