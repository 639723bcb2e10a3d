package queries

import (
	"context"
	"strings"

	"voicefront/internal/domain/booking"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/pkg/errs"
	"voicefront/internal/pkg/speech"
	"voicefront/internal/usecase/shared"
)

const (
	searchLimit = 25
	// identityScanLimit bounds the recent-booking scan used when the engine
	// cannot search by the given identity attribute directly.
	identityScanLimit = 100
)

type CheckBookingInput struct {
	BookingID string
	Email     string
	Phone     string
	Name      string
}

// CheckBookingQuery finds one booking by id or by customer identity.
type CheckBookingQuery struct {
	gw            shared.ReservationGateway
	defaultRegion string
}

func NewCheckBookingQuery(gw shared.ReservationGateway, defaultRegion string) *CheckBookingQuery {
	return &CheckBookingQuery{gw: gw, defaultRegion: defaultRegion}
}

func (q *CheckBookingQuery) Execute(ctx context.Context, in CheckBookingInput) (BookingView, error) {
	b, err := q.Find(ctx, in)
	if err != nil {
		return BookingView{}, err
	}
	return NewBookingView(b, q.defaultRegion), nil
}

// Find returns the full booking for callers that need more than the view.
// With multiple live matches it never picks one; the speaker must choose.
func (q *CheckBookingQuery) Find(ctx context.Context, in CheckBookingInput) (booking.Booking, error) {
	if in.BookingID != "" {
		b, err := q.gw.GetBooking(ctx, in.BookingID)
		if err != nil {
			return booking.Booking{}, shared.MapGatewayError(err)
		}
		return b, nil
	}

	if in.Email == "" && in.Phone == "" && strings.TrimSpace(in.Name) == "" {
		return booking.Booking{}, shared.NewMissingFields(
			"I need a booking reference, or the email, phone number, or name the booking was made with.",
			"booking_id", "email", "phone",
		)
	}

	// The engine only searches by email; phone and name lookups scan the
	// recent bookings instead.
	limit := searchLimit
	if in.Email == "" {
		limit = identityScanLimit
	}
	all, err := q.gw.SearchBookings(ctx, in.Email, limit)
	if err != nil {
		return booking.Booking{}, shared.MapGatewayError(err)
	}

	matches := all
	if in.Phone != "" {
		matches = filterByPhone(matches, in.Phone, q.defaultRegion)
	}
	matches = filterByName(matches, in.Name, in.Email != "" || in.Phone != "")
	live := excludeCancelled(matches)

	switch {
	case len(live) == 1:
		return live[0], nil
	case len(live) > 1:
		return booking.Booking{}, &shared.AmbiguousBookingsError{Matches: capMatches(live)}
	case len(matches) > 0:
		// Only cancelled bookings left; report the most recent one so the
		// caller can say it was cancelled rather than "not found".
		return matches[0], nil
	default:
		return booking.Booking{}, errs.Mark(errs.New("no booking matches that identity"), shared.ErrBookingNotFound)
	}
}

// filterByName keeps bookings whose customer name overlaps the spoken name.
// When narrowing an email or phone match, a name that matches nothing falls
// back to those matches; as the sole lookup key it filters strictly.
func filterByName(bs []booking.Booking, name string, narrowing bool) []booking.Booking {
	if strings.TrimSpace(name) == "" {
		return bs
	}
	needle := strings.ToLower(strings.TrimSpace(name))
	var out []booking.Booking
	for _, b := range bs {
		have := strings.ToLower(b.Customer.Name)
		if have != "" && (strings.Contains(have, needle) || strings.Contains(needle, have)) {
			out = append(out, b)
		}
	}
	if len(out) == 0 && narrowing {
		return bs
	}
	return out
}

func excludeCancelled(bs []booking.Booking) []booking.Booking {
	var out []booking.Booking
	for _, b := range bs {
		if !b.IsCancelled() {
			out = append(out, b)
		}
	}
	return out
}

func capMatches(bs []booking.Booking) []booking.Booking {
	const maxMatches = 5
	if len(bs) > maxMatches {
		return bs[:maxMatches]
	}
	return bs
}

type CustomerLookupInput struct {
	Email string
	Phone string
}

// CustomerLookupQuery summarises a customer's bookings, split into upcoming
// and past relative to today.
type CustomerLookupQuery struct {
	gw            shared.ReservationGateway
	resolver      *dates.Resolver
	defaultRegion string
}

func NewCustomerLookupQuery(gw shared.ReservationGateway, resolver *dates.Resolver, defaultRegion string) *CustomerLookupQuery {
	return &CustomerLookupQuery{gw: gw, resolver: resolver, defaultRegion: defaultRegion}
}

func (q *CustomerLookupQuery) Execute(ctx context.Context, in CustomerLookupInput) (CustomerView, error) {
	if in.Email == "" && in.Phone == "" {
		return CustomerView{}, shared.NewMissingFields(
			"I need an email address or phone number to look up bookings.",
			"email", "phone",
		)
	}

	var (
		all []booking.Booking
		err error
	)
	if in.Email != "" {
		all, err = q.gw.SearchBookings(ctx, in.Email, searchLimit)
	} else {
		// The engine cannot search by phone, so pull recent bookings and
		// match on the number's significant digits.
		all, err = q.gw.SearchBookings(ctx, "", identityScanLimit)
	}
	if err != nil {
		return CustomerView{}, shared.MapGatewayError(err)
	}
	if in.Email == "" {
		all = filterByPhone(all, in.Phone, q.defaultRegion)
	}
	if len(all) == 0 {
		return CustomerView{}, errs.Mark(errs.New("no bookings for customer"), shared.ErrBookingNotFound)
	}

	view := CustomerView{
		Name:      all[0].Customer.Name,
		Email:     all[0].Customer.Email,
		PhoneHint: speech.Phone(all[0].Customer.Phone, q.defaultRegion),
	}
	todayISO := q.resolver.Today().ISO()
	for _, b := range all {
		bv := NewBookingView(b, q.defaultRegion)
		if !b.IsCancelled() && bv.StartDate >= todayISO {
			view.Upcoming = append(view.Upcoming, bv)
		} else {
			view.Past = append(view.Past, bv)
		}
	}
	return view, nil
}

func filterByPhone(bs []booking.Booking, phone, defaultRegion string) []booking.Booking {
	want := speech.Digits(phone, defaultRegion)
	if len(want) < 7 {
		if want == "" {
			return nil
		}
	} else {
		want = want[len(want)-7:]
	}
	var out []booking.Booking
	for _, b := range bs {
		have := speech.Digits(b.Customer.Phone, defaultRegion)
		if have != "" && strings.HasSuffix(have, want) {
			out = append(out, b)
		}
	}
	return out
}
