package response

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"

	"voicefront/internal/domain/catalog"
	"voicefront/internal/pkg/speech"
	"voicefront/internal/usecase/commands"
	"voicefront/internal/usecase/queries"
)

// speakDate renders an ISO date the way it should be read aloud.
func speakDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Monday, January 2")
}

func FromBookingView(v queries.BookingView) Booking {
	var b Booking
	_ = copier.Copy(&b, &v)
	b.Status = v.StatusName
	b.Customer = v.CustomerName
	return b
}

func fromBookingViews(vs []queries.BookingView) []Booking {
	out := make([]Booking, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBookingView(v))
	}
	return out
}

func ItemsList(items []catalog.Item) Voice {
	out := make([]Item, 0, len(items))
	names := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, Item{ID: it.ID, Name: it.Name, Summary: it.Summary})
		names = append(names, it.Name)
	}
	return Voice{
		OK:     true,
		Code:   CodeOK,
		Speech: fmt.Sprintf("We offer %s.", speech.JoinList(names, "and")),
		Items:  out,
	}
}

func AvailabilityVoice(r queries.AvailabilityResult) Voice {
	av := &Availability{
		ItemName:  r.Item.Name,
		StartDate: r.StartDate.ISO(),
		EndDate:   r.EndDate.ISO(),
	}
	for _, d := range r.Days {
		if d.Open() {
			av.OpenDays = append(av.OpenDays, Day{Date: d.Date, Available: d.Available, Rate: d.Rate})
		}
	}

	v := Voice{OK: true, Code: CodeOK, Availability: av}

	if r.Requested == nil {
		if len(av.OpenDays) == 0 {
			v.Speech = fmt.Sprintf("%s has no openings in the coming days.", r.Item.Name)
		} else {
			days := make([]string, 0, len(av.OpenDays))
			for _, d := range av.OpenDays {
				days = append(days, speakDate(d.Date))
			}
			v.Speech = fmt.Sprintf("%s is available on %s.", r.Item.Name, speech.JoinList(days, "and"))
		}
		return v
	}

	open := r.Requested.Open
	av.Open = &open
	av.Rate = r.Requested.Rate
	if open {
		v.Speech = fmt.Sprintf("Good news, %s is available on %s.", r.Item.Name, speakDate(r.StartDate.ISO()))
		if r.Requested.Rate != "" {
			v.Speech += fmt.Sprintf(" The rate is %s.", r.Requested.Rate)
		}
		return v
	}

	v.Code = CodeNotAvailable
	v.Speech = fmt.Sprintf("I'm sorry, %s isn't available on %s.", r.Item.Name, speakDate(r.StartDate.ISO()))
	if len(r.Alternates) > 0 {
		alts := make([]string, 0, len(r.Alternates))
		for _, d := range r.Alternates {
			av.Alternates = append(av.Alternates, Day{Date: d.Date, Available: d.Available, Rate: d.Rate})
			alts = append(alts, speakDate(d.Date))
		}
		v.Speech += fmt.Sprintf(" I do have %s. Would any of those work?", speech.JoinList(alts, "or"))
	}
	return v
}

func BookingCreated(v queries.BookingView) Voice {
	b := FromBookingView(v)
	return Voice{
		OK:   true,
		Code: CodeOK,
		Speech: fmt.Sprintf("You're all set! I've booked %s on %s. Your confirmation code is %s.",
			v.ItemName, speakDate(v.StartDate), v.Code),
		Booking: &b,
	}
}

func BookingChecked(v queries.BookingView) Voice {
	b := FromBookingView(v)
	out := Voice{OK: true, Code: CodeOK, Booking: &b}
	if v.Cancelled {
		out.Speech = fmt.Sprintf("I found booking %s, but it has been cancelled.", v.Code)
		return out
	}
	out.Speech = fmt.Sprintf("I found it. %s on %s, confirmation code %s, status %s.",
		orUnknown(v.ItemName, "Your booking"), speakDate(v.StartDate), v.Code, v.StatusName)
	return out
}

func BookingCancelled(v queries.BookingView) Voice {
	b := FromBookingView(v)
	return Voice{
		OK:      true,
		Code:    CodeOK,
		Speech:  fmt.Sprintf("Done. Booking %s has been cancelled.", v.Code),
		Booking: &b,
	}
}

func BookingModified(v queries.BookingView) Voice {
	b := FromBookingView(v)
	return Voice{
		OK:      true,
		Code:    CodeOK,
		Speech:  fmt.Sprintf("Done. I've updated booking %s.", v.Code),
		Booking: &b,
	}
}

func BookingChanged(r commands.ChangeBookingResult) Voice {
	oldB := FromBookingView(r.Old)
	newB := FromBookingView(r.New)
	return Voice{
		OK:   true,
		Code: CodeOK,
		Speech: fmt.Sprintf("All changed. Your new booking is %s on %s, confirmation code %s.",
			orUnknown(r.New.ItemName, "confirmed"), speakDate(r.New.StartDate), r.New.Code),
		Change: &ChangeOutcome{Cancelled: true, Rebooked: true, Old: &oldB, New: &newB},
	}
}

func CustomerVoice(v queries.CustomerView) Voice {
	out := Voice{
		OK:   true,
		Code: CodeOK,
		Customer: &Customer{
			Name:      v.Name,
			Email:     v.Email,
			PhoneHint: v.PhoneHint,
			Upcoming:  fromBookingViews(v.Upcoming),
			Past:      fromBookingViews(v.Past),
		},
	}
	first := speech.FirstName(v.Name)
	switch len(v.Upcoming) {
	case 0:
		out.Speech = fmt.Sprintf("I found %s, but there are no upcoming bookings.", orUnknown(first, "the customer"))
	case 1:
		u := v.Upcoming[0]
		out.Speech = fmt.Sprintf("%s has one upcoming booking: %s on %s.",
			orUnknown(first, "The customer"), u.ItemName, speakDate(u.StartDate))
	default:
		out.Speech = fmt.Sprintf("%s has %d upcoming bookings.", orUnknown(first, "The customer"), len(v.Upcoming))
	}
	return out
}

func orUnknown(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
