package queries

import (
	"voicefront/internal/domain/booking"
	"voicefront/internal/pkg/speech"
)

// BookingView is the safe, speakable projection of a booking. Raw phone
// numbers never leave the usecase layer; only the spoken hint does.
type BookingView struct {
	ID           string
	Code         string
	StatusName   string
	Cancelled    bool
	ItemName     string
	StartDate    string
	EndDate      string
	Quantity     int
	Total        string
	CustomerName string
	Email        string
	PhoneHint    string
}

func NewBookingView(b booking.Booking, defaultRegion string) BookingView {
	v := BookingView{
		ID:           b.ID,
		Code:         b.Reference(),
		StatusName:   b.StatusName,
		Cancelled:    b.IsCancelled(),
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		Total:        b.Total,
		CustomerName: b.Customer.Name,
		Email:        b.Customer.Email,
		PhoneHint:    speech.Phone(b.Customer.Phone, defaultRegion),
	}
	if item, ok := b.PrimaryItem(); ok {
		v.ItemName = item.Name
		v.Quantity = item.Quantity
		if v.StartDate == "" {
			v.StartDate = item.StartDate
		}
		if v.EndDate == "" {
			v.EndDate = item.EndDate
		}
	}
	return v
}

// CustomerView groups a customer's bookings for a lookup response.
type CustomerView struct {
	Name      string
	Email     string
	PhoneHint string
	Upcoming  []BookingView
	Past      []BookingView
}
