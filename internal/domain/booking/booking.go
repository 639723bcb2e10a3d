package booking

import "strings"

// Statuses the reservation engine uses for cancelled bookings. Some accounts
// use VOID, others CANC; both mean the booking is dead.
const (
	StatusVoid      = "VOID"
	StatusCancelled = "CANC"
)

type Customer struct {
	Name  string
	Email string
	Phone string
}

type LineItem struct {
	ItemID    string
	Name      string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Quantity  int
	Total     string
}

// Booking is the engine's record of a reservation, normalised to one shape
// regardless of which endpoint produced it.
type Booking struct {
	ID          string
	Code        string // customer-facing confirmation code
	StatusID    string
	StatusName  string
	Customer    Customer
	Items       []LineItem
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	Total       string
	CreatedDate string
}

// IsCancelled treats both cancellation status codes, and any status whose
// display name mentions cancellation, as cancelled.
func (b Booking) IsCancelled() bool {
	switch b.StatusID {
	case StatusVoid, StatusCancelled:
		return true
	}
	return strings.Contains(strings.ToLower(b.StatusName), "cancel")
}

// PrimaryItem is the first line item, which for voice bookings is the only one.
func (b Booking) PrimaryItem() (LineItem, bool) {
	if len(b.Items) == 0 {
		return LineItem{}, false
	}
	return b.Items[0], true
}

// Reference is what gets spoken back: the confirmation code when the engine
// issued one, otherwise the raw id.
func (b Booking) Reference() string {
	if b.Code != "" {
		return b.Code
	}
	return b.ID
}

// CustomerForm carries the customer details submitted against a booking
// session before it is committed.
type CustomerForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Note      string
}

func (f CustomerForm) HasContact() bool {
	return f.Email != "" || f.Phone != ""
}

// FieldUpdates is a sparse set of booking fields to change. Nil pointers mean
// "leave alone"; the zero value means nothing to change.
type FieldUpdates struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	StartDate     *string // YYYY-MM-DD
	EndDate       *string // YYYY-MM-DD
	Quantity      *int
	Note          *string
}

func (u FieldUpdates) Empty() bool {
	return u.CustomerName == nil && u.CustomerEmail == nil && u.CustomerPhone == nil &&
		u.StartDate == nil && u.EndDate == nil && u.Quantity == nil && u.Note == nil
}
