package request

// Requests arrive from a voice agent, so every field is a string and almost
// everything is optional at the transport level. Required-field enforcement
// lives in the usecases, which know how to ask for what is missing.

// BookingLookup identifies an existing booking. The agent is not consistent
// about which key carries the reference, so all three are accepted.
type BookingLookup struct {
	BookingID string `json:"booking_id" form:"booking_id"`
	ID        string `json:"id" form:"id"`
	Code      string `json:"code" form:"code"`
	Email     string `json:"email" form:"email"`
	Phone     string `json:"phone" form:"phone"`
	Name      string `json:"name" form:"name"`
}

func (r BookingLookup) Ref() string {
	if r.BookingID != "" {
		return r.BookingID
	}
	if r.ID != "" {
		return r.ID
	}
	return r.Code
}

type Availability struct {
	Item     string `json:"item" form:"item"`
	Date     string `json:"date" form:"date"`
	EndDate  string `json:"end_date" form:"end_date"`
	Quantity string `json:"quantity" form:"quantity"`
}

type CreateBooking struct {
	Item     string `json:"item"`
	Date     string `json:"date"`
	EndDate  string `json:"end_date"`
	Time     string `json:"time"`
	Quantity string `json:"quantity"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Note     string `json:"note"`
}

type CancelBooking struct {
	BookingLookup
	Reason string `json:"reason"`
}

type ModifyBooking struct {
	BookingLookup
	NewName  string `json:"new_name"`
	NewEmail string `json:"new_email"`
	NewPhone string `json:"new_phone"`
	NewDate  string `json:"new_date"`
	NewEnd   string `json:"new_end_date"`
	Quantity string `json:"quantity"`
	Note     string `json:"note"`
}

type ChangeBooking struct {
	BookingLookup
	NewItem  string `json:"new_item"`
	NewDate  string `json:"new_date"`
	NewEnd   string `json:"new_end_date"`
	NewTime  string `json:"new_time"`
	Quantity string `json:"quantity"`
}

type CustomerLookup struct {
	Email string `json:"email" form:"email"`
	Phone string `json:"phone" form:"phone"`
}
