package response

// Outcome codes spoken clients branch on. Stable; new codes may be added but
// existing ones never change meaning.
const (
	CodeOK                 = "OK"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeMultipleItemsFound = "MULTIPLE_ITEMS_FOUND"
	CodeMissingItem        = "MISSING_ITEM"
	CodeMissingDate        = "MISSING_DATE"
	CodeMissingName        = "MISSING_CUSTOMER_NAME"
	CodeMissingContact     = "MISSING_CONTACT"
	CodeMissingBookingID   = "MISSING_BOOKING_ID"
	CodeMissingLookupInfo  = "MISSING_LOOKUP_INFO"
	CodeInvalidDate        = "INVALID_DATE"
	CodeNotAvailable       = "NOT_AVAILABLE"
	CodeBookingNotFound    = "BOOKING_NOT_FOUND"
	CodeMultipleBookings   = "MULTIPLE_BOOKINGS"
	CodeAlreadyCancelled   = "ALREADY_CANCELLED"
	CodeNoChanges          = "NO_CHANGES"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUpstreamDown       = "UPSTREAM_UNAVAILABLE"
	CodeUnauthorised       = "UNAUTHORISED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Voice is the envelope every endpoint returns. Speech is always safe to
// play back verbatim.
type Voice struct {
	OK           bool           `json:"ok"`
	Code         string         `json:"code"`
	Speech       string         `json:"speech"`
	FieldsNeeded []string       `json:"fields_needed,omitempty"`
	Candidates   []Candidate    `json:"candidates,omitempty"`
	Items        []Item         `json:"items,omitempty"`
	Booking      *Booking       `json:"booking,omitempty"`
	Bookings     []Booking      `json:"bookings,omitempty"`
	Availability *Availability  `json:"availability,omitempty"`
	Customer     *Customer      `json:"customer,omitempty"`
	Change       *ChangeOutcome `json:"change,omitempty"`
}

type Candidate struct {
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
}

type Item struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
}

type Booking struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Status    string `json:"status"`
	Cancelled bool   `json:"cancelled"`
	ItemName  string `json:"item_name,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	Total     string `json:"total,omitempty"`
	Customer  string `json:"customer_name,omitempty"`
	Email     string `json:"email,omitempty"`
	PhoneHint string `json:"phone_hint,omitempty"`
}

type Availability struct {
	ItemName   string `json:"item_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Open       *bool  `json:"open,omitempty"`
	Rate       string `json:"rate,omitempty"`
	OpenDays   []Day  `json:"open_days,omitempty"`
	Alternates []Day  `json:"alternates,omitempty"`
}

type Day struct {
	Date      string `json:"date"`
	Available int    `json:"available"`
	Rate      string `json:"rate,omitempty"`
}

type Customer struct {
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	PhoneHint string    `json:"phone_hint,omitempty"`
	Upcoming  []Booking `json:"upcoming"`
	Past      []Booking `json:"past"`
}

// ChangeOutcome reports the two halves of a change independently so a caller
// can tell a half-done change apart from a clean failure.
type ChangeOutcome struct {
	Cancelled bool     `json:"cancelled"`
	Rebooked  bool     `json:"rebooked"`
	Old       *Booking `json:"old,omitempty"`
	New       *Booking `json:"new,omitempty"`
}
