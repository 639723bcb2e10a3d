package catalog

// Item is a bookable inventory item exposed by the reservation engine.
type Item struct {
	ID       string
	Name     string
	Summary  string
	Category string
	Unit     string
	Visible  bool
}

// RateSlip is the engine's opaque proof that an item was priced for a
// specific date range and quantity. A booking session is only ever created
// from a slip; no slip means the dates are not bookable.
type RateSlip struct {
	ItemID    string
	Slip      string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
	Quantity  int
	Title     string
	Total     string
	Currency  string
}

func (s RateSlip) Bookable() bool {
	return s.Slip != ""
}

// DayAvailability is one calendar day of an item's availability window.
type DayAvailability struct {
	Date      string // YYYY-MM-DD
	Available int
	Rate      string
}

func (d DayAvailability) Open() bool {
	return d.Available > 0
}
