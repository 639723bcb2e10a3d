package checkfront

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"voicefront/internal/domain/booking"
	"voicefront/internal/domain/catalog"
)

// The engine is loose about shapes: ids arrive as strings or numbers,
// collections as maps keyed by id or as arrays, and booking fields move
// between flat and nested forms across endpoints. Everything loose is
// absorbed here so the rest of the codebase sees one shape.

// flexString decodes a JSON string, number, or null into a string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	*f = flexString(s)
	return nil
}

func (f flexString) String() string { return string(f) }

// flexInt decodes a JSON number or numeric string into an int.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Some accounts report availability as a float.
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return err
		}
		n = int(fv)
	}
	*f = flexInt(n)
	return nil
}

type wireItem struct {
	ItemID   flexString `json:"item_id"`
	Name     string     `json:"name"`
	Summary  string     `json:"summary"`
	Category flexString `json:"category_id"`
	Unit     string     `json:"unit"`
	Visible  flexInt    `json:"visible"`
}

func (w wireItem) toDomain(fallbackID string) catalog.Item {
	id := w.ItemID.String()
	if id == "" {
		id = fallbackID
	}
	return catalog.Item{
		ID:       id,
		Name:     w.Name,
		Summary:  w.Summary,
		Category: w.Category.String(),
		Unit:     w.Unit,
		Visible:  w.Visible != 0,
	}
}

// decodeItems accepts either a map keyed by item id or a plain array.
func decodeItems(raw json.RawMessage) ([]catalog.Item, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var asMap map[string]wireItem
	if err := json.Unmarshal(raw, &asMap); err == nil {
		items := make([]catalog.Item, 0, len(asMap))
		for id, w := range asMap {
			items = append(items, w.toDomain(id))
		}
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
		return items, nil
	}

	var asList []wireItem
	if err := json.Unmarshal(raw, &asList); err != nil {
		return nil, err
	}
	items := make([]catalog.Item, 0, len(asList))
	for _, w := range asList {
		items = append(items, w.toDomain(""))
	}
	return items, nil
}

type wireDay struct {
	Available flexInt    `json:"available"`
	Rate      flexString `json:"rate"`
}

func decodeCalendar(dates map[string]wireDay) []catalog.DayAvailability {
	days := make([]catalog.DayAvailability, 0, len(dates))
	for d, w := range dates {
		days = append(days, catalog.DayAvailability{
			Date:      normalizeDate(d),
			Available: int(w.Available),
			Rate:      w.Rate.String(),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// wireBooking covers both flat and nested field placements across the
// booking detail, index, and create endpoints.
type wireBooking struct {
	BookingID   flexString `json:"booking_id"`
	ID          flexString `json:"id"`
	Code        flexString `json:"code"`
	StatusID    flexString `json:"status_id"`
	Status      flexString `json:"status"`
	StatusName  string     `json:"status_name"`
	StartDate   flexString `json:"start_date"`
	EndDate     flexString `json:"end_date"`
	Total       flexString `json:"total"`
	CreatedDate flexString `json:"created_date"`

	Customer struct {
		Name  string     `json:"name"`
		Email string     `json:"email"`
		Phone flexString `json:"phone"`
	} `json:"customer"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone flexString `json:"customer_phone"`

	Items json.RawMessage `json:"items"`
	Order struct {
		Items json.RawMessage `json:"items"`
		Total flexString      `json:"total"`
	} `json:"order"`
}

type wireLineItem struct {
	ItemID    flexString `json:"item_id"`
	Name      string     `json:"name"`
	StartDate flexString `json:"start_date"`
	EndDate   flexString `json:"end_date"`
	Qty       flexInt    `json:"qty"`
	Total     flexString `json:"total"`
}

func (w wireBooking) toDomain() booking.Booking {
	b := booking.Booking{
		ID:          firstNonEmpty(w.BookingID.String(), w.ID.String(), w.Code.String()),
		Code:        w.Code.String(),
		StatusID:    firstNonEmpty(w.StatusID.String(), w.Status.String()),
		StatusName:  firstNonEmpty(w.StatusName, w.Status.String()),
		StartDate:   normalizeDate(w.StartDate.String()),
		EndDate:     normalizeDate(w.EndDate.String()),
		Total:       firstNonEmpty(w.Total.String(), w.Order.Total.String()),
		CreatedDate: normalizeDate(w.CreatedDate.String()),
	}
	b.Customer = booking.Customer{
		Name:  firstNonEmpty(w.Customer.Name, w.CustomerName),
		Email: firstNonEmpty(w.Customer.Email, w.CustomerEmail),
		Phone: firstNonEmpty(w.Customer.Phone.String(), w.CustomerPhone.String()),
	}

	itemsRaw := w.Items
	if len(itemsRaw) == 0 {
		itemsRaw = w.Order.Items
	}
	b.Items = decodeLineItems(itemsRaw)
	return b
}

func decodeLineItems(raw json.RawMessage) []booking.LineItem {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	collect := func(ws []wireLineItem) []booking.LineItem {
		items := make([]booking.LineItem, 0, len(ws))
		for _, w := range ws {
			items = append(items, booking.LineItem{
				ItemID:    w.ItemID.String(),
				Name:      w.Name,
				StartDate: normalizeDate(w.StartDate.String()),
				EndDate:   normalizeDate(w.EndDate.String()),
				Quantity:  int(w.Qty),
				Total:     w.Total.String(),
			})
		}
		return items
	}

	var asMap map[string]wireLineItem
	if err := json.Unmarshal(raw, &asMap); err == nil {
		keys := make([]string, 0, len(asMap))
		for k := range asMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ordered := make([]wireLineItem, 0, len(keys))
		for _, k := range keys {
			ordered = append(ordered, asMap[k])
		}
		return collect(ordered)
	}

	var asList []wireLineItem
	if err := json.Unmarshal(raw, &asList); err != nil {
		return nil
	}
	return collect(asList)
}

// normalizeDate maps the engine's date spellings (YYYY-MM-DD, YYYYMMDD, or a
// unix timestamp) to YYYY-MM-DD. Unrecognised input passes through untouched.
func normalizeDate(v string) string {
	v = strings.TrimSpace(v)
	switch {
	case v == "" || v == "0":
		return ""
	case len(v) == 10 && strings.Count(v, "-") == 2:
		return v
	case len(v) == 8 && isDigits(v):
		return v[:4] + "-" + v[4:6] + "-" + v[6:]
	case isDigits(v):
		if sec, err := strconv.ParseInt(v, 10, 64); err == nil && sec > 100000000 {
			return time.Unix(sec, 0).UTC().Format("2006-01-02")
		}
	}
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// sortBookingsByCreated orders most recent first, using the id as a
// tiebreaker since engine ids are monotonically assigned.
func sortBookingsByCreated(bs []booking.Booking) {
	sort.SliceStable(bs, func(i, j int) bool {
		if bs[i].CreatedDate != bs[j].CreatedDate {
			return bs[i].CreatedDate > bs[j].CreatedDate
		}
		return bs[i].ID > bs[j].ID
	})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
