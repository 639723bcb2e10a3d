package checkfront

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"voicefront/internal/domain/booking"
	"voicefront/internal/domain/catalog"
	"voicefront/internal/infra"
	"voicefront/internal/pkg/config"
	"voicefront/internal/pkg/errs"
)

// Gateway is the single integration point with the reservation engine.
type Gateway struct {
	client         *Client
	cancelStatusID string
}

func NewGateway(client *Client, cfg config.EngineConfig) *Gateway {
	return &Gateway{client: client, cancelStatusID: cfg.CancelStatusID}
}

// toWireDate converts YYYY-MM-DD to the engine's YYYYMMDD query form.
func toWireDate(iso string) string {
	return strings.ReplaceAll(iso, "-", "")
}

func (g *Gateway) ListItems(ctx context.Context) ([]catalog.Item, error) {
	var env struct {
		Items json.RawMessage `json:"items"`
	}
	if err := g.client.get(ctx, "list items", "/item", nil, &env); err != nil {
		return nil, err
	}
	items, err := decodeItems(env.Items)
	if err != nil {
		return nil, infra.NewGatewayError(infra.GatewayErrorBadResponse, "list items", 0, err)
	}
	return items, nil
}

type ratedEnvelope struct {
	Item struct {
		ItemID flexString `json:"item_id"`
		Name   string     `json:"name"`
		Rate   struct {
			Slip    string `json:"slip"`
			Status  string `json:"status"`
			Summary struct {
				Title string `json:"title"`
				Price struct {
					Total    flexString `json:"total"`
					Currency string     `json:"currency"`
				} `json:"price"`
			} `json:"summary"`
			Dates map[string]wireDay `json:"dates"`
		} `json:"rate"`
	} `json:"item"`
}

// RateItem prices an item for a date range. An empty slip in the result means
// the range is not bookable; that is not an error here.
func (g *Gateway) RateItem(ctx context.Context, itemID, startDate, endDate string, qty int) (catalog.RateSlip, error) {
	query := url.Values{}
	query.Set("start_date", toWireDate(startDate))
	query.Set("end_date", toWireDate(endDate))
	if qty > 0 {
		query.Set("qty", strconv.Itoa(qty))
	}

	var env ratedEnvelope
	if err := g.client.get(ctx, "rate item", "/item/"+url.PathEscape(itemID), query, &env); err != nil {
		return catalog.RateSlip{}, err
	}

	return catalog.RateSlip{
		ItemID:    itemID,
		Slip:      env.Item.Rate.Slip,
		StartDate: startDate,
		EndDate:   endDate,
		Quantity:  qty,
		Title:     env.Item.Rate.Summary.Title,
		Total:     env.Item.Rate.Summary.Price.Total.String(),
		Currency:  env.Item.Rate.Summary.Price.Currency,
	}, nil
}

// ItemCalendar returns per-day availability for an item over a date range.
func (g *Gateway) ItemCalendar(ctx context.Context, itemID, startDate, endDate string) ([]catalog.DayAvailability, error) {
	query := url.Values{}
	query.Set("start_date", toWireDate(startDate))
	query.Set("end_date", toWireDate(endDate))

	var env ratedEnvelope
	if err := g.client.get(ctx, "item calendar", "/item/"+url.PathEscape(itemID), query, &env); err != nil {
		return nil, err
	}
	return decodeCalendar(env.Item.Rate.Dates), nil
}

// CreateSession opens a booking session from a priced slip.
func (g *Gateway) CreateSession(ctx context.Context, slip catalog.RateSlip) (string, error) {
	form := url.Values{}
	form.Set("slip", slip.Slip)
	form.Set("item_id", slip.ItemID)
	form.Set("start_date", toWireDate(slip.StartDate))
	form.Set("end_date", toWireDate(slip.EndDate))
	if slip.Quantity > 0 {
		form.Set("qty", strconv.Itoa(slip.Quantity))
	}

	var env struct {
		Booking struct {
			Session struct {
				ID flexString `json:"id"`
			} `json:"session"`
		} `json:"booking"`
	}
	if err := g.client.postForm(ctx, "create session", "/booking/session", form, &env); err != nil {
		return "", err
	}
	sessionID := env.Booking.Session.ID.String()
	if sessionID == "" {
		return "", infra.NewGatewayError(infra.GatewayErrorBadResponse, "create session", 0, errs.New("no session id in response"))
	}
	return sessionID, nil
}

// SubmitCustomerForm attaches customer details to an open session. The engine
// expects the form fields as a JSON string inside the urlencoded body.
func (g *Gateway) SubmitCustomerForm(ctx context.Context, sessionID string, f booking.CustomerForm) error {
	fields := map[string]string{
		"customer_name":  strings.TrimSpace(f.FirstName + " " + f.LastName),
		"customer_email": f.Email,
		"customer_phone": f.Phone,
	}
	if f.Note != "" {
		fields["customer_comments"] = f.Note
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return errs.Wrap(err, "encode customer form")
	}

	form := url.Values{}
	form.Set("session_id", sessionID)
	form.Set("form", string(encoded))

	return g.client.postForm(ctx, "submit customer form", "/booking/session/form", form, nil)
}

// CommitSession converts the session into a confirmed booking.
func (g *Gateway) CommitSession(ctx context.Context, sessionID string) (booking.Booking, error) {
	form := url.Values{}
	form.Set("session_id", sessionID)

	var env struct {
		Booking wireBooking `json:"booking"`
	}
	if err := g.client.postForm(ctx, "commit session", "/booking/create", form, &env); err != nil {
		return booking.Booking{}, err
	}
	b := env.Booking.toDomain()
	if b.ID == "" {
		return booking.Booking{}, infra.NewGatewayError(infra.GatewayErrorBadResponse, "commit session", 0, errs.New("no booking id in response"))
	}
	return b, nil
}

func (g *Gateway) GetBooking(ctx context.Context, id string) (booking.Booking, error) {
	var env struct {
		Booking wireBooking `json:"booking"`
	}
	if err := g.client.get(ctx, "get booking", "/booking/"+url.PathEscape(id), nil, &env); err != nil {
		return booking.Booking{}, err
	}
	b := env.Booking.toDomain()
	if b.ID == "" {
		return booking.Booking{}, infra.NewGatewayError(infra.GatewayErrorNotFound, "get booking", 0, errs.Newf("booking %s not in response", id))
	}
	return b, nil
}

// SearchBookings lists bookings for a customer email, most recent first.
func (g *Gateway) SearchBookings(ctx context.Context, customerEmail string, limit int) ([]booking.Booking, error) {
	query := url.Values{}
	if customerEmail != "" {
		query.Set("customer_email", customerEmail)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	query.Set("order_by", "created_date")

	var env map[string]json.RawMessage
	if err := g.client.get(ctx, "search bookings", "/booking", query, &env); err != nil {
		return nil, err
	}

	raw, ok := env["booking/index"]
	if !ok {
		raw = env["bookings"]
	}
	return decodeBookingIndex(raw)
}

func decodeBookingIndex(raw json.RawMessage) ([]booking.Booking, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var asMap map[string]wireBooking
	if err := json.Unmarshal(raw, &asMap); err == nil {
		out := make([]booking.Booking, 0, len(asMap))
		for id, w := range asMap {
			b := w.toDomain()
			if b.ID == "" {
				b.ID = id
			}
			out = append(out, b)
		}
		sortBookingsByCreated(out)
		return out, nil
	}

	var asList []wireBooking
	if err := json.Unmarshal(raw, &asList); err != nil {
		return nil, infra.NewGatewayError(infra.GatewayErrorBadResponse, "search bookings", 0, err)
	}
	out := make([]booking.Booking, 0, len(asList))
	for _, w := range asList {
		out = append(out, w.toDomain())
	}
	sortBookingsByCreated(out)
	return out, nil
}

// UpdateBooking writes only the provided fields.
func (g *Gateway) UpdateBooking(ctx context.Context, id string, updates booking.FieldUpdates) error {
	form := url.Values{}
	if updates.CustomerName != nil {
		form.Set("customer_name", *updates.CustomerName)
	}
	if updates.CustomerEmail != nil {
		form.Set("customer_email", *updates.CustomerEmail)
	}
	if updates.CustomerPhone != nil {
		form.Set("customer_phone", *updates.CustomerPhone)
	}
	if updates.StartDate != nil {
		form.Set("start_date", toWireDate(*updates.StartDate))
	}
	if updates.EndDate != nil {
		form.Set("end_date", toWireDate(*updates.EndDate))
	}
	if updates.Quantity != nil {
		form.Set("qty", strconv.Itoa(*updates.Quantity))
	}
	if updates.Note != nil {
		form.Set("customer_comments", *updates.Note)
	}
	if len(form) == 0 {
		return nil
	}
	return g.client.postForm(ctx, "update booking", "/booking/"+url.PathEscape(id), form, nil)
}

// CancelBooking writes the configured cancellation status.
func (g *Gateway) CancelBooking(ctx context.Context, id string) error {
	form := url.Values{}
	form.Set("status_id", g.cancelStatusID)
	return g.client.postForm(ctx, "cancel booking", "/booking/"+url.PathEscape(id), form, nil)
}

func (g *Gateway) AppendNote(ctx context.Context, id, note string) error {
	form := url.Values{}
	form.Set("body", note)
	return g.client.postForm(ctx, "append note", "/booking/"+url.PathEscape(id)+"/note", form, nil)
}
