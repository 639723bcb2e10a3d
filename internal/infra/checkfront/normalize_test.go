//go:build unit

package checkfront

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"voicefront/internal/domain/booking"
	"voicefront/internal/domain/catalog"
)

func TestDecodeItemsMapKeyedByID(t *testing.T) {
	raw := json.RawMessage(`{
		"17": {"item_id": 17, "name": "Kayak Tour", "unit": "person", "visible": 1},
		"9":  {"name": "Sauna", "visible": "1"}
	}`)
	items, err := decodeItems(raw)
	require.NoError(t, err)

	want := []catalog.Item{
		{ID: "17", Name: "Kayak Tour", Unit: "person", Visible: true},
		{ID: "9", Name: "Sauna", Visible: true},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeItemsArray(t *testing.T) {
	raw := json.RawMessage(`[{"item_id": "3", "name": "Paddle Board"}]`)
	items, err := decodeItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "3", items[0].ID)
}

func TestWireBookingShapeGuessing(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want booking.Booking
	}{
		{
			name: "nested customer and numeric id",
			raw: `{
				"booking_id": 101, "code": "KAYK-101", "status_id": "PAID", "status_name": "Paid",
				"start_date": "20250215", "end_date": "20250215", "total": 120.5,
				"customer": {"name": "Jo Byrne", "email": "jo@example.com", "phone": 861234567},
				"items": {"1": {"item_id": 17, "name": "Kayak Tour", "qty": "2"}}
			}`,
			want: booking.Booking{
				ID: "101", Code: "KAYK-101", StatusID: "PAID", StatusName: "Paid",
				StartDate: "2025-02-15", EndDate: "2025-02-15", Total: "120.5",
				Customer: booking.Customer{Name: "Jo Byrne", Email: "jo@example.com", Phone: "861234567"},
				Items:    []booking.LineItem{{ItemID: "17", Name: "Kayak Tour", Quantity: 2}},
			},
		},
		{
			name: "flat customer, id and status fallbacks",
			raw: `{
				"id": "B-55", "status": "CANC",
				"customer_name": "Pat Daly", "customer_email": "pat@example.com"
			}`,
			want: booking.Booking{
				ID: "B-55", StatusID: "CANC", StatusName: "CANC",
				Customer: booking.Customer{Name: "Pat Daly", Email: "pat@example.com"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w wireBooking
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &w))
			if diff := cmp.Diff(tt.want, w.toDomain()); diff != "" {
				t.Fatalf("booking mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"0", ""},
		{"2025-02-15", "2025-02-15"},
		{"20250215", "2025-02-15"},
		{"1739577600", "2025-02-15"}, // unix timestamp
		{"soon", "soon"},             // unrecognised passes through
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, normalizeDate(tt.in), "input %q", tt.in)
	}
}

func TestDecodeBookingIndexSortsMostRecentFirst(t *testing.T) {
	raw := json.RawMessage(`{
		"1": {"booking_id": "1", "created_date": "20250101"},
		"2": {"booking_id": "2", "created_date": "20250201"},
		"3": {"booking_id": "3", "created_date": "20250201"}
	}`)
	out, err := decodeBookingIndex(raw)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, "3", out[0].ID)
	require.Equal(t, "2", out[1].ID)
	require.Equal(t, "1", out[2].ID)
}
