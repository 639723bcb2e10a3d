//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"voicefront/internal/domain/booking"
	"voicefront/internal/domain/catalog"
	"voicefront/internal/handler/dto/response"
	"voicefront/internal/infra"
	"voicefront/tests/common"
	mock_shared "voicefront/tests/mock/shared"
)

func timeoutErr() error {
	return infra.NewGatewayError(infra.GatewayErrorUnavailable, "list items", 0, errors.New("context deadline exceeded"))
}

func testCatalog() []catalog.Item {
	return []catalog.Item{
		{ID: "17", Name: "Kayak Tour"},
		{ID: "9", Name: "Private Sauna"},
	}
}

func paidBooking() booking.Booking {
	return booking.Booking{
		ID: "101", Code: "KAYK-101", StatusID: "PAID", StatusName: "Paid",
		StartDate: "2025-02-15",
		Customer:  booking.Customer{Name: "Jo Byrne", Email: "jo@example.com", Phone: "+353861234567"},
		Items:     []booking.LineItem{{ItemID: "17", Name: "Kayak Tour", Quantity: 2}},
	}
}

func TestCreateBookingSpeaksConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_shared.NewMockReservationGateway(ctrl)
	r := common.NewTestRouter(t, gw)

	gw.EXPECT().ListItems(gomock.Any()).Return(testCatalog(), nil)
	gw.EXPECT().RateItem(gomock.Any(), "17", "2025-02-15", "2025-02-15", 2).
		Return(catalog.RateSlip{ItemID: "17", Slip: "slip-1", StartDate: "2025-02-15", EndDate: "2025-02-15", Quantity: 2}, nil)
	gw.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return("sess-1", nil)
	gw.EXPECT().SubmitCustomerForm(gomock.Any(), "sess-1", gomock.Any()).Return(nil)
	gw.EXPECT().CommitSession(gomock.Any(), "sess-1").Return(paidBooking(), nil)

	w := common.DoJSON(t, r, http.MethodPost, "/api/bookings", map[string]string{
		"item":     "kayak tour",
		"date":     "2025-02-15",
		"quantity": "2",
		"name":     "Jo Byrne",
		"email":    "jo@example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	v := common.DecodeVoice[response.Voice](t, w)
	require.True(t, v.OK)
	require.Equal(t, response.CodeOK, v.Code)
	// The confirmation names the item, the date, and the code.
	require.Contains(t, v.Speech, "Kayak Tour")
	require.Contains(t, v.Speech, "February 15")
	require.Contains(t, v.Speech, "KAYK-101")
	require.NotNil(t, v.Booking)
	require.Equal(t, "KAYK-101", v.Booking.Code)
}

func TestCreateBookingMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_shared.NewMockReservationGateway(ctrl)
	r := common.NewTestRouter(t, gw)

	w := common.DoJSON(t, r, http.MethodPost, "/api/bookings", map[string]string{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	v := common.DecodeVoice[response.Voice](t, w)
	require.False(t, v.OK)
	require.Equal(t, response.CodeMissingItem, v.Code)
	require.Contains(t, v.FieldsNeeded, "item")
	require.Contains(t, v.FieldsNeeded, "date")
	require.NotEmpty(t, v.Speech)
}

func TestCreateBookingNotAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_shared.NewMockReservationGateway(ctrl)
	r := common.NewTestRouter(t, gw)

	gw.EXPECT().ListItems(gomock.Any()).Return(testCatalog(), nil)
	gw.EXPECT().RateItem(gomock.Any(), "17", "2025-02-15", "2025-02-15", 1).
		Return(catalog.RateSlip{ItemID: "17"}, nil)

	w := common.DoJSON(t, r, http.MethodPost, "/api/bookings", map[string]string{
		"item":  "kayak tour",
		"date":  "2025-02-15",
		"name":  "Jo Byrne",
		"email": "jo@example.com",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	v := common.DecodeVoice[response.Voice](t, w)
	require.Equal(t, response.CodeNotAvailable, v.Code)
}

func TestCancelAlreadyCancelledIsRejectedPolitely(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_shared.NewMockReservationGateway(ctrl)
	r := common.NewTestRouter(t, gw)

	b := paidBooking()
	b.StatusID = booking.StatusVoid
	gw.EXPECT().GetBooking(gomock.Any(), "101").Return(b, nil)

	w := common.DoJSON(t, r, http.MethodPost, "/api/bookings/cancel", map[string]string{
		"booking_id": "101",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	v := common.DecodeVoice[response.Voice](t, w)
	require.False(t, v.OK)
	require.Equal(t, response.CodeAlreadyCancelled, v.Code)
	require.Contains(t, v.Speech, "already been cancelled")
}

func TestCheckAcceptsAlternateIDKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_shared.NewMockReservationGateway(ctrl)
	r := common.NewTestRouter(t, gw)

	gw.EXPECT().GetBooking(gomock.Any(), "KAYK-101").Return(paidBooking(), nil)

	w := common.DoJSON(t, r, http.MethodPost, "/api/bookings/check", map[string]string{
		"code": "KAYK-101",
	})

	require.Equal(t, http.StatusOK, w.Code)
	v := common.DecodeVoice[response.Voice](t, w)
	require.True(t, v.OK)
	require.Equal(t, "KAYK-101", v.Booking.Code)
	require.Equal(t, "ending in 567", v.Booking.PhoneHint)
}

func TestChangeHalfDoneReportsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_shared.NewMockReservationGateway(ctrl)
	r := common.NewTestRouter(t, gw)

	gw.EXPECT().GetBooking(gomock.Any(), "101").Return(paidBooking(), nil)
	gw.EXPECT().CancelBooking(gomock.Any(), "101").Return(nil)
	gw.EXPECT().AppendNote(gomock.Any(), "101", gomock.Any()).Return(nil)
	gw.EXPECT().ListItems(gomock.Any()).Return(testCatalog(), nil)
	gw.EXPECT().RateItem(gomock.Any(), "17", "2025-02-20", "2025-02-20", 2).
		Return(catalog.RateSlip{ItemID: "17"}, nil) // closed

	w := common.DoJSON(t, r, http.MethodPost, "/api/bookings/change", map[string]string{
		"booking_id": "101",
		"new_date":   "2025-02-20",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	v := common.DecodeVoice[response.Voice](t, w)
	require.False(t, v.OK)
	require.NotNil(t, v.Change)
	require.True(t, v.Change.Cancelled)
	require.False(t, v.Change.Rebooked)
	require.Contains(t, v.Speech, "cancelled the original booking")
}

func TestUpstreamTimeoutMapsToServiceUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_shared.NewMockReservationGateway(ctrl)
	r := common.NewTestRouter(t, gw)

	gw.EXPECT().ListItems(gomock.Any()).Return(nil, timeoutErr())

	w := common.DoJSON(t, r, http.MethodGet, "/api/items", nil)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	v := common.DecodeVoice[response.Voice](t, w)
	require.Equal(t, response.CodeUpstreamDown, v.Code)
}
