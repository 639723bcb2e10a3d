package shared

import (
	"context"

	"voicefront/internal/domain/booking"
	"voicefront/internal/domain/catalog"
)

//go:generate mockgen -source=gateway.go -destination=../../../tests/mock/shared/gateway_mock.go -package=mock_shared

// ReservationGateway is the usecase layer's view of the reservation engine.
// Implemented by infra/checkfront.
type ReservationGateway interface {
	ListItems(ctx context.Context) ([]catalog.Item, error)
	RateItem(ctx context.Context, itemID, startDate, endDate string, qty int) (catalog.RateSlip, error)
	ItemCalendar(ctx context.Context, itemID, startDate, endDate string) ([]catalog.DayAvailability, error)

	CreateSession(ctx context.Context, slip catalog.RateSlip) (string, error)
	SubmitCustomerForm(ctx context.Context, sessionID string, form booking.CustomerForm) error
	CommitSession(ctx context.Context, sessionID string) (booking.Booking, error)

	GetBooking(ctx context.Context, id string) (booking.Booking, error)
	SearchBookings(ctx context.Context, customerEmail string, limit int) ([]booking.Booking, error)
	UpdateBooking(ctx context.Context, id string, updates booking.FieldUpdates) error
	CancelBooking(ctx context.Context, id string) error
	AppendNote(ctx context.Context, id, note string) error
}
