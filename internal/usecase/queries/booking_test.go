//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"voicefront/internal/domain/booking"
	"voicefront/internal/pkg/clock"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/usecase/queries"
	"voicefront/internal/usecase/shared"
	mock_shared "voicefront/tests/mock/shared"
)

type BookingQueriesSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	gw     *mock_shared.MockReservationGateway
	check  *queries.CheckBookingQuery
	lookup *queries.CustomerLookupQuery
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesSuite))
}

func (s *BookingQueriesSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gw = mock_shared.NewMockReservationGateway(s.ctrl)

	clk := clock.NewMockClock(time.Date(2025, 2, 12, 10, 0, 0, 0, time.UTC))
	resolver, err := dates.NewResolver(clk, "Europe/Dublin")
	s.Require().NoError(err)

	s.check = queries.NewCheckBookingQuery(s.gw, "IE")
	s.lookup = queries.NewCustomerLookupQuery(s.gw, resolver, "IE")
}

func (s *BookingQueriesSuite) TearDownTest() {
	s.ctrl.Finish()
}

func paid(id, name, email, phone, start string) booking.Booking {
	return booking.Booking{
		ID: id, Code: "BK-" + id, StatusID: "PAID", StatusName: "Paid",
		StartDate: start,
		Customer:  booking.Customer{Name: name, Email: email, Phone: phone},
		Items:     []booking.LineItem{{ItemID: "17", Name: "Kayak Tour", Quantity: 2}},
	}
}

func (s *BookingQueriesSuite) TestCheckByIDProjectsSafeView() {
	b := paid("101", "Jo Byrne", "jo@example.com", "+353861234567", "2025-02-15")
	s.gw.EXPECT().GetBooking(gomock.Any(), "101").Return(b, nil)

	view, err := s.check.Execute(context.Background(), queries.CheckBookingInput{BookingID: "101"})
	s.Require().NoError(err)

	s.Equal("BK-101", view.Code)
	s.Equal("Kayak Tour", view.ItemName)
	s.Equal("ending in 567", view.PhoneHint)
	s.NotContains(view.PhoneHint, "861234")
}

func (s *BookingQueriesSuite) TestCheckMissingLookupInfo() {
	_, err := s.check.Execute(context.Background(), queries.CheckBookingInput{})

	var missing *shared.MissingFieldsError
	s.Require().ErrorAs(err, &missing)
	s.Contains(missing.Fields, "booking_id")
	s.Contains(missing.Fields, "email")
}

func (s *BookingQueriesSuite) TestCheckByEmailNameNarrows() {
	s.gw.EXPECT().SearchBookings(gomock.Any(), "shared@example.com", gomock.Any()).
		Return([]booking.Booking{
			paid("101", "Jo Byrne", "shared@example.com", "", "2025-02-15"),
			paid("102", "Pat Daly", "shared@example.com", "", "2025-02-16"),
		}, nil)

	view, err := s.check.Execute(context.Background(), queries.CheckBookingInput{
		Email: "shared@example.com",
		Name:  "pat",
	})
	s.Require().NoError(err)
	s.Equal("BK-102", view.Code)
}

func (s *BookingQueriesSuite) TestCheckByPhoneSuffix() {
	s.gw.EXPECT().SearchBookings(gomock.Any(), "", gomock.Any()).
		Return([]booking.Booking{
			paid("101", "Jo Byrne", "jo@example.com", "+353861234567", "2025-02-15"),
			paid("102", "Pat Daly", "pat@example.com", "+353871119999", "2025-02-16"),
		}, nil)

	view, err := s.check.Execute(context.Background(), queries.CheckBookingInput{Phone: "086 123 4567"})
	s.Require().NoError(err)
	s.Equal("BK-101", view.Code)
}

func (s *BookingQueriesSuite) TestCheckByNameOnly() {
	s.gw.EXPECT().SearchBookings(gomock.Any(), "", gomock.Any()).
		Return([]booking.Booking{
			paid("101", "Jo Byrne", "jo@example.com", "", "2025-02-15"),
			paid("102", "Pat Daly", "pat@example.com", "", "2025-02-16"),
		}, nil)

	view, err := s.check.Execute(context.Background(), queries.CheckBookingInput{Name: "pat daly"})
	s.Require().NoError(err)
	s.Equal("BK-102", view.Code)
}

func (s *BookingQueriesSuite) TestCheckByNameOnlyNeverFallsBack() {
	s.gw.EXPECT().SearchBookings(gomock.Any(), "", gomock.Any()).
		Return([]booking.Booking{
			paid("101", "Jo Byrne", "jo@example.com", "", "2025-02-15"),
		}, nil)

	_, err := s.check.Execute(context.Background(), queries.CheckBookingInput{Name: "Maeve"})
	s.Require().ErrorIs(err, shared.ErrBookingNotFound)
}

func (s *BookingQueriesSuite) TestCheckOnlyCancelledLeftReportsIt() {
	b := paid("101", "Jo Byrne", "jo@example.com", "", "2025-02-15")
	b.StatusID = booking.StatusVoid
	s.gw.EXPECT().SearchBookings(gomock.Any(), "jo@example.com", gomock.Any()).
		Return([]booking.Booking{b}, nil)

	view, err := s.check.Execute(context.Background(), queries.CheckBookingInput{Email: "jo@example.com"})
	s.Require().NoError(err)
	s.True(view.Cancelled)
}

func (s *BookingQueriesSuite) TestCheckNotFound() {
	s.gw.EXPECT().SearchBookings(gomock.Any(), "nobody@example.com", gomock.Any()).
		Return(nil, nil)

	_, err := s.check.Execute(context.Background(), queries.CheckBookingInput{Email: "nobody@example.com"})
	s.Require().ErrorIs(err, shared.ErrBookingNotFound)
}

func (s *BookingQueriesSuite) TestLookupSplitsUpcomingAndPast() {
	s.gw.EXPECT().SearchBookings(gomock.Any(), "jo@example.com", gomock.Any()).
		Return([]booking.Booking{
			paid("103", "Jo Byrne", "jo@example.com", "+353861234567", "2025-02-20"),
			paid("101", "Jo Byrne", "jo@example.com", "+353861234567", "2025-01-05"),
		}, nil)

	view, err := s.lookup.Execute(context.Background(), queries.CustomerLookupInput{Email: "jo@example.com"})
	s.Require().NoError(err)

	s.Equal("Jo Byrne", view.Name)
	s.Require().Len(view.Upcoming, 1)
	s.Equal("BK-103", view.Upcoming[0].Code)
	s.Require().Len(view.Past, 1)
	s.Equal("BK-101", view.Past[0].Code)
}

func (s *BookingQueriesSuite) TestLookupByPhoneSuffix() {
	s.gw.EXPECT().SearchBookings(gomock.Any(), "", gomock.Any()).
		Return([]booking.Booking{
			paid("101", "Jo Byrne", "jo@example.com", "+353861234567", "2025-02-20"),
			paid("102", "Pat Daly", "pat@example.com", "+353871119999", "2025-02-21"),
		}, nil)

	view, err := s.lookup.Execute(context.Background(), queries.CustomerLookupInput{Phone: "086 123 4567"})
	s.Require().NoError(err)
	s.Equal("jo@example.com", view.Email)
	s.Len(view.Upcoming, 1)
}

func (s *BookingQueriesSuite) TestLookupRequiresContact() {
	_, err := s.lookup.Execute(context.Background(), queries.CustomerLookupInput{})

	var missing *shared.MissingFieldsError
	s.Require().ErrorAs(err, &missing)
}
