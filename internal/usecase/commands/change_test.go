//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"voicefront/internal/domain/booking"
	"voicefront/internal/domain/catalog"
	"voicefront/internal/pkg/clock"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/usecase/commands"
	"voicefront/internal/usecase/queries"
	"voicefront/internal/usecase/shared"
	mock_shared "voicefront/tests/mock/shared"
)

type ChangeBookingSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	gw   *mock_shared.MockReservationGateway
	uc   *commands.ChangeBooking
}

func TestChangeBookingSuite(t *testing.T) {
	suite.Run(t, new(ChangeBookingSuite))
}

func (s *ChangeBookingSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gw = mock_shared.NewMockReservationGateway(s.ctrl)

	clk := clock.NewMockClock(time.Date(2025, 2, 12, 10, 0, 0, 0, time.UTC))
	resolver, err := dates.NewResolver(clk, "Europe/Dublin")
	s.Require().NoError(err)

	finder := queries.NewCheckBookingQuery(s.gw, "IE")
	create := commands.NewCreateBooking(s.gw, resolver, "IE")
	s.uc = commands.NewChangeBooking(s.gw, finder, create, resolver, "IE")
}

func (s *ChangeBookingSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ChangeBookingSuite) TestNoNewDetailsRejectedBeforeLookup() {
	_, err := s.uc.Execute(context.Background(), commands.ChangeBookingInput{
		Lookup: commands.LookupInput{BookingID: "101"},
	})
	s.Require().ErrorIs(err, shared.ErrNoChangeRequested)
}

func (s *ChangeBookingSuite) TestSameDateSameItemIsNoChange() {
	s.gw.EXPECT().GetBooking(gomock.Any(), "101").Return(liveBooking(), nil)

	_, err := s.uc.Execute(context.Background(), commands.ChangeBookingInput{
		Lookup:  commands.LookupInput{BookingID: "101"},
		NewItem: "Kayak Tour",
	})
	s.Require().ErrorIs(err, shared.ErrNoChangeRequested)
}

func (s *ChangeBookingSuite) TestCancelThenRebookCarriesCustomer() {
	s.gw.EXPECT().GetBooking(gomock.Any(), "101").Return(liveBooking(), nil)
	s.gw.EXPECT().CancelBooking(gomock.Any(), "101").Return(nil)
	s.gw.EXPECT().AppendNote(gomock.Any(), "101", gomock.Any()).Return(nil)

	s.gw.EXPECT().ListItems(gomock.Any()).Return(catalogItems(), nil)
	s.gw.EXPECT().RateItem(gomock.Any(), "17", "2025-02-20", "2025-02-20", 2).
		Return(catalog.RateSlip{ItemID: "17", Slip: "slip-2", StartDate: "2025-02-20", EndDate: "2025-02-20", Quantity: 2}, nil)
	s.gw.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return("sess-2", nil)

	var gotForm booking.CustomerForm
	s.gw.EXPECT().SubmitCustomerForm(gomock.Any(), "sess-2", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, form booking.CustomerForm) error {
			gotForm = form
			return nil
		})
	s.gw.EXPECT().CommitSession(gomock.Any(), "sess-2").
		Return(booking.Booking{ID: "102", Code: "KAYK-102", StartDate: "2025-02-20"}, nil)

	result, err := s.uc.Execute(context.Background(), commands.ChangeBookingInput{
		Lookup:  commands.LookupInput{BookingID: "101"},
		NewDate: "2025-02-20",
	})
	s.Require().NoError(err)

	s.True(result.Cancelled)
	s.True(result.Rebooked)
	s.Equal("KAYK-101", result.Old.Code)
	s.Equal("KAYK-102", result.New.Code)
	s.Equal("Jo", gotForm.FirstName)
	s.Equal("jo@example.com", gotForm.Email)
}

func (s *ChangeBookingSuite) TestRebookFailureReportsHalfDoneState() {
	s.gw.EXPECT().GetBooking(gomock.Any(), "101").Return(liveBooking(), nil)
	s.gw.EXPECT().CancelBooking(gomock.Any(), "101").Return(nil)
	s.gw.EXPECT().AppendNote(gomock.Any(), "101", gomock.Any()).Return(nil)

	s.gw.EXPECT().ListItems(gomock.Any()).Return(catalogItems(), nil)
	s.gw.EXPECT().RateItem(gomock.Any(), "17", "2025-02-20", "2025-02-20", 2).
		Return(catalog.RateSlip{ItemID: "17"}, nil) // no slip: closed

	result, err := s.uc.Execute(context.Background(), commands.ChangeBookingInput{
		Lookup:  commands.LookupInput{BookingID: "101"},
		NewDate: "2025-02-20",
	})
	s.Require().ErrorIs(err, shared.ErrNotAvailable)

	s.True(result.Cancelled)
	s.False(result.Rebooked)
	s.Equal("KAYK-101", result.Old.Code)
}

func (s *ChangeBookingSuite) TestChangeCancelledBookingRejected() {
	b := liveBooking()
	b.StatusID = booking.StatusVoid
	s.gw.EXPECT().GetBooking(gomock.Any(), "101").Return(b, nil)

	_, err := s.uc.Execute(context.Background(), commands.ChangeBookingInput{
		Lookup:  commands.LookupInput{BookingID: "101"},
		NewDate: "2025-02-20",
	})
	s.Require().ErrorIs(err, shared.ErrAlreadyCancelled)
}
