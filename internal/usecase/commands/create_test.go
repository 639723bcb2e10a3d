//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"voicefront/internal/domain/booking"
	"voicefront/internal/domain/catalog"
	"voicefront/internal/infra"
	"voicefront/internal/pkg/clock"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/usecase/commands"
	"voicefront/internal/usecase/shared"
	mock_shared "voicefront/tests/mock/shared"
)

type CreateBookingSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	gw   *mock_shared.MockReservationGateway
	uc   *commands.CreateBooking
}

func TestCreateBookingSuite(t *testing.T) {
	suite.Run(t, new(CreateBookingSuite))
}

func (s *CreateBookingSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gw = mock_shared.NewMockReservationGateway(s.ctrl)

	clk := clock.NewMockClock(time.Date(2025, 2, 12, 10, 0, 0, 0, time.UTC))
	resolver, err := dates.NewResolver(clk, "Europe/Dublin")
	s.Require().NoError(err)

	s.uc = commands.NewCreateBooking(s.gw, resolver, "IE")
}

func (s *CreateBookingSuite) TearDownTest() {
	s.ctrl.Finish()
}

func catalogItems() []catalog.Item {
	return []catalog.Item{
		{ID: "17", Name: "Kayak Tour"},
		{ID: "9", Name: "Private Sauna"},
	}
}

func validInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		Item:     "kayak tour",
		Date:     "2025-02-15",
		Quantity: "2",
		Name:     "Jo Byrne",
		Email:    "jo@example.com",
	}
}

func (s *CreateBookingSuite) TestMissingFieldsCollectedInOnePass() {
	_, err := s.uc.Execute(context.Background(), commands.CreateBookingInput{})

	var missing *shared.MissingFieldsError
	s.Require().ErrorAs(err, &missing)
	s.Equal([]string{"item", "date", "name", "email", "phone"}, missing.Fields)
	s.NotEmpty(missing.Prompt)
}

func (s *CreateBookingSuite) TestPhoneAloneSatisfiesContact() {
	in := validInput()
	in.Email = ""
	in.Phone = "0861234567"

	s.gw.EXPECT().ListItems(gomock.Any()).Return(catalogItems(), nil)
	s.gw.EXPECT().RateItem(gomock.Any(), "17", "2025-02-15", "2025-02-15", 2).
		Return(catalog.RateSlip{ItemID: "17", Slip: "slip-1", StartDate: "2025-02-15", EndDate: "2025-02-15", Quantity: 2}, nil)
	s.gw.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return("sess-1", nil)
	s.gw.EXPECT().SubmitCustomerForm(gomock.Any(), "sess-1", gomock.Any()).Return(nil)
	s.gw.EXPECT().CommitSession(gomock.Any(), "sess-1").
		Return(booking.Booking{ID: "101", Code: "KAYK-101", StatusID: "PEND"}, nil)

	result, err := s.uc.Execute(context.Background(), in)
	s.Require().NoError(err)
	s.Equal(shared.StepCommitted, result.Step)
}

func (s *CreateBookingSuite) TestHappyPathCommits() {
	s.gw.EXPECT().ListItems(gomock.Any()).Return(catalogItems(), nil)
	s.gw.EXPECT().RateItem(gomock.Any(), "17", "2025-02-15", "2025-02-15", 2).
		Return(catalog.RateSlip{ItemID: "17", Slip: "slip-1", StartDate: "2025-02-15", EndDate: "2025-02-15", Quantity: 2, Total: "120.00"}, nil)

	var gotSlip catalog.RateSlip
	s.gw.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, slip catalog.RateSlip) (string, error) {
			gotSlip = slip
			return "sess-1", nil
		})

	var gotForm booking.CustomerForm
	s.gw.EXPECT().SubmitCustomerForm(gomock.Any(), "sess-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, form booking.CustomerForm) error {
			gotForm = form
			return nil
		})

	s.gw.EXPECT().CommitSession(gomock.Any(), "sess-1").
		Return(booking.Booking{
			ID: "101", Code: "KAYK-101", StatusID: "PEND", StatusName: "Pending",
			StartDate: "2025-02-15",
			Customer:  booking.Customer{Name: "Jo Byrne", Email: "jo@example.com"},
			Items:     []booking.LineItem{{ItemID: "17", Name: "Kayak Tour", Quantity: 2}},
		}, nil)

	result, err := s.uc.Execute(context.Background(), validInput())
	s.Require().NoError(err)

	s.Equal(shared.StepCommitted, result.Step)
	s.Equal("KAYK-101", result.Booking.Code)
	s.Equal("Kayak Tour", result.Booking.ItemName)
	s.Equal("2025-02-15", result.Booking.StartDate)

	s.Equal("slip-1", gotSlip.Slip)
	s.Equal("Jo", gotForm.FirstName)
	s.Equal("Byrne", gotForm.LastName)
}

func (s *CreateBookingSuite) TestNoSlipNeverOpensSession() {
	s.gw.EXPECT().ListItems(gomock.Any()).Return(catalogItems(), nil)
	s.gw.EXPECT().RateItem(gomock.Any(), "17", "2025-02-15", "2025-02-15", 2).
		Return(catalog.RateSlip{ItemID: "17"}, nil)
	// No CreateSession expectation: calling it fails the test.

	result, err := s.uc.Execute(context.Background(), validInput())
	s.Require().ErrorIs(err, shared.ErrNotAvailable)
	s.Equal(shared.StepFailed, result.Step)
}

func (s *CreateBookingSuite) TestCommitFailureRecordsProgress() {
	s.gw.EXPECT().ListItems(gomock.Any()).Return(catalogItems(), nil)
	s.gw.EXPECT().RateItem(gomock.Any(), "17", "2025-02-15", "2025-02-15", 2).
		Return(catalog.RateSlip{ItemID: "17", Slip: "slip-1", StartDate: "2025-02-15", EndDate: "2025-02-15"}, nil)
	s.gw.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return("sess-1", nil)
	s.gw.EXPECT().SubmitCustomerForm(gomock.Any(), "sess-1", gomock.Any()).Return(nil)
	s.gw.EXPECT().CommitSession(gomock.Any(), "sess-1").
		Return(booking.Booking{}, infra.NewGatewayError(infra.GatewayErrorUnavailable, "commit session", 0, errors.New("timeout")))

	result, err := s.uc.Execute(context.Background(), validInput())
	s.Require().ErrorIs(err, shared.ErrEngineUnavailable)
	s.Equal(shared.StepFailed, result.Step)
	s.Equal(shared.StepFormSubmitted, result.FailedAfter)
}

func (s *CreateBookingSuite) TestAmbiguousItemCarriesCandidates() {
	s.gw.EXPECT().ListItems(gomock.Any()).Return([]catalog.Item{
		{ID: "9", Name: "Private Sauna 60 minutes"},
		{ID: "10", Name: "Shared Sauna 60 minutes"},
	}, nil)

	in := validInput()
	in.Item = "sauna 60 minutes"
	_, err := s.uc.Execute(context.Background(), in)

	var ambiguous *shared.AmbiguousItemsError
	s.Require().ErrorAs(err, &ambiguous)
	s.Len(ambiguous.Candidates, 2)
}

func (s *CreateBookingSuite) TestUnparseableDateFails() {
	in := validInput()
	in.Date = "whenever suits"

	s.gw.EXPECT().ListItems(gomock.Any()).Return(catalogItems(), nil)

	_, err := s.uc.Execute(context.Background(), in)
	s.Require().ErrorIs(err, dates.ErrUnknownDate)
}
