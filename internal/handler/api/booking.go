package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicefront/internal/handler/dto/request"
	"voicefront/internal/handler/dto/response"
	"voicefront/internal/handler/httperr"
	"voicefront/internal/usecase/commands"
	"voicefront/internal/usecase/queries"
)

type BookingHandler struct {
	create *commands.CreateBooking
	cancel *commands.CancelBooking
	modify *commands.ModifyBooking
	change *commands.ChangeBooking
	check  *queries.CheckBookingQuery
}

func NewBookingHandler(
	create *commands.CreateBooking,
	cancel *commands.CancelBooking,
	modify *commands.ModifyBooking,
	change *commands.ChangeBooking,
	check *queries.CheckBookingQuery,
) *BookingHandler {
	return &BookingHandler{create: create, cancel: cancel, modify: modify, change: change, check: check}
}

func lookupInput(r request.BookingLookup) commands.LookupInput {
	return commands.LookupInput{BookingID: r.Ref(), Email: r.Email, Phone: r.Phone, Name: r.Name}
}

// Create godoc
//
//	@Summary	Create a booking
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.CreateBooking	true	"booking request"
//	@Success	201		{object}	response.Voice
//	@Failure	400		{object}	response.Voice
//	@Failure	409		{object}	response.Voice
//	@Failure	503		{object}	response.Voice
//	@Router		/api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req request.CreateBooking
	if !bind(c, &req) {
		return
	}

	result, err := h.create.Execute(c.Request.Context(), commands.CreateBookingInput{
		Item:     req.Item,
		Date:     req.Date,
		EndDate:  req.EndDate,
		Time:     req.Time,
		Quantity: req.Quantity,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Note:     req.Note,
	})
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.BookingCreated(result.Booking))
}

// Check godoc
//
//	@Summary	Look up a booking by reference or customer identity
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.BookingLookup	false	"lookup request"
//	@Success	200		{object}	response.Voice
//	@Failure	400		{object}	response.Voice
//	@Failure	404		{object}	response.Voice
//	@Router		/api/bookings/check [post]
func (h *BookingHandler) Check(c *gin.Context) {
	var req request.BookingLookup
	if !bind(c, &req) {
		return
	}

	view, err := h.check.Execute(c.Request.Context(), queries.CheckBookingInput{
		BookingID: req.Ref(),
		Email:     req.Email,
		Phone:     req.Phone,
		Name:      req.Name,
	})
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.BookingChecked(view))
}

// Cancel godoc
//
//	@Summary	Cancel a booking
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.CancelBooking	true	"cancel request"
//	@Success	200		{object}	response.Voice
//	@Failure	400		{object}	response.Voice
//	@Failure	404		{object}	response.Voice
//	@Router		/api/bookings/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req request.CancelBooking
	if !bind(c, &req) {
		return
	}

	result, err := h.cancel.Execute(c.Request.Context(), commands.CancelBookingInput{
		Lookup: lookupInput(req.BookingLookup),
		Reason: req.Reason,
	})
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.BookingCancelled(result.Booking))
}

// Modify godoc
//
//	@Summary	Update contact details, dates, quantity, or the note on a booking
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.ModifyBooking	true	"modify request"
//	@Success	200		{object}	response.Voice
//	@Failure	400		{object}	response.Voice
//	@Failure	404		{object}	response.Voice
//	@Router		/api/bookings/modify [post]
func (h *BookingHandler) Modify(c *gin.Context) {
	var req request.ModifyBooking
	if !bind(c, &req) {
		return
	}

	result, err := h.modify.Execute(c.Request.Context(), commands.ModifyBookingInput{
		Lookup:   lookupInput(req.BookingLookup),
		Name:     req.NewName,
		Email:    req.NewEmail,
		Phone:    req.NewPhone,
		Date:     req.NewDate,
		EndDate:  req.NewEnd,
		Quantity: req.Quantity,
		Note:     req.Note,
	})
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.BookingModified(result.Booking))
}

// Change godoc
//
//	@Summary	Move a booking to a new item, date, or time
//	@Description	A change is a cancellation plus a fresh booking. If the rebooking
//	@Description	fails after the cancellation went through, the response reports the
//	@Description	half-done state with status 409.
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.ChangeBooking	true	"change request"
//	@Success	200		{object}	response.Voice
//	@Failure	400		{object}	response.Voice
//	@Failure	409		{object}	response.Voice
//	@Router		/api/bookings/change [post]
func (h *BookingHandler) Change(c *gin.Context) {
	var req request.ChangeBooking
	if !bind(c, &req) {
		return
	}

	result, err := h.change.Execute(c.Request.Context(), commands.ChangeBookingInput{
		Lookup:   lookupInput(req.BookingLookup),
		NewItem:  req.NewItem,
		NewDate:  req.NewDate,
		NewEnd:   req.NewEnd,
		NewTime:  req.NewTime,
		Quantity: req.Quantity,
	})
	if err != nil {
		if result.Cancelled && !result.Rebooked {
			h.respondHalfDone(c, result, err)
			return
		}
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.BookingChanged(result))
}

// respondHalfDone reports a change whose cancellation succeeded but whose
// rebooking did not. The caller has to know the old booking is gone.
func (h *BookingHandler) respondHalfDone(c *gin.Context, result commands.ChangeBookingResult, err error) {
	_ = c.Error(err)
	_, body := httperr.Classify(err)

	oldB := response.FromBookingView(result.Old)
	body.Change = &response.ChangeOutcome{Cancelled: true, Rebooked: false, Old: &oldB}
	body.Speech = "I've cancelled the original booking, but I couldn't complete the new one. " + body.Speech +
		" Your original booking is no longer held."
	c.AbortWithStatusJSON(http.StatusConflict, body)
}
