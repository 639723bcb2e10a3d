// Package httperr maps usecase errors onto the voice response envelope.
// Every error leaves with an outcome code and a sentence safe to speak.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"voicefront/internal/handler/dto/response"
	"voicefront/internal/pkg/dates"
	"voicefront/internal/pkg/speech"
	"voicefront/internal/usecase/shared"
)

// AbortWithError renders err as a voice envelope and aborts the request. The
// raw error is attached to the context for the logging middleware.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	status, body := Classify(err)
	c.AbortWithStatusJSON(status, body)
}

// Classify resolves an error to an HTTP status and voice body.
func Classify(err error) (int, response.Voice) {
	var missing *shared.MissingFieldsError
	if errors.As(err, &missing) {
		return http.StatusBadRequest, response.Voice{
			Code:         missingCode(missing.Fields),
			Speech:       missing.Prompt,
			FieldsNeeded: missing.Fields,
		}
	}

	var ambiguousItems *shared.AmbiguousItemsError
	if errors.As(err, &ambiguousItems) {
		names := make([]string, 0, len(ambiguousItems.Candidates))
		candidates := make([]response.Candidate, 0, len(ambiguousItems.Candidates))
		for _, it := range ambiguousItems.Candidates {
			names = append(names, it.Name)
			candidates = append(candidates, response.Candidate{Name: it.Name})
		}
		return http.StatusBadRequest, response.Voice{
			Code:       response.CodeMultipleItemsFound,
			Speech:     fmt.Sprintf("I found a few options: %s. Which one would you like?", speech.JoinList(names, "or")),
			Candidates: candidates,
		}
	}

	var ambiguousBookings *shared.AmbiguousBookingsError
	if errors.As(err, &ambiguousBookings) {
		candidates := make([]response.Candidate, 0, len(ambiguousBookings.Matches))
		for _, b := range ambiguousBookings.Matches {
			candidates = append(candidates, response.Candidate{
				Name:   b.Reference(),
				Detail: b.StartDate,
			})
		}
		return http.StatusBadRequest, response.Voice{
			Code:       response.CodeMultipleBookings,
			Speech:     "I found more than one booking with those details. Could you give me the confirmation code?",
			Candidates: candidates,
		}
	}

	switch {
	case errors.Is(err, shared.ErrItemNotFound):
		return http.StatusBadRequest, voice(response.CodeItemNotFound,
			"I couldn't find that activity. Could you say the name again?")
	case errors.Is(err, shared.ErrBookingNotFound):
		return http.StatusNotFound, voice(response.CodeBookingNotFound,
			"I couldn't find a booking with those details.")
	case errors.Is(err, shared.ErrNotAvailable):
		return http.StatusConflict, voice(response.CodeNotAvailable,
			"I'm sorry, that isn't available for those dates.")
	case errors.Is(err, shared.ErrAlreadyCancelled):
		return http.StatusBadRequest, voice(response.CodeAlreadyCancelled,
			"That booking has already been cancelled, so there's nothing more to do.")
	case errors.Is(err, shared.ErrNothingToChange), errors.Is(err, shared.ErrNoChangeRequested):
		return http.StatusBadRequest, voice(response.CodeNoChanges,
			"I didn't catch anything to change. What would you like to update?")
	case errors.Is(err, dates.ErrNoDate):
		return http.StatusBadRequest, voice(response.CodeMissingDate,
			"What date would you like?")
	case errors.Is(err, dates.ErrUnknownDate), errors.Is(err, dates.ErrUnknownTime):
		return http.StatusBadRequest, voice(response.CodeInvalidDate,
			"I didn't quite catch that date. Could you say it again?")
	case errors.Is(err, shared.ErrEngineUnavailable):
		return http.StatusServiceUnavailable, voice(response.CodeUpstreamDown,
			"The booking system isn't responding right now. Please try again in a moment.")
	case errors.Is(err, shared.ErrUnauthorised):
		return http.StatusBadGateway, voice(response.CodeUnauthorised,
			"I'm having trouble reaching the booking system. Please try again later.")
	case errors.Is(err, shared.ErrEngineRejected):
		return http.StatusBadGateway, voice(response.CodeInternalError,
			"Something went wrong talking to the booking system. Please try again.")
	}

	return http.StatusInternalServerError, voice(response.CodeInternalError,
		"Sorry, something went wrong on my end. Please try again.")
}

// missingCode picks the outcome code for a missing-field error. A lookup that
// can be satisfied by either a reference or an email gets the combined code.
func missingCode(fields []string) string {
	if slices.Contains(fields, "booking_id") && slices.Contains(fields, "email") {
		return response.CodeMissingLookupInfo
	}
	switch {
	case slices.Contains(fields, "item"):
		return response.CodeMissingItem
	case slices.Contains(fields, "date"):
		return response.CodeMissingDate
	case slices.Contains(fields, "name"):
		return response.CodeMissingName
	case slices.Contains(fields, "email"), slices.Contains(fields, "phone"):
		return response.CodeMissingContact
	case slices.Contains(fields, "booking_id"):
		return response.CodeMissingBookingID
	}
	return response.CodeMissingLookupInfo
}

func voice(code, speechText string) response.Voice {
	return response.Voice{Code: code, Speech: speechText}
}
