package shared

import (
	"voicefront/internal/infra"
	"voicefront/internal/pkg/errs"
)

// Step tracks how far a booking creation progressed. The flow is strictly
// linear; a failure at any point parks the attempt in StepFailed.
type Step string

const (
	StepRated          Step = "RATED"
	StepSessionCreated Step = "SESSION_CREATED"
	StepFormSubmitted  Step = "FORM_SUBMITTED"
	StepCommitted      Step = "COMMITTED"
	StepFailed         Step = "FAILED"
)

// MapGatewayError folds transport-level failures into the usecase error
// vocabulary. Errors that are not gateway errors pass through untouched.
func MapGatewayError(err error) error {
	return mapGatewayError(err, ErrBookingNotFound)
}

// MapItemGatewayError is MapGatewayError for catalog-path calls, where a
// not-found from the engine concerns an item, not a booking.
func MapItemGatewayError(err error) error {
	return mapGatewayError(err, ErrItemNotFound)
}

func mapGatewayError(err, notFound error) error {
	if err == nil {
		return nil
	}
	switch {
	case infra.IsGatewayErrorKind(err, infra.GatewayErrorNotFound):
		return errs.Mark(err, notFound)
	case infra.IsGatewayErrorKind(err, infra.GatewayErrorUnauthorized):
		return errs.Mark(err, ErrUnauthorised)
	case infra.IsGatewayErrorKind(err, infra.GatewayErrorUnavailable):
		return errs.Mark(err, ErrEngineUnavailable)
	case infra.IsGatewayErrorKind(err, infra.GatewayErrorRejected),
		infra.IsGatewayErrorKind(err, infra.GatewayErrorBadResponse):
		return errs.Mark(err, ErrEngineRejected)
	}
	return err
}
