package infra

import (
	"errors"
	"fmt"

	"voicefront/internal/pkg/errs"
)

type GatewayErrorKind int

const (
	GatewayErrorUnknown GatewayErrorKind = iota
	GatewayErrorNotFound
	GatewayErrorUnauthorized
	GatewayErrorRejected    // engine understood the request and refused it
	GatewayErrorBadResponse // engine replied with something we cannot parse
	GatewayErrorUnavailable // timeout, connection failure, 5xx
)

// GatewayError classifies failures talking to the reservation engine so the
// usecase layer can map them without inspecting transport details.
type GatewayError struct {
	Kind      GatewayErrorKind
	Operation string
	Status    int
	Err       error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("engine %s failed (status=%d kind=%d): %v", e.Operation, e.Status, e.Kind, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func NewGatewayError(kind GatewayErrorKind, operation string, status int, err error) *GatewayError {
	if err == nil {
		err = errs.Newf("engine %s failed", operation)
	}
	return &GatewayError{Kind: kind, Operation: operation, Status: status, Err: err}
}

func IsGatewayErrorKind(err error, kind GatewayErrorKind) bool {
	var ge *GatewayError
	if !errors.As(err, &ge) {
		return false
	}
	return ge.Kind == kind
}
