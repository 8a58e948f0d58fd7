package stripe

import (
	"errors"

	"github.com/stripe/stripe-go/v79"
)

type Kind string

const (
	KindConfig     Kind = "config"
	KindValidation Kind = "validation"
	KindProcessor  Kind = "processor"
)

// Error — ошибка платежного провайдера, Kind задает машиночитаемую категорию.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

var errNotConfigured = &Error{Kind: KindConfig, Message: "Stripe API key not configured"}

func wrapErr(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		kind := KindProcessor
		if sErr.Type == stripe.ErrorTypeInvalidRequest {
			kind = KindValidation
		}
		msg := sErr.Msg
		if msg == "" {
			msg = string(sErr.Code)
		}
		return &Error{Kind: kind, Message: msg, cause: err}
	}
	return &Error{Kind: KindProcessor, Message: err.Error(), cause: err}
}
