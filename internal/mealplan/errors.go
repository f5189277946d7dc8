package mealplan

import (
	"errors"
	"fmt"
)

// Kind enumerates the ways plan generation can fail. Every kind is
// terminal for the request; the client decides whether to try again.
type Kind int

const (
	// KindInvalidRequest means the caller omitted a required field or
	// sent an out-of-enum value.
	KindInvalidRequest Kind = iota + 1

	// KindUpstreamFailure means the model call itself failed.
	KindUpstreamFailure

	// KindUpstreamTimeout means the model call exceeded its deadline.
	KindUpstreamTimeout

	// KindMalformedOutput means the model replied but the text did not
	// parse as JSON after fence stripping.
	KindMalformedOutput

	// KindInvalidStructure means the parsed JSON is missing a usable
	// days list.
	KindInvalidStructure
)

// Error is the tagged failure type for the generation pipeline.
type Error struct {
	Kind    Kind
	Message string
	// Details carries the underlying parse or transport error text.
	Details string
	// RawText carries a truncated prefix of the model output for
	// diagnostics. Never the full payload.
	RawText string
	err     error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// AsError extracts a pipeline error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
