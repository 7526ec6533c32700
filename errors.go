package arquery

import (
	"errors"
	"fmt"
)

var (
	ErrRequest  = errors.New("gateway_request_failed")
	ErrParse    = errors.New("payload_parse_failed")
	ErrNotFound = errors.New("not_found")
)

// RequestError is returned when the gateway answers with a non-2xx status or
// reports errors in a GraphQL body. Body holds the raw response text.
type RequestError struct {
	StatusCode int
	Body       string
	Err        error // transport failure, nil when the gateway answered
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrRequest, e.Err)
	}
	return fmt.Sprintf("%s: http code: %d, body: %s", ErrRequest, e.StatusCode, e.Body)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequest
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a payload expected to be JSON cannot be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrParse, e.Err)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
