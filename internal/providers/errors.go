package providers

import (
	"errors"
	"fmt"
)

// NetworkError captures transport failures and unexpected upstream statuses.
type NetworkError struct {
	Provider   string
	StatusCode int
	Err        error
	Message    string
}

func (e *NetworkError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// ParseError captures responses whose shape does not match expectations.
type ParseError struct {
	Provider string
	Err      error
	Message  string
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected response shape"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}
