package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsNetworkErrorUnwrapsWrappedError(t *testing.T) {
	inner := &NetworkError{Provider: "nbastats", StatusCode: 502}
	wrapped := fmt.Errorf("fetching games: %w", inner)

	netErr, ok := AsNetworkError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped error to unwrap into NetworkError")
	}
	if netErr.StatusCode != 502 {
		t.Fatalf("unexpected status code %d", netErr.StatusCode)
	}
}

func TestAsNetworkErrorRejectsOtherErrors(t *testing.T) {
	if _, ok := AsNetworkError(errors.New("boom")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}

func TestNetworkErrorMessages(t *testing.T) {
	withStatus := &NetworkError{Provider: "nbastats", StatusCode: 503}
	if got := withStatus.Error(); got != "nbastats: provider request failed (status=503)" {
		t.Fatalf("unexpected message %q", got)
	}

	withErr := &NetworkError{Provider: "nbastats", Err: errors.New("timeout")}
	if got := withErr.Error(); got != "nbastats: provider request failed: timeout" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAsParseErrorUnwrapsWrappedError(t *testing.T) {
	inner := &ParseError{Provider: "nbastats", Message: "missing GameHeader"}
	wrapped := fmt.Errorf("fetching games: %w", inner)

	parseErr, ok := AsParseError(wrapped)
	if !ok {
		t.Fatalf("expected wrapped error to unwrap into ParseError")
	}
	if parseErr.Message != "missing GameHeader" {
		t.Fatalf("unexpected message %q", parseErr.Message)
	}
}

func TestParseErrorIncludesCause(t *testing.T) {
	err := &ParseError{Provider: "nbastats", Err: errors.New("bad json")}
	if got := err.Error(); got != "nbastats: unexpected response shape: bad json" {
		t.Fatalf("unexpected message %q", got)
	}
	if !errors.Is(err, err.Err) {
		t.Fatalf("expected Unwrap to expose the cause")
	}
}
