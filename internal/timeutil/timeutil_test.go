package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseArgDateAcceptsZeroPaddedForm(t *testing.T) {
	parsed, err := ParseArgDate("01-15-2019")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if FormatDate(parsed) != "2019-01-15" {
		t.Fatalf("unexpected canonical form %s", FormatDate(parsed))
	}
}

func TestParseArgDateRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"2019-01-15", "1-15-2019", "01/15/2019", "garbage"} {
		if _, err := ParseArgDate(input); !errors.Is(err, ErrBadDate) {
			t.Fatalf("expected ErrBadDate for %q, got %v", input, err)
		}
	}
}

func TestResolveTargetDefaultsToToday(t *testing.T) {
	now := func() time.Time { return time.Date(2019, 1, 15, 20, 0, 0, 0, time.UTC) }

	got, err := ResolveTarget("", 0, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "2019-01-15" {
		t.Fatalf("expected today, got %s", got)
	}
}

func TestResolveTargetAppliesOffset(t *testing.T) {
	now := func() time.Time { return time.Date(2019, 1, 15, 20, 0, 0, 0, time.UTC) }

	got, err := ResolveTarget("", -1, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "2019-01-14" {
		t.Fatalf("expected yesterday, got %s", got)
	}
}

func TestResolveTargetPrefersExplicitDate(t *testing.T) {
	now := func() time.Time { return time.Date(2019, 1, 15, 20, 0, 0, 0, time.UTC) }

	got, err := ResolveTarget("03-02-2019", 0, now)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "2019-03-02" {
		t.Fatalf("expected explicit date, got %s", got)
	}
}

func TestResolveTargetPropagatesBadDate(t *testing.T) {
	if _, err := ResolveTarget("15-01-2019", 0, nil); !errors.Is(err, ErrBadDate) {
		t.Fatalf("expected ErrBadDate, got %v", err)
	}
}
