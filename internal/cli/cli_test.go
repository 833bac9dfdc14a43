package cli

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nba-scores/internal/config"
	"nba-scores/internal/logging"
	"nba-scores/internal/metrics"
	"nba-scores/internal/providers"
	"nba-scores/internal/timeutil"
)

func TestBuildAppRejectsDateAndOffsetTogether(t *testing.T) {
	t.Setenv("NBA_SCORES_PROVIDER", config.ProviderFixture)

	flagOffset = 0
	flagDate = ""
	cmd := NewRootCmd()
	if err := cmd.ParseFlags([]string{"--date", "01-15-2019", "--offset", "1"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	_, err := buildApp(cmd)
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("expected mutual-exclusion error, got %v", err)
	}
}

func TestBuildAppRejectsMalformedDate(t *testing.T) {
	t.Setenv("NBA_SCORES_PROVIDER", config.ProviderFixture)

	flagOffset = 0
	flagDate = ""
	cmd := NewRootCmd()
	if err := cmd.ParseFlags([]string{"--date", "2019-01-15"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	_, err := buildApp(cmd)
	if !errors.Is(err, timeutil.ErrBadDate) {
		t.Fatalf("expected ErrBadDate, got %v", err)
	}
}

func TestBuildAppFetchesInitialList(t *testing.T) {
	t.Setenv("NBA_SCORES_PROVIDER", config.ProviderFixture)

	flagOffset = 0
	flagDate = ""
	cmd := NewRootCmd()
	if err := cmd.ParseFlags([]string{"--date", "01-15-2019"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	a, err := buildApp(cmd)
	if err != nil {
		t.Fatalf("expected buildApp to succeed, got %v", err)
	}
	defer a.close()

	if got := len(a.session.Games()); got != 3 {
		t.Fatalf("expected 3 fixture games, got %d", got)
	}
	if a.session.Date() != "2019-01-15" {
		t.Fatalf("unexpected session date %s", a.session.Date())
	}
	if a.recorder.Totals().Calls != 1 {
		t.Fatalf("expected the initial fetch to be recorded, got %d calls", a.recorder.Totals().Calls)
	}
}

func TestBuildAppReportsInitialFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Setenv("NBA_SCORES_PROVIDER", config.ProviderNBAStats)
	t.Setenv("NBA_STATS_BASE_URL", srv.URL)

	flagOffset = 0
	flagDate = ""
	cmd := NewRootCmd()
	if err := cmd.ParseFlags([]string{"--date", "01-15-2019"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	_, err := buildApp(cmd)
	if err == nil {
		t.Fatalf("expected initial fetch to fail")
	}
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if !strings.Contains(err.Error(), "2019-01-15") {
		t.Fatalf("expected error to name the date, got %v", err)
	}
}

func TestBuildProviderUnknownName(t *testing.T) {
	cfg := config.Config{Provider: "espn"}
	logger := logging.NewLogger(logging.Config{})

	if _, err := buildProvider(cfg, logger, metrics.NewRecorder()); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestBuildProviderFixture(t *testing.T) {
	cfg := config.Config{Provider: config.ProviderFixture}
	logger := logging.NewLogger(logging.Config{})

	p, err := buildProvider(cfg, logger, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p == nil {
		t.Fatalf("expected provider")
	}
}
