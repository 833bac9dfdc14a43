package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nba-scores/internal/config"
	"nba-scores/internal/domain"
	"nba-scores/internal/logging"
	"nba-scores/internal/metrics"
	"nba-scores/internal/providers"
	"nba-scores/internal/store"
	"nba-scores/internal/timeutil"
	"nba-scores/internal/ui"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const appVersion = "dev"

var (
	flagOffset  int
	flagDate    string
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nba-scores",
		Short: "Browse NBA scores for a date in the terminal",
		Long: `An interactive terminal scoreboard for NBA games.
Pick a date, get the day's games, type a game's number for its box score,
'b' to go back, 'q' to quit.`,
		SilenceUsage: true,
		RunE:         runBrowse,
	}

	cmd.Flags().IntVar(&flagOffset, "offset", 0, "Days offset from today")
	cmd.Flags().StringVar(&flagDate, "date", "", `Reference date, e.g. "01-15-2019" (default: today)`)
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// app bundles everything runBrowse needs after validation and the initial
// list fetch have succeeded.
type app struct {
	session  *domain.Session
	provider providers.ScoreProvider
	recorder *metrics.Recorder
	logger   *slog.Logger
	logFile  *os.File
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// buildApp validates flags, loads configuration, and performs the initial
// list fetch. Any error here is reported before a screen is ever drawn.
func buildApp(cmd *cobra.Command) (*app, error) {
	if cmd.Flags().Changed("date") && cmd.Flags().Changed("offset") {
		return nil, fmt.Errorf("--date and --offset are mutually exclusive")
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg := config.Load()

	date, err := timeutil.ResolveTarget(flagDate, flagOffset, nil)
	if err != nil {
		return nil, err
	}

	logFile, err := logging.OpenLogFile(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	logCfg := logging.Config{
		Level:   level,
		Format:  cfg.LogFormat,
		Service: "nba-scores",
		Version: appVersion,
	}
	if logFile != nil {
		logCfg.Writer = logFile
	}
	logger := logging.NewLogger(logCfg)

	recorder := metrics.NewRecorder()
	provider, err := buildProvider(cfg, logger, recorder)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	games, err := provider.FetchGames(context.Background(), date)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("fetching games for %s: %w", date, err)
	}

	session := domain.NewSession(store.NewMemoryStore())
	session.Replace(date, games)

	return &app{
		session:  session,
		provider: provider,
		recorder: recorder,
		logger:   logger,
		logFile:  logFile,
	}, nil
}

// runBrowse resolves the target date, fetches the day's games, and hands the
// terminal to the navigator. The alt screen guarantees the terminal comes
// back intact on every exit path.
func runBrowse(cmd *cobra.Command, args []string) error {
	_ = args

	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	program := tea.NewProgram(
		ui.New(a.session, a.provider, a.recorder, a.logger),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
