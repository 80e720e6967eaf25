package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"habittrainer/internal/config"
	"habittrainer/internal/haptic"
	"habittrainer/internal/interval"
	"habittrainer/internal/trace"
	"habittrainer/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// options holds the command-line flags. Set flags override the config file.
type options struct {
	configPath string
	tick       time.Duration
	haptic     string
	logFile    string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "habittrainer",
		Short: "Adaptive interval timer on a terminal watch face",
		Long: `habittrainer counts down an interval and pulses when it runs out.
Answer with up (too short), select (about right) or down (too long) and the
next interval adapts. Left alone, the interval shrinks a little on its own.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	f.DurationVar(&opts.tick, "tick", 0, "countdown cadence (default 1s)")
	f.StringVar(&opts.haptic, "haptic", "", `haptic output: "bell" or "none"`)
	f.StringVar(&opts.logFile, "log-file", "", "debug log file (\"-\" disables logging)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "habittrainer", version)
		},
	}
}

// loadConfig reads the config file and applies the flags the user set.
// Validation runs last so a flag can replace a bad file or env value.
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return nil, err
	}
	f := cmd.Flags()
	if f.Changed("tick") {
		cfg.Tick = opts.tick
	}
	if f.Changed("haptic") {
		cfg.Haptic = opts.haptic
	}
	if f.Changed("log-file") {
		cfg.LogFile = opts.logFile
		if opts.logFile == "-" {
			cfg.LogFile = ""
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	timer, err := interval.NewWithTuning(cfg.Tuning)
	if err != nil {
		return err
	}
	vibrator, err := haptic.New(cfg.Haptic, os.Stderr)
	if err != nil {
		return err
	}

	tp, err := trace.NewOTLPProvider(ctx)
	if err != nil {
		log.Printf("main: OTLP export disabled: %v", err)
	}
	var recorder *trace.Recorder
	if tp != nil {
		recorder = trace.NewRecorder(tp)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Printf("main: trace shutdown: %v", err)
			}
		}()
	} else {
		recorder = trace.NewRecorder(nil)
	}
	defer recorder.Close()

	log.Printf("main: starting, tick=%s haptic=%s session=%s", cfg.Tick, cfg.Haptic, recorder.Session())

	model := ui.NewWatchModel(ui.WatchOptions{
		Timer:      timer,
		Vibrator:   vibrator,
		Recorder:   recorder,
		TickPeriod: cfg.Tick,
		Context:    ctx,
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running watch face: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to path. The TUI owns the
// terminal, so with no path logs are discarded.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "habittrainer")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
