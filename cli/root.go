// Package cli wires the chronos commands and the interactive clock UI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/yoanbernabeu/chronos/config"
	"github.com/yoanbernabeu/chronos/face"
	"github.com/yoanbernabeu/chronos/notes"
	"github.com/yoanbernabeu/chronos/overlay"
	"github.com/yoanbernabeu/chronos/shader"
	"github.com/yoanbernabeu/chronos/vclock"
)

var (
	configPath     string
	notesPath      string
	rootMultiplier float64
	rootCadence    time.Duration
	rootWorkers    int
	rootLogFile    string
	rootWatchNotes bool
	rootNoUI       bool
)

var rootCmd = &cobra.Command{
	Use:   "chronos",
	Short: "Animated terminal clock with dilated time and minute notes",
	Long: `chronos draws an animated clock face whose virtual time can run faster or
slower than the wall clock, and lets you attach a note to any minute of the dial.

Controls:
  Left/Right  - Select previous/next minute
  Up/Down     - Jump five minutes
  Enter       - Open the note for the selected minute
  Esc         - Save the note and close the editor
  +/-         - Speed time up or slow it down
  n           - Browse stored notes
  q           - Quit`,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: user config dir/chronos/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&notesPath, "notes", "", "Note file; .yaml/.yml/.gob select the encoding, anything else is JSON")

	rootCmd.Flags().Float64Var(&rootMultiplier, "multiplier", 1.0, "Initial time multiplier")
	rootCmd.Flags().DurationVar(&rootCadence, "cadence", 16*time.Millisecond, "Logic tick interval")
	rootCmd.Flags().IntVar(&rootWorkers, "workers", 0, "Shader workers (0 = one per CPU)")
	rootCmd.Flags().StringVar(&rootLogFile, "log-file", "", "Write logs to this file while the UI runs")
	rootCmd.Flags().BoolVar(&rootWatchNotes, "watch-notes", false, "Reload notes when the file changes on disk")
	rootCmd.Flags().BoolVar(&rootNoUI, "no-ui", false, "Print a single frame instead of the interactive UI")

	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

// loadConfig reads the config file and applies flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if notesPath != "" {
		cfg.Notes.Path = notesPath
	}
	if flags.Changed("multiplier") {
		cfg.Clock.Multiplier = rootMultiplier
	}
	if flags.Changed("cadence") {
		cadence := rootCadence
		// The config counts whole milliseconds; keep a positive sub-millisecond cadence positive.
		if cadence > 0 && cadence < time.Millisecond {
			cadence = time.Millisecond
		}
		cfg.Render.CadenceMS = int(cadence / time.Millisecond)
	}
	if flags.Changed("workers") {
		cfg.Render.Workers = rootWorkers
	}
	if flags.Changed("log-file") {
		cfg.Log.File = rootLogFile
	}
	if flags.Changed("watch-notes") {
		cfg.Notes.Watch = rootWatchNotes
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// openStore loads the note store. A broken file leaves the store empty and usable;
// the returned error is for reporting only.
func openStore(ctx context.Context, cfg *config.Config) (*notes.FileStore, error) {
	store := notes.NewFileStore(cfg.Notes.Path)
	if err := store.Load(ctx); err != nil {
		return store, fmt.Errorf("%w; starting with no notes", err)
	}
	return store, nil
}

func clockOptionsFrom(cfg *config.Config) clockOptions {
	return clockOptions{
		multiplier: cfg.Clock.Multiplier,
		cadence:    cfg.Cadence(),
		workers:    cfg.Render.Workers,
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !shouldUseClockUI(isInteractiveTerminal(), rootNoUI) {
		store, err := openStore(cmd.Context(), cfg)
		if err != nil {
			log.Printf("Warning: %v", err)
		}
		width, height := plainFrameSize()
		return printPlainFrame(cmd.OutOrStdout(), clockwork.NewRealClock(), store, clockOptionsFrom(cfg), width, height)
	}
	return runClockUI(cfg)
}

func runClockUI(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var program *tea.Program
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "chronos")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		// Lines logged before the program exists are dropped.
		restoreLogs := captureClockUILogs(func(msg tea.Msg) {
			if program != nil {
				program.Send(msg)
			}
		})
		defer restoreLogs()
	}

	store, loadErr := openStore(ctx, cfg)
	model := newClockUIModel(clockwork.NewRealClock(), store, clockOptionsFrom(cfg))
	if loadErr != nil {
		log.Printf("Warning: %v", loadErr)
		model.lastLog = loadErr.Error()
		model.lastLogLevel = "warn"
	}
	program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	watchErrCh := make(chan error, 1)
	if cfg.Notes.Watch {
		go func() {
			watchErrCh <- store.Watch(ctx, func() {
				program.Send(clockUINotesChangedMsg{})
			})
		}()
	} else {
		watchErrCh <- nil
	}

	_, runErr := program.Run()
	cancel()
	watchErr := <-watchErrCh

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	if watchErr != nil && !errors.Is(watchErr, context.Canceled) {
		log.Printf("notes watcher stopped: %v", watchErr)
	}
	return nil
}

// printPlainFrame writes one composed frame and the status line, for pipes and --no-ui.
func printPlainFrame(w io.Writer, real clockwork.Clock, store *notes.FileStore, opts clockOptions, width, height int) error {
	clock := vclock.New(real)
	clock.SetMultiplier(opts.multiplier)
	snap := clock.Current()
	emanations := vclock.DefaultEmanations()

	g := face.NewGeometry(width, height)
	f := face.NewFrame(width, height)
	if err := (shader.Compositor{Emanations: emanations, Workers: opts.workers}).Paint(f, g, snap); err != nil {
		return fmt.Errorf("failed to paint frame: %w", err)
	}
	overlay.Overlay{Emanations: emanations}.Draw(f, g, snap, -1)

	if _, err := fmt.Fprintln(w, newFrameRenderer().Render(f)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "SPEED: %.1fx | EXPERIENCE UNITS: %d | NOTES: %d\n",
		snap.Multiplier, snap.ExperienceUnits(), store.Len())
	return err
}
