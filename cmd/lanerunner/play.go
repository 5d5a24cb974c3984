package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/audio"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagHoldTicks int
	flagMute      bool
	flagLogFile   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a session on the title screen.

Controls:
  W/Up, S/Down   - Change lane / move menu cursor
  D/Right        - Gas (hold)
  A/Left         - Brake (hold)
  Enter/Space    - Start, confirm
  P/Esc          - Pause
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Five lives, slower start, lower top speed
  normal - The configured values
  hard   - Two lives, faster start, faster acceleration
  fixed  - No acceleration, speed stays where you put it

Examples:
  lanerunner play
  lanerunner play --difficulty easy
  lanerunner play --seed 42 --mute
  lanerunner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a gas or brake key stays held after its last repeat")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.lanerunner/lanerunner.log", "Where to write the session log")
}

func runPlay(_ *cobra.Command, _ []string) {
	// play returns instead of exiting so its deferred cleanup always runs.
	if err := play(); err != nil {
		fail("%v", err)
	}
}

func play() error {
	rules, cfg, preset, err := loadRules()
	if err != nil {
		return err
	}

	logOut, closeLog := openLogFile(flagLogFile)
	defer closeLog()
	logger := newLogger(logOut, "lanerunner")

	// Get terminal size
	width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
	if sizeErr != nil {
		width, height = 80, 24
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	audioCfg := cfg.Audio
	if flagMute {
		audioCfg.Enabled = false
	}
	player, closeAudio, audioErr := audio.Open(audioCfg)
	if audioErr != nil {
		logger.Warn("sound disabled", "error", audioErr)
	}
	defer closeAudio()

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(tui.Options{
		Rules:      rules,
		Store:      store,
		Audio:      player,
		Logger:     logger,
		Difficulty: preset,
		Runtime:    runtimeCfg,
		HoldTicks:  flagHoldTicks,
	}); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogFile opens path for appending, falling back to discarding output.
func openLogFile(path string) (io.Writer, func()) {
	if path == "" {
		return io.Discard, func() {}
	}
	if len(path) > 1 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return io.Discard, func() {}
		}
		path = filepath.Join(home, path[2:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
