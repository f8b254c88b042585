package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/audio"
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
	"github.com/vovakirdan/dino-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run of Dino Runner.

Controls:
  Space/Up/W   - Jump (hold for a higher jump)
  Down/S       - Cut the jump short
  R/Space      - Restart (after game over)
  P/Esc        - Pause
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  dino play
  dino play --seed 42 --fps 30
  dino play --mute
  dino play --config ./my-dino.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, src, err := config.LoadDino(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", src)

	sink, err := openSink(cfg.Audio)
	if err != nil {
		logger.Error("audio unavailable", "err", err)
		return err
	}
	defer sink.Close()
	logger.Info("audio ready", "muted", flagMute)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	logger.Info("starting", "width", width, "height", height, "fps", flagFPS, "seed", flagSeed)

	session := dino.NewSession(cfg, rt.Seed)
	if err := tui.Run(session, tui.Options{Runtime: rt, Sink: sink, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	st := session.State()
	logger.Info("session ended", "runs", st.Runs, "score", st.Score)
	return nil
}

// openSink opens the speaker, or a silent sink when muted. A missing audio
// device is fatal so that sound is never dropped without notice.
func openSink(cfg config.AudioConfig) (audio.Sink, error) {
	if flagMute {
		return audio.Silent{}, nil
	}

	sm := audio.NewSoundManager(cfg.Volume, cfg.AmbienceVolume)
	if err := sm.Initialize(); err != nil {
		return nil, errors.Join(err, errors.New("run with --mute to play without sound"))
	}
	return sm, nil
}
