// Command tapeheads degrades a still image to look like it went through PAL
// broadcast or a PAL VHS tape.
//
// Usage:
//
//	tapeheads pal -in photo.jpg [-out photo-pal.png] [-format pal-d] ...
//	tapeheads vhs -in photo.jpg [-glitch-row 300] ...
//
// Settings are read from built-in defaults, a .env file, TAPEHEADS_*
// environment variables and flags; later sources win.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/tapeheads"
	"github.com/gogpu/tapeheads/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "tapeheads: %v\n", err)
		}
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprintln(os.Stderr, "usage: tapeheads pal|vhs -in IN [-out OUT] [flags]")
		}
		os.Exit(2)
	}
}

func run(args []string, stderr io.Writer) error {
	cfg, err := config.Load(args, os.Getenv("TAPEHEADS_ENV_FILE"), stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	tapeheads.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer tapeheads.SetLogger(nil)

	img, format, err := readImage(cfg.In)
	if err != nil {
		return err
	}
	tapeheads.Logger().Debug("tapeheads: decoded input", "path", cfg.In, "format", format, "size", img.Bounds().Size())

	frame, layer := tapeheads.NewFrame(img)
	switch cfg.Effect {
	case config.EffectPAL:
		_, err = tapeheads.PAL(frame, layer, cfg.PALOptions())
	case config.EffectVHS:
		_, err = tapeheads.VHS(frame, layer, cfg.VHSOptions())
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", cfg.Effect, cfg.In, err)
	}

	if err := writeImage(cfg.Out, frame.Image()); err != nil {
		return err
	}
	tapeheads.Logger().Info("tapeheads: wrote output", "path", cfg.Out)
	return nil
}
