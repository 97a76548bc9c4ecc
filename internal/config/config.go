// Package config assembles the tapeheads command configuration from
// built-in defaults, a .env file, the process environment and flags, in
// that order of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/cases"

	"github.com/gogpu/tapeheads"
)

// Environment variables read by Load.
const (
	EnvDown      = "TAPEHEADS_DOWN"
	EnvUp        = "TAPEHEADS_UP"
	EnvFormat    = "TAPEHEADS_FORMAT"
	EnvGlitchRow = "TAPEHEADS_GLITCH_ROW"
)

// DefaultEnvFile is the .env file read when none is given.
const DefaultEnvFile = ".env"

// Effect names accepted as the command's first argument.
const (
	EffectPAL = "pal"
	EffectVHS = "vhs"
)

// ErrUsage is returned for a missing or unknown effect, or a missing input.
var ErrUsage = errors.New("config: usage error")

// Config holds all command configuration values.
type Config struct {
	Effect string
	In     string
	Out    string

	Border bool

	// PAL only.
	Interlace bool
	Format    tapeheads.Format

	// VHS only.
	MessyHeadChange bool
	Glitch          bool
	GlitchRow       int

	Down, Up tapeheads.Interpolation
	Verbose  bool
}

// Default returns the configuration used when nothing is set: the library
// defaults of both effects.
func Default() Config {
	pal := tapeheads.DefaultPALOptions()
	vhs := tapeheads.DefaultVHSOptions()
	return Config{
		Border:          pal.Border,
		Interlace:       pal.Interlace,
		Format:          pal.Format,
		MessyHeadChange: vhs.MessyHeadChange,
		Glitch:          vhs.Glitch,
		GlitchRow:       vhs.GlitchRow,
		Down:            pal.Down,
		Up:              pal.Up,
	}
}

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a LookupFunc over the process environment, falling back
// to the variables in envFile. A missing envFile is not an error; the
// process environment wins over the file.
func EnvLookup(envFile string) (LookupFunc, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	file, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read %s: %w", envFile, err)
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides c with the TAPEHEADS_* variables that lookup finds.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvDown); ok {
		if err := c.Down.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("config: %s: %w", EnvDown, err)
		}
	}
	if v, ok := lookup(EnvUp); ok {
		if err := c.Up.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("config: %s: %w", EnvUp, err)
		}
	}
	if v, ok := lookup(EnvFormat); ok {
		if err := c.Format.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("config: %s: %w", EnvFormat, err)
		}
	}
	if v, ok := lookup(EnvGlitchRow); ok {
		row, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvGlitchRow, err)
		}
		c.GlitchRow = row
	}
	return nil
}

// FlagSet returns a flag set for c.Effect whose defaults are the current
// values of c and which writes parsed values back into c.
func (c *Config) FlagSet(output io.Writer) *flag.FlagSet {
	set := flag.NewFlagSet("tapeheads "+c.Effect, flag.ContinueOnError)
	set.SetOutput(output)

	set.StringVar(&c.In, "in", c.In, "input image (PNG, JPEG, GIF, BMP, TIFF or WebP)")
	set.StringVar(&c.Out, "out", c.Out, "output image, PNG or JPEG by extension (default <in>-<effect>.png)")
	set.BoolVar(&c.Border, "border", c.Border, "add the picture-area border")
	set.TextVar(&c.Down, "down", c.Down, "kernel for shrinking: none, linear, cubic or lanczos")
	set.TextVar(&c.Up, "up", c.Up, "kernel for enlarging: none, linear, cubic or lanczos")
	set.BoolVar(&c.Verbose, "v", c.Verbose, "log every step")

	switch c.Effect {
	case EffectPAL:
		set.BoolVar(&c.Interlace, "interlace", c.Interlace, "add the interlace artifact")
		set.TextVar(&c.Format, "format", c.Format, "signal format: pal-s or pal-d")
	case EffectVHS:
		set.BoolVar(&c.MessyHeadChange, "messy", c.MessyHeadChange, "add head switch noise near the bottom")
		set.BoolVar(&c.Glitch, "glitch", c.Glitch, "add a tracking glitch")
		set.IntVar(&c.GlitchRow, "glitch-row", c.GlitchRow, fmt.Sprintf("first glitched row (0-%d)", tapeheads.MaxGlitchRow))
	}
	return set
}

// Load builds the configuration for args, which start with the effect name.
// Flag usage and errors are written to output.
func Load(args []string, envFile string, output io.Writer) (*Config, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing effect (pal or vhs)", ErrUsage)
	}

	c := Default()
	c.Effect = cases.Fold().String(args[0])
	if c.Effect != EffectPAL && c.Effect != EffectVHS {
		return nil, fmt.Errorf("%w: unknown effect %q", ErrUsage, args[0])
	}

	lookup, err := EnvLookup(envFile)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	if err := c.FlagSet(output).Parse(args[1:]); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Out == "" {
		c.Out = DefaultOutput(c.In, c.Effect)
	}
	return &c, nil
}

// Validate checks the values that the effects would reject.
func (c *Config) Validate() error {
	if c.In == "" {
		return fmt.Errorf("%w: -in is required", ErrUsage)
	}
	if c.Effect == EffectPAL && c.Format == tapeheads.FormatVHS {
		return fmt.Errorf("config: pal needs format pal-s or pal-d: %w", tapeheads.ErrUnknownFormat)
	}
	if c.Effect == EffectVHS && c.Glitch {
		if err := tapeheads.ValidateGlitchRow(c.GlitchRow); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// DefaultOutput derives an output path from the input path: photo.jpg run
// through vhs becomes photo-vhs.png.
func DefaultOutput(in, effect string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + "-" + effect + ".png"
}

// PALOptions returns the PAL effect options.
func (c *Config) PALOptions() tapeheads.PALOptions {
	return tapeheads.PALOptions{
		Border:    c.Border,
		Interlace: c.Interlace,
		Format:    c.Format,
		Down:      c.Down,
		Up:        c.Up,
	}
}

// VHSOptions returns the VHS effect options.
func (c *Config) VHSOptions() tapeheads.VHSOptions {
	return tapeheads.VHSOptions{
		Border:          c.Border,
		MessyHeadChange: c.MessyHeadChange,
		Glitch:          c.Glitch,
		GlitchRow:       c.GlitchRow,
		Down:            c.Down,
		Up:              c.Up,
	}
}
