// Package config loads codevideo.toml.
//
// Every field has a default, so a missing or partial file is fine:
//
//	[theme]
//	code_font = "Ubuntu Mono"
//	code_theme = "monokai"
//
//	[slides]
//	player = "mpv"
//
// [Load] decodes a file over [Default] and validates the result. [Find]
// looks for the file in the working directory, its parents and then the user
// config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/codevideo/pkg/diagram"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/geom"
	"github.com/matzehuels/codevideo/pkg/render"
	"github.com/matzehuels/codevideo/pkg/scene"
)

// FileName is the name Find looks for.
const FileName = "codevideo.toml"

// Config is the decoded configuration.
type Config struct {
	Theme  Theme  `toml:"theme"`
	Frame  Frame  `toml:"frame"`
	Render Render `toml:"render"`
	Slides Slides `toml:"slides"`
	Music  Music  `toml:"music"`

	// Path is the file the configuration was loaded from, empty for the
	// defaults.
	Path string `toml:"-"`
}

// Theme sets fonts and colours.
type Theme struct {
	CodeFont   string   `toml:"code_font"`
	TextFont   string   `toml:"text_font"`
	CodeTheme  string   `toml:"code_theme"`
	Palette    []string `toml:"palette"`
	Background string   `toml:"background"`
}

// Frame sets the viewport in scene units and output pixels.
type Frame struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	PixelWidth  int     `toml:"pixel_width"`
	PixelHeight int     `toml:"pixel_height"`
}

// Render names the external animation renderer.
type Render struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// Slides configures slide building and playback.
type Slides struct {
	Player      string   `toml:"player"`
	PlayerArgs  []string `toml:"player_args"`
	FFmpeg      string   `toml:"ffmpeg"`
	Concurrency int      `toml:"concurrency"`
}

// Music configures beat detection.
type Music struct {
	// BeatCommand runs with the audio path appended and prints beat times.
	BeatCommand []string `toml:"beat_command"`
	// Cache keeps detected beats in the user cache directory.
	Cache bool `toml:"cache"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme: Theme{
			CodeFont:   "Ubuntu Mono",
			TextFont:   diagram.DefaultTextFont,
			CodeTheme:  scene.DefaultCodeTheme,
			Palette:    append([]string(nil), diagram.DefaultPalette...),
			Background: render.DefaultBackground,
		},
		Frame: Frame{
			Width:       geom.DefaultFrameWidth,
			Height:      geom.DefaultFrameHeight,
			PixelWidth:  1920,
			PixelHeight: 1080,
		},
		Render: Render{Command: "manim"},
		Slides: Slides{
			Player:     "ffplay",
			PlayerArgs: []string{"-autoexit", "-fs"},
			FFmpeg:     "ffmpeg",
		},
		Music: Music{Cache: true},
	}
}

// Load decodes the file at path over the defaults and validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s: failed to parse TOML", path)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %s", path, keys[0])
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Find returns the first codevideo.toml in dir or one of its parents, then
// in the user config directory. It returns "" when there is none.
func Find(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	for {
		if ok, err := exists(filepath.Join(dir, FileName)); err != nil || ok {
			return filepath.Join(dir, FileName), err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	if cfgDir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(cfgDir, "codevideo", FileName)
		if ok, err := exists(candidate); err != nil || ok {
			return candidate, err
		}
	}
	return "", nil
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// Resolve loads path when set, otherwise the file Find reports for dir,
// otherwise the defaults.
func Resolve(path, dir string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	found, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if found == "" {
		return Default(), nil
	}
	return Load(found)
}

// Validate checks frame dimensions and colours.
func (c *Config) Validate() error {
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "frame size must be positive, got %gx%g", c.Frame.Width, c.Frame.Height)
	}
	if c.Frame.PixelWidth <= 0 || c.Frame.PixelHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "pixel size must be positive, got %dx%d", c.Frame.PixelWidth, c.Frame.PixelHeight)
	}
	if len(c.Theme.Palette) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "theme palette is empty")
	}
	colours := c.Theme.Palette
	if c.Theme.Background != "" {
		colours = append([]string{c.Theme.Background}, colours...)
	}
	for _, p := range colours {
		if _, _, err := diagram.ParseColor(p, "", nil); err != nil {
			return err
		}
	}
	commands := []string{c.Render.Command, c.Slides.Player, c.Slides.FFmpeg}
	if len(c.Music.BeatCommand) > 0 {
		commands = append(commands, c.Music.BeatCommand[0])
	}
	for _, name := range commands {
		if err := errors.ValidateCommand(name); err != nil {
			return err
		}
	}
	if c.Slides.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "slides concurrency must not be negative")
	}
	return nil
}

// SceneFrame returns the viewport frame in scene units.
func (c *Config) SceneFrame() geom.Frame {
	return geom.Frame{Width: c.Frame.Width, Height: c.Frame.Height}
}

// Viewport returns the frame together with its pixel size.
func (c *Config) Viewport() render.Viewport {
	return render.Viewport{Frame: c.SceneFrame(), Width: c.Frame.PixelWidth, Height: c.Frame.PixelHeight}
}

// Library returns a box library using the theme's text font and palette.
func (c *Config) Library(m scene.Measurer) *diagram.Library {
	lib := diagram.New(m)
	lib.TextFont = c.Theme.TextFont
	lib.Palette = append([]string(nil), c.Theme.Palette...)
	return lib
}
