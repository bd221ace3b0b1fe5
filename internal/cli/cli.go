// Package cli implements the codevideo command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/codevideo/pkg/buildinfo"
	"github.com/matzehuels/codevideo/pkg/cache"
	"github.com/matzehuels/codevideo/pkg/config"
	"github.com/matzehuels/codevideo/pkg/errors"
	"github.com/matzehuels/codevideo/pkg/fonts"
	"github.com/matzehuels/codevideo/pkg/music"
	"github.com/matzehuels/codevideo/pkg/observability"
	"github.com/matzehuels/codevideo/pkg/walkthrough"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "codevideo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Codevideo turns commented source files into walkthrough videos",
		Long:         `Codevideo lays out source code, captions and diagrams for code walkthrough videos. It drives an external animation renderer, previews scenes as storyboards and cuts finished renders into slides.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetSceneHooks(logHooks{c.Logger})
			observability.SetToolHooks(logHooks{c.Logger})
			observability.SetCacheHooks(logHooks{c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: nearest "+config.FileName+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.storyboardCommand())
	root.AddCommand(c.sequenceCommand())
	root.AddCommand(c.boxesCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig resolves the configuration once per run.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, err := config.Resolve(c.configPath, ".")
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}
	c.config = cfg
	return cfg, nil
}

// sceneOptions returns the walkthrough options the configuration implies.
func sceneOptions(cfg *config.Config, logger *log.Logger) []walkthrough.Option {
	m := fonts.NewMeasurer()
	return []walkthrough.Option{
		walkthrough.WithFrame(cfg.SceneFrame()),
		walkthrough.WithMeasurer(m),
		walkthrough.WithLibrary(cfg.Library(m)),
		walkthrough.WithCodeStyle(cfg.Theme.CodeFont, cfg.Theme.CodeTheme),
		walkthrough.WithFFmpeg(cfg.Slides.FFmpeg),
		walkthrough.WithLogger(logger),
	}
}

// loadMusic reads the beat grid of the audio file at path.
func (c *CLI) loadMusic(ctx context.Context, cfg *config.Config, path string, noCache bool) (*music.Track, error) {
	store, err := newCache(noCache || !cfg.Music.Cache)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	loader := music.Loader{Command: cfg.Music.BeatCommand, Cache: store, Logger: loggerFromContext(ctx)}
	return loader.Load(ctx, path)
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the beat cache directory (~/.cache/codevideo/ unless
// XDG_CACHE_HOME is set).
func cacheDir() (string, error) { return cache.DefaultDir() }

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. A known format
// extension on output is stripped too.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// =============================================================================
// Output
// =============================================================================

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// moveFile moves src to dst, copying when they are on different devices.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := writeOutput(dst, data); err != nil {
		return err
	}
	return os.Remove(src)
}

// =============================================================================
// Formats
// =============================================================================

// validFormats is the set of supported image formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "dot": true}

// parseFormats parses a comma-separated format string, defaulting to svg.
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that every format is one of allowed.
func validateFormats(formats []string, allowed ...string) error {
	for _, f := range formats {
		if !validFormats[f] || !slices.Contains(allowed, f) {
			return fmt.Errorf("invalid format: %s (must be one of %s)", f, strings.Join(allowed, ", "))
		}
	}
	return nil
}
