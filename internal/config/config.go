// Package config loads mazepath settings from defaults, an optional TOML
// file, MAZEPATH_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdrpinto/mazepath"
	"github.com/pdrpinto/mazepath/internal/ctxlog"
)

// Config holds application configuration.
type Config struct {
	Maze   MazeConfig
	Search SearchConfig
	View   ViewConfig
	Log    LogConfig
}

// MazeConfig describes the grid to build or load.
type MazeConfig struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
	File    string
}

// SearchConfig holds the endpoints and engine switches. A negative goal
// coordinate means the last column or row.
type SearchConfig struct {
	StartX  int `mapstructure:"start_x"`
	StartY  int `mapstructure:"start_y"`
	GoalX   int `mapstructure:"goal_x"`
	GoalY   int `mapstructure:"goal_y"`
	Trace   bool
	Workers int
}

// ViewConfig holds viewer settings. A zero CellSize fits the maze to the window.
type ViewConfig struct {
	WindowTitle  string `mapstructure:"window_title"`
	WindowWidth  int    `mapstructure:"window_width"`
	WindowHeight int    `mapstructure:"window_height"`
	CellSize     int    `mapstructure:"cell_size"`
	TicksPerCell int    `mapstructure:"ticks_per_cell"`
	Overlay      bool
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("maze.width", 21)
	v.SetDefault("maze.height", 15)
	v.SetDefault("maze.density", 0.55)
	v.SetDefault("maze.seed", 0)
	v.SetDefault("maze.file", "")
	v.SetDefault("search.start_x", 0)
	v.SetDefault("search.start_y", 0)
	v.SetDefault("search.goal_x", -1)
	v.SetDefault("search.goal_y", -1)
	v.SetDefault("search.trace", true)
	v.SetDefault("search.workers", runtime.NumCPU())
	v.SetDefault("view.window_title", "Maze Generator")
	v.SetDefault("view.window_width", 800)
	v.SetDefault("view.window_height", 600)
	v.SetDefault("view.cell_size", 0)
	v.SetDefault("view.ticks_per_cell", 6)
	v.SetDefault("view.overlay", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"width":     "maze.width",
	"height":    "maze.height",
	"density":   "maze.density",
	"seed":      "maze.seed",
	"maze":      "maze.file",
	"start-x":   "search.start_x",
	"start-y":   "search.start_y",
	"goal-x":    "search.goal_x",
	"goal-y":    "search.goal_y",
	"trace":     "search.trace",
	"workers":   "search.workers",
	"overlay":   "view.overlay",
	"log-level": "log.level",
	"config":    "",
}

// RegisterFlags adds the shared flags to fs. Flags only override the other
// sources when set explicitly.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int("width", 0, "maze width in cells")
	fs.Int("height", 0, "maze height in cells")
	fs.Float64("density", 0, "probability that each interior wall is carved")
	fs.Int64("seed", 0, "random seed (0 = time based)")
	fs.String("maze", "", "load the maze from a text file instead of generating one")
	fs.Int("start-x", 0, "start column")
	fs.Int("start-y", 0, "start row")
	fs.Int("goal-x", 0, "goal column (-1 = last)")
	fs.Int("goal-y", 0, "goal row (-1 = last)")
	fs.Bool("trace", true, "record per-cell search state")
	fs.Int("workers", 0, "batch search workers")
	fs.Bool("overlay", false, "show f/g/h scores in the viewer")
	fs.String("log-level", "", "debug, info, warn or error")
	fs.String("config", "", "config file (default $MAZEPATH_CONFIG or ~/.config/mazepath/config.toml)")
}

// Load reads configuration. fs may be nil; when given, its flags must have
// been registered with RegisterFlags and parsed.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	cfgPath := os.Getenv("MAZEPATH_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mazepath"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MAZEPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if key == "" || f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings no component can run with.
func (c Config) Validate() error {
	var errs []error
	if c.Maze.File == "" && (c.Maze.Width < 1 || c.Maze.Height < 1) {
		errs = append(errs, fmt.Errorf("maze size %dx%d must be positive", c.Maze.Width, c.Maze.Height))
	}
	if c.Maze.Density < 0 || c.Maze.Density > 1 {
		errs = append(errs, fmt.Errorf("maze density %v outside [0,1]", c.Maze.Density))
	}
	if c.Search.Workers < 1 {
		errs = append(errs, fmt.Errorf("search workers %d must be positive", c.Search.Workers))
	}
	if c.View.WindowWidth < 1 || c.View.WindowHeight < 1 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.View.WindowWidth, c.View.WindowHeight))
	}
	if c.View.CellSize < 0 {
		errs = append(errs, fmt.Errorf("cell size %d must not be negative", c.View.CellSize))
	}
	if c.View.TicksPerCell < 1 {
		errs = append(errs, fmt.Errorf("ticks per cell %d must be positive", c.View.TicksPerCell))
	}
	if _, err := ctxlog.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Endpoints resolves the configured start and goal against a grid extent.
func (s SearchConfig) Endpoints(width, height int) (start, goal mazepath.Position) {
	start = mazepath.Position{X: s.StartX, Y: s.StartY}
	goal = mazepath.Position{X: s.GoalX, Y: s.GoalY}
	if goal.X < 0 {
		goal.X = width - 1
	}
	if goal.Y < 0 {
		goal.Y = height - 1
	}
	return start, goal
}

// Options translates the search settings into engine options.
func (s SearchConfig) Options() []mazepath.Option {
	opts := []mazepath.Option{mazepath.WithWorkers(s.Workers)}
	if s.Trace {
		opts = append(opts, mazepath.WithTrace())
	}
	return opts
}
