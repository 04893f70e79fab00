package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/game"
	"github.com/iburimskiy/weightdial/internal/sound"
)

var (
	configPath string
	logLevel   string
	mute       bool

	// flagCfg receives flag values; only flags the user set are copied over
	// the file configuration.
	flagCfg = config.Default()

	cfg config.Config
	log *slog.Logger
)

// overrides copies a flag's value from flagCfg into the effective config.
var overrides = map[string]func(dst *config.Config){
	"min":        func(dst *config.Config) { dst.MinValue = flagCfg.MinValue },
	"max":        func(dst *config.Config) { dst.MaxValue = flagCfg.MaxValue },
	"initial":    func(dst *config.Config) { dst.InitialValue = flagCfg.InitialValue },
	"radius":     func(dst *config.Config) { dst.Radius = flagCfg.Radius },
	"clamp":      func(dst *config.Config) { dst.Clamp = flagCfg.Clamp },
	"width":      func(dst *config.Config) { dst.Window.Width = flagCfg.Window.Width },
	"height":     func(dst *config.Config) { dst.Window.Height = flagCfg.Window.Height },
	"fill":       func(dst *config.Config) { dst.Colors.Fill = flagCfg.Colors.Fill },
	"background": func(dst *config.Config) { dst.Colors.Background = flagCfg.Colors.Background },
	"line":       func(dst *config.Config) { dst.Colors.Line = flagCfg.Colors.Line },
}

// Execute runs the weightdial command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	flagCfg = config.Default()
	root := &cobra.Command{
		Use:           "weightdial",
		Short:         "Pick a weight by spinning a ruler dial",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if log, err = newLogger(logLevel); err != nil {
				return err
			}
			if cfg, err = resolveConfig(cmd); err != nil && cmd == cmd.Root() {
				// No terminal may be attached in window mode.
				game.ShowError(err)
			}
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := game.New(cfg, game.WithLogger(log), game.WithSound(newPlayer()))
			if err != nil {
				game.ShowError(err)
				return err
			}
			return g.Run()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "TOML configuration file")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.IntVar(&flagCfg.MinValue, "min", flagCfg.MinValue, "minimum value")
	pf.IntVar(&flagCfg.MaxValue, "max", flagCfg.MaxValue, "maximum value")
	pf.Float64Var(&flagCfg.InitialValue, "initial", flagCfg.InitialValue, "initial value")
	pf.Float64Var(&flagCfg.Radius, "radius", flagCfg.Radius, "dial radius in pixels")
	pf.BoolVar(&flagCfg.Clamp, "clamp", flagCfg.Clamp, "keep the value between min and max")
	pf.IntVar(&flagCfg.Window.Width, "width", flagCfg.Window.Width, "window width in pixels")
	pf.IntVar(&flagCfg.Window.Height, "height", flagCfg.Window.Height, "window height in pixels")
	pf.Var(&flagCfg.Colors.Fill, "fill", "dial face color (#rrggbb)")
	pf.Var(&flagCfg.Colors.Background, "background", "background color (#rrggbb)")
	pf.Var(&flagCfg.Colors.Line, "line", "tick color (#rrggbb)")
	root.Flags().BoolVar(&mute, "mute", false, "disable the tick sound")

	root.AddCommand(snapshotCmd(), tuiCmd(), inspectCmd())
	return root
}

// resolveConfig layers defaults, the config file and explicit flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	c := config.Default()
	if configPath != "" {
		var err error
		if c, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
		log.Debug("config loaded", "path", configPath)
	}
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply(&c)
		}
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}
	return c, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func newPlayer() *sound.Player {
	if mute {
		return nil
	}
	return sound.NewPlayer(log)
}
