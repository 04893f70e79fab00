package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/dial"
	"github.com/iburimskiy/weightdial/internal/scene"
	"github.com/iburimskiy/weightdial/internal/snapshot"
	"github.com/iburimskiy/weightdial/internal/tui"
)

func snapshotCmd() *cobra.Command {
	var (
		out   string
		value float64
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the dial to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := controller(cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("value") {
				ctrl.SetValue(value)
			}

			r, err := snapshot.NewRenderer()
			if err != nil {
				return err
			}
			defer r.Close()

			if out == "-" {
				return r.Encode(cmd.OutOrStdout(), cfg.Layout(), ctrl.Snapshot())
			}
			if err := r.Save(out, cfg.Layout(), ctrl.Snapshot()); err != nil {
				return err
			}
			log.Info("snapshot written", "path", out, "value", ctrl.Value())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", out, dial.FormatValue(ctrl.Value()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "dial.png", "output PNG path, - for stdout")
	cmd.Flags().Float64Var(&value, "value", 0, "value to show (defaults to --initial)")
	return cmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Turn the dial in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := tui.New(cfg, log)
			if err != nil {
				return err
			}
			if err := tui.Run(m); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dial.FormatValue(m.Value()))
			return nil
		},
	}
}

func inspectCmd() *cobra.Command {
	var rotation float64
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the dial geometry for the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := cfg.Range()
			if err != nil {
				return err
			}
			theta := rng.RotationFor(cfg.InitialValue)
			if cmd.Flags().Changed("rotation") {
				theta = rotation
			}
			if cfg.Clamp {
				theta = rng.Clamp(theta)
			}
			lo, hi := rng.Bounds()
			l := cfg.Layout()
			counts := scene.Count(scene.Frame{
				Dial:   dial.Snapshot{Range: rng, Center: l.Center, Rotation: theta},
				Layout: l,
			})

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "range:            %d..%d\n", rng.Min, rng.Max)
			fmt.Fprintf(w, "ruler lines:      %d\n", rng.RulerLines())
			fmt.Fprintf(w, "degrees per unit: %g\n", rng.DegreesPerUnit())
			fmt.Fprintf(w, "rotation bounds:  %g..%g\n", lo, hi)
			fmt.Fprintf(w, "clamp:            %t\n", cfg.Clamp)
			fmt.Fprintf(w, "rotation:         %g\n", theta)
			fmt.Fprintf(w, "value:            %s\n", dial.FormatValue(rng.ValueAt(theta)))
			for _, layer := range scene.Layers {
				fmt.Fprintf(w, "layer %-10s %d\n", layer.Name+":", counts[layer.Name])
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "rotation in degrees (defaults to the initial value's)")
	return cmd
}

// controller returns a dial controller seated at the configured initial value.
func controller(c config.Config) (*dial.Controller, error) {
	rng, err := c.Range()
	if err != nil {
		return nil, err
	}
	var opts []dial.Option
	if c.Clamp {
		opts = append(opts, dial.WithClamp())
	}
	opts = append(opts, dial.WithLogger(log))
	return dial.New(rng, c.Layout().Center, c.InitialValue, opts...), nil
}
