package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/spatial/internal/scene"
	"github.com/oliverbestmann/spatial/units"
	"github.com/spf13/cobra"
)

var (
	sceneUnit      string
	sceneForceUnit string
)

var sceneCmd = &cobra.Command{
	Use:   "scene <file.yaml>",
	Short: "Summarize the positions and forces of a scene file",
	Args:  cobra.ExactArgs(1),
	RunE:  runScene,
}

func init() {
	rootCmd.AddCommand(sceneCmd)

	sceneCmd.Flags().StringVar(&sceneUnit, "unit", "m", "Length unit of the output")
	sceneCmd.Flags().StringVar(&sceneForceUnit, "force-unit", "N", "Force unit of the output")
}

func runScene(cmd *cobra.Command, args []string) error {
	lengthUnit, err := units.ParseUnit[units.LengthKind](sceneUnit)
	if err != nil {
		return err
	}

	forceUnit, err := units.ParseUnit[units.ForceKind](sceneForceUnit)
	if err != nil {
		return err
	}

	fp, err := os.Open(args[0])
	if err != nil {
		return err
	}

	defer func() { _ = fp.Close() }()

	sc, err := scene.Read(fp)
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	slog.Debug("Scene loaded",
		slog.String("path", args[0]),
		slog.Int("positions", len(sc.Positions)),
		slog.Int("forces", len(sc.Forces)),
	)

	out := cmd.OutOrStdout()

	net := sc.NetForce()
	_, _ = fmt.Fprintf(out, "Net force: %s %s\n", net.Freeze(forceUnit), forceUnit)
	_, _ = fmt.Fprintf(out, "Magnitude: %v %s\n", net.Magnitude().As(forceUnit), forceUnit)

	if len(sc.Positions) == 0 {
		return nil
	}

	centroid, err := sc.Centroid()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Centroid:  %s %s\n", centroid.Freeze(lengthUnit), lengthUnit)
	_, _ = fmt.Fprintf(out, "Locations: %d distinct of %d\n", sc.DistinctLocations(), len(sc.Positions))

	for idx, from := range sc.Positions {
		for _, to := range sc.Positions[idx+1:] {
			d := from.Position.DisplacementTo(to.Position)
			_, _ = fmt.Fprintf(out, "%s -> %s: %s %s\n", from.Name, to.Name, d.Freeze(lengthUnit), lengthUnit)
		}
	}

	return nil
}
