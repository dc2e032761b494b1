package main

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/spatial"
	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
	"github.com/spf13/cobra"
)

var displaceUnit string

var displaceCmd = &cobra.Command{
	Use:     "displace <from> <to>",
	Short:   "Print the displacement and distance between two positions",
	Example: `  spatial displace "1, -1, 10" "4, 3, 2" --unit ft`,
	Args:    cobra.ExactArgs(2),
	RunE:    runDisplace,
}

func init() {
	rootCmd.AddCommand(displaceCmd)

	displaceCmd.Flags().StringVar(&displaceUnit, "unit", "m", "Length unit of the positions and of the output")
}

func runDisplace(cmd *cobra.Command, args []string) error {
	unit, err := units.ParseUnit[units.LengthKind](displaceUnit)
	if err != nil {
		return err
	}

	from, err := parsePosition(args[0], unit)
	if err != nil {
		return err
	}

	to, err := parsePosition(args[1], unit)
	if err != nil {
		return err
	}

	d := from.DisplacementTo(to)

	slog.Debug("Displacement between positions",
		slog.Any("from", from),
		slog.Any("to", to),
		slog.Any("displacement", d),
	)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Displacement: %s %s\n", d.Freeze(unit), unit)
	_, _ = fmt.Fprintf(out, "Distance:     %v %s\n", from.DistanceTo(to).As(unit), unit)

	return nil
}

func parsePosition(text string, unit units.LengthUnit) (spatial.Position, error) {
	p, err := gm.ParsePoint3(text)
	if err != nil {
		return spatial.Position{}, err
	}

	return spatial.PositionFromPoint(p, unit), nil
}
