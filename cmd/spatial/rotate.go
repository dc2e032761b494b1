package main

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
	"github.com/spf13/cobra"
)

var (
	rotateAxis    string
	rotateDegrees float64
	rotateUnit    string
)

var rotateCmd = &cobra.Command{
	Use:     "rotate <vector>",
	Short:   "Rotate a displacement about an axis",
	Example: `  spatial rotate "1, 0, 0" --axis "0, 0, 1" --degrees 90`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)

	rotateCmd.Flags().StringVar(&rotateAxis, "axis", "0, 0, 1", "Rotation axis")
	rotateCmd.Flags().Float64Var(&rotateDegrees, "degrees", 0, "Rotation angle in degrees, using the right hand rule")
	rotateCmd.Flags().StringVar(&rotateUnit, "unit", "m", "Length unit of the vector and of the output")
}

func runRotate(cmd *cobra.Command, args []string) error {
	v, unit, err := parseVec[units.LengthKind](args[0], rotateUnit)
	if err != nil {
		return err
	}

	axis, err := gm.ParseUnitVector3(rotateAxis)
	if err != nil {
		return fmt.Errorf("axis: %w", err)
	}

	rotated := v.Rotate(axis, gm.DegToRad(rotateDegrees))

	slog.Debug("Rotate displacement",
		slog.Any("vector", v),
		slog.String("axis", axis.String()),
		slog.Float64("degrees", rotateDegrees),
	)

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", rotated.Freeze(unit), unit)
	return nil
}
