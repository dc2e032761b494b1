package main

import (
	"fmt"

	"github.com/oliverbestmann/spatial/units"
	"github.com/spf13/cobra"
)

var angleCmd = &cobra.Command{
	Use:     "angle <a> <b>",
	Short:   "Print the angle between two displacements in degrees",
	Example: `  spatial angle "1, 1, 0" "10, 0, 0"`,
	Args:    cobra.ExactArgs(2),
	RunE:    runAngle,
}

func init() {
	rootCmd.AddCommand(angleCmd)
}

func runAngle(cmd *cobra.Command, args []string) error {
	a, _, err := parseVec[units.LengthKind](args[0], "")
	if err != nil {
		return err
	}

	b, _, err := parseVec[units.LengthKind](args[1], "")
	if err != nil {
		return err
	}

	angle, err := a.AngleTo(b)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%.4f°\n", angle.Degrees())
	return nil
}
