package main

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/spatial"
	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
	"github.com/spf13/cobra"
)

var (
	convertKind string
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert <vector>",
	Short: "Convert a vector into another unit",
	Example: `  spatial convert "10, 30.1, -85" --unit km --to mi
  spatial convert "1; 0; 0" --kind force --unit lbf --to N`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertKind, "kind", "length", "Kind of the vector, length or force")
	convertCmd.Flags().StringVar(&convertFrom, "unit", "", "Unit of the input, defaults to the base unit")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Unit of the output")

	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	var result gm.Vector3
	var err error

	switch convertKind {
	case "length":
		result, err = convertVector[units.LengthKind](args[0], convertFrom, convertTo)
	case "force":
		result, err = convertVector[units.ForceKind](args[0], convertFrom, convertTo)
	default:
		return fmt.Errorf("unknown kind %q, use length or force", convertKind)
	}

	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", result, convertTo)
	return nil
}

func convertVector[K units.Kind](text, from, to string) (gm.Vector3, error) {
	v, fromUnit, err := parseVec[K](text, from)
	if err != nil {
		return gm.Vector3{}, err
	}

	toUnit, err := units.ParseUnit[K](to)
	if err != nil {
		return gm.Vector3{}, err
	}

	slog.Debug("Convert vector",
		slog.Any("vector", v),
		slog.String("from", fromUnit.Symbol()),
		slog.String("to", toUnit.Symbol()),
	)

	return v.Freeze(toUnit), nil
}

// parseVec parses a vector measured in the given unit. An empty unit
// selects the base unit of K.
func parseVec[K units.Kind](text, unit string) (spatial.Vec[K], units.Unit[K], error) {
	u, err := parseUnitOrBase[K](unit)
	if err != nil {
		return spatial.Vec[K]{}, u, err
	}

	v, err := gm.ParseVector3(text)
	if err != nil {
		return spatial.Vec[K]{}, u, err
	}

	return spatial.VecFromVector(v, u), u, nil
}

func parseUnitOrBase[K units.Kind](unit string) (units.Unit[K], error) {
	if unit == "" {
		return units.BaseUnit[K](), nil
	}

	return units.ParseUnit[K](unit)
}
