package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvert(t *testing.T) {
	out, err := execute(t, "convert", "1, 0, 0", "--kind", "length", "--unit", "km", "--to", "m")
	require.NoError(t, err)
	require.Equal(t, "(1000, 0, 0) m\n", out)

	out, err = execute(t, "convert", "(1; 2; 0)", "--kind", "force", "--unit", "kN", "--to", "N")
	require.NoError(t, err)
	require.Equal(t, "(1000, 2000, 0) N\n", out)
}

func TestConvertErrors(t *testing.T) {
	_, err := execute(t, "convert", "1, 0, 0", "--kind", "mass", "--unit", "km", "--to", "m")
	require.Error(t, err)

	_, err = execute(t, "convert", "1, 0, 0", "--kind", "length", "--unit", "km", "--to", "N")
	require.ErrorIs(t, err, units.ErrUnknownUnit)

	_, err = execute(t, "convert", "1, 0", "--kind", "length", "--unit", "km", "--to", "m")

	var formatErr *gm.FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestDisplace(t *testing.T) {
	out, err := execute(t, "displace", "0, 0, 0", "3, 4, 0", "--unit", "m")
	require.NoError(t, err)
	require.Equal(t, "Displacement: (3, 4, 0) m\nDistance:     5 m\n", out)
}

func TestAngle(t *testing.T) {
	out, err := execute(t, "angle", "1, 1, 0", "10, 0, 0")
	require.NoError(t, err)
	require.Equal(t, "45.0000°\n", out)

	_, err = execute(t, "angle", "0, 0, 0", "10, 0, 0")
	require.ErrorIs(t, err, gm.ErrArgument)
}

func TestRotateZeroAxis(t *testing.T) {
	_, err := execute(t, "rotate", "1, 0, 0", "--axis", "0, 0, 0", "--degrees", "90", "--unit", "m")
	require.ErrorIs(t, err, gm.ErrArgument)
}

func TestScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")

	content := `
positions:
  - name: a
    at: "0, 0, 0"
  - name: b
    at: "4, 0, 0"
forces:
  - name: gravity
    vector: "0, 0, -10"
`

	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, "scene", path, "--unit", "m", "--force-unit", "N")
	require.NoError(t, err)

	require.Contains(t, out, "Net force: (0, 0, -10) N\n")
	require.Contains(t, out, "Magnitude: 10 N\n")
	require.Contains(t, out, "Centroid:  (2, 0, 0) m\n")
	require.Contains(t, out, "Locations: 2 distinct of 2\n")
	require.Contains(t, out, "a -> b: (4, 0, 0) m\n")
}

func TestSceneMissingFile(t *testing.T) {
	_, err := execute(t, "scene", filepath.Join(t.TempDir(), "missing.yaml"), "--unit", "m", "--force-unit", "N")
	require.ErrorIs(t, err, os.ErrNotExist)
}
