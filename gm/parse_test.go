package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTriple(t *testing.T) {
	cases := []struct {
		input   string
		x, y, z float64
	}{
		{"1, 2, 3", 1, 2, 3},
		{"1,2,3", 1, 2, 3},
		{"(1, 2, 3)", 1, 2, 3},
		{" ( -1.5 , +2 , .25 ) ", -1.5, 2, 0.25},
		{"1.2E+3, 1.2e-3, 1.2e3", 1.2e3, 1.2e-3, 1.2e3},
		{"1; 2; 3", 1, 2, 3},
		{"1,5; -2,25; 3.5", 1.5, -2.25, 3.5},
		{"(1,5;2;3)", 1.5, 2, 3},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			x, y, z, err := ParseTriple(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.x, x)
			require.Equal(t, tc.y, y)
			require.Equal(t, tc.z, z)
		})
	}
}

func TestParseTriple_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"1, 2",
		"1, 2, 3, 4",
		"a, b, c",
		"1,5, 2, 3",
		"1; 2, 3",
		"(1, 2, 3",
		"1, 2, 3)",
		"1., 2, 3",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, _, _, err := ParseTriple(input)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			require.Equal(t, input, formatErr.Input)
		})
	}
}

func TestParseUnitVector3(t *testing.T) {
	u, err := ParseUnitVector3("0, 0, 2")
	require.NoError(t, err)
	require.Equal(t, ZAxis, u)

	_, err = ParseUnitVector3("0, 0, 0")
	require.ErrorIs(t, err, ErrArgument)
}

func TestParseRay3(t *testing.T) {
	ray, err := ParseRay3("p:{1, 2, 3} v:{0, 0, 1}")
	require.NoError(t, err)
	require.Equal(t, Pt3(1, 2, 3), ray.Origin)
	require.Equal(t, ZAxis, ray.Direction)

	_, err = ParseRay3("p:{1, 2} v:{0, 0, 1}")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}
