package spatial

import (
	"testing"

	"github.com/oliverbestmann/spatial/gm"
	"github.com/oliverbestmann/spatial/units"
	"github.com/stretchr/testify/require"
)

func TestForceVector_Construction(t *testing.T) {
	f := NewForceVector(units.Newtons(1), units.Newtons(2), units.Newtons(2))
	require.Equal(t, units.Newtons(3), f.Magnitude())

	f = ForceVectorFrom(1, 0, 0, units.Kilonewton)
	require.Equal(t, ForceVectorFromNewtons(1000, 0, 0), f)

	f = ForceVectorFromVector(gm.Vec3(0, 0, -1), units.KilogramForce)
	require.InDelta(t, -9.80665, f.Z().As(units.Newton), 1e-12)

	f = ForceVectorAlong(gm.YAxis, units.PoundsForce(2))
	require.InDelta(t, 2, f.Y().As(units.PoundForce), 1e-12)
	require.InDelta(t, 8.8964, f.Magnitude().As(units.Newton), 1e-4)
}

func TestForceVector_AddSub(t *testing.T) {
	a := ForceVectorFromNewtons(2, 5, 10)
	b := ForceVectorFromNewtons(3, 7, 8)

	require.Equal(t, ForceVectorFromNewtons(5, 12, 18), a.Add(b))
	require.Equal(t, ForceVectorFromNewtons(1, 2, -2), b.Sub(a))
}

func TestForceVector_Equality(t *testing.T) {
	var zero ForceVector
	other := ForceVectorFromNewtons(1, 0, 0)

	require.True(t, zero.Equal(ForceVector{}))
	require.False(t, zero.Equal(other))
	require.Equal(t, zero.Hash(), ForceVector{}.Hash())
	require.NotEqual(t, zero.Hash(), other.Hash())
}

func TestForceVector_AngleTo(t *testing.T) {
	angle, err := ForceVectorFromNewtons(1, 1, 0).AngleTo(ForceVectorFromNewtons(10, 0, 0))
	require.NoError(t, err)
	require.InDelta(t, 45.0, angle.Degrees(), withinOneHundredth)

	angle, err = ForceVectorFromNewtons(0, 1, 1).AngleToDirection(gm.ZAxis)
	require.NoError(t, err)
	require.InDelta(t, 45.0, angle.Degrees(), withinOneHundredth)
}

func TestForceVector_Rotate(t *testing.T) {
	f := ForceVectorAlong(gm.XAxis, units.PoundsForce(1))

	res := f.Rotate(gm.ZAxis, gm.DegToRad(90))
	require.InDelta(t, 0, res.X().As(units.PoundForce), withinOneTenth)
	require.InDelta(t, 1, res.Y().As(units.PoundForce), withinOneTenth)
	require.InDelta(t, 0, res.Z().As(units.PoundForce), withinOneTenth)

	res = res.Rotate(gm.XAxis, gm.DegToRad(90))
	require.InDelta(t, 0, res.X().As(units.PoundForce), withinOneTenth)
	require.InDelta(t, 0, res.Y().As(units.PoundForce), withinOneTenth)
	require.InDelta(t, 1, res.Z().As(units.PoundForce), withinOneTenth)

	res = res.Rotate(gm.YAxis, gm.DegToRad(90))
	require.InDelta(t, 1, res.X().As(units.PoundForce), withinOneTenth)
	require.InDelta(t, 0, res.Y().As(units.PoundForce), withinOneTenth)
	require.InDelta(t, 0, res.Z().As(units.PoundForce), withinOneTenth)
}

func TestForceVector_Div(t *testing.T) {
	res, err := ForceVectorFromNewtons(2, 4, 6).Div(2)
	require.NoError(t, err)
	require.Equal(t, ForceVectorFromNewtons(1, 2, 3), res)

	_, err = ForceVectorFromNewtons(2, 4, 6).Div(0)
	require.ErrorIs(t, err, gm.ErrDivisionByZero)
}

func TestNetForce(t *testing.T) {
	net := NetForce(
		ForceVectorFromNewtons(1, 0, 0),
		ForceVectorFromNewtons(0, 2, 0),
		ForceVectorFromNewtons(-1, 0, 3),
	)

	require.Equal(t, ForceVectorFromNewtons(0, 2, 3), net)
	require.True(t, NetForce().IsZero())
}

func TestForceVector_String(t *testing.T) {
	require.Equal(t, "(1, 2, 3) N", ForceVectorFromNewtons(1, 2, 3).String())
}
