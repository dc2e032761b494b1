package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector3_Arithmetic(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)

	require.Equal(t, Vec3(5, 7, 9), a.Add(b))
	require.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	require.Equal(t, Vec3(-1, -2, -3), a.Neg())
	require.Equal(t, Vec3(2, 4, 6), a.Mul(2))
	require.Equal(t, 32.0, a.Dot(b))
	require.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	require.InDelta(t, 5.0, Vec3(3, 4, 0).Length(), 1e-12)
	require.Equal(t, 25.0, Vec3(3, 4, 0).LengthSqr())
}

func TestVector3_Div(t *testing.T) {
	res, err := Vec3(2, 4, 6).Div(2)
	require.NoError(t, err)
	require.Equal(t, Vec3(1, 2, 3), res)

	_, err = Vec3(2, 4, 6).Div(0)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestVector3_Normalize(t *testing.T) {
	u, err := Vec3(3, 4, 0).Normalize()
	require.NoError(t, err)
	require.InDelta(t, 0.6, u.X(), 1e-12)
	require.InDelta(t, 0.8, u.Y(), 1e-12)
	require.InDelta(t, 1.0, u.Vector().Length(), 1e-12)

	_, err = VecZero.Normalize()
	require.ErrorIs(t, err, ErrArgument)
}

func TestVector3_Rotate(t *testing.T) {
	t.Run("rotate 90° about z", func(t *testing.T) {
		r := Vec3(1, 0, 0).Rotate(ZAxis, DegToRad(90))
		require.True(t, r.ApproxEqual(Vec3(0, 1, 0), 1e-9), r.String())
	})

	t.Run("rotate -90° about z", func(t *testing.T) {
		r := Vec3(1, 0, 0).Rotate(ZAxis, DegToRad(-90))
		require.True(t, r.ApproxEqual(Vec3(0, -1, 0), 1e-9), r.String())
	})

	t.Run("rotate 180° about x", func(t *testing.T) {
		r := Vec3(0, 1, 1).Rotate(XAxis, DegToRad(180))
		require.True(t, r.ApproxEqual(Vec3(0, -1, -1), 1e-9), r.String())
	})

	t.Run("rotation keeps length", func(t *testing.T) {
		axis := MustUnitVector3(1, 2, 3)
		v := Vec3(4, -5, 6)
		require.InDelta(t, v.Length(), v.Rotate(axis, 1.234).Length(), 1e-9)
	})

	t.Run("zero axis", func(t *testing.T) {
		require.Panics(t, func() {
			Vec3(1, 0, 0).Rotate(UnitVector3{}, 1)
		})
	})
}

func TestVector3_AngleTo(t *testing.T) {
	angle, err := Vec3(1, 1, 0).AngleTo(Vec3(10, 0, 0))
	require.NoError(t, err)
	require.InDelta(t, 45.0, angle.Degrees(), 1e-9)

	angle, err = Vec3(1, 0, 0).AngleTo(Vec3(-1, 0, 0))
	require.NoError(t, err)
	require.InDelta(t, math.Pi, angle.Radians(), 1e-12)

	_, err = VecZero.AngleTo(Vec3(1, 0, 0))
	require.ErrorIs(t, err, ErrArgument)
}

func TestUnitVector3(t *testing.T) {
	u, err := NewUnitVector3(0, 0, 5)
	require.NoError(t, err)
	require.Equal(t, ZAxis, u)

	require.Equal(t, Vec3(0, 0, 1), XAxis.Cross(YAxis))
	require.Equal(t, 0.0, XAxis.Dot(YAxis))
	require.Equal(t, Vec3(-1, 0, 0), XAxis.Neg().Vector())
	require.True(t, XAxis.IsParallelTo(XAxis.Neg(), 1e-12))
	require.False(t, XAxis.IsParallelTo(YAxis, 1e-12))

	_, err = NewUnitVector3(0, 0, 0)
	require.ErrorIs(t, err, ErrArgument)

	_, err = NewUnitVector3(math.NaN(), 0, 0)
	require.ErrorIs(t, err, ErrArgument)

	require.Panics(t, func() { MustUnitVector3(0, 0, 0) })
}

func TestRad(t *testing.T) {
	require.InDelta(t, 90.0, DegToRad(90).Degrees(), 1e-12)
	require.InDelta(t, -math.Pi/2, DegToRad(270).Normalized().Radians(), 1e-12)
	require.InDelta(t, 2.0, DegToRad(1).DifferenceTo(DegToRad(359)).Degrees(), 1e-9)
	require.InDelta(t, 45.0, DegToRad(45).Angle().Degrees(), 1e-12)
	require.Equal(t, "90.0000000°", DegToRad(90).String())
}
