package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoint3_Arithmetic(t *testing.T) {
	p := Pt3(1, 1, 1)
	q := Pt3(4, 3, 2)

	require.Equal(t, Vec3(3, 2, 1), q.Sub(p))
	require.Equal(t, Vec3(3, 2, 1), p.VectorTo(q))
	require.Equal(t, q, p.Add(Vec3(3, 2, 1)))
	require.Equal(t, p, q.SubVector(Vec3(3, 2, 1)))
	require.InDelta(t, 3.7416, p.DistanceTo(q), 1e-4)
}

func TestMidPoint(t *testing.T) {
	require.Equal(t, Pt3(1, 2, 3), MidPoint(Pt3(0, 0, 0), Pt3(2, 4, 6)))
}

func TestCentroid(t *testing.T) {
	c, err := Centroid(Pt3(0, 0, 0), Pt3(3, 0, 0), Pt3(0, 3, 3))
	require.NoError(t, err)
	require.True(t, c.ApproxEqual(Pt3(1, 1, 1), 1e-12))

	_, err = Centroid()
	require.ErrorIs(t, err, ErrArgument)
}

func TestPoint3_Rotate(t *testing.T) {
	p := Pt3(1, 0, 0).Rotate(ZAxis, DegToRad(90))
	require.True(t, p.ApproxEqual(Pt3(0, 1, 0), 1e-9))
}

func TestPoint3_ProjectAndMirror(t *testing.T) {
	plane := NewPlane(ZAxis, Pt3(0, 0, 2))

	require.Equal(t, Pt3(1, 2, 2), Pt3(1, 2, 5).ProjectOn(plane))
	require.Equal(t, Pt3(1, 2, -1), Pt3(1, 2, 5).MirrorAbout(plane))
}
