package mech2d

import (
	"math"
	"testing"

	tassert "github.com/stretchr/testify/assert"
)

func TestVertexIDsPerWorld(t *testing.T) {
	w := NewWorld()
	v1 := w.NewVertex(Vector{0, 0})
	v2 := w.NewVertex(Vector{1, 0})
	tassert.Equal(t, v1.ID()+1, v2.ID())

	// a fresh world restarts the counter
	w2 := NewWorld()
	tassert.Equal(t, v1.ID(), w2.NewVertex(Vector{}).ID())
}

func TestVertexEdgeRefsAppendOnly(t *testing.T) {
	w := NewWorld()
	v := w.NewVertex(Vector{1, 0})
	body := NewBody(1, 1)
	e1 := NewCircularEdge(body, Vector{}, 1, true)
	e2 := NewCircularEdge(body, Vector{}, 2, true)

	v.SetEdge1(e1)
	tassert.Panics(t, func() { v.SetEdge1(e2) })

	tassert.Equal(t, Edge(e1), v.Edge1())
	// edge2 falls back to edge1 at an open path endpoint
	tassert.Equal(t, Edge(e1), v.Edge2())

	v.SetEdge2(e2)
	tassert.Equal(t, Edge(e2), v.Edge2())
	tassert.Panics(t, func() { v.SetEdge2(e1) })
}

func TestVertexNoEdges(t *testing.T) {
	w := NewWorld()
	bare := w.NewVertex(Vector{})
	tassert.Panics(t, func() { bare.Edge1() })
	tassert.Panics(t, func() { bare.Edge2() })
	tassert.Panics(t, func() { bare.Curvature() })
}

func TestVertexCurvaturePrefersFlatterEdge(t *testing.T) {
	w := NewWorld()
	a := w.NewVertex(Vector{0, 0})
	b := w.NewVertex(Vector{1, 0})
	body := NewBody(1, 1)
	NewStraightEdge(body, a, b, true)

	// only the straight edge: infinite radius of curvature
	tassert.True(t, math.IsInf(a.Curvature(), 1))

	arc := NewCircularEdge(body, Vector{1, -2}, 2, true)
	b.SetEdge2(arc)
	tassert.Equal(t, 2.0, b.Curvature())

	// concave arc keeps its sign
	c := w.NewVertex(Vector{3, 0})
	c.SetEdge1(NewCircularEdge(body, Vector{3, 1}, 0.5, false))
	tassert.Equal(t, -0.5, c.Curvature())
}

func TestStraightEdgeNormalOrientation(t *testing.T) {
	w := NewWorld()
	body := NewBody(1, 1)

	up := NewStraightEdge(body, w.NewVertex(Vector{-1, 0}), w.NewVertex(Vector{1, 0}), true)
	assertVecNear(t, Vector{0, 1}, up.Normal(), standardTol)

	down := NewStraightEdge(body, w.NewVertex(Vector{-1, 1}), w.NewVertex(Vector{1, 1}), false)
	assertVecNear(t, Vector{0, -1}, down.Normal(), standardTol)

	// vertical edge: "up" means larger X
	right := NewStraightEdge(body, w.NewVertex(Vector{2, 0}), w.NewVertex(Vector{2, 1}), true)
	assertVecNear(t, Vector{1, 0}, right.Normal(), standardTol)
}

func TestStraightEdgeGeometry(t *testing.T) {
	w := NewWorld()
	body := NewBody(1, 1)
	e := NewStraightEdge(body, w.NewVertex(Vector{-2, 1}), w.NewVertex(Vector{2, 1}), true)

	tassert.Equal(t, 0.5, e.distanceToLine(Vector{0, 1.5}))
	tassert.Equal(t, -0.5, e.distanceToLine(Vector{0, 0.5}))
	assertVecNear(t, Vector{1, 1}, e.projectToLine(Vector{1, 3}), standardTol)
	tassert.True(t, e.withinExtent(Vector{0, 2}))
	tassert.True(t, e.withinExtent(Vector{2, 2}))
	tassert.False(t, e.withinExtent(Vector{2.1, 2}))

	body.SetPosition(Vector{0, 1})
	tassert.Equal(t, BB{-2, 2, 2, 2}, e.BoundsWorld())
	assertVecNear(t, Vector{0, 1}, e.WorldNormal(), standardTol)
}

func TestCircularEdge(t *testing.T) {
	body := NewBody(1, 1)
	e := NewCircularEdge(body, Vector{1, 0}, 0.5, true)

	tassert.Equal(t, 0.5, e.Curvature())
	tassert.False(t, e.IsConcave())
	body.SetPosition(Vector{0, 2})
	assertVecNear(t, Vector{1, 2}, e.WorldCenter(), standardTol)
	tassert.Equal(t, BB{0.5, 1.5, 1.5, 2.5}, e.BoundsWorld())
	tassert.True(t, e.WithinArc(Vector{1.5, 0}))

	concave := NewCircularEdge(body, Vector{}, 2, false)
	tassert.Equal(t, -2.0, concave.Curvature())
	tassert.True(t, concave.IsConcave())

	tassert.Panics(t, func() { NewCircularEdge(body, Vector{}, 0, true) })
}

func TestCircularArcWithinArc(t *testing.T) {
	body := NewBody(1, 1)
	upper := NewCircularArc(body, Vector{}, 1, 0, math.Pi, true)

	tassert.True(t, upper.WithinArc(Vector{0, 1}))
	tassert.True(t, upper.WithinArc(Vector{-1, 0}))
	tassert.False(t, upper.WithinArc(Vector{0, -1}))

	// range below -Pi still matches after normalization
	lower := NewCircularArc(body, Vector{}, 1, -math.Pi, 0, true)
	tassert.True(t, lower.WithinArc(Vector{0, -1}))
	tassert.False(t, lower.WithinArc(Vector{0, 1}))

	tassert.Panics(t, func() { NewCircularArc(body, Vector{}, 1, 1, 1, true) })
}
