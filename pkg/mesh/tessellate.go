package mesh

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"honeycomb/pkg/geometry"
	"honeycomb/pkg/panel"
)

var ErrUnsupportedProfile = errors.New("unsupported profile")

func at(p geometry.Point, z float64) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: z}
}

// FromSolid tessellates s. Profiles must be either a convex ring with no holes
// or a ring with one hole of the same vertex count (hexagon cells, frames).
// Side walls shared by two touching profiles are interior to the union and are left out.
func FromSolid(s *panel.Solid, precision int, tol float64) (*Mesh, error) {
	if s.Height() <= 0 {
		return nil, errors.Errorf("%s: height must be positive, got %g", s.Name, s.Height())
	}
	m := New(precision)

	walls, _ := s.Walls()
	shared := geometry.SharedSegments(walls, tol)
	wall := 0

	for i, p := range s.Profiles {
		if len(p.Outer) < 3 {
			return nil, errors.Wrapf(ErrUnsupportedProfile, "%s profile %d has %d vertices", s.Name, i, len(p.Outer))
		}
		switch len(p.Holes) {
		case 0:
			m.capFan(p.Outer, s.ZMin, s.ZMax)
		case 1:
			if len(p.Holes[0]) != len(p.Outer) {
				return nil, errors.Wrapf(ErrUnsupportedProfile, "%s profile %d: hole has %d vertices, outer has %d",
					s.Name, i, len(p.Holes[0]), len(p.Outer))
			}
			m.capRing(p.Outer, p.Holes[0], s.ZMin, s.ZMax)
		default:
			return nil, errors.Wrapf(ErrUnsupportedProfile, "%s profile %d has %d holes", s.Name, i, len(p.Holes))
		}

		for _, e := range p.Outer.Edges() {
			if !shared[wall] {
				m.wall(e, s.ZMin, s.ZMax, false)
			}
			wall++
		}
		for _, h := range p.Holes {
			for _, e := range h.Edges() {
				if !shared[wall] {
					m.wall(e, s.ZMin, s.ZMax, true)
				}
				wall++
			}
		}
	}
	return m, nil
}

// capFan closes a convex polygon top and bottom.
func (m *Mesh) capFan(outer geometry.Polygon, z0, z1 float64) {
	for i := 1; i+1 < len(outer); i++ {
		a, b, c := outer[0], outer[i], outer[i+1]
		m.AddTriangle(at(a, z1), at(b, z1), at(c, z1))
		m.AddTriangle(at(c, z0), at(b, z0), at(a, z0))
	}
}

// capRing closes the band between outer and hole with one quad per edge.
func (m *Mesh) capRing(outer, hole geometry.Polygon, z0, z1 float64) {
	n := len(outer)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.AddQuad(at(outer[i], z1), at(outer[j], z1), at(hole[j], z1), at(hole[i], z1))
		m.AddQuad(at(hole[i], z0), at(hole[j], z0), at(outer[j], z0), at(outer[i], z0))
	}
}

// wall extrudes one boundary edge. Outer edges face away from the profile,
// hole edges face into the hole.
func (m *Mesh) wall(e geometry.LineSegment, z0, z1 float64, inner bool) {
	a, b := e.A, e.B
	if inner {
		a, b = b, a
	}
	m.AddQuad(at(a, z0), at(b, z0), at(b, z1), at(a, z1))
}

// FromDocument tessellates every object of doc into its own mesh, keyed by object name.
func FromDocument(doc *panel.Document, precision int, tol float64) (map[string]*Mesh, error) {
	meshes := make(map[string]*Mesh, len(doc.Objects))
	for _, o := range doc.Objects {
		m, err := FromSolid(o, precision, tol)
		if err != nil {
			return nil, err
		}
		meshes[o.Name] = m
	}
	return meshes, nil
}
