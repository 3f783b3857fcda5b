// Package mesh tessellates extruded profiles into closed triangle meshes.
package mesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed triangle mesh with welded vertices.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int

	precision int
	index     map[string]int
}

// New returns an empty mesh that welds vertices rounded to precision decimal places.
func New(precision int) *Mesh {
	return &Mesh{
		precision: precision,
		index:     make(map[string]int),
	}
}

// use precision to collapse nearby points in case of rounding errors
func (m *Mesh) key(v r3.Vec) string {
	fac := math.Pow10(m.precision)
	return fmt.Sprintf("%d,%d,%d", int64(math.Round(v.X*fac)), int64(math.Round(v.Y*fac)), int64(math.Round(v.Z*fac)))
}

func (m *Mesh) vertex(v r3.Vec) int {
	k := m.key(v)
	if i, ok := m.index[k]; ok {
		return i
	}
	m.Vertices = append(m.Vertices, v)
	m.index[k] = len(m.Vertices) - 1
	return len(m.Vertices) - 1
}

// AddTriangle adds a counter-clockwise (outward-facing) triangle. Triangles that
// collapse after welding are dropped.
func (m *Mesh) AddTriangle(a, b, c r3.Vec) {
	ia, ib, ic := m.vertex(a), m.vertex(b), m.vertex(c)
	if ia == ib || ib == ic || ia == ic {
		return
	}
	m.Faces = append(m.Faces, [3]int{ia, ib, ic})
}

// AddQuad adds a planar quad a-b-c-d as two triangles.
func (m *Mesh) AddQuad(a, b, c, d r3.Vec) {
	m.AddTriangle(a, b, c)
	m.AddTriangle(c, d, a)
}

// unitNormal follows the right-hand rule, or is the zero vector for a degenerate face.
func unitNormal(t r3.Triangle) r3.Vec {
	n := t.Normal()
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// Triangles resolves every face to its vertex positions.
func (m *Mesh) Triangles() []r3.Triangle {
	tris := make([]r3.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = r3.Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
	}
	return tris
}

// Append adds every face of other to m, welding shared vertices.
func (m *Mesh) Append(other *Mesh) {
	for _, t := range other.Triangles() {
		m.AddTriangle(t[0], t[1], t[2])
	}
}

type edge struct{ a, b int }

func undirected(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

func (m *Mesh) edgeUses() map[edge]int {
	uses := make(map[edge]int)
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			uses[undirected(f[i], f[(i+1)%3])]++
		}
	}
	return uses
}

// OpenEdges counts boundary edges, those used by an odd number of faces. A
// closed mesh has none.
func (m *Mesh) OpenEdges() int {
	open := 0
	for _, n := range m.edgeUses() {
		if n%2 != 0 {
			open++
		}
	}
	return open
}

// NonManifoldEdges counts edges used by four or more faces. Cells stacked tip
// to tip in a single column meet along one such edge per contact.
func (m *Mesh) NonManifoldEdges() int {
	count := 0
	for _, n := range m.edgeUses() {
		if n > 2 && n%2 == 0 {
			count++
		}
	}
	return count
}

// Volume is the signed volume enclosed by the mesh; positive when faces point outward.
func (m *Mesh) Volume() float64 {
	v := 0.0
	for _, t := range m.Triangles() {
		v += r3.Dot(t[0], r3.Cross(t[1], t[2]))
	}
	return v / 6
}

// Bounds returns the minimum and maximum corners of the mesh.
func (m *Mesh) Bounds() (min, max r3.Vec) {
	if len(m.Vertices) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = r3.Vec{X: math.Min(min.X, v.X), Y: math.Min(min.Y, v.Y), Z: math.Min(min.Z, v.Z)}
		max = r3.Vec{X: math.Max(max.X, v.X), Y: math.Max(max.Y, v.Y), Z: math.Max(max.Z, v.Z)}
	}
	return min, max
}
