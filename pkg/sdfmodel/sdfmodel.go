// Package sdfmodel builds signed distance field models of panel solids and
// renders them to STL with the octree marching-cubes renderer.
package sdfmodel

import (
	"github.com/pkg/errors"
	"github.com/soypat/sdf"
	"github.com/soypat/sdf/form2"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"honeycomb/pkg/geometry"
	"honeycomb/pkg/panel"
)

func polygon(poly geometry.Polygon) (sdf.SDF2, error) {
	vertices := make([]r2.Vec, len(poly))
	for i, p := range poly {
		vertices[i] = r2.Vec{X: p.X, Y: p.Y}
	}
	return form2.Polygon(vertices)
}

// Profile2D returns the outer ring of pr minus each of its holes.
func Profile2D(pr panel.Profile) (sdf.SDF2, error) {
	s, err := polygon(pr.Outer)
	if err != nil {
		return nil, errors.Wrap(err, "outer ring")
	}
	for i, h := range pr.Holes {
		hole, err := polygon(h)
		if err != nil {
			return nil, errors.Wrapf(err, "hole %d", i)
		}
		s = sdf.Difference2D(s, hole)
	}
	return s, nil
}

// Solid3D unions every profile of s and extrudes the result between ZMin and ZMax.
func Solid3D(s *panel.Solid) (sdf.SDF3, error) {
	if len(s.Profiles) == 0 {
		return nil, errors.Errorf("%s has no profiles", s.Name)
	}
	if s.Height() <= 0 {
		return nil, errors.Errorf("%s: height must be positive, got %g", s.Name, s.Height())
	}
	profiles := make([]sdf.SDF2, 0, len(s.Profiles))
	for i, pr := range s.Profiles {
		p2, err := Profile2D(pr)
		if err != nil {
			return nil, errors.Wrapf(err, "%s profile %d", s.Name, i)
		}
		profiles = append(profiles, p2)
	}
	// Union2D needs at least two operands.
	plan := profiles[0]
	if len(profiles) > 1 {
		plan = sdf.Union2D(profiles...)
	}

	// Extrude3D is symmetric about z=0.
	model := sdf.Extrude3D(plan, s.Height())
	model = sdf.Transform3D(model, sdf.Translate3d(r3.Vec{Z: (s.ZMin + s.ZMax) / 2}))
	return model, nil
}

// SaveSTL renders s to an STL file. meshCells is the octree resolution along the longest axis.
func SaveSTL(path string, s *panel.Solid, meshCells int) error {
	if meshCells <= 0 {
		return errors.Errorf("mesh cells must be positive, got %d", meshCells)
	}
	model, err := Solid3D(s)
	if err != nil {
		return err
	}
	if err := render.CreateSTL(path, render.NewOctreeRenderer(model, meshCells)); err != nil {
		return errors.Wrapf(err, "error rendering %s", path)
	}
	return nil
}
