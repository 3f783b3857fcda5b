package panel

import (
	"github.com/pkg/errors"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/geometry"
)

// BuildFrame returns a rectangular ring whose inner boundary is exactly inner
// and whose outer boundary is inner offset outward by thickness on every side.
func BuildFrame(inner geometry.Rectangle, thickness, zMin, zMax float64) (*Solid, error) {
	if !cfg.Positive(thickness) {
		return nil, errors.Wrapf(cfg.ErrInvalidParams, "frame thickness must be positive, got %g", thickness)
	}
	if inner.Empty() || !cfg.Positive(inner.Width()) || !cfg.Positive(inner.Height()) ||
		!cfg.Finite(inner.Min.X) || !cfg.Finite(inner.Min.Y) {
		return nil, errors.Wrapf(cfg.ErrInvalidParams, "frame needs a non-empty inner boundary, got %v", inner)
	}
	if !cfg.Finite(zMin) || !cfg.Positive(zMax-zMin) {
		return nil, errors.Wrapf(cfg.ErrInvalidParams, "frame height must be positive, got %g..%g", zMin, zMax)
	}
	return &Solid{
		Name: FrameName,
		Profiles: []Profile{{
			Outer: inner.Expand(thickness).Polygon(),
			Holes: []geometry.Polygon{inner.Polygon()},
		}},
		ZMin: zMin,
		ZMax: zMax,
	}, nil
}

// FrameInner returns the cavity rectangle of a frame built by BuildFrame.
func FrameInner(frame *Solid) geometry.Rectangle {
	if len(frame.Profiles) == 0 || len(frame.Profiles[0].Holes) == 0 {
		return geometry.EmptyRectangle()
	}
	return frame.Profiles[0].Holes[0].Bounds()
}
