package panel

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/hexgrid"
)

var approx = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 0.00001
})

func scenario() cfg.Params {
	return cfg.Params{Columns: 3, Rows: 2, CellSize: 10, WallThickness: 2, PanelThickness: 2.5}
}

func TestGenerateScenario(t *testing.T) {
	var buf bytes.Buffer
	doc, err := Generate(scenario(), log.New(&buf, "", 0))
	require.NoError(t, err)

	assert.Len(t, doc.Cells, 6)
	assert.Equal(t, DocumentName, doc.Name)
	require.NotNil(t, doc.Honeycomb())
	require.NotNil(t, doc.Frame())
	assert.Len(t, doc.Honeycomb().Profiles, 6)

	hb := doc.Honeycomb().Bounds()
	inner := FrameInner(doc.Frame())
	if diff := cmp.Diff(hb, inner, approx); diff != "" {
		t.Errorf("frame inner boundary should equal the honeycomb bounds: %s", diff)
	}

	outer := doc.Frame().Bounds()
	want := geometry.Vector2{X: hb.Width() + 4, Y: hb.Height() + 4}
	if diff := cmp.Diff(want, outer.Size(), approx); diff != "" {
		t.Errorf("frame outer envelope should be honeycomb + 2*wall on each axis: %s", diff)
	}
	if diff := cmp.Diff(hb.Expand(2), outer, approx); diff != "" {
		t.Errorf("frame outer boundary should be offset uniformly: %s", diff)
	}

	assert.Equal(t, doc.Honeycomb().ZMin, doc.Frame().ZMin)
	assert.Equal(t, doc.Honeycomb().ZMax, doc.Frame().ZMax)
	assert.Contains(t, buf.String(), "Generating honeycomb: 2 rows, 3 columns")
	assert.Contains(t, buf.String(), "Honeycomb bounds")
}

func TestGenerateRejectsBadWallBeforeBuilding(t *testing.T) {
	for _, wall := range []float64{0, -2} {
		p := scenario()
		p.WallThickness = wall
		doc, err := Generate(p, nil)
		assert.Nil(t, doc)
		assert.True(t, errors.Is(err, cfg.ErrInvalidParams), "wall %g: got %v", wall, err)
	}
}

func TestBuildFrame(t *testing.T) {
	inner := geometry.Rectangle{Min: geometry.Point{X: 1, Y: 2}, Max: geometry.Point{X: 11, Y: 7}}
	frame, err := BuildFrame(inner, 1.5, 0, 3)
	require.NoError(t, err)
	if diff := cmp.Diff(inner, FrameInner(frame)); diff != "" {
		t.Errorf("inner boundary incorrect: %s", diff)
	}
	if diff := cmp.Diff(inner.Expand(1.5), frame.Bounds()); diff != "" {
		t.Errorf("outer boundary incorrect: %s", diff)
	}
	// (13*8 - 10*5) * 3
	assert.InDelta(t, 162.0, frame.Volume(), 1e-9)

	for _, thickness := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := BuildFrame(inner, thickness, 0, 3)
		assert.True(t, errors.Is(err, cfg.ErrInvalidParams), "thickness %g: got %v", thickness, err)
	}
	_, err = BuildFrame(geometry.EmptyRectangle(), 1, 0, 3)
	assert.Error(t, err)

	nan := geometry.Rectangle{Min: geometry.Point{X: math.NaN(), Y: 2}, Max: geometry.Point{X: 11, Y: 7}}
	_, err = BuildFrame(nan, 1, 0, 3)
	assert.True(t, errors.Is(err, cfg.ErrInvalidParams), "got %v", err)
	for _, zMax := range []float64{0, math.NaN(), math.Inf(1)} {
		_, err = BuildFrame(inner, 1, 0, zMax)
		assert.True(t, errors.Is(err, cfg.ErrInvalidParams), "zMax %g: got %v", zMax, err)
	}
}

func TestGenerateRejectsNonFinite(t *testing.T) {
	modify := map[string]func(p *cfg.Params){
		"NaN wall":           func(p *cfg.Params) { p.WallThickness = math.NaN() },
		"NaN frame":          func(p *cfg.Params) { p.FrameThickness = math.NaN() },
		"NaN thickness":      func(p *cfg.Params) { p.PanelThickness = math.NaN() },
		"infinite thickness": func(p *cfg.Params) { p.PanelThickness = math.Inf(1) },
		"infinite cell size": func(p *cfg.Params) { p.CellSize = math.Inf(1) },
	}
	for name, m := range modify {
		p := scenario()
		m(&p)
		doc, err := Generate(p, nil)
		assert.Nil(t, doc, name)
		assert.True(t, errors.Is(err, cfg.ErrInvalidParams), "%s: got %v", name, err)
	}
}

func TestBuildHoneycomb(t *testing.T) {
	p := scenario()
	cells := hexgrid.Layout{Columns: 3, Rows: 2, CellSize: 10}.All()
	s, err := BuildHoneycomb(p, cells)
	require.NoError(t, err)

	// Each cell ring is the outer hexagon minus a hexagon of radius 3.
	ring := 3 * math.Sqrt(3) / 2 * (25 - 9)
	assert.InDelta(t, 6*ring*2.5, s.Volume(), 1e-9)

	_, err = BuildHoneycomb(p, nil)
	assert.True(t, errors.Is(err, ErrNoCells))

	bad := p
	bad.WallThickness = math.NaN()
	_, err = BuildHoneycomb(bad, cells)
	assert.True(t, errors.Is(err, cfg.ErrInvalidParams), "got %v", err)

	_, err = BuildHoneycomb(p, append(cells, cells[0]))
	assert.True(t, errors.Is(err, hexgrid.ErrDuplicateCell), "got %v", err)
}

func TestOutline(t *testing.T) {
	p := scenario()
	one, err := BuildHoneycomb(p, hexgrid.Layout{Columns: 1, Rows: 1, CellSize: 10}.All())
	require.NoError(t, err)
	// 6 outer + 6 cavity edges
	assert.Len(t, one.Outline(1e-6), 12)

	two, err := BuildHoneycomb(p, hexgrid.Layout{Columns: 2, Rows: 1, CellSize: 10}.All())
	require.NoError(t, err)
	// The common wall disappears from both cells.
	assert.Len(t, two.Outline(1e-6), 22)
}

func TestGenerateFit(t *testing.T) {
	p := cfg.Defaults()
	doc, err := GenerateFit(p, 70, 60, nil)
	require.NoError(t, err)

	area := geometry.Rectangle{Max: geometry.Point{X: 70, Y: 60}}
	assert.True(t, area.ContainsRectangle(doc.Honeycomb().Bounds(), 1e-6))
	assert.Less(t, len(doc.Cells), doc.Layout.Count())

	p.Width, p.Length = 3, 3
	_, err = Generate(p, nil)
	assert.True(t, errors.Is(err, ErrNoCells), "got %v", err)

	_, err = GenerateFit(cfg.Defaults(), 0, 0, nil)
	assert.True(t, errors.Is(err, cfg.ErrInvalidParams), "got %v", err)
}

func TestGenerateOffset(t *testing.T) {
	p := scenario()
	p.OffsetX, p.OffsetY = 100, -50
	doc, err := Generate(p, nil)
	require.NoError(t, err)
	base, err := Generate(scenario(), nil)
	require.NoError(t, err)

	moved := base.Honeycomb().Bounds()
	moved.Min = moved.Min.Add(geometry.Point{X: 100, Y: -50})
	moved.Max = moved.Max.Add(geometry.Point{X: 100, Y: -50})
	if diff := cmp.Diff(moved, doc.Honeycomb().Bounds(), approx); diff != "" {
		t.Errorf("offset should translate the honeycomb: %s", diff)
	}
	assert.True(t, strings.HasPrefix(doc.Frame().Name, "Frame"))
}
