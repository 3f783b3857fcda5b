package gcode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/panel"
	"honeycomb/pkg/svgpath"
)

func segment(x1, y1, x2, y2 float64) *svgpath.SubPath {
	return svgpath.FromSegment(geometry.LineSegment{A: geometry.Point{X: x1, Y: y1}, B: geometry.Point{X: x2, Y: y2}})
}

func TestSortPaths(t *testing.T) {
	far := segment(10, 0, 20, 0)
	near := segment(5, 0, 3, 0)
	sorted := SortPaths([]*svgpath.SubPath{far, near}, geometry.Point{})

	got := svgpath.ToString(sorted)
	want := "M 3 0 L 5 0 M 10 0 L 20 0"
	if got != want {
		t.Errorf("SortPaths() = %q, want %q", got, want)
	}
	// The input is left alone.
	if svgpath.ToString([]*svgpath.SubPath{near}) != "M 5 0 L 3 0" {
		t.Errorf("input path was modified")
	}
}

func TestJoinPaths(t *testing.T) {
	paths := []*svgpath.SubPath{
		segment(0, 0, 1, 0),
		segment(1, 0, 1, 1),
		segment(5, 5, 6, 6),
	}
	joined := JoinPaths(paths, 1e-9)
	want := "M 0 0 L 1 0 L 1 1 M 5 5 L 6 6"
	if diff := cmp.Diff(want, svgpath.ToString(joined)); diff != "" {
		t.Errorf("incorrect output: %s", diff)
	}
	assert.Len(t, paths[0].DrawTo, 1, "JoinPaths must not extend its input")
}

func scenarioDoc(t *testing.T) *panel.Document {
	t.Helper()
	doc, err := panel.Generate(cfg.Params{Columns: 3, Rows: 2, CellSize: 10, WallThickness: 2, PanelThickness: 2.5}, nil)
	require.NoError(t, err)
	return doc
}

func TestPlan(t *testing.T) {
	doc := scenarioDoc(t)
	plan := Plan(doc, geometry.Point{}, 1e-6)

	// Six cavities, one honeycomb outline, frame inside and outside.
	require.Len(t, plan, 9)
	for _, p := range plan[:6] {
		assert.True(t, p.Closed())
		assert.InDelta(t, 18, p.Length(), 1e-9, "cavity circumradius is 3")
	}

	// 18 outer walls of length 5 survive once shared walls are dropped.
	outline := plan[6]
	assert.Len(t, outline.DrawTo, 18)
	assert.InDelta(t, 90, outline.Length(), 1e-6)
	sx, sy := outline.StartPoint()
	ex, ey := outline.EndPoint()
	assert.InDelta(t, 0, math.Hypot(ex-sx, ey-sy), 1e-6, "outline should return to its start")

	hb := doc.Honeycomb().Bounds()
	assert.InDelta(t, 2*(hb.Width()+hb.Height()), plan[7].Length(), 1e-9)
	fb := doc.Frame().Bounds()
	assert.InDelta(t, 2*(fb.Width()+fb.Height()), plan[8].Length(), 1e-9)
}

func TestPasses(t *testing.T) {
	job := Job{Depth: 2.7, PassDepth: 1}
	if diff := cmp.Diff([]float64{1, 2, 2.7}, job.Passes()); diff != "" {
		t.Errorf("incorrect passes: %s", diff)
	}
	job = Job{Depth: 2, PassDepth: 1}
	assert.Equal(t, []float64{1, 2}, job.Passes())
}

func TestWrite(t *testing.T) {
	doc := scenarioDoc(t)
	job := DefaultJob(doc)
	assert.InDelta(t, 2.5+cfg.CutOvershoot, job.Depth, 1e-9)

	var buf bytes.Buffer
	stats, err := Generate(&buf, doc, job, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "G21 (metric)\n"))
	assert.Contains(t, out, "M3 (Start cutter)")
	assert.Contains(t, out, "M5 (Stop cutter)")
	assert.Contains(t, out, "G1 Z-2.700")

	assert.Equal(t, 9, stats.Paths)
	assert.Equal(t, len(job.Passes()), stats.Passes)
	assert.Equal(t, stats.Paths, strings.Count(out, "(Retract)"))
	assert.Equal(t, stats.Paths*stats.Passes, strings.Count(out, "(pass "))
	assert.Greater(t, stats.TravelLength, 0.0)
	assert.Greater(t, stats.CutLength, 0.0)
}

func TestWriteOpenPathAlternates(t *testing.T) {
	var buf bytes.Buffer
	job := Job{Depth: 2, PassDepth: 1, SafeZ: 1, TravelFeedRate: 1000, CutFeedRate: 100, PlungeFeedRate: 50}
	stats, err := Write(&buf, []*svgpath.SubPath{segment(0, 0, 10, 0)}, job, nil)
	require.NoError(t, err)

	out := buf.String()
	first := strings.Index(out, "G1 X10.000 Y0.000")
	second := strings.Index(out, "G1 X0.000 Y0.000")
	assert.True(t, first >= 0 && second > first, "second pass should run back to the start:\n%s", out)
	assert.InDelta(t, 20, stats.CutLength, 1e-9)
	// Out from home and back to it.
	assert.InDelta(t, 0, stats.TravelLength, 1e-9)
}

func TestInvalidJob(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, nil, Job{Depth: 1, PassDepth: 0, SafeZ: 1, TravelFeedRate: 1, CutFeedRate: 1, PlungeFeedRate: 1}, nil)
	assert.True(t, errors.Is(err, ErrInvalidJob), "got %v", err)
	assert.Zero(t, buf.Len())
}
