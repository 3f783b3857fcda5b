package export

import (
	"bytes"
	"encoding/xml"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/color"
	"honeycomb/pkg/geometry"
	"honeycomb/pkg/panel"
	"honeycomb/pkg/svgpath"
)

func scenarioDoc(t *testing.T) *panel.Document {
	t.Helper()
	doc, err := panel.Generate(cfg.Params{Columns: 3, Rows: 2, CellSize: 10, WallThickness: 2, PanelThickness: 2.5}, nil)
	require.NoError(t, err)
	return doc
}

func TestParseKernel(t *testing.T) {
	k, err := ParseKernel(" SDF ")
	require.NoError(t, err)
	assert.Equal(t, KernelSDF, k)

	var flagValue Kernel
	require.NoError(t, flagValue.Set("exact"))
	assert.Equal(t, KernelExact, flagValue)

	_, err = ParseKernel("brep")
	assert.True(t, errors.Is(err, ErrUnknownKernel), "got %v", err)
}

func TestWriteSTLExact(t *testing.T) {
	dir := t.TempDir()
	doc := scenarioDoc(t)
	paths, err := WriteSTL(dir, doc, KernelExact, false, nil)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "Honeycomb.stl"),
		filepath.Join(dir, "Frame.stl"),
	}, paths)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "solid Frame"))
}

func TestWriteSTLSingleColumn(t *testing.T) {
	doc, err := panel.Generate(cfg.Params{Columns: 1, Rows: 5, CellSize: 10, WallThickness: 2, PanelThickness: 2.5}, nil)
	require.NoError(t, err)

	var logs bytes.Buffer
	paths, err := WriteSTL(t.TempDir(), doc, KernelExact, true, log.New(&logs, "", 0))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.NotContains(t, logs.String(), "open edges")
	assert.Contains(t, logs.String(), "Honeycomb mesh has 4 edges where cells touch tip to tip")
}

func TestWriteSTLSDF(t *testing.T) {
	saved := cfg.SDFMeshCells
	cfg.SDFMeshCells = 40
	defer func() { cfg.SDFMeshCells = saved }()

	dir := t.TempDir()
	paths, err := WriteSTL(dir, scenarioDoc(t), KernelSDF, false, nil)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		// Binary header plus at least one triangle.
		assert.Greater(t, info.Size(), int64(84+50), p)
	}
}

func TestWriteSVG(t *testing.T) {
	doc := scenarioDoc(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, doc))

	var parsed struct {
		Width  string `xml:"width,attr"`
		Groups []struct {
			ID   string `xml:"id,attr"`
			Path struct {
				D string `xml:"d,attr"`
			} `xml:"path"`
		} `xml:"g"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &parsed))
	assert.True(t, strings.HasSuffix(parsed.Width, "mm"), "width %q", parsed.Width)
	require.Len(t, parsed.Groups, 2)
	assert.Equal(t, panel.HoneycombName, parsed.Groups[0].ID)
	assert.Equal(t, panel.FrameName, parsed.Groups[1].ID)
	// Two rings per cell, two for the frame.
	assert.Equal(t, 12, strings.Count(parsed.Groups[0].Path.D, "M "))
	assert.Equal(t, 2, strings.Count(parsed.Groups[1].Path.D, "M "))
}

func TestRenderPreview(t *testing.T) {
	doc := scenarioDoc(t)
	img, err := RenderPreview(doc, 4)
	require.NoError(t, err)

	b := doc.Bounds()
	assert.Equal(t, int(math.Ceil((b.Width()+2*Margin)*4)), img.Bounds().Dx())

	// A frame wall pixel, halfway along the left side.
	fr := doc.Frame().Bounds()
	x := int((Margin + 1) * 4)
	y := int((Margin + fr.Height()/2) * 4)
	assert.Equal(t, color.Frame.RGBA(), img.RGBAAt(x, y))

	// Inside the first cell's wall, just below its top vertex.
	c := doc.Cells[0].Center
	x = int((Margin + c.X - b.Min.X) * 4)
	y = int((Margin + b.Max.Y - (c.Y + 4)) * 4)
	assert.Equal(t, color.Honeycomb.RGBA(), img.RGBAAt(x, y))

	// The cell's cavity and the page margin stay background.
	y = int((Margin + b.Max.Y - c.Y) * 4)
	assert.Equal(t, color.Background.RGBA(), img.RGBAAt(x, y))
	assert.Equal(t, color.Background.RGBA(), img.RGBAAt(0, 0))

	_, err = RenderPreview(doc, 0)
	assert.Error(t, err)
}

func TestWriteCellsCSV(t *testing.T) {
	doc := scenarioDoc(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCellsCSV(&buf, doc.Cells))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "row,col,q,r,x,y", lines[0])
	assert.Equal(t, "0,0,0,0,0,0", lines[1])
	assert.True(t, strings.HasPrefix(lines[4], "1,0,0,1,"), lines[4])
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	doc := scenarioDoc(t)
	opts := DefaultOptions()
	opts.Dir = dir
	opts.BinarySTL = true
	opts.SVG, opts.PNG, opts.CSV, opts.Plot, opts.GCode, opts.CutPlan = true, true, true, true, true, true

	var logs bytes.Buffer
	paths, err := Export(doc, opts, log.New(&logs, "", 0))
	require.NoError(t, err)
	assert.Len(t, paths, 8)
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), p)
	}
	assert.Contains(t, logs.String(), "Cut job: 9 paths")
	assert.FileExists(t, filepath.Join(dir, "HoneycombWithFrame.gcode"))
}

func TestWriteCutPlanSVG(t *testing.T) {
	doc := scenarioDoc(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCutPlanSVG(&buf, doc, geometry.Point{}))

	var parsed struct {
		Desc   string `xml:"desc"`
		Groups []struct {
			Paths []struct {
				D string `xml:"d,attr"`
			} `xml:"path"`
		} `xml:"g"`
		Paths []struct {
			ID    string `xml:"id,attr"`
			Style string `xml:"style,attr"`
		} `xml:"path"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &parsed))
	assert.True(t, strings.HasPrefix(parsed.Desc, "9 cut paths"), parsed.Desc)
	require.Len(t, parsed.Groups, 1)
	assert.Len(t, parsed.Groups[0].Paths, 9)
	require.Len(t, parsed.Paths, 1)
	assert.Equal(t, "travel_indicators", parsed.Paths[0].ID)
	assert.Contains(t, parsed.Paths[0].Style, "stroke-dasharray")
}

func TestTravelPaths(t *testing.T) {
	plan := []*svgpath.SubPath{
		svgpath.FromSegment(geometry.LineSegment{A: geometry.Point{X: 3}, B: geometry.Point{X: 3, Y: 4}}),
		svgpath.FromSegment(geometry.LineSegment{A: geometry.Point{X: 3, Y: 4.05}, B: geometry.Point{}}),
	}
	travel, total := travelPaths(plan, geometry.Point{})
	// Out to the first path only: the hop between paths is under 0.1 mm and
	// the second path ends at home.
	assert.Len(t, travel, 1)
	assert.InDelta(t, 3, total, 1e-9)
}
