package cfg

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidParams is returned for any parameter set that cannot produce a panel.
var ErrInvalidParams = errors.New("invalid parameters")

// Params is the immutable input of one generator run.
type Params struct {
	Columns        int     `json:"columns" yaml:"columns"`
	Rows           int     `json:"rows" yaml:"rows"`
	CellSize       float64 `json:"cell_size" yaml:"cell_size"`
	WallThickness  float64 `json:"wall_thickness" yaml:"wall_thickness"`
	FrameThickness float64 `json:"frame_thickness" yaml:"frame_thickness"`
	PanelThickness float64 `json:"panel_thickness" yaml:"panel_thickness"`
	OffsetX        float64 `json:"offset_x" yaml:"offset_x"`
	OffsetY        float64 `json:"offset_y" yaml:"offset_y"`

	// Width and Length switch the generator to area-fit mode: rows and columns
	// are derived from the area and only cells fully inside it are kept.
	Width  float64 `json:"width" yaml:"width"`
	Length float64 `json:"length" yaml:"length"`
}

// Defaults returns the params built from the package-level defaults.
func Defaults() Params {
	return Params{
		Columns:        Columns,
		Rows:           Rows,
		CellSize:       CellSize,
		WallThickness:  WallThickness,
		FrameThickness: FrameThickness,
		PanelThickness: PanelThickness,
		Width:          Width,
		Length:         Length,
	}
}

// Positive reports whether x is a finite number above zero. NaN and the
// infinities are rejected.
func Positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Finite reports whether x is neither NaN nor infinite.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// UseGrid switches p to the explicit grid: the fit area is cleared so Columns
// and Rows take effect.
func (p *Params) UseGrid() {
	p.Width, p.Length = 0, 0
}

// FitArea reports whether rows and columns come from Width and Length.
func (p Params) FitArea() bool {
	return p.Width != 0 || p.Length != 0
}

// FrameWall returns the frame wall thickness actually used.
func (p Params) FrameWall() float64 {
	if p.FrameThickness == 0 {
		return p.WallThickness
	}
	return p.FrameThickness
}

// Validate rejects parameters that cannot produce a panel and frame.
// Every length must be a finite number; NaN never passes.
func (p Params) Validate() error {
	if p.FitArea() {
		if !Positive(p.Width) || !Positive(p.Length) {
			return errors.Wrapf(ErrInvalidParams, "area must be positive, got %gx%g", p.Width, p.Length)
		}
	} else if p.Columns <= 0 || p.Rows <= 0 {
		return errors.Wrapf(ErrInvalidParams, "grid must be at least 1x1, got %dx%d", p.Columns, p.Rows)
	}
	if !Positive(p.CellSize) {
		return errors.Wrapf(ErrInvalidParams, "cell size must be positive, got %g", p.CellSize)
	}
	if !Positive(p.WallThickness) {
		return errors.Wrapf(ErrInvalidParams, "wall thickness must be positive, got %g", p.WallThickness)
	}
	if p.WallThickness >= p.CellSize/2 {
		return errors.Wrapf(ErrInvalidParams, "wall thickness %g leaves no cavity in a %g cell", p.WallThickness, p.CellSize)
	}
	if !(p.FrameThickness >= 0) || !Finite(p.FrameThickness) {
		return errors.Wrapf(ErrInvalidParams, "frame thickness must not be negative, got %g", p.FrameThickness)
	}
	if !Positive(p.PanelThickness) {
		return errors.Wrapf(ErrInvalidParams, "panel thickness must be positive, got %g", p.PanelThickness)
	}
	if !Finite(p.OffsetX) || !Finite(p.OffsetY) {
		return errors.Wrapf(ErrInvalidParams, "offset must be finite, got (%g, %g)", p.OffsetX, p.OffsetY)
	}
	return nil
}

// paramsFile mirrors Params with optional fields so a file only overrides what it names.
type paramsFile struct {
	Columns        *int     `json:"columns,omitempty" yaml:"columns,omitempty"`
	Rows           *int     `json:"rows,omitempty" yaml:"rows,omitempty"`
	CellSize       *float64 `json:"cell_size,omitempty" yaml:"cell_size,omitempty"`
	WallThickness  *float64 `json:"wall_thickness,omitempty" yaml:"wall_thickness,omitempty"`
	FrameThickness *float64 `json:"frame_thickness,omitempty" yaml:"frame_thickness,omitempty"`
	PanelThickness *float64 `json:"panel_thickness,omitempty" yaml:"panel_thickness,omitempty"`
	OffsetX        *float64 `json:"offset_x,omitempty" yaml:"offset_x,omitempty"`
	OffsetY        *float64 `json:"offset_y,omitempty" yaml:"offset_y,omitempty"`
	Width          *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Length         *float64 `json:"length,omitempty" yaml:"length,omitempty"`
}

// apply overlays f on p. A file that names a grid but no area selects the
// explicit grid.
func (f *paramsFile) apply(p *Params) {
	if (f.Columns != nil || f.Rows != nil) && f.Width == nil && f.Length == nil {
		p.UseGrid()
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&p.Columns, f.Columns)
	setInt(&p.Rows, f.Rows)
	setFloat(&p.CellSize, f.CellSize)
	setFloat(&p.WallThickness, f.WallThickness)
	setFloat(&p.FrameThickness, f.FrameThickness)
	setFloat(&p.PanelThickness, f.PanelThickness)
	setFloat(&p.OffsetX, f.OffsetX)
	setFloat(&p.OffsetY, f.OffsetY)
	setFloat(&p.Width, f.Width)
	setFloat(&p.Length, f.Length)
}

const maxParamsFileSize = 1 << 20

// Load reads a params file (.json, .yaml or .yml) on top of Defaults.
// Fields omitted from the file keep their default values. The result is not validated.
func Load(path string) (Params, error) {
	p := Defaults()

	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return p, errors.Errorf("params file must be .json, .yaml or .yml, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return p, errors.Wrap(err, "failed to stat params file")
	}
	if info.Size() > maxParamsFileSize {
		return p, errors.Errorf("params file too large: %d bytes (max %d)", info.Size(), maxParamsFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return p, errors.Wrap(err, "failed to read params file")
	}

	var f paramsFile
	if ext == ".json" {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return p, errors.Wrapf(err, "failed to parse %s", cleanPath)
	}
	f.apply(&p)
	return p, nil
}
