package export

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"honeycomb/pkg/cfg"
	"honeycomb/pkg/mesh"
	"honeycomb/pkg/panel"
	"honeycomb/pkg/sdfmodel"
)

// Kernel selects how solids are turned into triangles.
type Kernel string

const (
	// KernelExact tessellates the prism profiles directly.
	KernelExact Kernel = "exact"
	// KernelSDF samples a signed distance field with marching cubes.
	KernelSDF Kernel = "sdf"
)

var ErrUnknownKernel = errors.New("unknown kernel")

func ParseKernel(s string) (Kernel, error) {
	switch k := Kernel(strings.ToLower(strings.TrimSpace(s))); k {
	case KernelExact, KernelSDF:
		return k, nil
	}
	return "", errors.Wrapf(ErrUnknownKernel, "%q (want %s or %s)", s, KernelExact, KernelSDF)
}

func (k Kernel) String() string {
	return string(k)
}

// Set and Type let a Kernel be used as a command line flag.
func (k *Kernel) Set(s string) error {
	parsed, err := ParseKernel(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k *Kernel) Type() string {
	return "kernel"
}

// WriteSTL writes one STL file per document object into dir, named after the
// object, and returns the paths written. binary only applies to the exact kernel.
func WriteSTL(dir string, doc *panel.Document, kernel Kernel, binary bool, logger *log.Logger) ([]string, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	var paths []string
	switch kernel {
	case KernelExact:
		meshes, err := mesh.FromDocument(doc, cfg.WeldPrecision, cfg.CoincidenceTolerance)
		if err != nil {
			return nil, errors.Wrap(err, "tessellate")
		}
		for _, o := range doc.Objects {
			path := filepath.Join(dir, o.Name+".stl")
			m := meshes[o.Name]
			if open := m.OpenEdges(); open != 0 {
				logger.Printf("Warning: %s mesh has %d open edges", o.Name, open)
			}
			if touching := m.NonManifoldEdges(); touching != 0 {
				logger.Printf("%s mesh has %d edges where cells touch tip to tip", o.Name, touching)
			}
			if err := mesh.Save(path, o.Name, m, binary); err != nil {
				return paths, err
			}
			logger.Printf("Wrote %s (%d triangles)", path, len(m.Faces))
			paths = append(paths, path)
		}
	case KernelSDF:
		for _, o := range doc.Objects {
			path := filepath.Join(dir, o.Name+".stl")
			if err := sdfmodel.SaveSTL(path, o, cfg.SDFMeshCells); err != nil {
				return paths, err
			}
			logger.Printf("Wrote %s", path)
			paths = append(paths, path)
		}
	default:
		return nil, errors.Wrap(ErrUnknownKernel, fmt.Sprint(kernel))
	}
	return paths, nil
}
