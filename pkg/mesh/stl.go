package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/soypat/sdf/render"
	"gonum.org/v1/gonum/spatial/r3"
)

// WriteASCII writes tris as an ASCII STL solid called name.
func WriteASCII(w io.Writer, name string, tris []r3.Triangle) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range tris {
		n := unitNormal(t)
		fmt.Fprintf(bw, "facet normal %f %f %f\n", n.X, n.Y, n.Z)
		fmt.Fprintf(bw, "  outer loop\n")
		for _, p := range t {
			fmt.Fprintf(bw, "    vertex %f %f %f\n", p.X, p.Y, p.Z)
		}
		fmt.Fprintf(bw, "  endloop\n")
		fmt.Fprintf(bw, "endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}

// Save writes m to path, in binary or ASCII STL. Binary files go through the
// same writer the SDF renderer uses; name only appears in ASCII files.
func Save(path, name string, m *Mesh, asBinary bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", path)
	}
	defer f.Close()

	if asBinary {
		bw := bufio.NewWriter(f)
		err = render.WriteSTL(bw, m.Triangles())
		if err == nil {
			err = bw.Flush()
		}
	} else {
		err = WriteASCII(f, name, m.Triangles())
	}
	if err != nil {
		return errors.Wrapf(err, "error writing %s", path)
	}
	return f.Close()
}
