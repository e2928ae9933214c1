package meshio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/eikon/mesh"
	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

// ErrDecode is wrapped by every decoding failure.
var ErrDecode = errors.New("meshio: cannot decode mesh document")

// Document is the on-disk form of a mesh.
type Document struct {
	Vertices  [][2]float64 `yaml:"vertices"`
	Triangles [][3]int     `yaml:"triangles"`
	Boundary  []int        `yaml:"boundary,omitempty"`
}

// Decode reads one YAML document from r and builds the mesh it describes.
// Unknown keys are rejected.
func Decode(r io.Reader) (*mesh.Mesh, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return doc.Mesh()
}

// ReadFile decodes the mesh document stored at path.
func ReadFile(path string) (*mesh.Mesh, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer fh.Close()

	return Decode(fh)
}

// Mesh builds the mesh described by the document.
func (d Document) Mesh() (*mesh.Mesh, error) {
	points := make([]orb.Point, len(d.Vertices))
	for i, v := range d.Vertices {
		points[i] = orb.Point{v[0], v[1]}
	}
	boundary := make([]mesh.FaceID, len(d.Boundary))
	for i, f := range d.Boundary {
		boundary[i] = mesh.FaceID(f)
	}

	m, err := mesh.New(points, d.Triangles, mesh.WithBoundaryFaces(boundary...))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return m, nil
}

// FromMesh captures the geometry and topology of m. Vertex state is not part
// of a document.
func FromMesh(m *mesh.Mesh) Document {
	doc := Document{
		Vertices:  make([][2]float64, m.NumVertices()),
		Triangles: make([][3]int, m.NumFaces()),
	}
	for v := range doc.Vertices {
		p := m.Position(mesh.VertexID(v))
		doc.Vertices[v] = [2]float64{p[0], p[1]}
	}
	for f := range doc.Triangles {
		vs := m.FaceVertices(mesh.FaceID(f))
		doc.Triangles[f] = [3]int{int(vs[0]), int(vs[1]), int(vs[2])}
		if m.IsBoundary(mesh.FaceID(f)) {
			doc.Boundary = append(doc.Boundary, f)
		}
	}

	return doc
}

// Encode writes m to w as a YAML document.
func Encode(w io.Writer, m *mesh.Mesh) error {
	if m == nil {
		return errors.New("meshio: mesh is nil")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromMesh(m)); err != nil {
		return fmt.Errorf("meshio: encode: %w", err)
	}

	return enc.Close()
}
