// Package geometry generates indexed triangle meshes for primitive shapes.
//
// Every generator is a pure function returning positions, normals and
// triangle indices. Triangles wind counter-clockwise when viewed from the
// side their normals face.
package geometry

import (
	"errors"
	"fmt"
	"math"

	vmath "github.com/Faultbox/codex-avatar/pkg/math"
)

// Geometry errors.
var (
	ErrTooFewSegments = errors.New("segment count must be at least 3")
	ErrInvalidMesh    = errors.New("invalid mesh")
)

// MinSegments is the smallest tessellation for which fans and rings are
// non-degenerate.
const MinSegments = 3

// Mesh holds parallel vertex attribute arrays and a triangle list.
// Positions and Normals are flat xyz triples.
type Mesh struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) [3]float32 {
	return [3]float32{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) [3]float32 {
	return [3]float32{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
}

// Bounds returns the componentwise min/max over all positions.
// An empty mesh yields a zero box.
func (m *Mesh) Bounds() Bounds {
	if m.VertexCount() == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
	for i := range m.VertexCount() {
		updateBounds(&b, m.Position(i))
	}
	return b
}

// Validate checks the structural invariants of the mesh: attribute arrays
// are whole triples of equal vertex count, indices form whole triangles and
// reference existing vertices.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("%w: position array length %d is not a multiple of 3", ErrInvalidMesh, len(m.Positions))
	}
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %d normals for %d positions", ErrInvalidMesh, len(m.Normals)/3, m.VertexCount())
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index array length %d is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at %d exceeds vertex count %d", ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}

func (m *Mesh) addVertex(p, n vmath.Vec3) {
	m.Positions = append(m.Positions, float32(p.X), float32(p.Y), float32(p.Z))
	m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
}

func (m *Mesh) addTriangle(a, b, c int) {
	m.Indices = append(m.Indices, uint32(a), uint32(b), uint32(c))
}

func checkSegments(name string, n int) error {
	if n < MinSegments {
		return fmt.Errorf("%w: %s = %d", ErrTooFewSegments, name, n)
	}
	return nil
}

func updateBounds(b *Bounds, p [3]float32) {
	for i := range 3 {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
