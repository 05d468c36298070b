package gltfbuf

import (
	"fmt"
	"slices"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/codex-avatar/pkg/geometry"
)

// Geometry holds the accessor indices of one packed mesh, keyed the way a
// glTF primitive references them.
type Geometry struct {
	Position uint32
	Normal   uint32
	Indices  uint32
}

// Attributes returns the primitive attribute map for the geometry.
func (g Geometry) Attributes() gltf.Attribute {
	return gltf.Attribute{
		gltf.POSITION: g.Position,
		gltf.NORMAL:   g.Normal,
	}
}

// AddGeometry packs the mesh as three views (positions, normals, indices)
// and creates their accessors. Position bounds are taken from the stored
// float32 values; index bounds from the index list.
func (b *Builder) AddGeometry(m *geometry.Mesh) (Geometry, error) {
	if err := m.Validate(); err != nil {
		return Geometry{}, err
	}
	if len(m.Indices) == 0 {
		return Geometry{}, fmt.Errorf("%w: no triangles", geometry.ErrInvalidMesh)
	}
	// Check the index range before anything is appended.
	if last := m.VertexCount() - 1; last > MaxIndex {
		return Geometry{}, fmt.Errorf("%w: %d vertices", ErrIndexOutOfRange, m.VertexCount())
	}

	posView := b.AppendFloats(m.Positions, gltf.TargetArrayBuffer)
	normView := b.AppendFloats(m.Normals, gltf.TargetArrayBuffer)
	idxView, err := b.AppendIndices(m.Indices)
	if err != nil {
		return Geometry{}, err
	}

	bounds := m.Bounds()
	g := Geometry{
		Position: b.AddAccessor(posView, gltf.ComponentFloat, uint32(m.VertexCount()), gltf.AccessorVec3,
			widen(bounds.Min), widen(bounds.Max)),
		Normal: b.AddAccessor(normView, gltf.ComponentFloat, uint32(len(m.Normals)/3), gltf.AccessorVec3, nil, nil),
		Indices: b.AddAccessor(idxView, gltf.ComponentUshort, uint32(len(m.Indices)), gltf.AccessorScalar,
			[]float64{float64(slices.Min(m.Indices))}, []float64{float64(slices.Max(m.Indices))}),
	}
	return g, nil
}

func widen(v [3]float32) []float64 {
	return []float64{float64(v[0]), float64(v[1]), float64(v[2])}
}
