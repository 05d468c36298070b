package geometry

import (
	"math"

	vmath "github.com/Faultbox/codex-avatar/pkg/math"
)

// Sphere generates a UV sphere centred at the origin.
//
// The (latSegments+1) x (lonSegments+1) sample grid includes both poles and
// a duplicated seam column. Pole cells collapse to degenerate triangles,
// which are kept.
func Sphere(radius float64, latSegments, lonSegments int) (*Mesh, error) {
	if err := checkSegments("latSegments", latSegments); err != nil {
		return nil, err
	}
	if err := checkSegments("lonSegments", lonSegments); err != nil {
		return nil, err
	}

	nVtx := (latSegments + 1) * (lonSegments + 1)
	m := &Mesh{
		Positions: make([]float32, 0, nVtx*3),
		Normals:   make([]float32, 0, nVtx*3),
		Indices:   make([]uint32, 0, latSegments*lonSegments*6),
	}

	for i := 0; i <= latSegments; i++ {
		theta := float64(i) / float64(latSegments) * math.Pi
		sinTheta, cosTheta := math.Sincos(theta)
		for j := 0; j <= lonSegments; j++ {
			phi := float64(j) / float64(lonSegments) * 2 * math.Pi
			sinPhi, cosPhi := math.Sincos(phi)
			n := vmath.Vec3{X: cosPhi * sinTheta, Y: cosTheta, Z: sinPhi * sinTheta}
			m.addVertex(n.Scale(radius), n)
		}
	}

	stride := lonSegments + 1
	for i := range latSegments {
		for j := range lonSegments {
			first := i*stride + j
			second := first + stride
			m.addTriangle(first, first+1, second)
			m.addTriangle(second, first+1, second+1)
		}
	}
	return m, nil
}

// Cylinder generates a capped frustum along the Y axis, centred at the
// origin. Equal radii give a straight cylinder.
//
// Each of the segments+1 angular samples contributes a bottom and a top
// ring vertex sharing the slanted side normal. The caps are separate fans
// with flat +Y / -Y normals.
func Cylinder(radiusTop, radiusBottom, height float64, segments int) (*Mesh, error) {
	if err := checkSegments("segments", segments); err != nil {
		return nil, err
	}

	nVtx := (segments+1)*2 + (segments+1)*2
	m := &Mesh{
		Positions: make([]float32, 0, nVtx*3),
		Normals:   make([]float32, 0, nVtx*3),
		Indices:   make([]uint32, 0, segments*12),
	}

	halfHeight := height / 2
	slope := radiusBottom - radiusTop
	topY := vmath.Vec3{Y: halfHeight}
	bottomY := vmath.Vec3{Y: -halfHeight}

	// Side
	for seg := 0; seg <= segments; seg++ {
		sinA, cosA := ringAngle(seg, segments)
		ring := vmath.Vec3{X: cosA, Z: sinA}
		n := vmath.Vec3{X: cosA * height, Y: slope, Z: sinA * height}.Normalize()
		m.addVertex(ring.Scale(radiusBottom).Add(bottomY), n)
		m.addVertex(ring.Scale(radiusTop).Add(topY), n)
	}
	for seg := range segments {
		base := seg * 2
		next := base + 2
		m.addTriangle(base, base+1, next)
		m.addTriangle(base+1, next+1, next)
	}

	// Top cap
	top := m.VertexCount()
	m.addVertex(topY, vmath.AxisY)
	for seg := range segments {
		sinA, cosA := ringAngle(seg, segments)
		m.addVertex(vmath.Vec3{X: cosA, Z: sinA}.Scale(radiusTop).Add(topY), vmath.AxisY)
	}
	for seg := range segments {
		m.addTriangle(top, top+1+(seg+1)%segments, top+1+seg)
	}

	// Bottom cap, wound the other way
	bottom := m.VertexCount()
	down := vmath.AxisY.Scale(-1)
	m.addVertex(bottomY, down)
	for seg := range segments {
		sinA, cosA := ringAngle(seg, segments)
		m.addVertex(vmath.Vec3{X: cosA, Z: sinA}.Scale(radiusBottom).Add(bottomY), down)
	}
	for seg := range segments {
		m.addTriangle(bottom, bottom+1+seg, bottom+1+(seg+1)%segments)
	}

	return m, nil
}

// Disk generates a flat fan in the XZ plane facing +Y.
// Vertex 0 is the centre, followed by segments rim vertices running from +X
// towards -Z so that the fan [0, i, i+1] winds counter-clockwise seen from
// above.
func Disk(radius float64, segments int) (*Mesh, error) {
	if err := checkSegments("segments", segments); err != nil {
		return nil, err
	}

	m := &Mesh{
		Positions: make([]float32, 0, (segments+1)*3),
		Normals:   make([]float32, 0, (segments+1)*3),
		Indices:   make([]uint32, 0, segments*3),
	}
	m.addVertex(vmath.Vec3{}, vmath.AxisY)
	for seg := range segments {
		sinA, cosA := ringAngle(seg, segments)
		m.addVertex(vmath.Vec3{X: cosA, Z: -sinA}.Scale(radius), vmath.AxisY)
	}
	for seg := range segments {
		m.addTriangle(0, 1+seg, 1+(seg+1)%segments)
	}
	return m, nil
}

// Plane generates a width x height quad in the XY plane facing +Z.
// Vertices are ordered top-left, top-right, bottom-left, bottom-right.
func Plane(width, height float64) *Mesh {
	hw := float32(width / 2)
	hh := float32(height / 2)
	return &Mesh{
		Positions: []float32{
			-hw, hh, 0,
			hw, hh, 0,
			-hw, -hh, 0,
			hw, -hh, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		Indices: []uint32{0, 2, 1, 1, 2, 3},
	}
}

// ringAngle returns sin and cos of the seg-th of n evenly spaced angles.
func ringAngle(seg, n int) (sin, cos float64) {
	return math.Sincos(2 * math.Pi * float64(seg) / float64(n))
}
