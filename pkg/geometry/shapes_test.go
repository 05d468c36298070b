package geometry

import (
	"errors"
	"math"
	"slices"
	"testing"

	vmath "github.com/Faultbox/codex-avatar/pkg/math"
)

func vec(v [3]float32) vmath.Vec3 {
	return vmath.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// faceNormal returns the unnormalized normal implied by the winding of triangle t.
func faceNormal(m *Mesh, t int) vmath.Vec3 {
	a := vec(m.Position(int(m.Indices[t*3])))
	b := vec(m.Position(int(m.Indices[t*3+1])))
	c := vec(m.Position(int(m.Indices[t*3+2])))
	return b.Sub(a).Cross(c.Sub(a))
}

func allShapes(t *testing.T) map[string]*Mesh {
	t.Helper()
	sphere, err := Sphere(0.5, 8, 12)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}
	cylinder, err := Cylinder(0.5, 0.5, 1, 12)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}
	tapered, err := Cylinder(0.38, 0.62, 1, 12)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}
	disk, err := Disk(1, 12)
	if err != nil {
		t.Fatalf("Disk failed: %v", err)
	}
	return map[string]*Mesh{
		"sphere":   sphere,
		"cylinder": cylinder,
		"tapered":  tapered,
		"disk":     disk,
		"plane":    Plane(1, 1),
	}
}

func TestShapesInvariants(t *testing.T) {
	for name, m := range allShapes(t) {
		t.Run(name, func(t *testing.T) {
			if m.VertexCount() == 0 {
				t.Fatal("expected vertices")
			}
			if len(m.Positions) != len(m.Normals) {
				t.Errorf("positions %d != normals %d", len(m.Positions), len(m.Normals))
			}
			if len(m.Indices)%3 != 0 {
				t.Errorf("index count %d is not a multiple of 3", len(m.Indices))
			}
			for i, idx := range m.Indices {
				if int(idx) >= m.VertexCount() {
					t.Fatalf("index %d at %d out of range (vertices %d)", idx, i, m.VertexCount())
				}
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}

// Every non-degenerate triangle must face the same way as its vertex normals.
func TestShapesWindingOutward(t *testing.T) {
	for name, m := range allShapes(t) {
		t.Run(name, func(t *testing.T) {
			for tri := range m.TriangleCount() {
				fn := faceNormal(m, tri)
				if fn.Length() < 1e-9 {
					continue // degenerate pole triangle
				}
				n := m.Normal(int(m.Indices[tri*3]))
				dot := fn.Dot(vec(n))
				if dot <= 0 {
					t.Fatalf("triangle %d winds inward (dot %v)", tri, dot)
				}
			}
		})
	}
}

func TestSphere(t *testing.T) {
	const radius = 0.75
	m, err := Sphere(radius, 10, 16)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}

	if got, want := m.VertexCount(), 11*17; got != want {
		t.Errorf("expected %d vertices, got %d", want, got)
	}
	if got, want := m.TriangleCount(), 10*16*2; got != want {
		t.Errorf("expected %d triangles, got %d", want, got)
	}

	for i := range m.VertexCount() {
		p := m.Position(i)
		n := m.Normal(i)
		if d := math.Abs(vec(p).Length() - radius); d > 1e-6 {
			t.Fatalf("vertex %d: |p| = %v, want %v", i, vec(p).Length(), radius)
		}
		for c := range 3 {
			if d := math.Abs(float64(p[c])/radius - float64(n[c])); d > 1e-6 {
				t.Fatalf("vertex %d: normal %v does not match position %v", i, n, p)
			}
		}
	}

	// Poles
	if p := m.Position(0); p[1] != radius {
		t.Errorf("north pole y = %v, want %v", p[1], radius)
	}
	if p := m.Position(m.VertexCount() - 1); p[1] != -radius {
		t.Errorf("south pole y = %v, want %v", p[1], float32(-radius))
	}
}

func TestSphereFirstCell(t *testing.T) {
	m, err := Sphere(1, 3, 4)
	if err != nil {
		t.Fatalf("Sphere failed: %v", err)
	}
	// stride = 5: first = 0, second = 5
	want := []uint32{0, 1, 5, 5, 1, 6}
	if got := m.Indices[:6]; !slices.Equal(got, want) {
		t.Errorf("first cell indices = %v, want %v", got, want)
	}
}

func TestCylinderStraight(t *testing.T) {
	const segments = 16
	m, err := Cylinder(0.5, 0.5, 1.0, segments)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	side := (segments + 1) * 2
	if got, want := m.VertexCount(), side+2*(segments+1); got != want {
		t.Errorf("expected %d vertices, got %d", want, got)
	}
	if got, want := m.TriangleCount(), segments*4; got != want {
		t.Errorf("expected %d triangles, got %d", want, got)
	}

	for i := range side {
		p := m.Position(i)
		n := m.Normal(i)
		wantY := float32(-0.5)
		if i%2 == 1 {
			wantY = 0.5
		}
		if p[1] != wantY {
			t.Errorf("side vertex %d: y = %v, want %v", i, p[1], wantY)
		}
		if n[1] != 0 {
			t.Errorf("side vertex %d: normal y = %v, want 0", i, n[1])
		}
		if math.Abs(vec(n).Length()-1) > 1e-6 {
			t.Errorf("side vertex %d: normal length %v", i, vec(n).Length())
		}
	}
}

func TestCylinderTaperedNormals(t *testing.T) {
	const (
		rt, rb, h = 0.4, 0.6, 1.0
	)
	m, err := Cylinder(rt, rb, h, 8)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	// Angle 0: normal is normalize(h, rb-rt, 0)
	l := math.Sqrt(h*h + (rb-rt)*(rb-rt))
	want := [3]float64{h / l, (rb - rt) / l, 0}
	for _, i := range []int{0, 1} {
		got := m.Normal(i)
		for c := range 3 {
			if math.Abs(float64(got[c])-want[c]) > 1e-6 {
				t.Errorf("vertex %d normal = %v, want %v", i, got, want)
				break
			}
		}
	}
	if m.Normal(0) != m.Normal(1) {
		t.Errorf("ring vertices at one angle should share a normal: %v vs %v", m.Normal(0), m.Normal(1))
	}

	// Ring radii
	if p := m.Position(0); p[0] != float32(rb) {
		t.Errorf("bottom ring x = %v, want %v", p[0], rb)
	}
	if p := m.Position(1); p[0] != float32(rt) {
		t.Errorf("top ring x = %v, want %v", p[0], rt)
	}
}

func TestCylinderCaps(t *testing.T) {
	const segments = 6
	m, err := Cylinder(0.3, 0.7, 2.0, segments)
	if err != nil {
		t.Fatalf("Cylinder failed: %v", err)
	}

	top := (segments + 1) * 2
	bottom := top + segments + 1

	if p := m.Position(top); p != [3]float32{0, 1, 0} {
		t.Errorf("top center = %v", p)
	}
	if p := m.Position(bottom); p != [3]float32{0, -1, 0} {
		t.Errorf("bottom center = %v", p)
	}
	for i := top; i < bottom; i++ {
		if n := m.Normal(i); n != [3]float32{0, 1, 0} {
			t.Fatalf("top cap vertex %d normal = %v", i, n)
		}
	}
	for i := bottom; i < m.VertexCount(); i++ {
		if n := m.Normal(i); n != [3]float32{0, -1, 0} {
			t.Fatalf("bottom cap vertex %d normal = %v", i, n)
		}
	}

	sideTris := segments * 2
	topFirst := m.Indices[sideTris*3 : sideTris*3+3]
	bottomFirst := m.Indices[(sideTris+segments)*3 : (sideTris+segments)*3+3]
	t0, b0 := uint32(top), uint32(bottom)
	if want := []uint32{t0, t0 + 2, t0 + 1}; !slices.Equal(topFirst, want) {
		t.Errorf("first top cap triangle = %v, want %v", topFirst, want)
	}
	if want := []uint32{b0, b0 + 1, b0 + 2}; !slices.Equal(bottomFirst, want) {
		t.Errorf("first bottom cap triangle = %v, want %v", bottomFirst, want)
	}

	// Last fan triangle wraps to the first rim vertex.
	last := m.Indices[len(m.Indices)-3:]
	if want := []uint32{b0, b0 + segments, b0 + 1}; !slices.Equal(last, want) {
		t.Errorf("last bottom cap triangle = %v, want %v", last, want)
	}
}

func TestDiskFourSegments(t *testing.T) {
	m, err := Disk(1, 4)
	if err != nil {
		t.Fatalf("Disk failed: %v", err)
	}
	if m.VertexCount() != 5 {
		t.Errorf("expected 5 vertices, got %d", m.VertexCount())
	}
	if m.TriangleCount() != 4 {
		t.Errorf("expected 4 triangles, got %d", m.TriangleCount())
	}
	want := []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 1}
	if !slices.Equal(m.Indices, want) {
		t.Errorf("indices = %v, want %v", m.Indices, want)
	}
	for i := range m.VertexCount() {
		if n := m.Normal(i); n != [3]float32{0, 1, 0} {
			t.Errorf("vertex %d normal = %v, want +Y", i, n)
		}
	}
	if p := m.Position(1); p != [3]float32{1, 0, 0} {
		t.Errorf("first rim vertex = %v, want (1,0,0)", p)
	}
}

func TestPlane(t *testing.T) {
	m := Plane(2, 2)
	wantPos := []float32{
		-1, 1, 0,
		1, 1, 0,
		-1, -1, 0,
		1, -1, 0,
	}
	if !slices.Equal(m.Positions, wantPos) {
		t.Errorf("positions = %v, want %v", m.Positions, wantPos)
	}
	if want := []uint32{0, 2, 1, 1, 2, 3}; !slices.Equal(m.Indices, want) {
		t.Errorf("indices = %v, want %v", m.Indices, want)
	}
	for i := range 4 {
		if n := m.Normal(i); n != [3]float32{0, 0, 1} {
			t.Errorf("vertex %d normal = %v, want +Z", i, n)
		}
	}
}

func TestTooFewSegments(t *testing.T) {
	tests := []struct {
		name string
		gen  func() (*Mesh, error)
	}{
		{"sphere lat", func() (*Mesh, error) { return Sphere(1, 2, 8) }},
		{"sphere lon", func() (*Mesh, error) { return Sphere(1, 8, 0) }},
		{"cylinder", func() (*Mesh, error) { return Cylinder(1, 1, 1, 2) }},
		{"disk", func() (*Mesh, error) { return Disk(1, -1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.gen()
			if !errors.Is(err, ErrTooFewSegments) {
				t.Errorf("expected ErrTooFewSegments, got %v", err)
			}
			if m != nil {
				t.Error("expected nil mesh on error")
			}
		})
	}
}

func TestMinimumSegmentsAccepted(t *testing.T) {
	if _, err := Sphere(1, MinSegments, MinSegments); err != nil {
		t.Errorf("Sphere with minimum segments failed: %v", err)
	}
	if _, err := Cylinder(1, 1, 1, MinSegments); err != nil {
		t.Errorf("Cylinder with minimum segments failed: %v", err)
	}
	if _, err := Disk(1, MinSegments); err != nil {
		t.Errorf("Disk with minimum segments failed: %v", err)
	}
}
