// Package avatar assembles the Codex Vitae humanoid from primitive shapes.
//
// The figure is described by four tables (shapes, materials, meshes and
// parts) which Build resolves into a single glTF document.
package avatar

import (
	"github.com/Faultbox/codex-avatar/internal/config"
	"github.com/Faultbox/codex-avatar/pkg/geometry"
)

// Shape keys.
const (
	ShapeSphere   = "sphere"
	ShapeCylinder = "cylinder"
	ShapeTapered  = "tapered"
	ShapeDisk     = "disk"
	ShapePlane    = "plane"
)

// shapeSpec generates one unit-sized primitive. Parts reach their final
// size through node scale, so every shape is built exactly once.
type shapeSpec struct {
	Key   string
	Build func(t config.TessellationConfig) (*geometry.Mesh, error)
}

var shapes = []shapeSpec{
	{ShapeSphere, func(t config.TessellationConfig) (*geometry.Mesh, error) {
		return geometry.Sphere(0.5, t.SphereLat, t.SphereLon)
	}},
	{ShapeCylinder, func(t config.TessellationConfig) (*geometry.Mesh, error) {
		return geometry.Cylinder(0.5, 0.5, 1.0, t.CylinderSegments)
	}},
	{ShapeTapered, func(t config.TessellationConfig) (*geometry.Mesh, error) {
		return geometry.Cylinder(0.38, 0.62, 1.0, t.CylinderSegments)
	}},
	{ShapeDisk, func(t config.TessellationConfig) (*geometry.Mesh, error) {
		return geometry.Disk(1.0, t.DiskSegments)
	}},
	{ShapePlane, func(config.TessellationConfig) (*geometry.Mesh, error) {
		return geometry.Plane(1.0, 1.0), nil
	}},
}
