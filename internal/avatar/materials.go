package avatar

import "github.com/qmuntal/gltf"

// materialSpec is one row of the material table.
type materialSpec struct {
	Name        string
	BaseColor   [4]float64
	Metallic    float64
	Roughness   float64
	DoubleSided bool
}

var materials = []materialSpec{
	{Name: "GroundBase", BaseColor: [4]float64{0.92, 0.88, 0.82, 1.0}, Metallic: 0.0, Roughness: 0.96},
	{Name: "GroundGlow", BaseColor: [4]float64{0.97, 0.84, 0.64, 0.85}, Metallic: 0.0, Roughness: 0.9},
	{Name: "Leather", BaseColor: [4]float64{0.36, 0.24, 0.18, 1.0}, Metallic: 0.0, Roughness: 0.68},
	{Name: "Copper", BaseColor: [4]float64{0.84, 0.49, 0.27, 1.0}, Metallic: 0.1, Roughness: 0.4},
	{Name: "MidnightCloth", BaseColor: [4]float64{0.21, 0.35, 0.56, 1.0}, Metallic: 0.0, Roughness: 0.72},
	{Name: "Tunic", BaseColor: [4]float64{0.32, 0.64, 0.62, 1.0}, Metallic: 0.0, Roughness: 0.5},
	{Name: "GildedTrim", BaseColor: [4]float64{0.95, 0.82, 0.48, 1.0}, Metallic: 0.15, Roughness: 0.35},
	{Name: "Skin", BaseColor: [4]float64{0.98, 0.82, 0.69, 1.0}, Metallic: 0.0, Roughness: 0.55},
	{Name: "Hair", BaseColor: [4]float64{0.21, 0.16, 0.12, 1.0}, Metallic: 0.0, Roughness: 0.72},
	{Name: "Cape", BaseColor: [4]float64{0.52, 0.17, 0.3, 1.0}, Metallic: 0.0, Roughness: 0.82, DoubleSided: true},
	{Name: "Bracer", BaseColor: [4]float64{0.26, 0.42, 0.6, 1.0}, Metallic: 0.05, Roughness: 0.48},
}

// toGLTF converts the row to a metallic-roughness material. Translucent
// base colours switch the material to blending.
func (m materialSpec) toGLTF() *gltf.Material {
	color := m.BaseColor
	mat := &gltf.Material{
		Name:        m.Name,
		DoubleSided: m.DoubleSided,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &color,
			MetallicFactor:  gltf.Float(m.Metallic),
			RoughnessFactor: gltf.Float(m.Roughness),
		},
	}
	if color[3] < 1 {
		mat.AlphaMode = gltf.AlphaBlend
	}
	return mat
}
