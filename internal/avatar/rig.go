package avatar

import (
	"github.com/Faultbox/codex-avatar/pkg/math"
)

// RootName is the name of the node every part hangs from.
const RootName = "CodexAvatarRoot"

// meshSpec binds a shape to a material under a mesh name.
type meshSpec struct {
	Name     string
	Shape    string
	Material string
}

var meshes = []meshSpec{
	{"GroundBaseMesh", ShapeDisk, "GroundBase"},
	{"GroundGlowMesh", ShapeDisk, "GroundGlow"},
	{"BootShellMesh", ShapeSphere, "Leather"},
	{"BootGuardMesh", ShapeTapered, "Copper"},
	{"LowerLegMesh", ShapeCylinder, "MidnightCloth"},
	{"UpperLegMesh", ShapeTapered, "MidnightCloth"},
	{"PelvisMesh", ShapeTapered, "Tunic"},
	{"BeltMesh", ShapeCylinder, "GildedTrim"},
	{"LowerTorsoMesh", ShapeTapered, "Tunic"},
	{"UpperTorsoMesh", ShapeSphere, "Tunic"},
	{"ChestTrimMesh", ShapeCylinder, "GildedTrim"},
	{"CollarMesh", ShapeCylinder, "GildedTrim"},
	{"NeckMesh", ShapeCylinder, "Skin"},
	{"HeadMesh", ShapeSphere, "Skin"},
	{"HairCrownMesh", ShapeSphere, "Hair"},
	{"HairBackMesh", ShapeSphere, "Hair"},
	{"HairSideMesh", ShapeSphere, "Hair"},
	{"CapeMesh", ShapePlane, "Cape"},
	{"ShoulderMesh", ShapeSphere, "GildedTrim"},
	{"UpperArmMesh", ShapeCylinder, "Skin"},
	{"ForearmMesh", ShapeCylinder, "Bracer"},
	{"GloveMesh", ShapeSphere, "Leather"},
	{"HandMesh", ShapeSphere, "Skin"},
}

// turn is one axis-angle step of a part's rotation.
type turn struct {
	Axis    math.Vec3
	Degrees float64
}

// partSpec is one node of the rig. Rotation steps are composed left to
// right with math.ComposeQuats.
type partSpec struct {
	Name        string
	Mesh        string
	Translation [3]float64
	Rotation    []turn
	Scale       [3]float64
}

// rotation returns the composed node rotation.
func (p partSpec) rotation() math.Quat {
	if len(p.Rotation) == 0 {
		return math.QuatIdentity()
	}
	quats := make([]math.Quat, len(p.Rotation))
	for i, r := range p.Rotation {
		quats[i] = math.QuatFromAxisAngleDeg(r.Axis, r.Degrees)
	}
	return math.ComposeQuats(quats...)
}

func part(name, mesh string, t, s [3]float64, rot ...turn) partSpec {
	return partSpec{Name: name, Mesh: mesh, Translation: t, Rotation: rot, Scale: s}
}

// pair mirrors a part across the YZ plane. t holds the right-hand
// translation; the left copy negates X and every roll about Z.
func pair(name, mesh string, t, s [3]float64, rollZ, pitchX float64) []partSpec {
	right := part(name+"Right", mesh, t, s)
	left := part(name+"Left", mesh, [3]float64{-t[0], t[1], t[2]}, s)
	if rollZ != 0 || pitchX != 0 {
		left.Rotation = []turn{{math.AxisZ, -rollZ}, {math.AxisX, pitchX}}
		right.Rotation = []turn{{math.AxisZ, rollZ}, {math.AxisX, pitchX}}
	}
	return []partSpec{left, right}
}

// rig returns the avatar parts in node order (node 0 is the root).
func rig() []partSpec {
	var parts []partSpec
	add := func(p ...partSpec) { parts = append(parts, p...) }

	add(part("GroundBase", "GroundBaseMesh", [3]float64{0.0, -1.6, 0.0}, [3]float64{1.6, 0.05, 1.6}))
	add(part("GroundGlow", "GroundGlowMesh", [3]float64{0.0, -1.58, 0.0}, [3]float64{1.2, 0.02, 1.2}))
	add(part("Cape", "CapeMesh", [3]float64{0.0, 1.08, -0.52}, [3]float64{2.1, 2.2, 1.0},
		turn{math.AxisX, -8}, turn{math.AxisY, 4}))

	// Legs
	add(pair("Boot", "BootShellMesh", [3]float64{0.34, -1.58, 0.34}, [3]float64{0.24, 0.16, 0.36}, 0, 0)...)
	add(pair("BootGuard", "BootGuardMesh", [3]float64{0.34, -1.34, 0.06}, [3]float64{0.26, 0.26, 0.26}, 0, 0)...)
	add(pair("LowerLeg", "LowerLegMesh", [3]float64{0.32, -0.98, 0.12}, [3]float64{0.2, 0.82, 0.24}, 0, 0)...)
	add(pair("KneeGuard", "BootGuardMesh", [3]float64{0.32, -0.52, 0.18}, [3]float64{0.24, 0.2, 0.24}, 0, 0)...)
	add(pair("UpperLeg", "UpperLegMesh", [3]float64{0.28, -0.16, 0.06}, [3]float64{0.26, 0.94, 0.3}, 0, 0)...)

	// Trunk
	add(part("Pelvis", "PelvisMesh", [3]float64{0.0, 0.48, 0.12}, [3]float64{0.78, 0.5, 0.62}))
	add(part("Belt", "BeltMesh", [3]float64{0.0, 0.88, 0.08}, [3]float64{0.92, 0.16, 0.92}))
	add(part("LowerTorso", "LowerTorsoMesh", [3]float64{0.0, 1.2, 0.16}, [3]float64{0.72, 0.82, 0.54}))
	add(part("UpperTorso", "UpperTorsoMesh", [3]float64{0.0, 1.86, 0.22}, [3]float64{0.78, 0.68, 0.56}))
	add(part("ChestTrim", "ChestTrimMesh", [3]float64{0.0, 1.74, 0.24}, [3]float64{0.88, 0.2, 0.88}))
	add(part("Collar", "CollarMesh", [3]float64{0.0, 2.04, 0.16}, [3]float64{0.6, 0.22, 0.6}))
	add(part("Neck", "NeckMesh", [3]float64{0.0, 2.28, 0.2}, [3]float64{0.24, 0.28, 0.24}))

	// Head
	add(part("Head", "HeadMesh", [3]float64{0.0, 2.64, 0.32}, [3]float64{0.54, 0.64, 0.52}))
	add(part("HairCrown", "HairCrownMesh", [3]float64{0.0, 2.92, 0.08}, [3]float64{0.6, 0.42, 0.6}))
	add(part("HairBack", "HairBackMesh", [3]float64{0.0, 2.56, -0.34}, [3]float64{0.62, 0.7, 0.36}))
	add(pair("HairSide", "HairSideMesh", [3]float64{0.4, 2.62, 0.32}, [3]float64{0.28, 0.36, 0.26}, 0, 0)...)

	// Arms
	add(pair("Shoulder", "ShoulderMesh", [3]float64{0.96, 1.92, 0.2}, [3]float64{0.28, 0.3, 0.28}, 0, 0)...)
	add(pair("UpperArm", "UpperArmMesh", [3]float64{1.12, 1.54, 0.04}, [3]float64{0.18, 0.7, 0.22}, 22, -10)...)
	add(pair("Forearm", "ForearmMesh", [3]float64{1.24, 0.96, 0.06}, [3]float64{0.16, 0.62, 0.2}, 18, -12)...)
	add(pair("Glove", "GloveMesh", [3]float64{1.2, 0.6, 0.18}, [3]float64{0.2, 0.2, 0.26}, 12, -6)...)
	add(pair("Hand", "HandMesh", [3]float64{1.18, 0.42, 0.18}, [3]float64{0.16, 0.14, 0.2}, 12, -4)...)

	return parts
}
