package avatar

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/codex-avatar/internal/config"
	"github.com/Faultbox/codex-avatar/internal/logger"
	"github.com/Faultbox/codex-avatar/pkg/gltfbuf"
)

// Generator is recorded in the document's asset block.
const Generator = "Codex Vitae Avatar Generator"

// Assembly errors.
var (
	ErrUnknownShape    = errors.New("unknown shape")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnknownMesh     = errors.New("unknown mesh")
)

// Result is a fully assembled avatar.
type Result struct {
	Document    *gltf.Document
	BufferBytes uint32
	// Geometries maps shape keys to their packed accessors.
	Geometries map[string]gltfbuf.Geometry
}

// tables is the declarative description Build consumes.
type tables struct {
	shapes    []shapeSpec
	materials []materialSpec
	meshes    []meshSpec
	parts     []partSpec
}

func defaultTables() tables {
	return tables{shapes: shapes, materials: materials, meshes: meshes, parts: rig()}
}

// Build generates every shape, packs it into one buffer and assembles the
// avatar document.
func Build(tess config.TessellationConfig) (*Result, error) {
	return defaultTables().build(tess)
}

func (t tables) build(tess config.TessellationConfig) (*Result, error) {
	b := gltfbuf.NewBuilder()

	geometries := make(map[string]gltfbuf.Geometry, len(t.shapes))
	for _, s := range t.shapes {
		m, err := s.Build(tess)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", s.Key, err)
		}
		g, err := b.AddGeometry(m)
		if err != nil {
			return nil, fmt.Errorf("packing %s: %w", s.Key, err)
		}
		geometries[s.Key] = g
		logger.Debug("registered geometry",
			zap.String("shape", s.Key),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("triangles", m.TriangleCount()),
			zap.Uint32("position_accessor", g.Position))
	}

	materialIndex := make(map[string]uint32, len(t.materials))
	docMaterials := make([]*gltf.Material, 0, len(t.materials))
	for i, m := range t.materials {
		materialIndex[m.Name] = uint32(i)
		docMaterials = append(docMaterials, m.toGLTF())
	}

	meshIndex := make(map[string]uint32, len(t.meshes))
	docMeshes := make([]*gltf.Mesh, 0, len(t.meshes))
	for i, m := range t.meshes {
		g, ok := geometries[m.Shape]
		if !ok {
			return nil, fmt.Errorf("mesh %s: %w %q", m.Name, ErrUnknownShape, m.Shape)
		}
		mat, ok := materialIndex[m.Material]
		if !ok {
			return nil, fmt.Errorf("mesh %s: %w %q", m.Name, ErrUnknownMaterial, m.Material)
		}
		meshIndex[m.Name] = uint32(i)
		docMeshes = append(docMeshes, &gltf.Mesh{
			Name: m.Name,
			Primitives: []*gltf.Primitive{{
				Attributes: g.Attributes(),
				Indices:    gltf.Index(g.Indices),
				Material:   gltf.Index(mat),
				Mode:       gltf.PrimitiveTriangles,
			}},
		})
	}

	root := &gltf.Node{
		Name:     RootName,
		Children: make([]uint32, 0, len(t.parts)),
		Rotation: [4]float64{0, 0, 0, 1},
		Scale:    [3]float64{1, 1, 1},
	}
	nodes := []*gltf.Node{root}
	for _, p := range t.parts {
		mesh, ok := meshIndex[p.Mesh]
		if !ok {
			return nil, fmt.Errorf("node %s: %w %q", p.Name, ErrUnknownMesh, p.Mesh)
		}
		root.Children = append(root.Children, uint32(len(nodes)))
		nodes = append(nodes, &gltf.Node{
			Name:        p.Name,
			Mesh:        gltf.Index(mesh),
			Translation: p.Translation,
			Rotation:    p.rotation().Array(),
			Scale:       p.Scale,
		})
	}

	for i, v := range b.Views() {
		logger.Debug("buffer view",
			zap.Int("view", i),
			zap.Uint32("offset", v.ByteOffset),
			zap.Uint32("length", v.ByteLength))
	}

	buffer := b.Buffer()
	doc := &gltf.Document{
		Asset: gltf.Asset{
			Version:   "2.0",
			Generator: Generator,
		},
		Scene:       gltf.Index(0),
		Scenes:      []*gltf.Scene{{Nodes: []uint32{0}}},
		Nodes:       nodes,
		Meshes:      docMeshes,
		Materials:   docMaterials,
		BufferViews: b.Views(),
		Accessors:   b.Accessors(),
		Buffers:     []*gltf.Buffer{buffer},
	}

	logger.Info("assembled avatar",
		zap.Int("nodes", len(nodes)),
		zap.Int("meshes", len(docMeshes)),
		zap.Int("materials", len(docMaterials)),
		zap.Int("accessors", len(doc.Accessors)),
		zap.Uint32("buffer_bytes", buffer.ByteLength))

	return &Result{
		Document:    doc,
		BufferBytes: buffer.ByteLength,
		Geometries:  geometries,
	}, nil
}
