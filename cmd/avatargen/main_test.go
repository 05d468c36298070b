package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/codex-avatar/internal/config"
)

func testConfig(t *testing.T, path string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Path = path
	cfg.Tessellation = config.TessellationConfig{
		SphereLat:        6,
		SphereLon:        8,
		CylinderSegments: 8,
		DiskSegments:     10,
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestRunWritesAvatar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "avatars", "avatar.gltf")
	cfg := testConfig(t, path)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	doc := new(gltf.Document)
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(data)).Decode(doc))
	require.Len(t, doc.Buffers, 1)
	assert.Len(t, doc.Nodes, 36)

	want := fmt.Sprintf("Wrote %s (%d bytes of buffer data)\n", path, doc.Buffers[0].ByteLength)
	assert.Equal(t, want, out.String())
}

func TestRunReportsWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	cfg := testConfig(t, filepath.Join(blocker, "avatar.gltf"))

	var out bytes.Buffer
	err := run(cfg, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing")
	assert.Empty(t, out.String(), "nothing reported on failure")
}
