package avatar

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
)

// Encode serializes the document as glTF JSON with its buffer embedded.
func Encode(doc *gltf.Document, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = false
	if indent {
		enc.SetJSONIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding gltf: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes the document and writes it to path, creating the parent
// directory if needed. Nothing is written if encoding fails.
func Write(doc *gltf.Document, path string, indent bool) error {
	data, err := Encode(doc, indent)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
