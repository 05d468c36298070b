// Package gltfbuf packs vertex attributes and indices into a single glTF
// binary buffer and keeps the matching buffer view and accessor records.
package gltfbuf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
)

// Alignment is the byte boundary every buffer view starts on.
const Alignment = 4

// MaxIndex is the largest index storable as an unsigned short.
const MaxIndex = math.MaxUint16

// Builder errors.
var (
	ErrIndexOutOfRange = errors.New("index exceeds unsigned short range")
	ErrUnknownView     = errors.New("unknown buffer view")
)

// Builder accumulates one append-only byte block together with its buffer
// views and accessors. View and accessor indices are handed out in creation
// order starting at 0.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	data      []byte
	views     []*gltf.BufferView
	accessors []*gltf.Accessor
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// align zero-pads the block to the next Alignment boundary.
func (b *Builder) align() {
	if rem := len(b.data) % Alignment; rem != 0 {
		b.data = append(b.data, make([]byte, Alignment-rem)...)
	}
}

func (b *Builder) addView(offset, length int, target gltf.Target) uint32 {
	b.views = append(b.views, &gltf.BufferView{
		Buffer:     0,
		ByteOffset: uint32(offset),
		ByteLength: uint32(length),
		Target:     target,
	})
	return uint32(len(b.views) - 1)
}

// AppendFloats appends values as little-endian float32s in a new view and
// returns the view index. Pass gltf.TargetNone to omit the usage hint.
func (b *Builder) AppendFloats(values []float32, target gltf.Target) uint32 {
	b.align()
	offset := len(b.data)
	for _, v := range values {
		b.data = binary.LittleEndian.AppendUint32(b.data, math.Float32bits(v))
	}
	return b.addView(offset, len(values)*4, target)
}

// AppendIndices appends values as little-endian unsigned shorts in a new
// ELEMENT_ARRAY_BUFFER view and returns the view index. The index is 0
// when err is non-nil.
func (b *Builder) AppendIndices(values []uint32) (uint32, error) {
	return b.AppendIndicesTarget(values, gltf.TargetElementArrayBuffer)
}

// AppendIndicesTarget is AppendIndices with an explicit usage hint.
// The view still starts on a 4-byte boundary even though elements are two
// bytes wide. Nothing is appended if any value exceeds MaxIndex.
func (b *Builder) AppendIndicesTarget(values []uint32, target gltf.Target) (uint32, error) {
	for i, v := range values {
		if v > MaxIndex {
			return 0, fmt.Errorf("%w: value %d at position %d", ErrIndexOutOfRange, v, i)
		}
	}

	b.align()
	offset := len(b.data)
	for _, v := range values {
		b.data = binary.LittleEndian.AppendUint16(b.data, uint16(v))
	}
	return b.addView(offset, len(values)*2, target), nil
}

// AddAccessor records an accessor over view and returns its index.
// min and max are omitted from the output when nil. The count is not
// checked against the view length.
func (b *Builder) AddAccessor(view uint32, componentType gltf.ComponentType, count uint32, accessorType gltf.AccessorType, min, max []float64) uint32 {
	b.accessors = append(b.accessors, &gltf.Accessor{
		BufferView:    gltf.Index(view),
		ComponentType: componentType,
		Count:         count,
		Type:          accessorType,
		Min:           min,
		Max:           max,
	})
	return uint32(len(b.accessors) - 1)
}

// Bytes returns the packed block. The slice aliases builder storage.
func (b *Builder) Bytes() []byte {
	return b.data
}

// Len returns the block size in bytes.
func (b *Builder) Len() int {
	return len(b.data)
}

// Views returns the buffer views in creation order.
func (b *Builder) Views() []*gltf.BufferView {
	return b.views
}

// Accessors returns the accessors in creation order.
func (b *Builder) Accessors() []*gltf.Accessor {
	return b.accessors
}

// View returns the view with the given index.
func (b *Builder) View(index uint32) (*gltf.BufferView, error) {
	if int(index) >= len(b.views) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownView, index)
	}
	return b.views[index], nil
}

// ReadFloats decodes a float view back from the block.
func (b *Builder) ReadFloats(index uint32) ([]float32, error) {
	view, err := b.View(index)
	if err != nil {
		return nil, err
	}
	raw := b.data[view.ByteOffset : view.ByteOffset+view.ByteLength]
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out, nil
}

// ReadIndices decodes an unsigned short view back from the block.
func (b *Builder) ReadIndices(index uint32) ([]uint32, error) {
	view, err := b.View(index)
	if err != nil {
		return nil, err
	}
	raw := b.data[view.ByteOffset : view.ByteOffset+view.ByteLength]
	out := make([]uint32, len(raw)/2)
	for i := range out {
		out[i] = uint32(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return out, nil
}

// Buffer returns the block as a glTF buffer with the payload embedded as a
// base64 data URI.
func (b *Builder) Buffer() *gltf.Buffer {
	buf := &gltf.Buffer{
		ByteLength: uint32(len(b.data)),
		Data:       b.data,
	}
	buf.EmbeddedResource()
	return buf
}
