package swr

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// InputElementDesc maps a semantic to a float format at a byte offset within
// a vertex record.
type InputElementDesc struct {
	Semantic Semantic
	Format   gputypes.VertexFormat
	Offset   int
}

// InputLayoutDesc describes one vertex record: its attributes and its
// total size in bytes.
type InputLayoutDesc struct {
	Elements []InputElementDesc
	Stride   int
}

// InputLayout is an immutable, validated InputLayoutDesc.
type InputLayout struct {
	desc InputLayoutDesc
}

func newInputLayout(desc InputLayoutDesc) (*InputLayout, error) {
	if desc.Stride <= 0 {
		return nil, fmt.Errorf("%w: stride %d", ErrInvalidLayout, desc.Stride)
	}
	for _, e := range desc.Elements {
		n := vertexFormatComponents(e.Format)
		if n == 0 {
			return nil, fmt.Errorf("%w: %v has unsupported format %v", ErrInvalidLayout, e.Semantic, e.Format)
		}
		if e.Offset < 0 || e.Offset+n*4 > desc.Stride {
			return nil, fmt.Errorf("%w: %v at offset %d overflows stride %d", ErrInvalidLayout, e.Semantic, e.Offset, desc.Stride)
		}
	}
	desc.Elements = slices.Clone(desc.Elements)
	return &InputLayout{desc: desc}, nil
}

// Desc returns a copy of the layout description.
func (l *InputLayout) Desc() InputLayoutDesc {
	d := l.desc
	d.Elements = slices.Clone(d.Elements)
	return d
}

// Stride returns the size of one vertex record in bytes.
func (l *InputLayout) Stride() int {
	return l.desc.Stride
}

// VertexInputView is a read-only cursor over one vertex record.
// Reading a semantic that is not part of the layout yields zero values.
type VertexInputView struct {
	data   []byte
	layout *InputLayout
}

// NewVertexInputView binds a vertex record to a layout. record must hold at
// least layout.Stride() bytes.
func NewVertexInputView(record []byte, layout *InputLayout) VertexInputView {
	return VertexInputView{data: record, layout: layout}
}

// find returns the element for a semantic using a linear scan.
func (v *VertexInputView) find(sem Semantic) (InputElementDesc, int, bool) {
	for _, e := range v.layout.desc.Elements {
		if e.Semantic == sem {
			return e, vertexFormatComponents(e.Format), true
		}
	}
	return InputElementDesc{}, 0, false
}

func (v *VertexInputView) component(e InputElementDesc, i int) float32 {
	off := e.Offset + i*4
	return math.Float32frombits(binary.NativeEndian.Uint32(v.data[off : off+4]))
}

// read fills dst with up to len(dst) components of sem.
func (v *VertexInputView) read(sem Semantic, dst []float32) {
	e, n, ok := v.find(sem)
	if !ok {
		return
	}
	for i := 0; i < len(dst) && i < n; i++ {
		dst[i] = v.component(e, i)
	}
}

// ReadFloat1 reads component index of sem (x=0, y=1, z=2, w=3).
func (v *VertexInputView) ReadFloat1(sem Semantic, index int) float32 {
	e, n, ok := v.find(sem)
	if !ok || index < 0 || index >= n {
		return 0
	}
	return v.component(e, index)
}

// ReadFloat2 reads sem as a two-component vector.
func (v *VertexInputView) ReadFloat2(sem Semantic) f32.Vec2 {
	var out f32.Vec2
	v.read(sem, out[:])
	return out
}

// ReadFloat3 reads sem as a three-component vector.
func (v *VertexInputView) ReadFloat3(sem Semantic) f32.Vec3 {
	var out f32.Vec3
	v.read(sem, out[:])
	return out
}

// ReadFloat4 reads sem as a four-component vector.
func (v *VertexInputView) ReadFloat4(sem Semantic) f32.Vec4 {
	var out f32.Vec4
	v.read(sem, out[:])
	return out
}
