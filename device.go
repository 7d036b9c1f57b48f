package swr

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"
)

// Device is a software rendering device. It owns the color and depth frame
// buffers and the state of the five pipeline stages.
//
// Stage state persists across draw calls until a setter overwrites it.
// Clear must be called at the start of each frame; the device never clears
// implicitly.
type Device struct {
	width  int
	height int

	color []f32.Vec4
	depth []float32

	ia IAStage
	vs VSStage
	rs RSStage
	ps PSStage
	om OMStage

	// ctx references the VS and PS slot arrays and is shared by every
	// shader invocation.
	ctx ShaderContext

	// vsOut is scratch space for vertex shader results, reused across draws.
	vsOut []VSOutput

	stats Stats
}

// Stats counts pipeline work since the last Clear.
type Stats struct {
	VerticesShaded      int
	TrianglesSubmitted  int
	TrianglesDegenerate int
	TrianglesCulled     int
	PixelsShaded        int
	PixelsDepthRejected int
}

// New creates a device with a width x height frame. The frame buffers are
// filled with the configured clear color and depth.
func New(width, height int, opts ...DeviceOption) *Device {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("swr: invalid frame size %dx%d", width, height))
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Device{
		width:  width,
		height: height,
	}
	d.ia.topology = gputypes.PrimitiveTopologyTriangleList
	d.vs.constantBuffers = make([]*Buffer, o.slots)
	d.ps.constantBuffers = make([]*Buffer, o.slots)
	d.om.clearColor = o.clearColor
	d.om.clearDepth = o.clearDepth
	d.ctx = ShaderContext{vs: &d.vs.constantBuffers, ps: &d.ps.constantBuffers}

	d.color = make([]f32.Vec4, width*height)
	d.depth = make([]float32, width*height)
	d.Clear()

	Logger().Debug("swr: device created", "width", width, "height", height)
	return d
}

// IA returns the input assembler stage.
func (d *Device) IA() *IAStage { return &d.ia }

// VS returns the vertex shader stage.
func (d *Device) VS() *VSStage { return &d.vs }

// RS returns the rasterizer stage.
func (d *Device) RS() *RSStage { return &d.rs }

// PS returns the pixel shader stage.
func (d *Device) PS() *PSStage { return &d.ps }

// OM returns the output merger stage.
func (d *Device) OM() *OMStage { return &d.om }

// CreateBuffer allocates a zeroed buffer of elementCount elements of
// elementSize bytes each.
func (d *Device) CreateBuffer(elementSize, elementCount int, format BufferFormat) *Buffer {
	b := newBuffer(d, elementSize, elementCount, format)
	Logger().Debug("swr: buffer created",
		"elementSize", elementSize, "elementCount", elementCount, "format", format)
	return b
}

// CreateInputLayout validates desc and returns an immutable layout.
// Later changes to desc do not affect the layout.
func (d *Device) CreateInputLayout(desc InputLayoutDesc) (*InputLayout, error) {
	return newInputLayout(desc)
}

// Width returns the frame width in pixels.
func (d *Device) Width() int {
	return d.width
}

// Height returns the frame height in pixels.
func (d *Device) Height() int {
	return d.height
}

// Resize reallocates the frame buffers and fills them from the OM clear
// values. Prior contents are lost. A zero or negative dimension is ignored.
func (d *Device) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.width = width
	d.height = height
	d.color = make([]f32.Vec4, width*height)
	d.depth = make([]float32, width*height)
	d.Clear()
	Logger().Debug("swr: frame buffers resized", "width", width, "height", height)
}

// Clear fills the color buffer with the OM clear color and the depth buffer
// with the OM depth clear value, and resets Stats.
func (d *Device) Clear() {
	c := d.om.clearColor
	for i := range d.color {
		d.color[i] = c
	}
	z := d.om.clearDepth
	for i := range d.depth {
		d.depth[i] = z
	}
	d.stats = Stats{}
}

// ColorBuffer returns the color buffer in row-major order. The slice is
// owned by the device and is replaced by Resize.
func (d *Device) ColorBuffer() []f32.Vec4 {
	return d.color
}

// DepthBuffer returns the depth buffer in row-major order.
func (d *Device) DepthBuffer() []float32 {
	return d.depth
}

// ColorAt returns the color at (x, y), or zero outside the frame.
func (d *Device) ColorAt(x, y int) f32.Vec4 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return f32.Vec4{}
	}
	return d.color[y*d.width+x]
}

// DepthAt returns the depth at (x, y), or zero outside the frame.
func (d *Device) DepthAt(x, y int) float32 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0
	}
	return d.depth[y*d.width+x]
}

// Stats returns the pipeline counters accumulated since the last Clear.
func (d *Device) Stats() Stats {
	return d.stats
}
