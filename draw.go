package swr

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/swr/internal/raster"
)

// Draw runs the vertex shader over vertexCount consecutive vertex records
// starting at startVertexLocation and rasterizes every consecutive triple as
// a triangle. Trailing vertices that do not form a full triangle are shaded
// but not drawn.
//
// Draw panics if the topology is not a triangle list or if the vertex
// buffer, input layout or vertex shader is unbound.
func (d *Device) Draw(vertexCount, startVertexLocation int) {
	vb, layout, vs := d.validate("Draw")
	if vertexCount <= 0 {
		return
	}

	out := d.vsOut[:0]
	for i := 0; i < vertexCount; i++ {
		out = append(out, d.shadeVertex(vb, layout, vs, startVertexLocation+i))
	}
	d.vsOut = out
	d.rasterizeList(out)
}

// DrawIndexed is like Draw but fetches vertices through the bound index
// buffer. indexCount indices are read starting at startIndexLocation, and
// baseVertexLocation is added to each before the vertex is fetched. The
// vertex shader runs once per index; results are not shared between
// repeated indices.
//
// DrawIndexed panics on the same conditions as Draw, and also if the index
// buffer is unbound or is not a 16-bit or 32-bit unsigned integer buffer.
func (d *Device) DrawIndexed(indexCount, startIndexLocation, baseVertexLocation int) {
	vb, layout, vs := d.validate("DrawIndexed")
	ib := d.ia.indexBuffer
	if ib == nil {
		panic("swr: DrawIndexed: no index buffer bound")
	}
	indexFormat, ok := ib.format.IndexFormat()
	if !ok {
		panic(fmt.Sprintf("swr: DrawIndexed: unsupported index buffer format %v", ib.format))
	}
	size := 4
	if indexFormat == gputypes.IndexFormatUint16 {
		size = 2
	}
	if ib.elemSize != size {
		panic(fmt.Sprintf("swr: DrawIndexed: %v index buffer has %d-byte elements", ib.format, ib.elemSize))
	}
	if indexCount <= 0 {
		return
	}
	if startIndexLocation < 0 || startIndexLocation > ib.elemCount || indexCount > ib.elemCount-startIndexLocation {
		panic(fmt.Sprintf("swr: DrawIndexed: %d indices from %d outside index buffer of %d elements",
			indexCount, startIndexLocation, ib.elemCount))
	}

	out := d.vsOut[:0]
	end := startIndexLocation + indexCount
	for i := startIndexLocation; i < end; i++ {
		var index int
		if size == 2 {
			index = int(binary.NativeEndian.Uint16(ib.data[i*2:]))
		} else {
			index = int(binary.NativeEndian.Uint32(ib.data[i*4:]))
		}
		out = append(out, d.shadeVertex(vb, layout, vs, index+baseVertexLocation))
	}
	d.vsOut = out
	d.rasterizeList(out)
}

// validate checks the pipeline state shared by Draw and DrawIndexed.
func (d *Device) validate(op string) (*Buffer, *InputLayout, VertexShader) {
	if d.ia.topology != gputypes.PrimitiveTopologyTriangleList {
		panic(fmt.Sprintf("swr: %s: unsupported primitive topology %v", op, d.ia.topology))
	}
	if d.ia.vertexBuffer == nil {
		panic(fmt.Sprintf("swr: %s: no vertex buffer bound", op))
	}
	if d.ia.inputLayout == nil {
		panic(fmt.Sprintf("swr: %s: no input layout bound", op))
	}
	if d.vs.shader == nil {
		panic(fmt.Sprintf("swr: %s: no vertex shader bound", op))
	}
	return d.ia.vertexBuffer, d.ia.inputLayout, d.vs.shader
}

func (d *Device) shadeVertex(vb *Buffer, layout *InputLayout, vs VertexShader, index int) VSOutput {
	stride := layout.Stride()
	if index < 0 || len(vb.data) < stride || index > (len(vb.data)-stride)/stride {
		panic(fmt.Sprintf("swr: vertex %d outside vertex buffer of %d bytes (stride %d)", index, len(vb.data), stride))
	}
	base := index * stride
	view := NewVertexInputView(vb.data[base:base+stride], layout)
	d.stats.VerticesShaded++
	return vs.ShadeVertex(&view, &d.ctx)
}

func (d *Device) rasterizeList(verts []VSOutput) {
	for i := 0; i+2 < len(verts); i += 3 {
		d.stats.TrianglesSubmitted++
		d.rasterizeTriangle(&verts[i], &verts[i+1], &verts[i+2])
	}
}

// rasterizeTriangle scan-converts one triangle with an edge-function test
// over its clamped bounding box.
func (d *Device) rasterizeTriangle(v0, v1, v2 *VSOutput) {
	vp := d.rs.viewport
	if !vp.Valid() {
		vp = FullViewport(d.width, d.height)
	}

	verts := [3]*VSOutput{v0, v1, v2}
	var (
		pts  [3]raster.Point
		invW [3]float32
		ndcZ [3]float32
	)
	for i, v := range verts {
		iw := 1 / v.Position[3]
		invW[i] = iw
		ndcZ[i] = v.Position[2] * iw
		pts[i] = raster.ToScreen(v.Position[0]*iw, v.Position[1]*iw,
			float32(vp.X), float32(vp.Y), float32(vp.Width), float32(vp.Height))
	}

	tri := raster.Setup(pts[0], pts[1], pts[2])
	if tri.Degenerate() {
		d.stats.TrianglesDegenerate++
		return
	}
	if d.rs.cullBackface && tri.Backfacing() {
		d.stats.TrianglesCulled++
		return
	}

	clip := raster.Rect{MinX: vp.X, MinY: vp.Y, MaxX: vp.X + vp.Width, MaxY: vp.Y + vp.Height}.
		Intersect(raster.Rect{MaxX: d.width, MaxY: d.height})
	box := raster.Bounds(pts[0], pts[1], pts[2], clip)
	if box.Empty() {
		return
	}

	ps := d.ps.shader
	wireframe := d.rs.wireframe
	invArea := 1 / tri.Area

	for y := box.MinY; y < box.MaxY; y++ {
		row := y * d.width
		for x := box.MinX; x < box.MaxX; x++ {
			sample := raster.Point{X: float32(x) + 0.5, Y: float32(y) + 0.5}
			w0, w1, w2 := tri.Weights(sample)
			if !tri.Inside(w0, w1, w2) {
				continue
			}
			if wireframe && !tri.NearEdge(w0, w1, w2, raster.WireframeTolerance) {
				continue
			}

			b0, b1, b2 := w0*invArea, w1*invArea, w2*invArea

			// Perspective-correct weights: each vertex contributes b_i/w_i.
			pw0, pw1, pw2 := b0*invW[0], b1*invW[1], b2*invW[2]
			denom := pw0 + pw1 + pw2
			if denom <= 0 {
				continue
			}

			// Depth is weighted like any attribute so it stays within the
			// range spanned by the vertices.
			depth := (pw0*ndcZ[0] + pw1*ndcZ[1] + pw2*ndcZ[2]) / denom
			idx := row + x
			if !(depth < d.depth[idx]) {
				d.stats.PixelsDepthRejected++
				continue
			}

			in := PSInput{
				Barycentric: f32.Vec3{b0, b1, b2},
				Depth:       depth,
			}
			for c := range in.Color {
				in.Color[c] = (pw0*v0.Color[c] + pw1*v1.Color[c] + pw2*v2.Color[c]) / denom
			}

			// A nil pixel shader renders depth only.
			if ps != nil {
				d.color[idx] = ps.ShadePixel(&in, &d.ctx)
			}
			d.depth[idx] = depth
			d.stats.PixelsShaded++
		}
	}
}
