package swr

import (
	"fmt"
	"unsafe"
	"weak"
)

// Buffer is byte-addressable storage for vertex, index or constant data.
//
// Buffers are created by Device.CreateBuffer and may be bound to several
// stage slots at once. A Buffer bound to a stage must stay unmodified while a
// draw call that references it is running.
type Buffer struct {
	elemSize  int
	elemCount int
	format    BufferFormat
	data      []byte

	// device is a non-owning back-reference to the creating Device.
	device weak.Pointer[Device]
}

func newBuffer(d *Device, elementSize, elementCount int, format BufferFormat) *Buffer {
	if elementSize < 0 || elementCount < 0 {
		panic(fmt.Sprintf("swr: invalid buffer dimensions %dx%d", elementSize, elementCount))
	}
	return &Buffer{
		elemSize:  elementSize,
		elemCount: elementCount,
		format:    format,
		data:      alignedBytes(elementSize * elementCount),
		device:    weak.Make(d),
	}
}

// Data returns the raw storage. Writes through the returned slice are
// visible to every stage the buffer is bound to.
func (b *Buffer) Data() []byte {
	return b.data
}

// ElementSize returns the size of one element in bytes.
func (b *Buffer) ElementSize() int {
	return b.elemSize
}

// ElementCount returns the number of elements.
func (b *Buffer) ElementCount() int {
	return b.elemCount
}

// Format returns the logical format tag.
func (b *Buffer) Format() BufferFormat {
	return b.format
}

// Device returns the device that created the buffer, or nil if that device
// has been garbage collected.
func (b *Buffer) Device() *Device {
	return b.device.Value()
}

// UploadData copies count elements from src into the buffer starting at
// element offset. It returns ErrOutOfRange without modifying the buffer if
// offset+count exceeds ElementCount or src holds fewer than count elements.
func (b *Buffer) UploadData(src []byte, count, offset int) error {
	if count < 0 || offset < 0 || offset > b.elemCount || count > b.elemCount-offset {
		return fmt.Errorf("%w: offset %d + count %d > %d elements", ErrOutOfRange, offset, count, b.elemCount)
	}
	if b.elemSize == 0 || count == 0 {
		return nil
	}
	if len(src)/b.elemSize < count {
		return fmt.Errorf("%w: source holds %d bytes, need %d elements of %d", ErrOutOfRange, len(src), count, b.elemSize)
	}
	n := count * b.elemSize
	copy(b.data[offset*b.elemSize:], src[:n])
	return nil
}

// Upload copies the elements of src into b starting at element offset.
// The size of T must equal the buffer's element size.
func Upload[T any](b *Buffer, src []T, offset int) error {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size != b.elemSize {
		return fmt.Errorf("%w: %T is %d bytes, buffer elements are %d", ErrElementSize, zero, size, b.elemSize)
	}
	if len(src) == 0 {
		return b.UploadData(nil, 0, offset)
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), len(src)*size)
	return b.UploadData(raw, len(src), offset)
}

// Elements returns the buffer storage viewed as a slice of T. It returns nil
// if the size of T does not match the element size.
func Elements[T any](b *Buffer) []T {
	var zero T
	if int(unsafe.Sizeof(zero)) != b.elemSize || b.elemCount == 0 || b.elemSize == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b.data[0])), b.elemCount)
}

// alignedBytes allocates n zeroed bytes on an 8-byte boundary so typed views
// of constant and vertex data are properly aligned.
func alignedBytes(n int) []byte {
	if n == 0 {
		return []byte{}
	}
	words := make([]uint64, (n+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), n)
}
