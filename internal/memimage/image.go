// Package memimage implements a byte-addressed view over loaded firmware
// data, filled from Intel-HEX or raw binary files.
package memimage

import "sort"

// FillByte is the value returned for addresses that no loaded segment covers,
// matching the erased-flash convention of Intel-HEX tooling.
const FillByte = 0xFF

type segment struct {
	start uint32
	data  []byte
}

// Image is an immutable, sparse, byte-indexed memory image.
type Image struct {
	segments []segment
}

// Byte returns the byte stored at the given address, or FillByte for
// addresses outside of all loaded segments.
func (img *Image) Byte(address uint32) byte {
	for _, seg := range img.segments {
		if address >= seg.start && address-seg.start < uint32(len(seg.data)) {
			return seg.data[address-seg.start]
		}
	}
	return FillByte
}

// Mapped reports whether the address is covered by loaded data.
func (img *Image) Mapped(address uint32) bool {
	for _, seg := range img.segments {
		if address >= seg.start && address-seg.start < uint32(len(seg.data)) {
			return true
		}
	}
	return false
}

// Size returns the total number of loaded bytes.
func (img *Image) Size() int {
	size := 0
	for _, seg := range img.segments {
		size += len(seg.data)
	}
	return size
}

// Extent returns the half-open address interval covering all loaded data.
// It returns 0, 0 for an empty image.
func (img *Image) Extent() (start, end uint32) {
	if len(img.segments) == 0 {
		return 0, 0
	}
	start = img.segments[0].start
	end = img.segments[0].start + uint32(len(img.segments[0].data))
	for _, seg := range img.segments[1:] {
		if seg.start < start {
			start = seg.start
		}
		if segEnd := seg.start + uint32(len(seg.data)); segEnd > end {
			end = segEnd
		}
	}
	return start, end
}

// add appends data at the given address, merging with an adjacent previous
// segment when the data continues without a gap.
func (img *Image) add(address uint32, data []byte) {
	if len(data) == 0 {
		return
	}
	if n := len(img.segments); n > 0 {
		last := &img.segments[n-1]
		if last.start+uint32(len(last.data)) == address {
			last.data = append(last.data, data...)
			return
		}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	img.segments = append(img.segments, segment{start: address, data: buf})
}

// normalize sorts the segments by start address for deterministic lookups.
func (img *Image) normalize() {
	sort.Slice(img.segments, func(i, j int) bool {
		return img.segments[i].start < img.segments[j].start
	})
}
