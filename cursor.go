// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

import (
	"bytes"
	"encoding/binary"
)

// Cursor is a bounds-checked view over a byte region — either a memory
// mapped on-disk file or an in-memory module buffer. Every read returns
// ErrOutOfBounds instead of panicking, including when offset+size would
// overflow a uint32, so callers never need to pre-validate an offset
// before passing it through.
type Cursor struct {
	data []byte
}

// NewCursor wraps data for bounds-checked reads. It does not copy data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the size of the underlying region.
func (c *Cursor) Len() uint32 {
	return uint32(len(c.data))
}

// Bytes returns the raw region backing this cursor. Callers must not
// mutate the returned slice.
func (c *Cursor) Bytes() []byte {
	return c.data
}

func (c *Cursor) checkBounds(offset, size uint32) error {
	end := offset + size
	if end < offset {
		return ErrOutOfBounds
	}
	if end > c.Len() {
		return ErrOutOfBounds
	}
	return nil
}

// ReadU8 reads a single byte at offset.
func (c *Cursor) ReadU8(offset uint32) (uint8, error) {
	if err := c.checkBounds(offset, 1); err != nil {
		return 0, err
	}
	return c.data[offset], nil
}

// ReadU16 reads a little-endian uint16 at offset.
func (c *Cursor) ReadU16(offset uint32) (uint16, error) {
	if err := c.checkBounds(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(c.data[offset:]), nil
}

// ReadU32 reads a little-endian uint32 at offset.
func (c *Cursor) ReadU32(offset uint32) (uint32, error) {
	if err := c.checkBounds(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(c.data[offset:]), nil
}

// ReadU64 reads a little-endian uint64 at offset.
func (c *Cursor) ReadU64(offset uint32) (uint64, error) {
	if err := c.checkBounds(offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(c.data[offset:]), nil
}

// ReadBytes returns a copy of n bytes starting at offset.
func (c *Cursor) ReadBytes(offset, n uint32) ([]byte, error) {
	if err := c.checkBounds(offset, n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	copy(buf, c.data[offset:offset+n])
	return buf, nil
}

// ReadStruct decodes a fixed-size little-endian struct at offset using
// encoding/binary, the same unpacking convention the rest of this decoder
// uses for every header type.
func (c *Cursor) ReadStruct(v interface{}, offset uint32) error {
	size := uint32(binary.Size(v))
	raw, err := c.ReadBytes(offset, size)
	if err != nil {
		return err
	}
	return binary.Read(bytes.NewReader(raw), binary.LittleEndian, v)
}

// ReadASCIIZ reads up to maxLen bytes starting at offset and returns the
// substring up to (but not including) the first NUL byte or region end,
// whichever comes first. It never returns an error — a name that runs off
// the end of the region is simply truncated, matching the tolerant string
// lookups the rest of the decoder performs for dependency names.
func (c *Cursor) ReadASCIIZ(offset, maxLen uint32) string {
	if offset >= c.Len() {
		return ""
	}
	end := offset + maxLen
	if end > c.Len() {
		end = c.Len()
	}
	for i := offset; i < end; i++ {
		if c.data[i] == 0 {
			return string(c.data[offset:i])
		}
	}
	return string(c.data[offset:end])
}
