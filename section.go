// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

import (
	"bytes"
	"sort"
)

// Section characteristics bitmask values, exported for callers that
// inspect SectionHeader.Characteristics; the decoder itself tests none of
// them. The full IMAGE_SCN_* table carries dozens more flags that are not
// listed here.
const (
	ImageScnCntCode              = 0x00000020
	ImageScnCntInitializedData   = 0x00000040
	ImageScnCntUninitializedData = 0x00000080
	ImageScnMemExecute           = 0x20000000
	ImageScnMemRead              = 0x40000000
	ImageScnMemWrite             = 0x80000000
)

// SectionHeader is the 40-byte on-disk section table entry, identical in
// layout whether it describes an object file or an image.
type SectionHeader struct {
	Name                 [8]byte
	VirtualSize          uint32
	VirtualAddress       uint32
	SizeOfRawData        uint32
	PointerToRawData     uint32
	PointerToRelocations uint32
	PointerToLineNumbers uint32
	NumberOfRelocations  uint16
	NumberOfLineNumbers  uint16
	Characteristics      uint32
}

const sectionHeaderSize = 40

// String returns the section name, trimmed of trailing NUL padding. The
// name is not guaranteed to be null-terminated when it is exactly 8
// characters long.
func (s SectionHeader) String() string {
	n := bytes.IndexByte(s.Name[:], 0)
	if n == -1 {
		n = len(s.Name)
	}
	return string(s.Name[:n])
}

// HasName reports whether the section's raw 8-byte name field equals
// name, treating a non-null-terminated 8-byte match as equal (the exact
// comparison a `.cormeta` scan over an object file's section table needs,
// since `.cormeta` is itself 8 characters and may occupy the field with
// no trailing NUL).
func (s SectionHeader) HasName(name string) bool {
	var want [8]byte
	copy(want[:], name)
	return s.Name == want
}

// decodeSectionHeaders reads count consecutive 40-byte section headers
// starting at offset, requiring the whole table to fit in c.
func decodeSectionHeaders(c *Cursor, offset uint32, count uint16) ([]SectionHeader, error) {
	sections := make([]SectionHeader, count)
	for i := uint16(0); i < count; i++ {
		if err := c.ReadStruct(&sections[i], offset+uint32(i)*sectionHeaderSize); err != nil {
			return nil, newBadFormatError("section table overruns region", err)
		}
	}
	return sections, nil
}

// sortByVirtualAddress returns a copy of sections ordered by ascending
// VirtualAddress. Nothing in the package calls it; directory resolution
// walks sections in declaration order per the first-match-wins tie-break.
func sortByVirtualAddress(sections []SectionHeader) []SectionHeader {
	out := make([]SectionHeader, len(sections))
	copy(out, sections)
	sort.Slice(out, func(i, j int) bool {
		return out[i].VirtualAddress < out[j].VirtualAddress
	})
	return out
}
