// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// CoffOnlyImage is the decode result for a bare COFF object — no DOS
// stub, no optional header, no sections loaded into memory.
type CoffOnlyImage struct {
	Coff       CoffHeader
	Sections   []SectionHeader
	MetaOffset uint32
	MetaSize   uint32
}

// decodeCoffOnly implements the CoffOnly branch: decode the COFF header
// at offset 0, require the region to be large enough to hold the whole
// section table, decode it, then look for a `.cormeta` section to locate
// any embedded CLR metadata an object file carries ahead of linking.
func decodeCoffOnly(c *Cursor) (*CoffOnlyImage, error) {
	coff, err := decodeCoffHeader(c, 0)
	if err != nil {
		return nil, err
	}

	needed := uint32(coffHeaderSize) + uint32(coff.NumberOfSections)*sectionHeaderSize
	if c.Len() < needed {
		return nil, newBadFormatError("region too small for declared section count", ErrRegionTooSmall)
	}

	sections, err := decodeSectionHeaders(c, coffHeaderSize, coff.NumberOfSections)
	if err != nil {
		return nil, err
	}

	img := &CoffOnlyImage{Coff: coff, Sections: sections}
	for _, s := range sections {
		if s.HasName(".cormeta") {
			img.MetaOffset = s.PointerToRawData
			img.MetaSize = s.SizeOfRawData
			break
		}
	}
	return img, nil
}
