// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// COMImageFlags bits of Cor20Header.Flags this decoder surfaces.
const (
	ComImageFlagsILOnly           = 0x00000001
	ComImageFlagsNativeEntrypoint = 0x00000010
)

// Cor20Header is the 72-byte CLR runtime header (IMAGE_COR20_HEADER)
// located through data-directory index 14 (ComDescriptor). Only the
// header itself is decoded; interpreting the metadata streams it points
// to is out of scope — this decoder locates MetaData's offset and size
// and stops there.
type Cor20Header struct {
	Cb                      uint32
	MajorRuntimeVersion     uint16
	MinorRuntimeVersion     uint16
	MetaData                DataDirectory
	Flags                   uint32
	EntryPointRVAorToken    uint32
	Resources               DataDirectory
	StrongNameSignature     DataDirectory
	CodeManagerTable        DataDirectory
	VTableFixups            DataDirectory
	ExportAddressTableJumps DataDirectory
	ManagedNativeHeader     DataDirectory
}

const cor20HeaderSize = 72

// decodeCor20AndMetadata resolves the COM descriptor directory to a file
// offset, decodes the COR20 header there, resolves its MetaData directory
// strictly (unlike the tolerant Import/Delay-Import resolution, a CLR
// image with a COM descriptor but no reachable metadata is malformed),
// and returns the header plus the metadata stream's offset and size.
func decodeCor20AndMetadata(c *Cursor, comDescriptor DataDirectory, sections []SectionHeader, sizeOfImage uint32) (Cor20Header, uint32, uint32, error) {
	var hdr Cor20Header

	corOffset, err := resolveDirectory(comDescriptor.VirtualAddress, comDescriptor.Size, sections, ResolveOnDisk)
	if err != nil {
		return hdr, 0, 0, err
	}
	if corOffset == 0 {
		return hdr, 0, 0, newBadFormatError("COR header missing data directory", nil)
	}

	if err := c.ReadStruct(&hdr, corOffset); err != nil {
		return hdr, 0, 0, newBadFormatError("COR20 header overruns region", err)
	}

	metaOffset, err := resolveDirectory(hdr.MetaData.VirtualAddress, hdr.MetaData.Size, sections, ResolveOnDisk)
	if err != nil {
		return hdr, 0, 0, err
	}
	metaSize := hdr.MetaData.Size

	if metaOffset == 0 || metaSize == 0 || metaSize > sizeOfImage || metaOffset > sizeOfImage-metaSize {
		return hdr, 0, 0, newBadFormatError("invalid COR metadata section span", nil)
	}

	return hdr, metaOffset, metaSize, nil
}
