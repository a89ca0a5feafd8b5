// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// BasicInfo is the result of inspecting an already-loaded module image:
// whether it carries a CLR payload, the raw Import/Delay-Import
// directory RVAs, and the ordered dependency list recovered from both
// tables (Import Table entries first, then Delay-Import, duplicates
// preserved).
type BasicInfo struct {
	IsCLR        bool
	ImportRVA    uint32
	DelayLoadRVA uint32
	Dependencies []string
}

// ExtractBasicInfo inspects an OS-loaded module: moduleBase is the
// module's first byte in memory and sizeOfImage is its declared
// SizeOfImage, both supplied by a caller-side LibraryLoader. Because the
// module is already mapped at its intended addresses, every RVA in the
// optional header and in the Import/Delay-Import tables addresses
// moduleBase directly — no section-table translation is needed, which is
// what makes this path cheaper than FullHeaders.
func ExtractBasicInfo(moduleBase []byte, sizeOfImage uint32) (*BasicInfo, error) {
	if uint32(len(moduleBase)) < sizeOfImage {
		return nil, newBadFormatError("module buffer shorter than declared size of image", ErrOutOfBounds)
	}

	c := NewCursor(moduleBase[:sizeOfImage])

	class := ProbeFormat(c)
	if class.Kind != FormatPeImage {
		return nil, newBadFormatError("loaded module is not a PE image", ErrUnrecognizedFormat)
	}

	coffOffset := class.PESignatureOffset + 4
	coff, err := decodeCoffHeader(c, coffOffset)
	if err != nil {
		return nil, err
	}

	optOffset := coffOffset + coffHeaderSize
	opt, err := decodeOptionalHeader(c, optOffset, coff.SizeOfOptionalHeader)
	if err != nil {
		return nil, err
	}

	info := &BasicInfo{}

	if opt.NumberOfRvaAndSizes > DirImport {
		info.ImportRVA = opt.DataDirectory[DirImport].VirtualAddress
	}
	if opt.NumberOfRvaAndSizes > DirDelayImport {
		info.DelayLoadRVA = opt.DataDirectory[DirDelayImport].VirtualAddress
	}
	if opt.NumberOfRvaAndSizes > DirComDescriptor {
		com := opt.DataDirectory[DirComDescriptor]
		info.IsCLR = com.VirtualAddress != 0 && com.Size != 0
	}

	if info.ImportRVA > 0 {
		names, err := walkLoadedDescriptorTable(c, info.ImportRVA, importDescriptorSize, 12)
		if err != nil {
			return nil, err
		}
		info.Dependencies = append(info.Dependencies, names...)
	}

	if info.DelayLoadRVA > 0 {
		names, err := walkLoadedDescriptorTable(c, info.DelayLoadRVA, delayImportDescriptorSize, 4)
		if err != nil {
			return nil, err
		}
		info.Dependencies = append(info.Dependencies, names...)
	}

	return info, nil
}

// walkLoadedDescriptorTable walks a fixed-stride descriptor array starting
// at rva, reading a DLL-name RVA at nameFieldOffset within each record and
// terminating on an all-zero record (equivalently, a zero name field).
// Since the module is already loaded, the name RVA addresses the cursor
// directly — no section lookup is needed.
func walkLoadedDescriptorTable(c *Cursor, rva, stride, nameFieldOffset uint32) ([]string, error) {
	var names []string
	for i := 0; i < maxDependencyDescriptors; i++ {
		recordOffset := rva + uint32(i)*stride
		nameRVA, err := c.ReadU32(recordOffset + nameFieldOffset)
		if err != nil {
			return nil, newBadFormatError("dependency descriptor table overruns module", err)
		}
		if nameRVA == 0 {
			return names, nil
		}
		name := c.ReadASCIIZ(nameRVA, maxDllNameLength)
		if !isASCII(name) {
			return nil, newBadFormatError("dependency name contains non-ASCII bytes", nil)
		}
		names = append(names, name)
	}
	return nil, newBadFormatError("import table too long", ErrTooManyDependencies)
}
