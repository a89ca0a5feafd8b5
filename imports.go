// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// maxDependencyDescriptors bounds the Import/Delay-Import descriptor walk
// so a corrupt, non-zero-terminated table cannot loop unbounded.
const maxDependencyDescriptors = 16 * 1024

const maxDllNameLength = 256

// ImportDescriptor is the 20-byte IMAGE_IMPORT_DESCRIPTOR record.
type ImportDescriptor struct {
	OriginalFirstThunk uint32
	TimeDateStamp      uint32
	ForwarderChain     uint32
	Name               uint32
	FirstThunk         uint32
}

const importDescriptorSize = 20

// Import is one resolved entry of the Import Table: a DLL name and the
// descriptor that named it. FullHeaders enriches the on-disk decode with
// this detail; ExtractBasicInfo's loaded-mode walk only needs the bare
// name.
type Import struct {
	Name       string
	Descriptor ImportDescriptor
}

// decodeImportTable walks the Import Table starting at fileOffset (already
// resolved through the section table) until an all-zero descriptor
// terminates the list, resolving each descriptor's Name RVA to a DLL name
// via the section table. An import whose Name RVA resolves to no section
// is treated as malformed, not silently skipped, per the extractor's
// failure semantics.
func decodeImportTable(c *Cursor, fileOffset uint32, sections []SectionHeader) ([]Import, error) {
	var imports []Import
	for i := 0; i < maxDependencyDescriptors; i++ {
		var d ImportDescriptor
		if err := c.ReadStruct(&d, fileOffset+uint32(i)*importDescriptorSize); err != nil {
			return nil, newBadFormatError("import descriptor table overruns region", err)
		}
		if d == (ImportDescriptor{}) {
			return imports, nil
		}

		nameOffset, err := resolveDirectory(d.Name, 0, sections, ResolveOnDisk)
		if err != nil {
			return nil, err
		}
		if nameOffset == 0 && d.Name != 0 {
			return nil, newBadFormatError("import descriptor name RVA lies outside every section", nil)
		}

		name := c.ReadASCIIZ(nameOffset, maxDllNameLength)
		if !isASCII(name) {
			return nil, newBadFormatError("import name contains non-ASCII bytes", nil)
		}
		imports = append(imports, Import{Name: name, Descriptor: d})
	}
	return nil, newBadFormatError("import table too long", ErrTooManyDependencies)
}
