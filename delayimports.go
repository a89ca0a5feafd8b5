// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// DelayImportDescriptor is the 32-byte delay-load import descriptor. The
// field layout (Name at offset +4, following a 4-byte Attributes word)
// is load-bearing: it is what lets both on-disk and loaded-mode walks
// locate the DLL name with a single fixed offset.
type DelayImportDescriptor struct {
	Attributes                 uint32
	Name                       uint32
	ModuleHandleRVA            uint32
	ImportAddressTableRVA      uint32
	ImportNameTableRVA         uint32
	BoundImportAddressTableRVA uint32
	UnloadInformationTableRVA  uint32
	TimeDateStamp              uint32
}

const delayImportDescriptorSize = 32

// DelayImport mirrors Import for the Delay-Import Table.
type DelayImport struct {
	Name       string
	Descriptor DelayImportDescriptor
}

// decodeDelayImportTable walks the Delay-Import Table the same way
// decodeImportTable walks the Import Table, terminating on an all-zero
// descriptor.
func decodeDelayImportTable(c *Cursor, fileOffset uint32, sections []SectionHeader) ([]DelayImport, error) {
	var imports []DelayImport
	for i := 0; i < maxDependencyDescriptors; i++ {
		var d DelayImportDescriptor
		if err := c.ReadStruct(&d, fileOffset+uint32(i)*delayImportDescriptorSize); err != nil {
			return nil, newBadFormatError("delay-import descriptor table overruns region", err)
		}
		if d == (DelayImportDescriptor{}) {
			return imports, nil
		}

		nameOffset, err := resolveDirectory(d.Name, 0, sections, ResolveOnDisk)
		if err != nil {
			return nil, err
		}
		if nameOffset == 0 && d.Name != 0 {
			return nil, newBadFormatError("delay-import descriptor name RVA lies outside every section", nil)
		}

		name := c.ReadASCIIZ(nameOffset, maxDllNameLength)
		if !isASCII(name) {
			return nil, newBadFormatError("delay-import name contains non-ASCII bytes", nil)
		}
		imports = append(imports, DelayImport{Name: name, Descriptor: d})
	}
	return nil, newBadFormatError("delay-import table too long", ErrTooManyDependencies)
}
