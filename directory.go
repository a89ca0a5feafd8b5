// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// ResolveMode selects whether resolveDirectory returns a file offset
// (OnDisk) or hands the RVA straight through (Loaded), since a loaded
// module's RVAs already address its own buffer directly.
type ResolveMode int

const (
	// ResolveOnDisk translates an RVA into a raw file offset via the
	// section table.
	ResolveOnDisk ResolveMode = iota
	// ResolveLoaded returns the RVA unchanged, since it already
	// addresses the in-memory module buffer.
	ResolveLoaded
)

// resolveDirectory converts a (rva, size) data-directory entry into a
// location a Cursor can read through, using the section table to find
// which section backs the RVA. An rva of 0 or an RVA that falls inside no
// section both resolve to 0 without error — callers treat 0 as "directory
// absent", matching the tolerant behavior the Import/Delay-Import walk
// needs. A directory whose size overruns the section that contains it is
// always an error, regardless of mode.
func resolveDirectory(rva, size uint32, sections []SectionHeader, mode ResolveMode) (uint32, error) {
	if rva == 0 {
		return 0, nil
	}

	for _, s := range sections {
		if rva >= s.VirtualAddress && rva < s.VirtualAddress+s.VirtualSize {
			delta := rva - s.VirtualAddress
			if size > s.VirtualSize-delta {
				return 0, newBadFormatError("section too small for directory", ErrDirectoryOverflow)
			}
			if mode == ResolveLoaded {
				return rva, nil
			}
			return s.PointerToRawData + delta, nil
		}
	}

	return 0, nil
}
