// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// overlayOffset returns the file offset of any data appended after the
// last section's raw data, or 0 if the sections run to the end of the
// file (no overlay). This never affects the section/directory decode
// above; it only determines the overlay offset reported on FullImage.
func overlayOffset(sections []SectionHeader, fileLength uint32) int64 {
	var end uint32
	for _, s := range sections {
		raw := s.PointerToRawData + s.SizeOfRawData
		if raw > end {
			end = raw
		}
	}
	if end >= fileLength {
		return 0
	}
	return int64(end)
}
