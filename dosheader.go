// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// DOSHeader is the MS-DOS stub every PE image begins with. Only the
// fields this decoder actually reports are kept; the stub's legacy
// relocation-table/paragraph fields are not part of any PeImage value.
type DOSHeader struct {
	Magic                 uint16
	AddressOfNewEXEHeader uint32
}

// decodeDOSHeader reads the DOS stub's magic and e_lfanew. It assumes the
// caller already ran ProbeFormat and knows the region classifies as
// FormatPeImage — this is purely a courtesy re-decode for callers that
// want the raw stub fields alongside the rest of PeImage; the PE
// signature offset used for the rest of the decode always comes from
// FormatClass.PESignatureOffset, not from this header.
func decodeDOSHeader(c *Cursor) (DOSHeader, error) {
	var h DOSHeader
	magic, err := c.ReadU16(0)
	if err != nil {
		return h, newBadFormatError("DOS header overruns region", err)
	}
	elfanew, err := c.ReadU32(60)
	if err != nil {
		return h, newBadFormatError("DOS header overruns region", err)
	}
	h.Magic = magic
	h.AddressOfNewEXEHeader = elfanew
	return h, nil
}
