// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

import "testing"

func TestFullHeadersNoComDescriptorDirectorySlot(t *testing.T) {
	f := newBuf(0x400)
	coffOff := f.peStub()
	f.u16(coffOff, 0x14c)
	f.u16(coffOff+2, 0)
	f.u16(coffOff+16, 96+14*8) // optional header only carries 14 directories
	f.u16(coffOff+18, 0x0102)

	optOff := coffOff + 20
	f.u16(optOff, MagicPE32)
	f.u32(optOff+92, 14) // NumberOfRvaAndSizes: no ComDescriptor slot at all

	img, err := FullHeadersFromBytes(f.b, nil)
	if err != nil {
		t.Fatalf("FullHeadersFromBytes: %v", err)
	}
	if img.Full.Cor20 != nil {
		t.Fatal("expected no CLR header when NumberOfRvaAndSizes excludes DirComDescriptor")
	}
}

func TestFullHeadersZeroedComDescriptorMeansNoCLR(t *testing.T) {
	f := newBuf(0x400)
	coffOff := f.peStub()
	f.u16(coffOff, 0x14c)
	f.u16(coffOff+2, 0)
	f.u16(coffOff+16, 96+16*8)
	f.u16(coffOff+18, 0x0102)

	optOff := coffOff + 20
	f.u16(optOff, MagicPE32)
	f.u32(optOff+92, 16) // all 16 slots present, but ComDescriptor left zeroed

	img, err := FullHeadersFromBytes(f.b, nil)
	if err != nil {
		t.Fatalf("FullHeadersFromBytes: %v", err)
	}
	if img.Full.Cor20 != nil {
		t.Fatal("expected no CLR header when the COM descriptor directory is zeroed")
	}
}

func TestDecodeCor20MetadataExactlyFillsImage(t *testing.T) {
	sections := []SectionHeader{testSection(0x1000, 0x2000, 0x400, 0x2000)}
	c := NewCursor(make([]byte, 0x3000))
	c.data[0x400] = byte(cor20HeaderSize)
	// MetaData directory: RVA 0x1000 (delta 0, file offset 0x400), size
	// 0x1000, so offset+size lands exactly on sizeOfImage (0x1400).
	putU32(c.data, 0x408, 0x1000)
	putU32(c.data, 0x40C, 0x1000)

	com := DataDirectory{VirtualAddress: 0x1000, Size: cor20HeaderSize}
	_, metaOffset, metaSize, err := decodeCor20AndMetadata(c, com, sections, 0x1400)
	if err != nil {
		t.Fatalf("decodeCor20AndMetadata: %v", err)
	}
	if metaOffset != 0x400 || metaSize != 0x1000 {
		t.Fatalf("metaOffset/metaSize = %#x/%#x, want 0x400/0x1000", metaOffset, metaSize)
	}
}

func TestDecodeCor20MetadataOverflowsImageByOneByte(t *testing.T) {
	sections := []SectionHeader{testSection(0x1000, 0x2000, 0x400, 0x2000)}
	c := NewCursor(make([]byte, 0x3000))
	c.data[0x400] = byte(cor20HeaderSize)
	putU32(c.data, 0x408, 0x1000)
	putU32(c.data, 0x40C, 0x1001)

	com := DataDirectory{VirtualAddress: 0x1000, Size: cor20HeaderSize}
	_, _, _, err := decodeCor20AndMetadata(c, com, sections, 0x1400)
	if err == nil {
		t.Fatal("expected BadFormatError when the metadata span overflows SizeOfImage by one byte")
	}
}

func putU32(b []byte, off uint32, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
}
