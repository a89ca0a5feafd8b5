// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

import "testing"

func buildLoadedModule(size int) *buf {
	f := newBuf(size)
	coffOff := f.peStub()
	f.u16(coffOff, 0x8664)
	f.u16(coffOff+2, 0) // loaded mode needs no section table
	f.u16(coffOff+16, 240)
	f.u16(coffOff+18, 0x2000)

	optOff := coffOff + 20
	f.u16(optOff, MagicPE32Plus)
	f.u32(optOff+108, 16)
	return f
}

func TestExtractBasicInfoWalksImportAndDelayImport(t *testing.T) {
	f := buildLoadedModule(0x2000)
	dirBase := f.peStub() + 20 + 112

	// Import descriptor array at RVA 0x600, loaded mode so the name RVA
	// addresses the module buffer directly.
	f.dir(dirBase+DirImport*8, 0x600, 0)
	f.u32(0x600+12, 0x700)
	f.str(0x700, "ADVAPI32.dll\x00")

	// Delay-import descriptor array at RVA 0x800.
	f.dir(dirBase+DirDelayImport*8, 0x800, 0)
	f.u32(0x800+4, 0x900)
	f.str(0x900, "SHELL32.dll\x00")

	info, err := ExtractBasicInfo(f.b, uint32(len(f.b)))
	if err != nil {
		t.Fatalf("ExtractBasicInfo: %v", err)
	}
	want := []string{"ADVAPI32.dll", "SHELL32.dll"}
	if len(info.Dependencies) != len(want) {
		t.Fatalf("Dependencies = %v, want %v", info.Dependencies, want)
	}
	for i, name := range want {
		if info.Dependencies[i] != name {
			t.Fatalf("Dependencies[%d] = %q, want %q", i, info.Dependencies[i], name)
		}
	}
}

func TestExtractBasicInfoIsCLRFromComDescriptor(t *testing.T) {
	f := buildLoadedModule(0x2000)
	dirBase := f.peStub() + 20 + 112
	f.dir(dirBase+DirComDescriptor*8, 0x1000, cor20HeaderSize)

	info, err := ExtractBasicInfo(f.b, uint32(len(f.b)))
	if err != nil {
		t.Fatalf("ExtractBasicInfo: %v", err)
	}
	if !info.IsCLR {
		t.Fatal("expected IsCLR=true with a populated COM descriptor directory")
	}
}

func TestExtractBasicInfoRejectsNonASCIIName(t *testing.T) {
	f := buildLoadedModule(0x2000)
	dirBase := f.peStub() + 20 + 112
	f.dir(dirBase+DirImport*8, 0x600, 0)
	f.u32(0x600+12, 0x700)
	f.b[0x700] = 0xC3
	f.b[0x701] = 0x28 // invalid/high byte, not plain ASCII
	f.b[0x702] = 0

	_, err := ExtractBasicInfo(f.b, uint32(len(f.b)))
	if err == nil {
		t.Fatal("expected an error for a non-ASCII dependency name")
	}
}

func TestExtractBasicInfoRejectsBufferShorterThanSizeOfImage(t *testing.T) {
	_, err := ExtractBasicInfo(make([]byte, 10), 0x1000)
	if err == nil {
		t.Fatal("expected an error when moduleBase is shorter than sizeOfImage")
	}
}
