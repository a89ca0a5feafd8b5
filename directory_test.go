// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

import "testing"

func testSection(va, vsize, rawPtr, rawSize uint32) SectionHeader {
	return SectionHeader{
		VirtualAddress:   va,
		VirtualSize:      vsize,
		PointerToRawData: rawPtr,
		SizeOfRawData:    rawSize,
	}
}

func TestResolveDirectoryAbsent(t *testing.T) {
	off, err := resolveDirectory(0, 0, nil, ResolveOnDisk)
	if err != nil || off != 0 {
		t.Fatalf("resolve(0,...) = %v, %v, want 0, nil", off, err)
	}
}

func TestResolveDirectoryNoMatchingSection(t *testing.T) {
	sections := []SectionHeader{testSection(0x1000, 0x100, 0x400, 0x100)}
	off, err := resolveDirectory(0x5000, 4, sections, ResolveOnDisk)
	if err != nil || off != 0 {
		t.Fatalf("resolve unmatched = %v, %v, want 0, nil", off, err)
	}
}

func TestResolveDirectoryOnDisk(t *testing.T) {
	sections := []SectionHeader{testSection(0x1000, 0x100, 0x400, 0x100)}
	off, err := resolveDirectory(0x1010, 4, sections, ResolveOnDisk)
	if err != nil {
		t.Fatalf("resolve err = %v", err)
	}
	if want := uint32(0x410); off != want {
		t.Fatalf("resolve offset = %#x, want %#x", off, want)
	}
}

func TestResolveDirectoryLoadedReturnsRVA(t *testing.T) {
	sections := []SectionHeader{testSection(0x1000, 0x100, 0x400, 0x100)}
	off, err := resolveDirectory(0x1010, 4, sections, ResolveLoaded)
	if err != nil || off != 0x1010 {
		t.Fatalf("resolve loaded = %v, %v, want 0x1010, nil", off, err)
	}
}

func TestResolveDirectorySizeOverflowsSection(t *testing.T) {
	sections := []SectionHeader{testSection(0x1000, 0x100, 0x400, 0x100)}
	_, err := resolveDirectory(0x10F0, 0x20, sections, ResolveOnDisk)
	if err == nil {
		t.Fatal("expected an error when directory size overruns its section")
	}
}

func TestResolveDirectoryExactFit(t *testing.T) {
	sections := []SectionHeader{testSection(0x1000, 0x100, 0x400, 0x100)}
	off, err := resolveDirectory(0x1000, 0x100, sections, ResolveOnDisk)
	if err != nil || off != 0x400 {
		t.Fatalf("resolve exact fit = %v, %v, want 0x400, nil", off, err)
	}
}

func TestResolveDirectoryFirstMatchWinsOnOverlap(t *testing.T) {
	sections := []SectionHeader{
		testSection(0x1000, 0x200, 0x400, 0x200),
		testSection(0x1000, 0x200, 0x900, 0x200),
	}
	off, err := resolveDirectory(0x1010, 4, sections, ResolveOnDisk)
	if err != nil || off != 0x410 {
		t.Fatalf("resolve overlap = %v, %v, want 0x410, nil", off, err)
	}
}
