// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/saferwall/pescan/log"
)

// FullImage is the decode result for a complete PE image: DOS stub, COFF
// header, normalized optional header, section table, and — when present
// — the CLR runtime header and the resolved metadata span.
type FullImage struct {
	DOS           DOSHeader
	CoffOffset    uint32
	OptOffset     uint32
	Coff          CoffHeader
	Opt           OptionalHeader
	Sections      []SectionHeader
	Cor20         *Cor20Header
	CorOffset     uint32
	MetaOffset    uint32
	MetaSize      uint32
	IsDLL         bool
	IsEXE         bool
	IsConsole     bool
	OverlayOffset int64
	Imports       []Import
	DelayImports  []DelayImport
}

// PeImage is the decoder's output value, a tagged variant over the two
// shapes a decoded region can take. Exactly one of CoffOnly or Full is
// non-nil.
type PeImage struct {
	CoffOnly *CoffOnlyImage
	Full     *FullImage
}

// file is the internal decode vehicle FullHeaders and FullHeadersFromBytes
// build; it owns the mapped region for the duration of one decode.
type file struct {
	cursor *Cursor
	mapped mmap.MMap
	handle *os.File
	opts   *Options
	logger *log.Helper
}

func newFileFromBytes(data []byte, opts *Options) *file {
	if opts == nil {
		opts = &Options{}
	}
	return &file{
		cursor: NewCursor(data),
		opts:   opts,
		logger: log.NewHelper(opts.logger()),
	}
}

// close releases the file handle and mapping this file owns, in reverse
// acquisition order, on every exit path.
func (f *file) close() {
	if f.mapped != nil {
		f.mapped.Unmap()
	}
	if f.handle != nil {
		f.handle.Close()
	}
}

// FullHeaders opens path read-only, maps it, and decodes it fully,
// releasing the mapping and file handle on every exit path.
func FullHeaders(path string, opts *Options) (*PeImage, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, ErrFileNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{OSCode: osErrorCode(err), Err: err}
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, &IoError{OSCode: osErrorCode(err), Err: err}
	}

	ff := newFileFromBytes(data, opts)
	ff.mapped = data
	ff.handle = f
	defer ff.close()

	return ff.decode()
}

// FullHeadersFromBytes decodes data as if it were the contents of an
// on-disk file, without any file I/O. This is the in-memory-buffer
// counterpart to FullHeaders — useful for tests and for callers that
// already have the bytes (e.g. fetched from a remote source).
func FullHeadersFromBytes(data []byte, opts *Options) (*PeImage, error) {
	ff := newFileFromBytes(data, opts)
	return ff.decode()
}

func (f *file) decode() (*PeImage, error) {
	class := ProbeFormat(f.cursor)

	switch class.Kind {
	case FormatCoffObject:
		img, err := decodeCoffOnly(f.cursor)
		if err != nil {
			return nil, err
		}
		return &PeImage{CoffOnly: img}, nil

	case FormatPeImage:
		full, err := f.decodeFullImage(class.PESignatureOffset)
		if err != nil {
			return nil, err
		}
		return &PeImage{Full: full}, nil

	default:
		return nil, newBadFormatError("region is neither a COFF object nor a PE image", ErrUnrecognizedFormat)
	}
}

func (f *file) decodeFullImage(peSigOffset uint32) (*FullImage, error) {
	dos, err := decodeDOSHeader(f.cursor)
	if err != nil {
		return nil, err
	}

	coffOffset := peSigOffset + 4
	coff, err := decodeCoffHeader(f.cursor, coffOffset)
	if err != nil {
		return nil, err
	}

	optOffset := coffOffset + coffHeaderSize
	opt, err := decodeOptionalHeader(f.cursor, optOffset, coff.SizeOfOptionalHeader)
	if err != nil {
		return nil, err
	}

	sectionsOffset := optOffset + uint32(coff.SizeOfOptionalHeader)
	sections, err := decodeSectionHeaders(f.cursor, sectionsOffset, coff.NumberOfSections)
	if err != nil {
		return nil, err
	}

	checkAnomalies(f.logger, coff, opt)

	img := &FullImage{
		DOS:           dos,
		CoffOffset:    coffOffset,
		OptOffset:     optOffset,
		Coff:          coff,
		Opt:           opt,
		Sections:      sections,
		IsDLL:         coff.Characteristics&ImageFileDLL != 0,
		OverlayOffset: overlayOffset(sections, f.cursor.Len()),
	}
	img.IsEXE = !img.IsDLL
	img.IsConsole = opt.Subsystem == ImageSubsystemWindowsCUI

	if f.opts.Fast {
		return img, nil
	}

	if opt.NumberOfRvaAndSizes > DirComDescriptor {
		com := opt.DataDirectory[DirComDescriptor]
		if com.VirtualAddress != 0 && com.Size != 0 {
			cor, metaOffset, metaSize, err := decodeCor20AndMetadata(f.cursor, com, sections, opt.SizeOfImage)
			if err != nil {
				return nil, err
			}
			corOffset, _ := resolveDirectory(com.VirtualAddress, com.Size, sections, ResolveOnDisk)
			img.Cor20 = &cor
			img.CorOffset = corOffset
			img.MetaOffset = metaOffset
			img.MetaSize = metaSize
		}
	}

	if opt.NumberOfRvaAndSizes > DirImport {
		imp := opt.DataDirectory[DirImport]
		if imp.VirtualAddress != 0 {
			off, err := resolveDirectory(imp.VirtualAddress, imp.Size, sections, ResolveOnDisk)
			if err != nil {
				return nil, err
			}
			if off != 0 {
				imports, err := decodeImportTable(f.cursor, off, sections)
				if err != nil {
					return nil, err
				}
				img.Imports = imports
			}
		}
	}

	if opt.NumberOfRvaAndSizes > DirDelayImport {
		dimp := opt.DataDirectory[DirDelayImport]
		if dimp.VirtualAddress != 0 {
			off, err := resolveDirectory(dimp.VirtualAddress, dimp.Size, sections, ResolveOnDisk)
			if err != nil {
				return nil, err
			}
			if off != 0 {
				delayImports, err := decodeDelayImportTable(f.cursor, off, sections)
				if err != nil {
					return nil, err
				}
				img.DelayImports = delayImports
			}
		}
	}

	return img, nil
}

// RequireCor20 returns the image's CLR runtime header, or ErrNoCLRHeader
// if it has none — a convenience for callers that only care about CLR
// images and would otherwise have to nil-check Cor20 themselves.
func (img *FullImage) RequireCor20() (*Cor20Header, error) {
	if img.Cor20 == nil {
		return nil, ErrNoCLRHeader
	}
	return img.Cor20, nil
}

// Dependencies returns the ordered dependency-name list, built from the
// richer Imports/DelayImports detail a FullImage already decoded — Import
// Table names first, then Delay-Import, duplicates preserved.
func (img *FullImage) Dependencies() []string {
	names := make([]string, 0, len(img.Imports)+len(img.DelayImports))
	for _, imp := range img.Imports {
		names = append(names, imp.Name)
	}
	for _, imp := range img.DelayImports {
		names = append(names, imp.Name)
	}
	return names
}
