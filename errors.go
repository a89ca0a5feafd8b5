// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

import (
	"fmt"
	"runtime"
)

// Sentinel errors mirroring the error kinds a decode can fail with. Callers
// match against these with errors.Is; BadFormatError additionally carries a
// human-readable reason and the call site that raised it.
var (
	ErrFileNotFound        = fmt.Errorf("pescan: file not found")
	ErrOutOfBounds         = fmt.Errorf("pescan: read past end of region")
	ErrRegionTooSmall      = fmt.Errorf("pescan: region too small to hold a header")
	ErrUnrecognizedFormat  = fmt.Errorf("pescan: region is neither a COFF object nor a PE image")
	ErrNoOptionalHeader    = fmt.Errorf("pescan: optional header magic not recognized")
	ErrDirectoryNotMapped  = fmt.Errorf("pescan: data directory does not fall inside any section")
	ErrDirectoryOverflow   = fmt.Errorf("pescan: data directory extends past the section that contains it")
	ErrNoCLRHeader         = fmt.Errorf("pescan: image has no CLR runtime header")
	ErrTooManyDependencies = fmt.Errorf("pescan: dependency descriptor table exceeded its safety bound")
)

// BadFormatError wraps a structural-decode failure with the reason it
// failed and a compact trace of where the decoder detected it, so a caller
// debugging a malformed sample does not have to single-step the decoder.
type BadFormatError struct {
	Reason string
	Err    error
	file   string
	line   int
}

func newBadFormatError(reason string, err error) *BadFormatError {
	_, file, line, _ := runtime.Caller(1)
	return &BadFormatError{Reason: reason, Err: err, file: file, line: line}
}

func (e *BadFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pescan: %s: %v (%s:%d)", e.Reason, e.Err, e.file, e.line)
	}
	return fmt.Sprintf("pescan: %s (%s:%d)", e.Reason, e.file, e.line)
}

func (e *BadFormatError) Unwrap() error { return e.Err }

// IoError wraps an OS-level I/O failure together with the numeric error
// code the platform reported, so a caller can classify the failure (ENOENT,
// EACCES, ...) without re-parsing err.Error()'s platform-specific string.
type IoError struct {
	OSCode int
	Err    error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("pescan: io error (code %d): %v", e.OSCode, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }
