// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

//go:build !windows

package pescan

import (
	"errors"
	"syscall"
)

// osErrorCode extracts the numeric OS error code from err, falling back
// to 0 when err does not wrap a syscall.Errno (or platform equivalent).
// IoError carries this verbatim rather than a stringified error, so a
// caller can classify the failure (ENOENT, EACCES, ...) programmatically.
func osErrorCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
