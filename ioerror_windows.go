// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

//go:build windows

package pescan

import (
	"errors"

	"golang.org/x/sys/windows"
)

// osErrorCode extracts the numeric Win32 error code from err, falling
// back to 0 when err does not wrap a windows.Errno.
func osErrorCode(err error) int {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
