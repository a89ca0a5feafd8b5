// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

//go:build gofuzz

package pescan

// Fuzz is the entry point github.com/dvyukov/go-fuzz drives: it must
// never panic on arbitrary input, only return 0 (uninteresting) or 1
// (parsed successfully).
func Fuzz(data []byte) int {
	img, err := FullHeadersFromBytes(data, nil)
	if err != nil || img == nil {
		return 0
	}
	return 1
}
