// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// isASCII reports whether every byte in s is a 7-bit ASCII byte. A
// dependency name carrying a byte above 0x7F is rejected rather than
// passed through, since no real loader ever presents one.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
