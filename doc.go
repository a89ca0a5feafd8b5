// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package pescan decodes Windows PE/COFF image headers and the CLR
// runtime header, and extracts the first-order dependency list (Import
// and Delay-Import tables) from either an on-disk file or an already
// loaded module image.
package pescan
