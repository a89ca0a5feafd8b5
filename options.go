// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

import "github.com/saferwall/pescan/log"

// Options configures a FullHeaders decode.
type Options struct {
	// Fast stops after the section table, skipping directory resolution
	// (COR20 lookup, Import/Delay-Import walk). Useful for callers that
	// only need the header metadata.
	Fast bool

	// Logger receives non-fatal parse diagnostics. Defaults to a
	// discarding logger when nil.
	Logger log.Logger
}

func (o *Options) logger() log.Logger {
	if o == nil || o.Logger == nil {
		return log.NewStdLogger(nil)
	}
	return o.Logger
}
