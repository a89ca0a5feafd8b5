// Copyright 2021 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// Anomaly strings logged (not failed on) when a decode succeeds but the
// input looks suspicious. These never change the decoded PeImage value;
// they are purely diagnostic, surfaced through Options.Logger.
const (
	AnoPETimeStampNull          = "file header timestamp set to 0"
	AnoNumberOfSections10Plus   = "number of sections is 10+"
	AnoNumberOfSectionsNull     = "number of sections is 0"
	AnoSizeOfOptionalHeaderNull = "size of optional header is 0"
	AnoAddressOfEntryPointNull  = "address of entry point is 0"
)

// checkAnomalies logs (without failing) the structural oddities a
// successfully decoded FullImage still shouldn't be trusted blindly on.
func checkAnomalies(helper interface{ Warnf(string, ...interface{}) }, coff CoffHeader, opt OptionalHeader) {
	if coff.TimeDateStamp == 0 {
		helper.Warnf(AnoPETimeStampNull)
	}
	if coff.NumberOfSections == 0 {
		helper.Warnf(AnoNumberOfSectionsNull)
	} else if coff.NumberOfSections >= 10 {
		helper.Warnf(AnoNumberOfSections10Plus)
	}
	if coff.SizeOfOptionalHeader == 0 {
		helper.Warnf(AnoSizeOfOptionalHeaderNull)
	}
	if opt.AddressOfEntryPoint == 0 {
		helper.Warnf(AnoAddressOfEntryPointNull)
	}
}
