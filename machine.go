// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package pescan

// Machine type values the COFF header's Machine field carries. Only the
// architectures MachineName names are kept; the full IMAGE_FILE_MACHINE_*
// table carries many more that nothing here reports.
const (
	ImageFileMachineUnknown = 0x0
	ImageFileMachineI386    = 0x14c
	ImageFileMachineAMD64   = 0x8664
	ImageFileMachineARM     = 0x1c0
	ImageFileMachineARM64   = 0xAA64
	ImageFileMachineARMNT   = 0x1c4
	ImageFileMachineIA64    = 0x200
)

var machineNames = map[uint16]string{
	ImageFileMachineUnknown: "unknown",
	ImageFileMachineI386:    "x86",
	ImageFileMachineAMD64:   "x64",
	ImageFileMachineARM:     "ARM",
	ImageFileMachineARM64:   "ARM64",
	ImageFileMachineARMNT:   "ARM Thumb-2",
	ImageFileMachineIA64:    "Itanium",
}

// MachineName returns a human-readable name for a COFF Machine value, or
// "?" for one this decoder doesn't recognize.
func MachineName(machine uint16) string {
	if name, ok := machineNames[machine]; ok {
		return name
	}
	return "?"
}

var subsystemNames = map[uint16]string{
	0:  "unknown",
	1:  "native",
	2:  "Windows GUI",
	3:  "Windows console",
	5:  "OS/2 console",
	7:  "POSIX console",
	9:  "Windows CE GUI",
	10: "EFI application",
	14: "Xbox",
}

// SubsystemName returns a human-readable name for an optional header
// Subsystem value, or "?" for one this decoder doesn't recognize.
func SubsystemName(subsystem uint16) string {
	if name, ok := subsystemNames[subsystem]; ok {
		return name
	}
	return "?"
}
