// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicom

// vrKind groups VRs that share how their value field is framed and
// interpreted. The element reader only needs has32BitLength; vrKind is also
// consulted by the value accessors for trimming.
type vrKind int

const (
	textVR             vrKind = iota // space-padded text; trimmed both sides
	trailingTrimVR                   // text trimmed on the trailing side only
	numberBinaryVR                   // fixed-width binary numbers
	bulkDataVR                       // OB/OD/OF/OL/OW/UC/UN/UR: large, possibly-undefined-length payloads
	uniqueIdentifierVR               // UI: NUL-padded
	sequenceVR                       // SQ
	tagVR                            // AT: pairs of u16
)

// has32BitLength reports whether, under explicit VR, vr's length field is a
// 32-bit field preceded by two reserved bytes (PS3.5 7.1.2) rather than a
// 16-bit field immediately after the VR.
func has32BitLength(vr string) bool {
	switch vr {
	case "OB", "OD", "OF", "OL", "OW", "SQ", "UC", "UR", "UT", "UN":
		return true
	default:
		return false
	}
}

// kindOf classifies vr for the accessor layer. Unknown VRs (including the
// empty string produced by an implicit-VR element with no dictionary hit)
// classify as bulkDataVR, the safest default: no trimming, no numeric
// reinterpretation.
func kindOf(vr string) vrKind {
	switch vr {
	case "CS", "SH", "LO", "AS", "AE", "DA", "IS", "DS":
		return textVR
	case "PN", "LT", "ST", "UT", "DT", "TM":
		return trailingTrimVR
	case "SS", "US", "SL", "UL", "FL", "FD":
		return numberBinaryVR
	case "OB", "OD", "OL", "OW", "OF", "UC", "UN", "UR":
		return bulkDataVR
	case "AT":
		return tagVR
	case "UI":
		return uniqueIdentifierVR
	case "SQ":
		return sequenceVR
	default:
		return bulkDataVR
	}
}
