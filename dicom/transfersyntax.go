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

import (
	"fmt"
	"strings"
)

// list of transfer syntaxes obtained from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A
const (
	// ImplicitVRLittleEndianUID is the Implicit VR Little Endian UID
	ImplicitVRLittleEndianUID = "1.2.840.10008.1.2"
	// ExplicitVRLittleEndianUID is the Explicit VR Little Endian UID
	ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	// ExplicitVRBigEndianUID is the Explicit VR Big Endian UID
	ExplicitVRBigEndianUID = "1.2.840.10008.1.2.2"
	// DeflatedExplicitVRLittleEndianUID is the Deflated Explicit VR Little Endian UID
	DeflatedExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1.99"
)

// transferSyntaxUIDRoot is the OID branch every standard DICOM transfer
// syntax UID lives under (PS3.6 Annex A). A UID under this root that isn't
// one of the four named above is a compressed/encapsulated-pixel-data
// syntax (JPEG, JPEG 2000, JPEG-LS, RLE, MPEG, ...); a UID outside it isn't
// a DICOM transfer syntax at all.
const transferSyntaxUIDRoot = "1.2.840.10008.1.2"

// transferSyntax captures the body-decoding mode: explicit vs implicit VR,
// endianness, and whether the body is Deflate-compressed. It is resolved once
// from the meta-header's TransferSyntaxUID and then fixed for the whole body
// walk.
type transferSyntax struct {
	explicit bool
	strategy byteOrderStrategy
	deflated bool
}

// resolveTransferSyntax maps a transfer syntax UID to a decoding mode.
// Compressed-pixel-data syntaxes (JPEG Baseline, JPEG 2000, RLE, ...) are not
// individually named: their body framing is explicit VR little endian per
// PS3.5 A.4 regardless of which one is declared, and this decoder never
// interprets pixel bytes, so any UID under the standard transfer syntax OID
// branch that isn't one of the four explicitly handled decodes that way. A
// UID outside that branch entirely is not a DICOM transfer syntax and is
// rejected rather than silently guessed at.
func resolveTransferSyntax(uid string) (transferSyntax, error) {
	switch uid {
	case ImplicitVRLittleEndianUID:
		return transferSyntax{explicit: false, strategy: littleEndian}, nil
	case ExplicitVRLittleEndianUID:
		return transferSyntax{explicit: true, strategy: littleEndian}, nil
	case ExplicitVRBigEndianUID:
		return transferSyntax{explicit: true, strategy: bigEndian}, nil
	case DeflatedExplicitVRLittleEndianUID:
		return transferSyntax{explicit: true, strategy: littleEndian, deflated: true}, nil
	}
	if strings.HasPrefix(uid, transferSyntaxUIDRoot) {
		return transferSyntax{explicit: true, strategy: littleEndian}, nil
	}
	return transferSyntax{}, fmt.Errorf("unsupported transfer syntax UID %q", uid)
}
