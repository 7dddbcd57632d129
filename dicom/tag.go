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

import "fmt"

// Tag is the canonical "xggggeeee" rendering of a DICOM (group, element) pair, as
// specified in PS3.5 7.1. Tags are compared and used as map keys as strings
// throughout this package rather than as a numeric type: the canonical form is
// zero-padded, so lexicographic and numeric comparison agree.
type Tag string

// Well-known tags used directly by the parser.
const (
	// TagItem introduces one nested dataset within a sequence or one fragment
	// within encapsulated pixel data.
	TagItem Tag = "xfffee000"
	// TagItemDelimitationItem terminates an undefined-length sequence item.
	TagItemDelimitationItem Tag = "xfffee00d"
	// TagSequenceDelimitationItem terminates an undefined-length sequence or
	// undefined-length encapsulated pixel data.
	TagSequenceDelimitationItem Tag = "xfffee0dd"
	// TagPixelData is (7FE0,0010); undefined length on this tag always means
	// encapsulated (compressed) pixel data.
	TagPixelData Tag = "x7fe00010"
	// TagTransferSyntaxUID is the meta-header element naming the body's
	// transfer syntax.
	TagTransferSyntaxUID Tag = "x00020010"
)

// UndefinedLength is the sentinel value-length that signals "read until the
// matching delimiter" rather than a literal byte count.
const UndefinedLength uint32 = 0xFFFFFFFF

// tagFromParts renders (group, element) in canonical form.
func tagFromParts(group, element uint16) Tag {
	return Tag(fmt.Sprintf("x%04x%04x", group, element))
}

// groupNumber returns the group component of a canonical tag. It is used only
// for tag-range comparisons (e.g. "is this still in the meta-header group");
// element-wise comparisons elsewhere stay on the string form per design.
func (t Tag) groupNumber() uint16 {
	var group uint16
	fmt.Sscanf(string(t)[1:5], "%04x", &group)
	return group
}

// isPrivate reports whether t belongs to a private (odd group number) tag, as
// opposed to a public (even group number) tag. PS3.5 7.8.1.
func (t Tag) isPrivate() bool {
	return t.groupNumber()%2 == 1
}

// readTag reads a (group, element) pair using the stream's active byte-array
// strategy and renders it in canonical form.
func readTag(bs *byteStream) (Tag, error) {
	group, err := bs.readU16()
	if err != nil {
		return "", fmt.Errorf("reading tag group: %v", err)
	}
	element, err := bs.readU16()
	if err != nil {
		return "", fmt.Errorf("reading tag element: %v", err)
	}
	return tagFromParts(group, element), nil
}
