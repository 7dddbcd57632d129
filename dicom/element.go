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

// Element describes one occurrence of a tag in the parsed buffer. It never
// owns or copies the value bytes; DataOffset/Length locate them in the buffer
// the owning Dataset was parsed from.
type Element struct {
	Tag Tag

	// VR is the 2-letter Value Representation, e.g. "PN", "SQ", "OB". It may be
	// empty for an implicit-VR element whose tag is unknown to the caller's VR
	// callback (Options has none by default: implicit VR elements get VR "").
	VR string

	// Length is the byte count of the value. For an element that had an
	// undefined wire length, this is the length computed during parsing (from
	// a delimiter position), never the raw 0xFFFFFFFF sentinel.
	Length uint32

	// DataOffset is the offset into the owning Dataset's buffer where the
	// value begins.
	DataOffset int

	// HadUndefinedLength records whether the wire length was the sentinel
	// 0xFFFFFFFF, regardless of what Length was resolved to.
	HadUndefinedLength bool

	// Items holds the ordered sequence items when VR == "SQ" (or, in implicit
	// VR, when the element was detected as a sequence). Mutually exclusive
	// with BasicOffsetTable/Fragments. Nil for non-sequence elements, and also
	// nil for a sequence detected on a private tag in implicit VR: with
	// undefined length its items are parsed only to advance the stream and
	// then discarded; with a defined length the value is skipped unparsed.
	Items []*Dataset

	// BasicOffsetTable and Fragments are populated only for encapsulated
	// PixelData (Tag == TagPixelData, HadUndefinedLength == true). Mutually
	// exclusive with Items.
	BasicOffsetTable []uint32
	Fragments        []Fragment
}

// Fragment describes one contiguous chunk of encapsulated pixel data.
type Fragment struct {
	// Offset is measured from the end of the basic-offset-table item: the
	// position of fragment 0's item tag is offset 0.
	Offset uint32
	// Position is the absolute buffer offset of the fragment's first data
	// byte (the item tag and length field are excluded).
	Position int
	Length   uint32
}

// IsSequence reports whether e carries nested sequence items.
func (e *Element) IsSequence() bool {
	return e.Items != nil
}

// IsEncapsulatedPixelData reports whether e carries an indexed, fragmented
// pixel-data payload rather than a contiguous value.
func (e *Element) IsEncapsulatedPixelData() bool {
	return e.Fragments != nil
}
