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

import "testing"

func TestEncapsulatedPixelDataTwoFragments(t *testing.T) {
	frag0 := []byte{0x01, 0x02, 0x03, 0x04}
	frag1 := []byte{0x05, 0x06}

	b := (&byteBuilder{}).explicitLongElement(0x7fe0, 0x0010, "OB", UndefinedLength, nil)
	b.tag(0xfffe, 0xe000).u32(8).u32(0).u32(uint32(len(frag0) + 8)) // basic offset table: frame 0 at 0, frame 1 at len(frag0)+8
	b.tag(0xfffe, 0xe000).u32(uint32(len(frag0))).bytes(frag0)
	b.tag(0xfffe, 0xe000).u32(uint32(len(frag1))).bytes(frag1)
	b.tag(0xfffe, 0xe0dd).u32(0)

	bs := newByteStream(b.buf, littleEndian)
	ctx := &context{ts: transferSyntax{explicit: true, strategy: littleEndian}}

	el, err := readElement(bs, ctx, 0)
	if err != nil {
		t.Fatalf("readElement: unexpected error: %v", err)
	}
	if !el.IsEncapsulatedPixelData() {
		t.Fatalf("readElement: IsEncapsulatedPixelData() = false, want true")
	}
	if len(el.BasicOffsetTable) != 2 || el.BasicOffsetTable[1] != uint32(len(frag0)+8) {
		t.Fatalf("readElement: bad basic offset table: %v", el.BasicOffsetTable)
	}
	if len(el.Fragments) != 2 {
		t.Fatalf("readElement: got %d fragments, want 2", len(el.Fragments))
	}
	if el.Fragments[0].Offset != 0 || el.Fragments[0].Length != uint32(len(frag0)) {
		t.Fatalf("fragment 0: got %+v", el.Fragments[0])
	}
	wantFrag1Offset := uint32(8 + len(frag0))
	if el.Fragments[1].Offset != wantFrag1Offset || el.Fragments[1].Length != uint32(len(frag1)) {
		t.Fatalf("fragment 1: got %+v, want offset %d length %d", el.Fragments[1], wantFrag1Offset, len(frag1))
	}
	if bs.remaining() != 0 {
		t.Fatalf("readElement: %d bytes unconsumed, want 0", bs.remaining())
	}
}

func TestEncapsulatedPixelDataEmptyBasicOffsetTable(t *testing.T) {
	b := (&byteBuilder{}).explicitLongElement(0x7fe0, 0x0010, "OB", UndefinedLength, nil)
	b.tag(0xfffe, 0xe000).u32(0)
	b.tag(0xfffe, 0xe0dd).u32(0)

	bs := newByteStream(b.buf, littleEndian)
	ctx := &context{ts: transferSyntax{explicit: true, strategy: littleEndian}}

	el, err := readElement(bs, ctx, 0)
	if err != nil {
		t.Fatalf("readElement: unexpected error: %v", err)
	}
	if len(el.BasicOffsetTable) != 0 {
		t.Fatalf("readElement: got basic offset table %v, want empty", el.BasicOffsetTable)
	}
	if len(el.Fragments) != 0 {
		t.Fatalf("readElement: got %d fragments, want 0", len(el.Fragments))
	}
}

func TestEncapsulatedPixelDataUnexpectedTagRecoversAsClampedFragment(t *testing.T) {
	unexpected := (&byteBuilder{}).explicitShortElement(0x0008, 0x0000, "UL", []byte{0, 0, 0, 0}) // not an item or delimiter

	b := (&byteBuilder{}).explicitLongElement(0x7fe0, 0x0010, "OB", UndefinedLength, nil)
	b.tag(0xfffe, 0xe000).u32(0)
	bot := len(b.buf)
	b.bytes(unexpected.buf)

	bs := newByteStream(b.buf, littleEndian)
	ctx := &context{ts: transferSyntax{explicit: true, strategy: littleEndian}}

	el, err := readElement(bs, ctx, 0)
	if err != nil {
		t.Fatalf("readElement: unexpected error: %v", err)
	}
	if len(*bs.warnings) == 0 {
		t.Fatalf("expected a warning about the unexpected tag in the fragment list")
	}
	if len(el.Fragments) != 1 {
		t.Fatalf("readElement: got %d fragments, want 1 recovered fragment", len(el.Fragments))
	}
	frag := el.Fragments[0]
	if frag.Offset != 0 {
		t.Fatalf("recovered fragment: got offset %d, want 0", frag.Offset)
	}
	if frag.Position != bot+8 {
		t.Fatalf("recovered fragment: got position %d, want %d (past the block's tag and length field)", frag.Position, bot+8)
	}
	// The block's length field reads as "UL" plus its 2-byte length, far more
	// than the 4 value bytes left, so it is clamped to those 4.
	if frag.Length != uint32(len(unexpected.buf)-8) {
		t.Fatalf("recovered fragment: got length %d, want %d", frag.Length, len(unexpected.buf)-8)
	}
	if bs.remaining() != 0 {
		t.Fatalf("readElement: %d bytes unconsumed, want 0", bs.remaining())
	}
}
