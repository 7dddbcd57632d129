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

func TestWalkDatasetInsertsAllElements(t *testing.T) {
	b := (&byteBuilder{}).
		explicitShortElement(0x0008, 0x0005, "CS", evenPad("ISO_IR 100")).
		explicitShortElement(0x0010, 0x0010, "PN", evenPad("A^B"))

	bs := newByteStream(b.buf, littleEndian)
	ctx := &context{ts: transferSyntax{explicit: true, strategy: littleEndian}}
	ds := newDataset(b.buf, littleEndian)

	if err := walkDataset(bs, ctx, ds, ""); err != nil {
		t.Fatalf("walkDataset: unexpected error: %v", err)
	}
	if len(ds.Elements) != 2 {
		t.Fatalf("walkDataset: got %d elements, want 2", len(ds.Elements))
	}
}

func TestWalkDatasetStopsAfterUntilTag(t *testing.T) {
	b := (&byteBuilder{}).
		explicitShortElement(0x0008, 0x0005, "CS", evenPad("ISO_IR 100")).
		explicitShortElement(0x0010, 0x0010, "PN", evenPad("A^B"))

	bs := newByteStream(b.buf, littleEndian)
	ctx := &context{ts: transferSyntax{explicit: true, strategy: littleEndian}}
	ds := newDataset(b.buf, littleEndian)

	if err := walkDataset(bs, ctx, ds, "x00080005"); err != nil {
		t.Fatalf("walkDataset: unexpected error: %v", err)
	}
	if len(ds.Elements) != 1 {
		t.Fatalf("walkDataset: got %d elements, want 1 (stopped at until tag)", len(ds.Elements))
	}
	if _, ok := ds.Get("x00100010"); ok {
		t.Fatalf("walkDataset: element after until tag should not have been inserted")
	}
}

func TestWalkDatasetWarnsOnTrailingBytes(t *testing.T) {
	b := (&byteBuilder{}).bytes([]byte{1, 2, 3})
	bs := newByteStream(b.buf, littleEndian)
	ctx := &context{ts: transferSyntax{explicit: true, strategy: littleEndian}}
	ds := newDataset(b.buf, littleEndian)

	if err := walkDataset(bs, ctx, ds, ""); err != nil {
		t.Fatalf("walkDataset: unexpected error: %v", err)
	}
	if len(*bs.warnings) != 1 {
		t.Fatalf("walkDataset: got %d warnings, want 1", len(*bs.warnings))
	}
}
