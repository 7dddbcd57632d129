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

func TestLittleEndianStrategy(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x80, 0x3f}

	if got, err := littleEndian.readU16(buf, 0); err != nil || got != 0x0201 {
		t.Fatalf("readU16: got %v, %v, want 0x0201, nil", got, err)
	}
	if got, err := littleEndian.readU32(buf, 0); err != nil || got != 0x04030201 {
		t.Fatalf("readU32: got %v, %v, want 0x04030201, nil", got, err)
	}
	if got, err := littleEndian.readF32(buf, 4); err != nil || got != 1.0 {
		t.Fatalf("readF32: got %v, %v, want 1.0, nil", got, err)
	}
}

func TestBigEndianStrategy(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04}

	if got, err := bigEndian.readU16(buf, 0); err != nil || got != 0x0102 {
		t.Fatalf("readU16: got %v, %v, want 0x0102, nil", got, err)
	}
	if got, err := bigEndian.readU32(buf, 0); err != nil || got != 0x01020304 {
		t.Fatalf("readU32: got %v, %v, want 0x01020304, nil", got, err)
	}
}

func TestCheckBoundsRejectsOverread(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		n    int
	}{
		{"negative position", -1, 2},
		{"past end", 3, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := checkBounds([]byte{1, 2, 3, 4}, tc.pos, tc.n); err == nil {
				t.Fatalf("checkBounds(pos=%d, n=%d): got nil error, want error", tc.pos, tc.n)
			}
		})
	}
}
