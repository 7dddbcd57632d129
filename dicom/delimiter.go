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

// findDelimiter scans bs's buffer, starting at the current cursor, for the
// next occurrence of the tag target. A delimiter's length field is normally
// zero; a non-zero value is tolerated (a warning is logged) and treated as
// zero. It is used where the content between the cursor and the
// delimiter has no element structure the parser can descend through itself --
// the undefined-length UN value that gets reinterpreted as an implicit-VR
// sub-dataset still descends structurally via readElement, but the raw byte
// search here is the fallback for any other undefined-length primitive.
//
// It returns the number of bytes strictly before the delimiter tag, and
// whether a delimiter was actually found. If fewer than 8 bytes remain
// between the cursor and the end of the buffer without a match, the search
// gives up and reports the remaining bytes as the value, un-found: the caller
// is expected to log a warning and treat the rest of the buffer as the value.
func findDelimiter(bs *byteStream, target Tag) (length int, found bool) {
	start := bs.position()
	pos := start
	for pos+8 <= bs.size() {
		group, err1 := bs.strategy.readU16(bs.buf, pos)
		element, err2 := bs.strategy.readU16(bs.buf, pos+2)
		if err1 == nil && err2 == nil && tagFromParts(group, element) == target {
			lenField, err3 := bs.strategy.readU32(bs.buf, pos+4)
			if err3 == nil {
				if lenField != 0 {
					bs.addWarning(fmt.Sprintf("%s: delimiter length field is %d, not 0; treating as 0", target, lenField))
				}
				return pos - start, true
			}
		}
		pos++
	}
	return bs.size() - start, false
}
