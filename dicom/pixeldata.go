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

// readEncapsulatedPixelData reads the basic offset table followed by the
// fragment list of an undefined-length PixelData element (PS3.5 A.4). The
// caller has already consumed PixelData's own tag/VR/length.
func readEncapsulatedPixelData(bs *byteStream, elem *Element) error {
	tag, err := readTag(bs)
	if err != nil {
		return fmt.Errorf("reading basic offset table item tag: %v", err)
	}
	if tag != TagItem {
		return fmt.Errorf("expected basic offset table item %s, got %s", TagItem, tag)
	}
	botLength, err := bs.readU32()
	if err != nil {
		return fmt.Errorf("reading basic offset table length: %v", err)
	}

	var bot []uint32
	if botLength > 0 {
		sub, err := bs.readSubStream(int(botLength), bs.strategy)
		if err != nil {
			return err
		}
		for sub.remaining() > 0 {
			v, err := sub.readU32()
			if err != nil {
				return fmt.Errorf("reading basic offset table entry: %v", err)
			}
			bot = append(bot, v)
		}
	}
	elem.BasicOffsetTable = bot

	var fragments []Fragment
	var runningOffset uint32
	for {
		if bs.remaining() < 8 {
			bs.addWarning(fmt.Sprintf("pixel data fragment list: end of buffer reached with %d trailing bytes and no sequence delimiter; stopping", bs.remaining()))
			break
		}
		tag, err := bs.peekTag()
		if err != nil {
			return err
		}
		if tag == TagSequenceDelimitationItem {
			if err := bs.seek(4); err != nil { // tag
				return err
			}
			delimLength, err := bs.readU32()
			if err != nil {
				return err
			}
			if delimLength != 0 {
				bs.addWarning(fmt.Sprintf("%s: delimiter length field is %d, not 0", tag, delimLength))
			}
			if err := bs.seek(int(delimLength)); err != nil {
				return fmt.Errorf("skipping sequence delimiter value: %v", err)
			}
			break
		}
		if tag != TagItem {
			// Not a framed item: read its header anyway, clamp its length to
			// what is left of the buffer, record the block as one best-effort
			// fragment, and keep scanning.
			if err := bs.seek(4); err != nil { // tag
				return err
			}
			fragLength, err := bs.readU32()
			if err != nil {
				return fmt.Errorf("reading fragment length: %v", err)
			}
			if int64(fragLength) > int64(bs.remaining()) {
				fragLength = uint32(bs.remaining())
			}
			bs.addWarning(fmt.Sprintf("pixel data fragment list: expected item or delimiter, got %s; recovering %d bytes as a fragment", tag, fragLength))
			fragments = append(fragments, Fragment{
				Offset:   runningOffset,
				Position: bs.position(),
				Length:   fragLength,
			})
			runningOffset += 8 + fragLength
			if err := bs.seek(int(fragLength)); err != nil {
				return err
			}
			continue
		}
		if _, err := readTag(bs); err != nil {
			return err
		}
		fragLength, err := bs.readU32()
		if err != nil {
			return fmt.Errorf("reading fragment length: %v", err)
		}
		fragments = append(fragments, Fragment{
			Offset:   runningOffset,
			Position: bs.position(),
			Length:   fragLength,
		})
		runningOffset += 8 + fragLength
		if err := bs.seek(int(fragLength)); err != nil {
			return fmt.Errorf("skipping fragment data: %v", err)
		}
	}
	elem.Fragments = fragments
	return nil
}
