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

// readSequenceItems reads the Item-tagged children of elem, an SQ (or
// heuristically-detected SQ) element, populating elem.Items. seqLength is the
// value length read from the SQ element's own header: either a literal byte
// count or UndefinedLength, in which case the item list runs until a Sequence
// Delimitation Item.
func readSequenceItems(bs *byteStream, ctx *context, elem *Element, depth int, seqLength uint32) error {
	if depth+1 > maxSequenceDepth {
		return fmt.Errorf("sequence nesting exceeds maximum depth %d", maxSequenceDepth)
	}
	elem.Items = []*Dataset{}

	if seqLength != UndefinedLength {
		sub, err := bs.readSubStream(int(seqLength), bs.strategy)
		if err != nil {
			return err
		}
		for sub.remaining() > 0 {
			item, err := readSequenceItem(sub, ctx, depth)
			if err != nil {
				return err
			}
			elem.Items = append(elem.Items, item)
		}
		return nil
	}

	for {
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
				bs.addWarning(fmt.Sprintf("%s: delimiter length field is %d, not 0; treating as 0", tag, delimLength))
			}
			return nil
		}
		item, err := readSequenceItem(bs, ctx, depth)
		if err != nil {
			return err
		}
		elem.Items = append(elem.Items, item)
	}
}

// readSequenceItem reads one Item-tagged child: its tag, 4-byte length, and
// either a fixed-length or delimiter-terminated run of child elements.
func readSequenceItem(bs *byteStream, ctx *context, depth int) (*Dataset, error) {
	tag, err := readTag(bs)
	if err != nil {
		return nil, fmt.Errorf("reading item tag: %v", err)
	}
	if tag != TagItem {
		return nil, fmt.Errorf("expected item tag %s, got %s", TagItem, tag)
	}
	itemOffset := bs.position() - 4
	itemLength, err := bs.readU32()
	if err != nil {
		return nil, fmt.Errorf("reading item length: %v", err)
	}

	if itemLength != UndefinedLength {
		sub, err := bs.readSubStream(int(itemLength), bs.strategy)
		if err != nil {
			return nil, err
		}
		// item's buffer must be sub's, not bs's: every element read below
		// reports its DataOffset relative to sub, and offsets are only
		// meaningful against the buffer they were measured against.
		item := newDataset(sub.buf, bs.strategy)
		item.DataOffset = itemOffset
		item.Length = itemLength
		for sub.remaining() > 0 {
			el, err := readElement(sub, ctx, depth+1)
			if err != nil {
				return nil, err
			}
			item.Elements[el.Tag] = el
		}
		return item, nil
	}

	item := newDataset(bs.buf, bs.strategy)
	item.DataOffset = itemOffset
	item.HadUndefinedLength = true
	start := bs.position()
	for {
		tag, err := bs.peekTag()
		if err != nil {
			return nil, err
		}
		if tag == TagItemDelimitationItem {
			if err := bs.seek(4); err != nil { // tag
				return nil, err
			}
			delimLength, err := bs.readU32()
			if err != nil {
				return nil, err
			}
			if delimLength != 0 {
				bs.addWarning(fmt.Sprintf("%s: delimiter length field is %d, not 0; treating as 0", tag, delimLength))
			}
			item.Length = uint32(bs.position() - 8 - start)
			return item, nil
		}
		el, err := readElement(bs, ctx, depth+1)
		if err != nil {
			return nil, err
		}
		item.Elements[el.Tag] = el
	}
}
