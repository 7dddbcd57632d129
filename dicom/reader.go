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

// maxSequenceDepth caps SQ nesting. A counted depth argument, not a recursion
// limit derived from the Go call stack, so a pathological or adversarial file
// fails cleanly instead of exhausting stack space.
const maxSequenceDepth = 64

// context carries the per-parse settings readElement needs at every depth:
// the resolved transfer syntax and an optional caller-supplied VR lookup for
// implicit-VR elements (Options.VRLookup; nil means every implicit element
// gets VR "").
type context struct {
	ts       transferSyntax
	vrLookup func(Tag) string
}

func (c *context) lookupVR(tag Tag) string {
	if c.vrLookup == nil {
		return ""
	}
	return c.vrLookup(tag)
}

// readElement reads one data element at bs's current position and advances bs
// past it, including any nested items or fragments. depth is the current SQ
// nesting depth, checked against maxSequenceDepth before any recursive
// descent.
func readElement(bs *byteStream, ctx *context, depth int) (*Element, error) {
	tag, err := readTag(bs)
	if err != nil {
		return nil, fmt.Errorf("reading tag: %v", err)
	}

	vr, length, err := readVRAndLength(bs, ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %v", tag, err)
	}

	elem := &Element{Tag: tag, VR: vr, HadUndefinedLength: length == UndefinedLength}
	dataStart := bs.position()

	switch {
	case tag == TagPixelData && length == UndefinedLength:
		if err := readEncapsulatedPixelData(bs, elem); err != nil {
			return nil, fmt.Errorf("reading encapsulated pixel data: %v", err)
		}
		elem.DataOffset = dataStart
		elem.Length = uint32(bs.position() - dataStart)
		return elem, nil

	case vr == "UN" && length == UndefinedLength:
		// PS3.5 6.2.2: a UN element with undefined length is, despite its VR,
		// structured as an implicit VR little endian sequence.
		subCtx := &context{ts: transferSyntax{explicit: false, strategy: littleEndian}, vrLookup: ctx.vrLookup}
		if err := readSequenceItems(bs, subCtx, elem, depth, length); err != nil {
			return nil, fmt.Errorf("reading UN-as-sequence %s: %v", tag, err)
		}
		elem.DataOffset = dataStart
		// The consumed Sequence Delimitation Item (tag + length) is not part
		// of the value.
		elem.Length = uint32(bs.position() - dataStart - 8)
		return elem, nil

	// In implicit VR a private tag is read as a sequence only when its length
	// is undefined; with a defined length it is skipped as a plain value below.
	case detectSequence(bs, ctx, vr, length) && (ctx.ts.explicit || !tag.isPrivate() || length == UndefinedLength):
		if err := readSequenceItems(bs, ctx, elem, depth, length); err != nil {
			return nil, fmt.Errorf("reading sequence %s: %v", tag, err)
		}
		if !ctx.ts.explicit && tag.isPrivate() {
			// Drop the items from a sequence detected on a private tag: we
			// have no dictionary guarantee the element really is SQ, so the
			// shape is reported as opaque rather than risk surprising a
			// consumer that doesn't expect a sequence on this tag.
			elem.Items = nil
		}
		elem.DataOffset = dataStart
		elem.Length = uint32(bs.position() - dataStart)
		if length == UndefinedLength {
			// The consumed Sequence Delimitation Item (tag + length) is not
			// part of the value.
			elem.Length -= 8
		}
		return elem, nil

	case length == UndefinedLength:
		// No other element carries undefined length legitimately. Recover by
		// scanning for the matching Item Delimitation Item and reporting
		// whatever precedes it as the value.
		n, found := findDelimiter(bs, TagItemDelimitationItem)
		if !found {
			bs.addWarning(fmt.Sprintf("%s: undefined length with no delimiter found; treating remainder as value", tag))
		}
		elem.DataOffset = bs.position()
		elem.Length = uint32(n)
		if err := bs.seek(n); err != nil {
			return nil, err
		}
		if found {
			if _, err := readTag(bs); err != nil {
				return nil, err
			}
			if err := bs.seek(4); err != nil {
				return nil, err
			}
		}
		return elem, nil

	default:
		elem.DataOffset = bs.position()
		elem.Length = length
		if err := bs.seek(int(length)); err != nil {
			return nil, fmt.Errorf("skipping value of %s (length %d): %v", tag, length, err)
		}
		return elem, nil
	}
}

// detectSequence decides whether the element just headered is a sequence. In
// explicit VR this is simply vr == "SQ". In implicit VR there is no VR to
// trust, so the next tag is peeked without advancing: a sequence's first
// bytes are always either an Item (non-empty) or a Sequence Delimitation Item
// (empty sequence). An explicit "SQ" from a caller-supplied VR lookup still
// forces the decision even without peeking.
func detectSequence(bs *byteStream, ctx *context, vr string, length uint32) bool {
	if vr == "SQ" {
		return true
	}
	if ctx.ts.explicit || length == 0 {
		return false
	}
	peeked, err := bs.peekTag()
	if err != nil {
		return false
	}
	return peeked == TagItem || peeked == TagSequenceDelimitationItem
}

// readVRAndLength reads the VR (explicit mode only) and the value length
// field, in either its 2-byte or 4-byte form, per PS3.5 7.1.2.
func readVRAndLength(bs *byteStream, ctx *context, tag Tag) (vr string, length uint32, err error) {
	if !ctx.ts.explicit {
		length, err = bs.readU32()
		if err != nil {
			return "", 0, err
		}
		return ctx.lookupVR(tag), length, nil
	}

	vr, err = bs.readFixedString(2)
	if err != nil {
		return "", 0, fmt.Errorf("reading VR: %v", err)
	}

	if has32BitLength(vr) {
		if err := bs.seek(2); err != nil { // 2 reserved bytes
			return "", 0, err
		}
		length, err = bs.readU32()
		if err != nil {
			return "", 0, err
		}
		return vr, length, nil
	}

	l16, err := bs.readU16()
	if err != nil {
		return "", 0, err
	}
	return vr, uint32(l16), nil
}
