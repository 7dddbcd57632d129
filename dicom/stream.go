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

// byteStream is a cursor over a borrowed buffer. It carries the byte-array
// reader strategy in effect so callers never thread it separately, and a
// pointer to a single warning log shared by every stream derived from the
// same parse.
type byteStream struct {
	buf      []byte
	pos      int
	strategy byteOrderStrategy
	warnings *[]string
}

func newByteStream(buf []byte, strategy byteOrderStrategy) *byteStream {
	return &byteStream{buf: buf, pos: 0, strategy: strategy, warnings: new([]string)}
}

func (bs *byteStream) size() int { return len(bs.buf) }

func (bs *byteStream) position() int { return bs.pos }

func (bs *byteStream) remaining() int { return len(bs.buf) - bs.pos }

// seek moves the cursor by a relative, signed delta. It fails if the target
// position would fall outside [0, size].
func (bs *byteStream) seek(delta int) error {
	target := bs.pos + delta
	if target < 0 || target > len(bs.buf) {
		return fmt.Errorf("seek out of bounds: position %d, delta %d, size %d", bs.pos, delta, len(bs.buf))
	}
	bs.pos = target
	return nil
}

func (bs *byteStream) readU16() (uint16, error) {
	v, err := bs.strategy.readU16(bs.buf, bs.pos)
	if err != nil {
		return 0, err
	}
	bs.pos += 2
	return v, nil
}

func (bs *byteStream) readU32() (uint32, error) {
	v, err := bs.strategy.readU32(bs.buf, bs.pos)
	if err != nil {
		return 0, err
	}
	bs.pos += 4
	return v, nil
}

// readFixedString consumes n bytes and returns the ASCII prefix up to (but not
// including) the first NUL. The remaining bytes of n are still consumed from
// the stream even though they are dropped from the returned string.
func (bs *byteStream) readFixedString(n int) (string, error) {
	if err := checkBounds(bs.buf, bs.pos, n); err != nil {
		return "", err
	}
	raw := bs.buf[bs.pos : bs.pos+n]
	bs.pos += n
	if idx := strings.IndexByte(string(raw), 0); idx >= 0 {
		return string(raw[:idx]), nil
	}
	return string(raw), nil
}

// readSubStream carves a new stream over the next n bytes, starting that
// stream's own cursor at position 0, and advances the outer stream past those
// n bytes. The sub-stream shares this stream's warning log and buffer (it is a
// view, not a copy) but may use a different strategy (e.g. a UN-with-undefined-
// length element switching to implicit little-endian for its sub-dataset).
func (bs *byteStream) readSubStream(n int, strategy byteOrderStrategy) (*byteStream, error) {
	if err := checkBounds(bs.buf, bs.pos, n); err != nil {
		return nil, err
	}
	sub := &byteStream{
		buf:      bs.buf[bs.pos : bs.pos+n],
		pos:      0,
		strategy: strategy,
		warnings: bs.warnings,
	}
	bs.pos += n
	return sub, nil
}

func (bs *byteStream) addWarning(msg string) {
	*bs.warnings = append(*bs.warnings, msg)
}

// peekTag reads the next tag without advancing the cursor.
func (bs *byteStream) peekTag() (Tag, error) {
	start := bs.pos
	tag, err := readTag(bs)
	bs.pos = start
	return tag, err
}
