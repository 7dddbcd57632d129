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
	"encoding/binary"
	"fmt"
	"math"
)

// byteOrderStrategy extracts fixed-width integers and floats from an absolute
// position in a borrowed buffer. Both implementations are stateless; the active
// one is selected once per transfer syntax and carried by byteStream so
// callers never have to thread it through every read call.
type byteOrderStrategy interface {
	order() binary.ByteOrder
	readU16(buf []byte, pos int) (uint16, error)
	readI16(buf []byte, pos int) (int16, error)
	readU32(buf []byte, pos int) (uint32, error)
	readI32(buf []byte, pos int) (int32, error)
	readF32(buf []byte, pos int) (float32, error)
	readF64(buf []byte, pos int) (float64, error)
}

func checkBounds(buf []byte, pos, width int) error {
	if pos < 0 || pos+width > len(buf) {
		return fmt.Errorf("out of bounds read at position %d (width %d, buffer size %d)", pos, width, len(buf))
	}
	return nil
}

type littleEndianStrategy struct{}

func (littleEndianStrategy) order() binary.ByteOrder { return binary.LittleEndian }

func (littleEndianStrategy) readU16(buf []byte, pos int) (uint16, error) {
	if err := checkBounds(buf, pos, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[pos:]), nil
}

func (s littleEndianStrategy) readI16(buf []byte, pos int) (int16, error) {
	v, err := s.readU16(buf, pos)
	return int16(v), err
}

func (littleEndianStrategy) readU32(buf []byte, pos int) (uint32, error) {
	if err := checkBounds(buf, pos, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[pos:]), nil
}

func (s littleEndianStrategy) readI32(buf []byte, pos int) (int32, error) {
	v, err := s.readU32(buf, pos)
	return int32(v), err
}

func (s littleEndianStrategy) readF32(buf []byte, pos int) (float32, error) {
	v, err := s.readU32(buf, pos)
	return math.Float32frombits(v), err
}

func (littleEndianStrategy) readF64(buf []byte, pos int) (float64, error) {
	if err := checkBounds(buf, pos, 8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[pos:])), nil
}

type bigEndianStrategy struct{}

func (bigEndianStrategy) order() binary.ByteOrder { return binary.BigEndian }

func (bigEndianStrategy) readU16(buf []byte, pos int) (uint16, error) {
	if err := checkBounds(buf, pos, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[pos:]), nil
}

func (s bigEndianStrategy) readI16(buf []byte, pos int) (int16, error) {
	v, err := s.readU16(buf, pos)
	return int16(v), err
}

func (bigEndianStrategy) readU32(buf []byte, pos int) (uint32, error) {
	if err := checkBounds(buf, pos, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[pos:]), nil
}

func (s bigEndianStrategy) readI32(buf []byte, pos int) (int32, error) {
	v, err := s.readU32(buf, pos)
	return int32(v), err
}

func (s bigEndianStrategy) readF32(buf []byte, pos int) (float32, error) {
	v, err := s.readU32(buf, pos)
	return math.Float32frombits(v), err
}

func (bigEndianStrategy) readF64(buf []byte, pos int) (float64, error) {
	if err := checkBounds(buf, pos, 8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[pos:])), nil
}

var (
	littleEndian byteOrderStrategy = littleEndianStrategy{}
	bigEndian    byteOrderStrategy = bigEndianStrategy{}
)
