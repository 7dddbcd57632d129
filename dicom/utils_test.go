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

import "encoding/binary"

// byteBuilder assembles raw DICOM bytes for tests. Always little endian;
// callers that need big-endian coverage build with binary.BigEndian helpers
// directly.
type byteBuilder struct {
	buf []byte
}

func (b *byteBuilder) u16(v uint16) *byteBuilder {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *byteBuilder) u32(v uint32) *byteBuilder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *byteBuilder) bytes(v []byte) *byteBuilder {
	b.buf = append(b.buf, v...)
	return b
}

func (b *byteBuilder) str(s string) *byteBuilder {
	b.buf = append(b.buf, []byte(s)...)
	return b
}

// tag appends a raw (group, element) pair.
func (b *byteBuilder) tag(group, element uint16) *byteBuilder {
	return b.u16(group).u16(element)
}

// implicitElement appends one implicit-VR element header + value.
func (b *byteBuilder) implicitElement(group, element uint16, value []byte) *byteBuilder {
	return b.tag(group, element).u32(uint32(len(value))).bytes(value)
}

// explicitShortElement appends one explicit-VR element with a 2-byte length
// field.
func (b *byteBuilder) explicitShortElement(group, element uint16, vr string, value []byte) *byteBuilder {
	return b.tag(group, element).str(vr).u16(uint16(len(value))).bytes(value)
}

// explicitLongElement appends one explicit-VR element with the 2
// reserved bytes + 4-byte length field (OB/OW/SQ/UN/...).
func (b *byteBuilder) explicitLongElement(group, element uint16, vr string, length uint32, value []byte) *byteBuilder {
	return b.tag(group, element).str(vr).u16(0).u32(length).bytes(value)
}

func evenPad(s string) []byte {
	b := []byte(s)
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	return b
}
