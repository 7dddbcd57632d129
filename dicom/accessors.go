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
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// valueBytes returns the raw value bytes for tag in ds, and the element they
// came from, bounds-checked against ds's buffer.
func valueBytes(ds *Dataset, tag Tag) ([]byte, *Element, error) {
	el, ok := ds.Get(tag)
	if !ok {
		return nil, nil, fmt.Errorf("tag %s not present", tag)
	}
	if el.DataOffset < 0 || el.DataOffset+int(el.Length) > len(ds.buffer) {
		return nil, nil, fmt.Errorf("tag %s: value [%d, %d) out of buffer bounds", tag, el.DataOffset, el.DataOffset+int(el.Length))
	}
	return ds.buffer[el.DataOffset : el.DataOffset+int(el.Length)], el, nil
}

// UInt16 reads the index'th 16-bit unsigned value from tag's value field.
func UInt16(ds *Dataset, tag Tag, index int) (uint16, error) {
	b, _, err := valueBytes(ds, tag)
	if err != nil {
		return 0, err
	}
	return ds.strategy.readU16(b, index*2)
}

// Int16 reads the index'th 16-bit signed value from tag's value field.
func Int16(ds *Dataset, tag Tag, index int) (int16, error) {
	b, _, err := valueBytes(ds, tag)
	if err != nil {
		return 0, err
	}
	return ds.strategy.readI16(b, index*2)
}

// UInt32 reads the index'th 32-bit unsigned value from tag's value field.
func UInt32(ds *Dataset, tag Tag, index int) (uint32, error) {
	b, _, err := valueBytes(ds, tag)
	if err != nil {
		return 0, err
	}
	return ds.strategy.readU32(b, index*4)
}

// Int32 reads the index'th 32-bit signed value from tag's value field.
func Int32(ds *Dataset, tag Tag, index int) (int32, error) {
	b, _, err := valueBytes(ds, tag)
	if err != nil {
		return 0, err
	}
	return ds.strategy.readI32(b, index*4)
}

// Float32 reads the index'th 32-bit float from tag's value field.
func Float32(ds *Dataset, tag Tag, index int) (float32, error) {
	b, _, err := valueBytes(ds, tag)
	if err != nil {
		return 0, err
	}
	return ds.strategy.readF32(b, index*4)
}

// Float64 reads the index'th 64-bit float from tag's value field.
func Float64(ds *Dataset, tag Tag, index int) (float64, error) {
	b, _, err := valueBytes(ds, tag)
	if err != nil {
		return 0, err
	}
	return ds.strategy.readF64(b, index*8)
}

// trimByVR applies the PS3.5 6.2 padding rule for vr's kind: CS/SH/LO/AS/AE/
// DA/IS/DS and UI trim both sides; PN/LT/ST/UT/DT/TM trim the trailing side
// only; everything else is returned unchanged.
func trimByVR(vr string, s string) string {
	switch kindOf(vr) {
	case textVR, uniqueIdentifierVR:
		return strings.Trim(s, " \x00")
	case trailingTrimVR:
		return strings.TrimRight(s, " \x00")
	default:
		return s
	}
}

// String returns tag's value as a VR-trimmed string, with no character-set
// decoding. Appropriate for CS/SH/LO/UI-family VRs, which are restricted to
// the default repertoire.
func String(ds *Dataset, tag Tag) (string, error) {
	b, el, err := valueBytes(ds, tag)
	if err != nil {
		return "", err
	}
	return trimByVR(el.VR, string(b)), nil
}

// Text returns tag's value decoded through enc (the Dataset's resolved
// SpecificCharacterSet encoding; nil skips decoding) and then VR-trimmed.
// Appropriate for PN/LO/SH/ST/LT/UT, whose repertoire may be overridden by
// SpecificCharacterSet.
func Text(ds *Dataset, tag Tag, enc encoding.Encoding) (string, error) {
	b, el, err := valueBytes(ds, tag)
	if err != nil {
		return "", err
	}
	raw := string(b)
	if enc != nil {
		if decoded, err := enc.NewDecoder().String(raw); err == nil {
			raw = decoded
		}
	}
	return trimByVR(el.VR, raw), nil
}

// StringValues splits tag's value on the backslash component delimiter
// (PS3.5 6.2) and VR-trims each component.
func StringValues(ds *Dataset, tag Tag) ([]string, error) {
	b, el, err := valueBytes(ds, tag)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(string(b), "\\")
	for i := range parts {
		parts[i] = trimByVR(el.VR, parts[i])
	}
	return parts, nil
}

// NumStringValues counts tag's backslash-delimited components.
func NumStringValues(ds *Dataset, tag Tag) (int, error) {
	vals, err := StringValues(ds, tag)
	if err != nil {
		return 0, err
	}
	return len(vals), nil
}

// FloatStringValue parses the index'th component of a DS-VR value as a
// float64.
func FloatStringValue(ds *Dataset, tag Tag, index int) (float64, error) {
	vals, err := StringValues(ds, tag)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(vals) {
		return 0, fmt.Errorf("index %d out of range for tag %s (%d value(s))", index, tag, len(vals))
	}
	return strconv.ParseFloat(strings.TrimSpace(vals[index]), 64)
}

// IntStringValue parses the index'th component of an IS-VR value as an
// int64.
func IntStringValue(ds *Dataset, tag Tag, index int) (int64, error) {
	vals, err := StringValues(ds, tag)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(vals) {
		return 0, fmt.Errorf("index %d out of range for tag %s (%d value(s))", index, tag, len(vals))
	}
	return strconv.ParseInt(strings.TrimSpace(vals[index]), 10, 64)
}

// AttributeTag reads tag's AT-VR value (a single (group, element) pair) as a
// Tag.
func AttributeTag(ds *Dataset, tag Tag) (Tag, error) {
	b, _, err := valueBytes(ds, tag)
	if err != nil {
		return "", err
	}
	if len(b) < 4 {
		return "", fmt.Errorf("tag %s: AT value shorter than 4 bytes", tag)
	}
	group, err := ds.strategy.readU16(b, 0)
	if err != nil {
		return "", err
	}
	element, err := ds.strategy.readU16(b, 2)
	if err != nil {
		return "", err
	}
	return tagFromParts(group, element), nil
}
