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

// metaHeaderGroup is the only group number meta-header elements belong to.
const metaHeaderGroup = 0x0002

// readMetaHeader locates the "DICM" prefix at offset 128 and parses the
// group-0002 meta-header that follows it, always as explicit VR little
// endian regardless of whatever transfer syntax the meta-header itself
// goes on to declare.
//
// When the prefix is missing and hint is non-empty, no real meta-header
// exists to parse: a synthetic one is fabricated carrying only
// TagTransferSyntaxUID = hint, and the returned buffer is that synthetic
// element's bytes prepended to buf so the rest of the pipeline (which
// addresses everything through a single buffer/offset pair) needs no special
// case downstream. This is the one place a non-Deflated parse copies bytes.
func readMetaHeader(buf []byte, hint string) (meta *Dataset, bodyStart int, finalBuf []byte, err error) {
	if len(buf) <= 132 && hint == "" {
		return nil, 0, nil, &ParseError{Msg: "not a valid DICOM P10 file: buffer too small to hold a preamble and no transfer syntax hint was given"}
	}
	if len(buf) < 132 || string(buf[128:132]) != "DICM" {
		if hint == "" {
			return nil, 0, nil, &ParseError{Msg: "not a valid DICOM P10 file: missing DICM prefix at offset 128"}
		}
		valueBytes := []byte(hint)
		if len(valueBytes)%2 != 0 {
			valueBytes = append(valueBytes, 0)
		}
		finalBuf = append(append([]byte{}, valueBytes...), buf...)
		meta = newDataset(finalBuf, littleEndian)
		meta.Elements[TagTransferSyntaxUID] = &Element{
			Tag:        TagTransferSyntaxUID,
			VR:         "UI",
			Length:     uint32(len(valueBytes)),
			DataOffset: 0,
		}
		return meta, len(valueBytes), finalBuf, nil
	}

	bs := newByteStream(buf, littleEndian)
	if err := bs.seek(132); err != nil {
		return nil, 0, nil, err
	}
	ctx := &context{ts: transferSyntax{explicit: true, strategy: littleEndian}}
	meta = newDataset(buf, littleEndian)
	for {
		if bs.remaining() < 8 {
			break
		}
		tag, err := bs.peekTag()
		if err != nil {
			return nil, 0, nil, err
		}
		if tag.groupNumber() > metaHeaderGroup {
			break
		}
		el, err := readElement(bs, ctx, 0)
		if err != nil {
			return nil, 0, nil, &ParseError{Offset: bs.position(), Msg: "reading meta-header element", Partial: meta, Cause: err}
		}
		meta.Elements[el.Tag] = el
	}
	meta.Warnings = *bs.warnings
	return meta, bs.position(), buf, nil
}
