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

// Inflater decompresses buf[bodyStart:] and returns buf[:bodyStart] unchanged,
// concatenated with the inflated bytes, so every offset downstream of
// bodyStart stays valid against the returned buffer.
type Inflater func(buf []byte, bodyStart int) ([]byte, error)

// Options configures Parse.
type Options struct {
	// UntilTag, if non-empty, stops the walk immediately after the element
	// bearing this tag is inserted into the dataset.
	UntilTag Tag

	// Inflater overrides the built-in raw-Deflate inflater (deflate.go) for
	// the Deflated Explicit VR Little Endian transfer syntax.
	Inflater Inflater

	// VRLookup, if set, is consulted for every implicit-VR element to supply
	// its VR. Parse never consults a DICOM data dictionary itself; callers
	// that need dictionary-backed VR resolution supply it here.
	VRLookup func(Tag) string

	// TransferSyntaxHint supplies a transfer syntax UID to assume when the
	// input buffer lacks the "DICM" prefix, letting Parse accept a bare
	// dataset (no P10 preamble/meta-header) instead of failing outright.
	TransferSyntaxHint string
}

// Parse decodes buffer as a DICOM Part 10 file (or, with
// Options.TransferSyntaxHint set, a bare dataset) into a Dataset.
func Parse(buffer []byte, opts Options) (*Dataset, error) {
	if buffer == nil {
		return nil, &ParseError{Msg: "buffer is nil"}
	}

	meta, bodyStart, buf, err := readMetaHeader(buffer, opts.TransferSyntaxHint)
	if err != nil {
		return nil, err
	}

	tsElem, ok := meta.Get(TagTransferSyntaxUID)
	if !ok {
		return nil, &ParseError{Msg: "missing mandatory meta-header element x00020010 (TransferSyntaxUID)", Partial: meta}
	}
	uid := trimUI(buf[tsElem.DataOffset : tsElem.DataOffset+int(tsElem.Length)])
	ts, err := resolveTransferSyntax(uid)
	if err != nil {
		return nil, &ParseError{Msg: err.Error(), Partial: meta, Cause: err}
	}

	if ts.deflated {
		inflate := opts.Inflater
		if inflate == nil {
			inflate = inflateDeflate
		}
		inflated, err := inflate(buf, bodyStart)
		if err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("inflating deflated transfer syntax body: %v", err), Partial: meta, Cause: err}
		}
		buf = inflated
	}

	bodyBS := newByteStream(buf, ts.strategy)
	if err := bodyBS.seek(bodyStart); err != nil {
		return nil, &ParseError{Offset: bodyStart, Msg: "seeking to body start", Partial: meta, Cause: err}
	}
	ctx := &context{ts: ts, vrLookup: opts.VRLookup}
	body := newDataset(buf, ts.strategy)
	if err := walkDataset(bodyBS, ctx, body, opts.UntilTag); err != nil {
		return nil, &ParseError{Offset: bodyBS.position(), Msg: "walking body dataset", Partial: mergeDatasets(meta, body, *bodyBS.warnings, buf, ts), Cause: err}
	}

	return mergeDatasets(meta, body, *bodyBS.warnings, buf, ts), nil
}

// mergeDatasets combines the meta-header and body element maps into a single
// Dataset. Meta-header elements win on key collision (group numbers disjoin
// in practice, so this never actually happens); warnings are concatenated
// meta-first.
func mergeDatasets(meta, body *Dataset, bodyWarnings []string, buf []byte, ts transferSyntax) *Dataset {
	final := newDataset(buf, ts.strategy)
	for tag, el := range body.Elements {
		final.Elements[tag] = el
	}
	for tag, el := range meta.Elements {
		final.Elements[tag] = el
	}
	final.Warnings = append(append([]string{}, meta.Warnings...), bodyWarnings...)
	return final
}

// trimUI strips the trailing NUL pad (and, tolerantly, trailing spaces) from
// a UI-VR value.
func trimUI(b []byte) string {
	return strings.TrimRight(string(b), "\x00 ")
}
