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
	"bytes"
	"compress/flate"
	"fmt"
	"io"
)

// inflateDeflate is the default Inflater: raw Deflate (RFC 1951, no zlib
// wrapper), the body encoding used by the Deflated Explicit VR Little Endian
// transfer syntax.
func inflateDeflate(buf []byte, bodyStart int) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(buf[bodyStart:]))
	defer r.Close()
	inflated, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inflating raw deflate stream: %v", err)
	}
	out := make([]byte, bodyStart+len(inflated))
	copy(out, buf[:bodyStart])
	copy(out[bodyStart:], inflated)
	return out, nil
}
