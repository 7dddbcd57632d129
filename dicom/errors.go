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

// ParseError reports a fatal parse failure. Partial holds whatever Dataset had
// been built up to the point of failure, or nil if the failure occurred before
// the meta-header could be read at all. Callers may still want the elements
// that did parse before the failure.
type ParseError struct {
	Offset  int
	Msg     string
	Partial *Dataset
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dicom: parse error at offset %d: %s: %v", e.Offset, e.Msg, e.Cause)
	}
	return fmt.Sprintf("dicom: parse error at offset %d: %s", e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Cause }
