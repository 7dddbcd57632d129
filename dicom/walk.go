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

// walkDataset repeatedly calls readElement over bs, inserting each result
// into ds, until bs is exhausted, the element bearing untilTag has been
// inserted, or fewer than 8 bytes (one element header) remain; those are
// reported as a warning. untilTag == "" means walk the whole stream.
func walkDataset(bs *byteStream, ctx *context, ds *Dataset, untilTag Tag) error {
	for {
		if bs.remaining() == 0 {
			return nil
		}
		if bs.remaining() < 8 {
			bs.addWarning(fmt.Sprintf("%d trailing bytes at end of dataset", bs.remaining()))
			return nil
		}
		tag, err := bs.peekTag()
		if err != nil {
			return err
		}
		el, err := readElement(bs, ctx, 0)
		if err != nil {
			return err
		}
		ds.Elements[el.Tag] = el
		if untilTag != "" && tag == untilTag {
			return nil
		}
	}
}
