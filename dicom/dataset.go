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

import "sort"

// Dataset models a DICOM Data Set: a mapping from tag to Element. A Dataset is
// also used, structurally unchanged, to represent one sequence item nested
// inside an SQ element; DataOffset/Length/HadUndefinedLength are meaningful
// for item datasets and zero-valued for the top-level dataset returned by
// Parse.
//
// A Dataset is populated once by a single traversal and is read-only
// thereafter: Elements are never mutated or removed after insertion.
type Dataset struct {
	Elements map[Tag]*Element

	DataOffset         int
	Length             uint32
	HadUndefinedLength bool

	// Warnings accumulates every non-fatal anomaly encountered while parsing
	// this dataset and everything nested inside it. Only the top-level
	// Dataset returned by Parse has this populated; item datasets share the
	// same underlying log during parsing but report through the root.
	Warnings []string

	buffer   []byte
	strategy byteOrderStrategy
}

func newDataset(buffer []byte, strategy byteOrderStrategy) *Dataset {
	return &Dataset{Elements: map[Tag]*Element{}, buffer: buffer, strategy: strategy}
}

// Get returns the Element for tag and whether it was present.
func (ds *Dataset) Get(tag Tag) (*Element, bool) {
	e, ok := ds.Elements[tag]
	return e, ok
}

// SortedTags returns every tag in ds in canonical-string (== numeric) order.
func (ds *Dataset) SortedTags() []Tag {
	tags := make([]Tag, 0, len(ds.Elements))
	for t := range ds.Elements {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
