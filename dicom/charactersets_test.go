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

import "testing"

func TestLookupEncodingKnownTerms(t *testing.T) {
	for term := range lookupLabelByTerm {
		t.Run(term, func(t *testing.T) {
			enc, err := lookupEncoding(term)
			if err != nil {
				t.Fatalf("lookupEncoding(%q): unexpected error: %v", term, err)
			}
			if enc == nil {
				t.Fatalf("lookupEncoding(%q): got nil encoding", term)
			}
		})
	}
}

func TestLookupEncodingUnknownTerm(t *testing.T) {
	if _, err := lookupEncoding("not a defined term"); err == nil {
		t.Fatalf("lookupEncoding: got nil error, want error for unrecognized term")
	}
}

func TestResolveCharacterSetEmptyFallsBackToDefault(t *testing.T) {
	enc, err := ResolveCharacterSet(nil)
	if err != nil {
		t.Fatalf("ResolveCharacterSet(nil): unexpected error: %v", err)
	}
	if enc != defaultCharacterRepertoire {
		t.Fatalf("ResolveCharacterSet(nil): got %v, want the default repertoire", enc)
	}
}

func TestResolveCharacterSetPicksFirstSupportedTerm(t *testing.T) {
	enc, err := ResolveCharacterSet([]string{"not a defined term", "ISO_IR 100"})
	if err != nil {
		t.Fatalf("ResolveCharacterSet: unexpected error: %v", err)
	}
	if enc == nil {
		t.Fatalf("ResolveCharacterSet: got nil encoding")
	}
}

func TestResolveCharacterSetAllUnsupportedIsError(t *testing.T) {
	if _, err := ResolveCharacterSet([]string{"bogus"}); err == nil {
		t.Fatalf("ResolveCharacterSet: got nil error, want error when no term resolves")
	}
}
