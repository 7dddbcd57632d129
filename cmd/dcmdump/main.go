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

// Command dcmdump parses a DICOM Part 10 file and prints a one-line summary
// per element.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Ponerian/ex-dicom/dicom"
)

// textVRAllowlist names the VRs dcmdump will render as decoded text rather
// than just a byte count; every other element (numeric VRs included) is
// printed with its VR and length only.
var textVRAllowlist = map[string]bool{
	"AE": true, "AS": true, "CS": true, "DA": true, "DS": true, "DT": true,
	"IS": true, "LO": true, "LT": true, "PN": true, "SH": true, "ST": true,
	"TM": true, "UI": true, "UT": true,
}

func main() {
	until := flag.String("until", "", "stop parsing immediately after this tag (canonical xggggeeee form)")
	syntaxHint := flag.String("syntax", "", "transfer syntax UID to assume when the input lacks a DICM prefix")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if flag.NArg() != 1 {
		log.Error("usage: dcmdump <file>")
		os.Exit(2)
	}

	path := flag.Arg(0)
	buf, err := os.ReadFile(path)
	if err != nil {
		log.Error("reading file", "path", path, "error", err)
		os.Exit(1)
	}

	ds, err := dicom.Parse(buf, dicom.Options{
		UntilTag:           dicom.Tag(*until),
		TransferSyntaxHint: *syntaxHint,
	})
	if err != nil {
		log.Error("parsing file", "path", path, "error", err)
		os.Exit(1)
	}

	for _, w := range ds.Warnings {
		log.Warn("parse warning", "file", path, "message", w)
	}

	dumpDataset(log, ds, 0)
}

func dumpDataset(log *slog.Logger, ds *dicom.Dataset, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	for _, tag := range ds.SortedTags() {
		el, _ := ds.Get(tag)
		switch {
		case el.IsSequence():
			log.Info(indent+"sequence", "tag", string(tag), "vr", el.VR, "items", len(el.Items))
			for i, item := range el.Items {
				log.Info(indent+"item", "tag", string(tag), "index", i)
				dumpDataset(log, item, depth+1)
			}
		case el.IsEncapsulatedPixelData():
			log.Info(indent+"encapsulated pixel data", "tag", string(tag), "vr", el.VR, "fragments", len(el.Fragments))
		case textVRAllowlist[el.VR]:
			s, err := dicom.String(ds, tag)
			if err != nil {
				log.Warn(indent+"decoding text value", "tag", string(tag), "error", err)
				continue
			}
			log.Info(indent+"element", "tag", string(tag), "vr", el.VR, "length", el.Length, "value", s)
		default:
			log.Info(indent+"element", "tag", string(tag), "vr", el.VR, "length", el.Length)
		}
	}
}
