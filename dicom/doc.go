// Package dicom decodes DICOM Part 10 files into an indexed, zero-copy Dataset.
//
// Parse takes an in-memory buffer and returns a Dataset: a map from canonical tag
// strings to Elements that describe where a value lives in the original buffer
// (offset, length, VR) rather than copying it out. Sequences (SQ) nest further
// Datasets; encapsulated PixelData is indexed as a basic offset table plus an
// ordered list of fragment descriptors. Non-fatal anomalies (truncated trailing
// bytes, malformed delimiters, unexpected pixel-data items) are recorded on
// Dataset.Warnings instead of aborting the parse.
//
// The package does not decode pixel data, validate against the DICOM data
// dictionary, or write DICOM files back out. String, UInt16, Float64, and the
// other typed accessors give read-only, VR-aware views over a parsed Dataset.
package dicom
