// Package patch edits record attributes with JSON Patch (RFC 6902)
// and JSON Merge Patch (RFC 7386) documents.
//
// A record is presented to a patch as a flat object keyed by attribute
// name:
//
//	{"keyword": "FIELD_DEF", "field_name": "MED", "wedge": null, ...}
//
// The keyword is read-only and only known attribute names may appear
// in the result.
package patch
