// Package rtpdiff compares two RTP record trees.
//
// Records are compared in document order.  Each distinct record is
// mapped to a rune and the two rune sequences are diffed with
// diffmatchpatch, so the result is a minimal edit script over whole
// records.  Deletions followed by insertions of the same record type
// are folded into modifications listing the changed attributes.
package rtpdiff
