// Package encode writes record trees as RTP documents.
//
// # Usage
//
//	err := encode.Encode(plan, w)
//
//	// for readers of format version 2.4
//	data, err := encode.Bytes(plan, encode.CompatVersion(record.Version24))
//
// [Tree] renders an indented outline of a record tree for people
// rather than for other systems, optionally colored.
//
// # Related Packages
//
//   - github.com/carlosqueiroz/rtp-connect/record - record types
//   - github.com/carlosqueiroz/rtp-connect/parse - reads documents
package encode
