// Package parse reads RTP documents into record trees.
//
// # Usage
//
//	plan, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// tolerate broken quoting and bad checksums
//	plan, err := parse.Parse(data, parse.Repair(), parse.SkipCRC())
//
// Each line is attached below the nearest preceding record of its
// parent type.  Errors are reported as *[LineErr] with the failing
// line number.
//
// # Related Packages
//
//   - github.com/carlosqueiroz/rtp-connect/record - record types
//   - github.com/carlosqueiroz/rtp-connect/encode - writes record trees
package parse
