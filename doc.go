// Package rtp reads and writes RTP treatment plan documents.
//
// RTP is the line oriented, quoted CSV format used to move
// radiotherapy plans between planning and record-and-verify systems.
// A document is a tree of typed records rooted at a plan; each line
// holds one record and ends with a checksum.
//
// # Usage
//
//	plan, err := rtp.Read("plan.rtp")
//	if err != nil {
//	    return err
//	}
//	for _, rx := range plan.Prescriptions() {
//	    for _, f := range rx.Fields() {
//	        fmt.Println(f.FieldName, len(f.ControlPoints()))
//	    }
//	}
//	err = rtp.Write("out.rtp", plan, record.CompatVersion(record.Version24))
//
// # Packages
//
//   - token - splits lines into fields
//   - crc - line checksums
//   - record - record types, schemas and the record hierarchy
//   - parse - reads whole documents
//   - encode - writes documents and outlines
//   - dcm - converts a plan to an RT Plan dataset
//   - rtpdiff, query, patch - compare, select and edit records
package rtp
