// Package dcm converts RTP plans to DICOM RT Plan datasets.
//
// The dataset is an in-memory tree of tagged elements and sequences
// following the RT Plan IOD.  It can be rendered as YAML, JSON, CBOR
// or a text dump with [Marshal]; binary Part 10 files are not written.
//
//	ds, err := dcm.Convert(plan, dcm.Options{Manufacturer: "Varian"})
//	if err != nil {
//	    return err
//	}
//	out, err := dcm.Marshal(ds, dcm.YAMLFormat)
//
// RTP files lack some of what an RT Plan needs.  Missing UIDs are
// generated (see [NewUID]), and leaf boundaries come from
// [LeafBoundaries].
package dcm
