// Package record implements the typed records of an RTP document and
// the hierarchy they form.
//
// Every line of an RTP document is one record.  Its first field is a
// keyword naming the record type, its last field a checksum.  The
// fields in between are the record's attributes, in the order given by
// the type's [Schema].
//
// Records form a tree rooted at a [Plan]:
//
//	PLAN_DEF
//	├── EXTENDED_PLAN_DEF
//	├── RX_DEF
//	│   ├── SITE_SETUP_DEF
//	│   ├── SIM_DEF
//	│   └── FIELD_DEF
//	│       ├── EXTENDED_FIELD_DEF
//	│       └── CONTROL_PT_DEF
//	└── DOSE_DEF
//	    └── DOSE_ACTION
//
// A document does not state parents explicitly.  A record belongs to
// the nearest preceding record of its parent type, which
// [ResolveParent] finds by walking up from the previous record.
//
// # Values
//
// Attributes are [Value]s, strings which may be null.  Null and the
// empty string are written the same way, so they compare equal.
//
// # Usage
//
//	plan, err := record.LoadPlan(line)
//	rx, err := record.NewPrescription(plan)
//	rx.RxSiteName = record.V("Prostate")
//	text, err := plan.Text(record.CompatVersion(record.Version24))
//
// # Related Packages
//
//   - github.com/carlosqueiroz/rtp-connect/parse - reads whole documents
//   - github.com/carlosqueiroz/rtp-connect/encode - writes record trees
package record
