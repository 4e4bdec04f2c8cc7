package record

import "slices"

// SiteSetup (SITE_SETUP_DEF) describes the patient setup of a
// prescription.  The table top displacements were added in format
// version 2.6.
type SiteSetup struct {
	base

	RxSiteName               Value
	PatientOrientation       Value
	TreatmentMachine         Value
	ToleranceTable           Value
	IsoPosX                  Value
	IsoPosY                  Value
	IsoPosZ                  Value
	StructureSetUID          Value
	FrameOfRefUID            Value
	CouchVertical            Value
	CouchLateral             Value
	CouchLongitudinal        Value
	CouchAngle               Value
	CouchPedestal            Value
	TableTopVertDisplacement Value
	TableTopLongDisplacement Value
	TableTopLatDisplacement  Value
}

var siteSetupSchema = &Schema{
	Keyword:   KeywordSiteSetup,
	Parent:    KeywordPrescription,
	Min:       5,
	Singleton: true,
	Attrs: slices.Concat(
		attrs(
			"rx_site_name", "patient_orientation", "treatment_machine", "tolerance_table",
			"iso_pos_x", "iso_pos_y", "iso_pos_z", "structure_set_uid", "frame_of_ref_uid",
			"couch_vertical", "couch_lateral", "couch_longitudinal", "couch_angle",
			"couch_pedestal",
		),
		since(Version26, attrs(
			"table_top_vert_displacement", "table_top_long_displacement",
			"table_top_lat_displacement",
		)),
	),
}

func init() {
	register(siteSetupSchema, func() Record { return newSiteSetup() })
}

func newSiteSetup() *SiteSetup {
	ss := &SiteSetup{}
	slots := []*Value{
		&ss.RxSiteName, &ss.PatientOrientation, &ss.TreatmentMachine, &ss.ToleranceTable, &ss.IsoPosX,
		&ss.IsoPosY, &ss.IsoPosZ, &ss.StructureSetUID, &ss.FrameOfRefUID, &ss.CouchVertical,
		&ss.CouchLateral, &ss.CouchLongitudinal, &ss.CouchAngle, &ss.CouchPedestal,
		&ss.TableTopVertDisplacement, &ss.TableTopLongDisplacement, &ss.TableTopLatDisplacement,
	}
	ss.init(siteSetupSchema, ss, slots...)
	return ss
}

// NewSiteSetup creates a SiteSetup owned by the nearest Prescription at or above
// parent.
func NewSiteSetup(parent Record) (*SiteSetup, error) {
	ss := newSiteSetup()
	if err := attach(parent, ss); err != nil {
		return nil, err
	}
	return ss, nil
}
