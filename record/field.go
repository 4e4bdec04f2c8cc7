package record

// Field is a FIELD_DEF record: one treatment field of a prescription.
// Its control points and extended field record are children.
type Field struct {
	base

	RxSiteName         Value
	FieldName          Value
	FieldID            Value
	FieldNote          Value
	FieldDose          Value
	FieldMonitorUnits  Value
	WedgeMonitorUnits  Value
	TreatmentMachine   Value
	TreatmentType      Value
	Modality           Value
	Energy             Value
	Time               Value
	Doserate           Value
	SAD                Value
	SSD                Value
	GantryAngle        Value
	CollimatorAngle    Value
	FieldXMode         Value
	FieldX             Value
	CollimatorX1       Value
	CollimatorX2       Value
	FieldYMode         Value
	FieldY             Value
	CollimatorY1       Value
	CollimatorY2       Value
	CouchVertical      Value
	CouchLateral       Value
	CouchLongitudinal  Value
	CouchAngle         Value
	CouchPedestal      Value
	ToleranceTable     Value
	ArcDirection       Value
	ArcStartAngle      Value
	ArcStopAngle       Value
	ArcMUDegree        Value
	Wedge              Value
	DynamicWedge       Value
	Block              Value
	Compensator        Value
	EApplicator        Value
	EFieldDefAperture  Value
	Bolus              Value
	PortfilmMUOpen     Value
	PortfilmCoeffOpen  Value
	PortfilmDeltaOpen  Value
	PortfilmMUTreat    Value
	PortfilmCoeffTreat Value
	IsoPosX            Value
	IsoPosY            Value
	IsoPosZ            Value
}

var fieldSchema = &Schema{
	Keyword: KeywordField,
	Parent:  KeywordPrescription,
	Min:     27,
	Attrs: trimmed(
		attrs(
			"rx_site_name", "field_name", "field_id", "field_note", "field_dose",
			"field_monitor_units", "wedge_monitor_units", "treatment_machine",
			"treatment_type", "modality", "energy", "time", "doserate", "sad", "ssd",
			"gantry_angle", "collimator_angle", "field_x_mode", "field_x", "collimator_x1",
			"collimator_x2", "field_y_mode", "field_y", "collimator_y1", "collimator_y2",
			"couch_vertical", "couch_lateral", "couch_longitudinal", "couch_angle",
			"couch_pedestal", "tolerance_table", "arc_direction", "arc_start_angle",
			"arc_stop_angle", "arc_mu_degree", "wedge", "dynamic_wedge", "block",
			"compensator", "e_applicator", "e_field_def_aperture", "bolus",
			"portfilm_mu_open", "portfilm_coeff_open", "portfilm_delta_open",
			"portfilm_mu_treat", "portfilm_coeff_treat", "iso_pos_x", "iso_pos_y",
			"iso_pos_z",
		),
		"doserate", "gantry_angle", "collimator_angle", "field_x", "collimator_x1",
		"collimator_x2", "field_y", "collimator_y1", "collimator_y2", "couch_vertical",
		"couch_lateral", "couch_longitudinal", "couch_angle", "couch_pedestal",
	),
}

func init() {
	register(fieldSchema, func() Record { return newField() })
}

func newField() *Field {
	f := &Field{}
	slots := []*Value{
		&f.RxSiteName, &f.FieldName, &f.FieldID, &f.FieldNote, &f.FieldDose, &f.FieldMonitorUnits,
		&f.WedgeMonitorUnits, &f.TreatmentMachine, &f.TreatmentType, &f.Modality, &f.Energy, &f.Time,
		&f.Doserate, &f.SAD, &f.SSD, &f.GantryAngle, &f.CollimatorAngle, &f.FieldXMode, &f.FieldX,
		&f.CollimatorX1, &f.CollimatorX2, &f.FieldYMode, &f.FieldY, &f.CollimatorY1, &f.CollimatorY2,
		&f.CouchVertical, &f.CouchLateral, &f.CouchLongitudinal, &f.CouchAngle, &f.CouchPedestal,
		&f.ToleranceTable, &f.ArcDirection, &f.ArcStartAngle, &f.ArcStopAngle, &f.ArcMUDegree, &f.Wedge,
		&f.DynamicWedge, &f.Block, &f.Compensator, &f.EApplicator, &f.EFieldDefAperture, &f.Bolus,
		&f.PortfilmMUOpen, &f.PortfilmCoeffOpen, &f.PortfilmDeltaOpen, &f.PortfilmMUTreat,
		&f.PortfilmCoeffTreat, &f.IsoPosX, &f.IsoPosY, &f.IsoPosZ,
	}
	f.init(fieldSchema, f, slots...)
	return f
}

// NewField creates a Field owned by the nearest Prescription at or above
// parent.
func NewField(parent Record) (*Field, error) {
	f := newField()
	if err := attach(parent, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ExtendedField returns the field's extended record, or nil.
func (f *Field) ExtendedField() *ExtendedField {
	return childOf[*ExtendedField](&f.base)
}

func (f *Field) ControlPoints() []*ControlPoint {
	return childrenOf[*ControlPoint](&f.base)
}

// Prescription returns the owning prescription, or nil if f is
// detached.
func (f *Field) Prescription() *Prescription {
	p, _ := f.parent.(*Prescription)
	return p
}
