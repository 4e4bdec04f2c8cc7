package record

// SimulationField is a SIM_DEF record.
type SimulationField struct {
	base

	RxSiteName           Value
	FieldName            Value
	FieldID              Value
	FieldNote            Value
	TreatmentMachine     Value
	GantryAngle          Value
	CollimatorAngle      Value
	FieldXMode           Value
	FieldX               Value
	CollimatorX1         Value
	CollimatorX2         Value
	FieldYMode           Value
	FieldY               Value
	CollimatorY1         Value
	CollimatorY2         Value
	CouchVertical        Value
	CouchLateral         Value
	CouchLongitudinal    Value
	CouchAngle           Value
	CouchPedestal        Value
	SAD                  Value
	APSeparation         Value
	PASeparation         Value
	LateralSeparation    Value
	TangentialSeparation Value
	OtherLabel1          Value
	SSD1                 Value
	SFD1                 Value
	OtherLabel2          Value
	OtherMeasurement1    Value
	OtherMeasurement2    Value
	OtherLabel3          Value
	OtherMeasurement3    Value
	OtherMeasurement4    Value
	OtherLabel4          Value
	OtherMeasurement5    Value
	OtherMeasurement6    Value
	BladeXMode           Value
	BladeX               Value
	BladeX1              Value
	BladeX2              Value
	BladeYMode           Value
	BladeY               Value
	BladeY1              Value
	BladeY2              Value
	IILateral            Value
	IILongitudinal       Value
	IIVertical           Value
	KVP                  Value
	MA                   Value
	Seconds              Value
}

var simulationFieldSchema = &Schema{
	Keyword: KeywordSimulationField,
	Parent:  KeywordPrescription,
	Min:     17,
	Attrs: attrs(
		"rx_site_name", "field_name", "field_id", "field_note", "treatment_machine",
		"gantry_angle", "collimator_angle", "field_x_mode", "field_x", "collimator_x1",
		"collimator_x2", "field_y_mode", "field_y", "collimator_y1", "collimator_y2",
		"couch_vertical", "couch_lateral", "couch_longitudinal", "couch_angle",
		"couch_pedestal", "sad", "ap_separation", "pa_separation",
		"lateral_separation", "tangential_separation", "other_label_1", "ssd_1",
		"sfd_1", "other_label_2", "other_measurement_1", "other_measurement_2",
		"other_label_3", "other_measurement_3", "other_measurement_4", "other_label_4",
		"other_measurement_5", "other_measurement_6", "blade_x_mode", "blade_x",
		"blade_x1", "blade_x2", "blade_y_mode", "blade_y", "blade_y1", "blade_y2",
		"ii_lateral", "ii_longitudinal", "ii_vertical", "kvp", "ma", "seconds",
	),
}

func init() {
	register(simulationFieldSchema, func() Record { return newSimulationField() })
}

func newSimulationField() *SimulationField {
	sf := &SimulationField{}
	slots := []*Value{
		&sf.RxSiteName, &sf.FieldName, &sf.FieldID, &sf.FieldNote, &sf.TreatmentMachine, &sf.GantryAngle,
		&sf.CollimatorAngle, &sf.FieldXMode, &sf.FieldX, &sf.CollimatorX1, &sf.CollimatorX2,
		&sf.FieldYMode, &sf.FieldY, &sf.CollimatorY1, &sf.CollimatorY2, &sf.CouchVertical,
		&sf.CouchLateral, &sf.CouchLongitudinal, &sf.CouchAngle, &sf.CouchPedestal, &sf.SAD,
		&sf.APSeparation, &sf.PASeparation, &sf.LateralSeparation, &sf.TangentialSeparation,
		&sf.OtherLabel1, &sf.SSD1, &sf.SFD1, &sf.OtherLabel2, &sf.OtherMeasurement1,
		&sf.OtherMeasurement2, &sf.OtherLabel3, &sf.OtherMeasurement3, &sf.OtherMeasurement4,
		&sf.OtherLabel4, &sf.OtherMeasurement5, &sf.OtherMeasurement6, &sf.BladeXMode, &sf.BladeX,
		&sf.BladeX1, &sf.BladeX2, &sf.BladeYMode, &sf.BladeY, &sf.BladeY1, &sf.BladeY2, &sf.IILateral,
		&sf.IILongitudinal, &sf.IIVertical, &sf.KVP, &sf.MA, &sf.Seconds,
	}
	sf.init(simulationFieldSchema, sf, slots...)
	return sf
}

// NewSimulationField creates a SimulationField owned by the nearest Prescription at or above
// parent.
func NewSimulationField(parent Record) (*SimulationField, error) {
	sf := newSimulationField()
	if err := attach(parent, sf); err != nil {
		return nil, err
	}
	return sf, nil
}
