package record

import "slices"

// ControlPoint is a CONTROL_PT_DEF record.  Besides its scalar
// attributes it carries the positions of 100 leaves on each side of
// the multileaf collimator.  Positions are in cm.
type ControlPoint struct {
	base

	FieldID            Value
	MLCType            Value
	MLCLeaves          Value
	TotalControlPoints Value
	ControlPtNumber    Value
	MUConvention       Value
	MonitorUnits       Value
	WedgePosition      Value
	Energy             Value
	Doserate           Value
	SSD                Value
	ScaleConvention    Value
	GantryAngle        Value
	GantryDir          Value
	CollimatorAngle    Value
	CollimatorDir      Value
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
	CouchDir           Value
	CouchPedestal      Value
	CouchPedDir        Value

	leafA [100]Value
	leafB [100]Value
}

var controlPointSchema = &Schema{
	Keyword: KeywordControlPoint,
	Parent:  KeywordField,
	Min:     233,
	Attrs: trimmed(
		slices.Concat(
			attrs(
				"field_id", "mlc_type", "mlc_leaves", "total_control_points",
				"control_pt_number", "mu_convention", "monitor_units", "wedge_position",
				"energy", "doserate", "ssd", "scale_convention", "gantry_angle", "gantry_dir",
				"collimator_angle", "collimator_dir", "field_x_mode", "field_x",
				"collimator_x1", "collimator_x2", "field_y_mode", "field_y", "collimator_y1",
				"collimator_y2", "couch_vertical", "couch_lateral", "couch_longitudinal",
				"couch_angle", "couch_dir", "couch_pedestal", "couch_ped_dir",
			),
			trimAll(attrs(numbered("mlc_lp_a_", 100)...)),
			trimAll(attrs(numbered("mlc_lp_b_", 100)...)),
		),
		"mlc_leaves", "total_control_points", "control_pt_number", "doserate",
		"gantry_angle", "collimator_angle", "field_x", "collimator_x1",
		"collimator_x2", "field_y", "collimator_y1", "collimator_y2", "couch_vertical",
		"couch_lateral", "couch_longitudinal", "couch_angle", "couch_pedestal",
	),
}

func init() {
	register(controlPointSchema, func() Record { return newControlPoint() })
}

func newControlPoint() *ControlPoint {
	cp := &ControlPoint{}
	slots := []*Value{
		&cp.FieldID, &cp.MLCType, &cp.MLCLeaves, &cp.TotalControlPoints, &cp.ControlPtNumber,
		&cp.MUConvention, &cp.MonitorUnits, &cp.WedgePosition, &cp.Energy, &cp.Doserate, &cp.SSD,
		&cp.ScaleConvention, &cp.GantryAngle, &cp.GantryDir, &cp.CollimatorAngle, &cp.CollimatorDir,
		&cp.FieldXMode, &cp.FieldX, &cp.CollimatorX1, &cp.CollimatorX2, &cp.FieldYMode, &cp.FieldY,
		&cp.CollimatorY1, &cp.CollimatorY2, &cp.CouchVertical, &cp.CouchLateral, &cp.CouchLongitudinal,
		&cp.CouchAngle, &cp.CouchDir, &cp.CouchPedestal, &cp.CouchPedDir,
	}
	for i := range cp.leafA {
		slots = append(slots, &cp.leafA[i])
	}
	for i := range cp.leafB {
		slots = append(slots, &cp.leafB[i])
	}
	cp.init(controlPointSchema, cp, slots...)
	return cp
}

// NewControlPoint creates a ControlPoint owned by the nearest Field at or above
// parent.
func NewControlPoint(parent Record) (*ControlPoint, error) {
	cp := newControlPoint()
	if err := attach(parent, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

// LeafCount is the number of leaf positions per MLC side.
const LeafCount = 100

// MLCLeafA returns a copy of the A side leaf positions.
func (cp *ControlPoint) MLCLeafA() []Value {
	return slices.Clone(cp.leafA[:])
}

func (cp *ControlPoint) MLCLeafB() []Value {
	return slices.Clone(cp.leafB[:])
}

// SetMLCLeafA assigns all A side leaf positions.  vs must have exactly
// LeafCount elements; each is trimmed.
func (cp *ControlPoint) SetMLCLeafA(vs []Value) error {
	return setLeaves(cp.leafA[:], vs, "mlc_lp_a")
}

func (cp *ControlPoint) SetMLCLeafB(vs []Value) error {
	return setLeaves(cp.leafB[:], vs, "mlc_lp_b")
}

func setLeaves(dst, vs []Value, name string) error {
	if err := setArray(dst, vs, name); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = dst[i].Trim()
	}
	return nil
}

// Field returns the owning field, or nil if cp is detached.
func (cp *ControlPoint) Field() *Field {
	f, _ := cp.parent.(*Field)
	return f
}

// Index returns the position of cp among its field's control points,
// or -1 if cp is detached.
func (cp *ControlPoint) Index() int {
	f := cp.Field()
	if f == nil {
		return -1
	}
	return slices.Index(f.ControlPoints(), cp)
}

// DcmCollimatorX1 returns the X1 jaw position in mm.  The control
// point's own position is used when it carries a field X mode,
// otherwise the field's.
func (cp *ControlPoint) DcmCollimatorX1() float64 {
	return cp.scaleConvert(cp.jaw(cp.FieldXMode, cp.CollimatorX1, func(f *Field) Value { return f.CollimatorX1 }))
}

func (cp *ControlPoint) DcmCollimatorX2() float64 {
	return cp.jaw(cp.FieldXMode, cp.CollimatorX2, func(f *Field) Value { return f.CollimatorX2 })
}

func (cp *ControlPoint) DcmCollimatorY1() float64 {
	return cp.scaleConvert(cp.jaw(cp.FieldYMode, cp.CollimatorY1, func(f *Field) Value { return f.CollimatorY1 }))
}

func (cp *ControlPoint) DcmCollimatorY2() float64 {
	return cp.jaw(cp.FieldYMode, cp.CollimatorY2, func(f *Field) Value { return f.CollimatorY2 })
}

func (cp *ControlPoint) jaw(mode, own Value, fromField func(*Field) Value) float64 {
	if !mode.IsEmpty() {
		return own.Float() * 10
	}
	f := cp.Field()
	if f == nil {
		return 0
	}
	return fromField(f).Float() * 10
}

// scaleConvert negates v when the scale convention is 1, where X1 and
// Y1 are read out as positive numbers on the negative side.  Only X1
// and Y1 are affected.
func (cp *ControlPoint) scaleConvert(v float64) float64 {
	if cp.ScaleConvention.Int() == 1 {
		return -v
	}
	return v
}

// LeafPositions returns the non-empty leaf positions of each side in
// mm.
func (cp *ControlPoint) LeafPositions() (a, b []float64) {
	return leafMM(cp.leafA[:]), leafMM(cp.leafB[:])
}

func leafMM(vs []Value) []float64 {
	var res []float64
	for _, v := range vs {
		if v.IsEmpty() {
			continue
		}
		res = append(res, v.Float()*10)
	}
	return res
}
