package record

import "slices"

// DoseTracking is a DOSE_DEF record: a dose tracking region of a plan
// with up to ten contributing fields.
type DoseTracking struct {
	base

	RegionName      Value
	RegionPriorDose Value

	fieldIDs     [10]Value
	regionCoeffs [10]Value

	ActualDose      Value
	ActualFractions Value
}

var doseTrackingSchema = &Schema{
	Keyword: KeywordDoseTracking,
	Parent:  KeywordPlan,
	Min:     7,
	Attrs: slices.Concat(
		attrs("region_name", "region_prior_dose"),
		attrs(numbered("field_id_", 10)...),
		attrs(numbered("region_coeff_", 10)...),
		attrs("actual_dose", "actual_fractions"),
	),
}

func init() {
	register(doseTrackingSchema, func() Record { return newDoseTracking() })
}

func newDoseTracking() *DoseTracking {
	dt := &DoseTracking{}
	slots := []*Value{
		&dt.RegionName, &dt.RegionPriorDose,
	}
	for i := range dt.fieldIDs {
		slots = append(slots, &dt.fieldIDs[i])
	}
	for i := range dt.regionCoeffs {
		slots = append(slots, &dt.regionCoeffs[i])
	}
	slots = append(slots, &dt.ActualDose, &dt.ActualFractions)
	dt.init(doseTrackingSchema, dt, slots...)
	return dt
}

// NewDoseTracking creates a DoseTracking owned by the nearest Plan at or above
// parent.
func NewDoseTracking(parent Record) (*DoseTracking, error) {
	dt := newDoseTracking()
	if err := attach(parent, dt); err != nil {
		return nil, err
	}
	return dt, nil
}

func (dt *DoseTracking) DoseActions() []*DoseAction {
	return childrenOf[*DoseAction](&dt.base)
}

// FieldIDs returns a copy of the ten field ids of the region.
func (dt *DoseTracking) FieldIDs() []Value {
	return slices.Clone(dt.fieldIDs[:])
}

// SetFieldIDs assigns all ten field ids.
func (dt *DoseTracking) SetFieldIDs(vs []Value) error {
	return setArray(dt.fieldIDs[:], vs, "field_ids")
}

// RegionCoeffs returns a copy of the ten region coefficients.
func (dt *DoseTracking) RegionCoeffs() []Value {
	return slices.Clone(dt.regionCoeffs[:])
}

// SetRegionCoeffs assigns all ten region coefficients.
func (dt *DoseTracking) SetRegionCoeffs(vs []Value) error {
	return setArray(dt.regionCoeffs[:], vs, "region_coeffs")
}
