package record

// ExtendedPlan (EXTENDED_PLAN_DEF) carries free text plan details.
type ExtendedPlan struct {
	base

	Encoding        Value
	Fullname        Value
	PatientComments Value
}

var extendedPlanSchema = &Schema{
	Keyword:   KeywordExtendedPlan,
	Parent:    KeywordPlan,
	Min:       4,
	Singleton: true,
	Attrs:     attrs("encoding", "fullname", "patient_comments"),
}

func init() {
	register(extendedPlanSchema, func() Record { return newExtendedPlan() })
}

func newExtendedPlan() *ExtendedPlan {
	ep := &ExtendedPlan{}
	slots := []*Value{
		&ep.Encoding, &ep.Fullname, &ep.PatientComments,
	}
	ep.init(extendedPlanSchema, ep, slots...)
	return ep
}

// NewExtendedPlan creates a ExtendedPlan owned by the nearest Plan at or above
// parent.
func NewExtendedPlan(parent Record) (*ExtendedPlan, error) {
	ep := newExtendedPlan()
	if err := attach(parent, ep); err != nil {
		return nil, err
	}
	return ep, nil
}
