package record

// Plan is the root record of an RTP document (PLAN_DEF).  It holds
// patient and plan identification and owns the prescriptions, the dose
// tracking records and an optional extended plan record.
type Plan struct {
	base

	PatientID               Value
	PatientLastName         Value
	PatientFirstName        Value
	PatientMiddleInitial    Value
	PlanID                  Value
	PlanDate                Value
	PlanTime                Value
	CourseID                Value
	Diagnosis               Value
	MDLastName              Value
	MDFirstName             Value
	MDMiddleInitial         Value
	MDApproveLastName       Value
	MDApproveFirstName      Value
	MDApproveMiddleInitial  Value
	PhyApproveLastName      Value
	PhyApproveFirstName     Value
	PhyApproveMiddleInitial Value
	AuthorLastName          Value
	AuthorFirstName         Value
	AuthorMiddleInitial     Value
	RTPMfg                  Value
	RTPModel                Value
	RTPVersion              Value
	RTPIFProtocol           Value
	RTPIFVersion            Value
}

var planSchema = &Schema{
	Keyword: KeywordPlan,
	Min:     10,
	Attrs: attrs(
		"patient_id", "patient_last_name", "patient_first_name",
		"patient_middle_initial", "plan_id", "plan_date", "plan_time", "course_id",
		"diagnosis", "md_last_name", "md_first_name", "md_middle_initial",
		"md_approve_last_name", "md_approve_first_name", "md_approve_middle_initial",
		"phy_approve_last_name", "phy_approve_first_name",
		"phy_approve_middle_initial", "author_last_name", "author_first_name",
		"author_middle_initial", "rtp_mfg", "rtp_model", "rtp_version",
		"rtp_if_protocol", "rtp_if_version",
	),
}

func init() {
	register(planSchema, func() Record { return newPlan() })
}

func newPlan() *Plan {
	p := &Plan{}
	slots := []*Value{
		&p.PatientID, &p.PatientLastName, &p.PatientFirstName, &p.PatientMiddleInitial, &p.PlanID,
		&p.PlanDate, &p.PlanTime, &p.CourseID, &p.Diagnosis, &p.MDLastName, &p.MDFirstName,
		&p.MDMiddleInitial, &p.MDApproveLastName, &p.MDApproveFirstName, &p.MDApproveMiddleInitial,
		&p.PhyApproveLastName, &p.PhyApproveFirstName, &p.PhyApproveMiddleInitial, &p.AuthorLastName,
		&p.AuthorFirstName, &p.AuthorMiddleInitial, &p.RTPMfg, &p.RTPModel, &p.RTPVersion,
		&p.RTPIFProtocol, &p.RTPIFVersion,
	}
	p.init(planSchema, p, slots...)
	return p
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return newPlan()
}

// ExtendedPlan returns the plan's extended record, or nil.
func (p *Plan) ExtendedPlan() *ExtendedPlan {
	return childOf[*ExtendedPlan](&p.base)
}

func (p *Plan) Prescriptions() []*Prescription {
	return childrenOf[*Prescription](&p.base)
}

func (p *Plan) DoseTrackings() []*DoseTracking {
	return childrenOf[*DoseTracking](&p.base)
}
