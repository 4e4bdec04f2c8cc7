package record

// Prescription is an RX_DEF record, a prescription site of a plan.
type Prescription struct {
	base

	CourseID       Value
	RxSiteName     Value
	Technique      Value
	Modality       Value
	DoseSpec       Value
	RxDepth        Value
	DoseTtl        Value
	DoseTx         Value
	Pattern        Value
	RxNote         Value
	NumberOfFields Value
}

var prescriptionSchema = &Schema{
	Keyword: KeywordPrescription,
	Parent:  KeywordPlan,
	Min:     4,
	Attrs: attrs(
		"course_id", "rx_site_name", "technique", "modality", "dose_spec", "rx_depth",
		"dose_ttl", "dose_tx", "pattern", "rx_note", "number_of_fields",
	),
}

func init() {
	register(prescriptionSchema, func() Record { return newPrescription() })
}

func newPrescription() *Prescription {
	p := &Prescription{}
	slots := []*Value{
		&p.CourseID, &p.RxSiteName, &p.Technique, &p.Modality, &p.DoseSpec, &p.RxDepth, &p.DoseTtl,
		&p.DoseTx, &p.Pattern, &p.RxNote, &p.NumberOfFields,
	}
	p.init(prescriptionSchema, p, slots...)
	return p
}

// NewPrescription creates a Prescription owned by the nearest Plan at or above
// parent.
func NewPrescription(parent Record) (*Prescription, error) {
	p := newPrescription()
	if err := attach(parent, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SiteSetup returns the prescription's site setup, or nil.
func (p *Prescription) SiteSetup() *SiteSetup {
	return childOf[*SiteSetup](&p.base)
}

func (p *Prescription) SimulationFields() []*SimulationField {
	return childrenOf[*SimulationField](&p.base)
}

func (p *Prescription) Fields() []*Field {
	return childrenOf[*Field](&p.base)
}
