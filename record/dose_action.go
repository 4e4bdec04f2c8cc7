package record

// DoseAction (DOSE_ACTION) records a change to a dose tracking
// region.
type DoseAction struct {
	base

	RegionName Value
	Sequence   Value
	DoseChange Value
	Date       Value
	Time       Value
	UserID     Value
}

var doseActionSchema = &Schema{
	Keyword: KeywordDoseAction,
	Parent:  KeywordDoseTracking,
	Min:     5,
	Attrs:   attrs("region_name", "sequence", "dose_change", "date", "time", "user_id"),
}

func init() {
	register(doseActionSchema, func() Record { return newDoseAction() })
}

func newDoseAction() *DoseAction {
	da := &DoseAction{}
	slots := []*Value{
		&da.RegionName, &da.Sequence, &da.DoseChange, &da.Date, &da.Time, &da.UserID,
	}
	da.init(doseActionSchema, da, slots...)
	return da
}

// NewDoseAction creates a DoseAction owned by the nearest DoseTracking at or above
// parent.
func NewDoseAction(parent Record) (*DoseAction, error) {
	da := newDoseAction()
	if err := attach(parent, da); err != nil {
		return nil, err
	}
	return da, nil
}
