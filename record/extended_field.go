package record

import "slices"

// ExtendedField (EXTENDED_FIELD_DEF) adds DICOM references and, from
// format version 2.4, beam flags to a field.
type ExtendedField struct {
	base

	FieldID               Value
	OriginalPlanUID       Value
	OriginalBeamNumber    Value
	OriginalBeamName      Value
	IsFFF                 Value
	AccessoryCode         Value
	AccessoryType         Value
	HighDoseAuthorization Value
}

var extendedFieldSchema = &Schema{
	Keyword:   KeywordExtendedField,
	Parent:    KeywordField,
	Min:       4,
	Singleton: true,
	Attrs: slices.Concat(
		attrs(
			"field_id", "original_plan_uid", "original_beam_number", "original_beam_name",
		),
		since(Version24, attrs(
			"is_fff", "accessory_code", "accessory_type", "high_dose_authorization",
		)),
	),
}

func init() {
	register(extendedFieldSchema, func() Record { return newExtendedField() })
}

func newExtendedField() *ExtendedField {
	ef := &ExtendedField{}
	slots := []*Value{
		&ef.FieldID, &ef.OriginalPlanUID, &ef.OriginalBeamNumber, &ef.OriginalBeamName, &ef.IsFFF,
		&ef.AccessoryCode, &ef.AccessoryType, &ef.HighDoseAuthorization,
	}
	ef.init(extendedFieldSchema, ef, slots...)
	return ef
}

// NewExtendedField creates a ExtendedField owned by the nearest Field at or above
// parent.
func NewExtendedField(parent Record) (*ExtendedField, error) {
	ef := newExtendedField()
	if err := attach(parent, ef); err != nil {
		return nil, err
	}
	return ef, nil
}
