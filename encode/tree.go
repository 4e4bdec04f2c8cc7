package encode

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/carlosqueiroz/rtp-connect/record"
)

// summaries lists the attributes shown for each record type in a
// non-verbose tree.
var summaries = map[record.Keyword][]string{
	record.KeywordPlan:            {"patient_id", "patient_last_name", "plan_id", "rtp_if_version"},
	record.KeywordExtendedPlan:    {"encoding", "fullname"},
	record.KeywordPrescription:    {"course_id", "rx_site_name", "technique", "modality"},
	record.KeywordSiteSetup:       {"patient_orientation", "treatment_machine"},
	record.KeywordSimulationField: {"field_id", "field_name"},
	record.KeywordField:           {"field_id", "field_name", "treatment_type", "energy", "field_monitor_units"},
	record.KeywordExtendedField:   {"field_id", "original_beam_name"},
	record.KeywordControlPoint:    {"control_pt_number", "monitor_units", "gantry_angle"},
	record.KeywordDoseTracking:    {"region_name", "actual_dose"},
	record.KeywordDoseAction:      {"region_name", "sequence", "dose_change"},
}

// Tree writes an indented, human readable outline of root.
func Tree(root record.Record, w io.Writer, opts ...TreeOption) error {
	ts := &treeState{indent: 2}
	for _, opt := range opts {
		opt(ts)
	}
	if ts.Color == nil {
		ts.Color = func(_ ColorAttr, s string) string { return s }
	}
	bw := bufio.NewWriter(w)
	record.Walk(root, func(r record.Record, depth int) bool {
		bw.WriteString(strings.Repeat(" ", depth*ts.indent))
		bw.WriteString(ts.Color(KeywordColor, string(r.Keyword())))
		for _, name := range ts.names(r) {
			v, _ := r.Attr(name)
			if v.IsEmpty() {
				continue
			}
			bw.WriteString(" ")
			bw.WriteString(ts.Color(NameColor, name))
			bw.WriteString(ts.Color(SepColor, "="))
			bw.WriteString(ts.Color(ValueColor, strconv.Quote(v.String())))
		}
		if n := len(r.Unknown()); n > 0 {
			bw.WriteString(ts.Color(ExtraColor, " (+"+strconv.Itoa(n)+" unknown)"))
		}
		bw.WriteString("\n")
		return true
	})
	return bw.Flush()
}

func (ts *treeState) names(r record.Record) []string {
	if ts.verbose {
		return r.Schema().Names()[1:]
	}
	return summaries[r.Keyword()]
}
