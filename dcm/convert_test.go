package dcm

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/carlosqueiroz/rtp-connect/parse"
	"github.com/carlosqueiroz/rtp-connect/record"
	"github.com/google/go-cmp/cmp"
)

func readPlan(t *testing.T) *record.Plan {
	t.Helper()
	d, err := os.ReadFile(filepath.Join("..", "testdata", "plan.rtp"))
	if err != nil {
		t.Fatal(err)
	}
	plan, err := parse.Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	return plan
}

func testOptions(logs *bytes.Buffer) Options {
	n := 0
	return Options{
		Now: func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) },
		UID: func() string {
			n++
			return fmt.Sprintf("1.2.999.%d", n)
		},
		Logger: slog.New(slog.NewTextHandler(logs, nil)),
	}
}

func TestConvertTopLevel(t *testing.T) {
	logs := &bytes.Buffer{}
	ds, err := Convert(readPlan(t), testOptions(logs))
	if err != nil {
		t.Fatal(err)
	}
	want := map[Tag]string{
		SpecificCharacterSet:   "ISO_IR 100",
		InstanceCreationDate:   "20240305",
		InstanceCreationTime:   "140709",
		SOPClassUID:            "1.2.840.10008.5.1.4.1.1.481.5",
		SOPInstanceUID:         "1.2.3.4.7",
		Modality:               "RTPLAN",
		PatientsName:           "ALDERSON^TANGMAM^^^",
		PatientID:              "12345",
		OperatorsName:          "skonil^^^^",
		FrameOfReferenceUID:    "1.2.3.4.6",
		StudyInstanceUID:       "1.2.999.1",
		SeriesInstanceUID:      "1.2.999.2",
		RTPlanLabel:            "Bryst høyre",
		RTPlanName:             "Bryst høyre",
		RTPlanDescription:      "3D",
		RTPlanDate:             "20111123",
		RTPlanTime:             "150457",
		RTPlanGeometry:         "PATIENT",
		ApprovalStatus:         "UNAPPROVED",
		ManufacturersModelName: "RTP-to-DICOM",
	}
	for tag, v := range want {
		if got := ds.Value(tag); got != v {
			t.Errorf("%s: got %q want %q", tag, got, v)
		}
	}
	ss := ds.Items(ReferencedStructureSetSequence)
	if len(ss) != 1 || ss[0].Value(ReferencedSOPInstanceUID) != "1.2.3.4.5" {
		t.Errorf("structure set reference %v", ss)
	}
	ps := ds.Items(PatientSetupSequence)
	if len(ps) != 1 || ps[0].Value(PatientPosition) != "HFS" {
		t.Errorf("patient setup %v", ps)
	}
	fg := ds.Items(FractionGroupSequence)
	if len(fg) != 1 {
		t.Fatalf("%d fraction groups", len(fg))
	}
	if got := fg[0].Value(NumberOfFractionsPlanned); got != "25" {
		t.Errorf("fractions %q", got)
	}
	if got := fg[0].Value(NumberOfBeams); got != "2" {
		t.Errorf("beams %q", got)
	}
	rb := fg[0].Items(ReferencedBeamSequence)
	if len(rb) != 2 {
		t.Fatalf("%d referenced beams", len(rb))
	}
	if rb[0].Value(BeamDose) != "1.0" || rb[0].Value(BeamMeterset) != "112.4" || rb[0].Value(ReferencedBeamNumber) != "1" {
		t.Errorf("first referenced beam %s", Text(rb[0]))
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log output: %s", logs)
	}
}

func TestConvertBeams(t *testing.T) {
	ds, err := Convert(readPlan(t), testOptions(&bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	beams := ds.Items(BeamSequence)
	if len(beams) != 2 {
		t.Fatalf("got %d beams, setup field should be skipped", len(beams))
	}
	med, lat := beams[0], beams[1]
	if med.Value(BeamName) != "MED" || med.Value(BeamNumber) != "1" {
		t.Errorf("first beam %q %q", med.Value(BeamNumber), med.Value(BeamName))
	}
	if lat.Value(BeamName) != "LAT" || lat.Value(BeamNumber) != "2" {
		t.Errorf("second beam %q %q", lat.Value(BeamNumber), lat.Value(BeamName))
	}
	for _, b := range beams {
		if b.Value(SourceAxisDistance) != "1000.0" {
			t.Errorf("SAD %q", b.Value(SourceAxisDistance))
		}
		if b.Value(BeamType) != "STATIC" || b.Value(RadiationType) != "PHOTON" {
			t.Errorf("beam type %q radiation %q", b.Value(BeamType), b.Value(RadiationType))
		}
		if b.Value(NumberOfControlPoints) != "2" {
			t.Errorf("control points %q", b.Value(NumberOfControlPoints))
		}
	}
	if med.Value(NumberOfWedges) != "0" || lat.Value(NumberOfWedges) != "1" {
		t.Errorf("wedges %q %q", med.Value(NumberOfWedges), lat.Value(NumberOfWedges))
	}

	devs := med.Items(BeamLimitingDeviceSequence)
	var types []string
	for _, d := range devs {
		types = append(types, d.Value(RTBeamLimitingDeviceType))
	}
	if diff := cmp.Diff([]string{"ASYMY", "ASYMX", "MLCX"}, types); diff != "" {
		t.Errorf("limiting devices (-want +got):\n%s", diff)
	}
	if got := devs[2].Value(NumberOfLeafJawPairs); got != "40" {
		t.Errorf("leaf pairs %q", got)
	}
	if got := len(devs[2].Get(LeafPositionBoundaries).Values()); got != 41 {
		t.Errorf("%d leaf boundaries", got)
	}
	if got := len(lat.Items(BeamLimitingDeviceSequence)); got != 2 {
		t.Errorf("field without control points has %d limiting devices", got)
	}
}

func positions(item *Dataset) map[string]string {
	res := map[string]string{}
	for _, d := range item.Items(BeamLimitingDevicePositionSequence) {
		res[d.Value(RTBeamLimitingDeviceType)] = d.Value(LeafJawPositions)
	}
	return res
}

func TestConvertControlPoints(t *testing.T) {
	ds, err := Convert(readPlan(t), testOptions(&bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	beams := ds.Items(BeamSequence)
	cps := beams[0].Items(ControlPointSequence)
	if len(cps) != 2 {
		t.Fatalf("%d control points", len(cps))
	}
	first := cps[0]
	want := map[Tag]string{
		ControlPointIndex:                   "0",
		NominalBeamEnergy:                   "6.0",
		DoseRateSet:                         "600",
		GantryAngle:                         "300.0",
		GantryRotationDirection:             "NONE",
		BeamLimitingDeviceRotationDirection: "NONE",
		TableTopVerticalPosition:            "100.0",
		TableTopLongitudinalPosition:        "900.0",
		IsocenterPosition:                   `12.0\-34.0\50.0`,
		SourceToSurfaceDistance:             "925.0",
		CumulativeMetersetWeight:            "0.0",
	}
	for tag, v := range want {
		if got := first.Value(tag); got != v {
			t.Errorf("%s: got %q want %q", tag, got, v)
		}
	}
	if got := cps[1].Value(CumulativeMetersetWeight); got != "112.4" {
		t.Errorf("second meterset weight %q", got)
	}
	if got := cps[1].Value(ControlPointIndex); got != "1" {
		t.Errorf("second index %q", got)
	}
	pos := positions(first)
	// scale convention 1 negates X1 and Y1
	if pos["ASYMX"] != `50.0\50.0` || pos["ASYMY"] != `90.0\90.0` {
		t.Errorf("jaws %v", pos)
	}
	leaves := strings.Split(pos["MLCX"], `\`)
	if len(leaves) != 80 {
		t.Fatalf("%d leaf positions", len(leaves))
	}
	if leaves[0] != "-5.0" || leaves[10] != "-40.0" || leaves[40] != "5.0" || leaves[50] != "40.0" {
		t.Errorf("leaves %v", leaves)
	}
	rd := first.Items(ReferencedDoseReferenceSequence)
	if len(rd) != 1 || rd[0].Value(ReferencedDoseReferenceNumber) != "1" {
		t.Errorf("dose reference %v", rd)
	}
}

func TestConvertSynthesizedControlPoints(t *testing.T) {
	ds, err := Convert(readPlan(t), testOptions(&bytes.Buffer{}))
	if err != nil {
		t.Fatal(err)
	}
	lat := ds.Items(BeamSequence)[1]
	cps := lat.Items(ControlPointSequence)
	if len(cps) != 2 {
		t.Fatalf("%d control points", len(cps))
	}
	pos := positions(cps[0])
	want := map[string]string{"ASYMY": `90.0\90.0`, "ASYMX": `50.0\50.0`}
	if diff := cmp.Diff(want, pos); diff != "" {
		t.Errorf("jaw positions (-want +got):\n%s", diff)
	}
	if got := cps[0].Value(GantryRotationDirection); got != "NONE" {
		t.Errorf("gantry direction %q", got)
	}
	if got := cps[1].Value(CumulativeMetersetWeight); got != "98.7" {
		t.Errorf("final weight %q", got)
	}
	if len(cps[1].Elements) != 2 {
		t.Errorf("second control point has %d elements", len(cps[1].Elements))
	}
}

func TestConvertOptions(t *testing.T) {
	opts := testOptions(&bytes.Buffer{})
	opts.Manufacturer = "Varian"
	opts.Model = "Clinac"
	opts.SerialNumber = "1234"
	ds, err := Convert(readPlan(t), opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range ds.Items(BeamSequence) {
		if b.Value(Manufacturer) != "Varian" || b.Value(ManufacturersModelName) != "Clinac" || b.Value(DeviceSerialNumber) != "1234" {
			t.Errorf("beam device %s", Text(b))
		}
	}
	if ds.Value(Manufacturer) != "rtp-connect" {
		t.Errorf("top level manufacturer %q", ds.Value(Manufacturer))
	}
}

func TestConvertBarePlan(t *testing.T) {
	logs := &bytes.Buffer{}
	plan := record.NewPlan()
	plan.CourseID = record.V("C1")
	plan.Diagnosis = record.V("Prostate")
	ds, err := Convert(plan, testOptions(logs))
	if err != nil {
		t.Fatal(err)
	}
	if ds.Value(RTPlanName) != "C1" || ds.Value(RTPlanDescription) != "Prostate" {
		t.Errorf("plan name %q description %q", ds.Value(RTPlanName), ds.Value(RTPlanDescription))
	}
	if ds.Value(RTPlanDate) != "20240305" {
		t.Errorf("plan date %q", ds.Value(RTPlanDate))
	}
	if ds.Value(SOPInstanceUID) != "1.2.999.1" {
		t.Errorf("generated SOP instance UID %q", ds.Value(SOPInstanceUID))
	}
	if !strings.Contains(logs.String(), "no prescription") {
		t.Errorf("missing error log: %s", logs)
	}
	if got := ds.Items(FractionGroupSequence)[0].Value(NumberOfFractionsPlanned); got != "1" {
		t.Errorf("fractions %q", got)
	}
	if _, err := Convert(nil, Options{}); err != ErrNoPlan {
		t.Errorf("expected ErrNoPlan, got %v", err)
	}
}

func TestFractions(t *testing.T) {
	tests := []struct {
		ttl, tx, want string
	}{
		{"5000", "200", "25"},
		{"5000", "180", "28"},
		{"", "200", "1"},
		{"5000", "", "1"},
		{"5000", "0", "0"},
	}
	for _, tc := range tests {
		rx, err := record.NewPrescription(record.NewPlan())
		if err != nil {
			t.Fatal(err)
		}
		rx.DoseTtl = record.V(tc.ttl)
		rx.DoseTx = record.V(tc.tx)
		if got := fractions(rx); got != tc.want {
			t.Errorf("%s/%s: got %s want %s", tc.ttl, tc.tx, got, tc.want)
		}
	}
}

func TestUnsupportedBeam(t *testing.T) {
	logs := &bytes.Buffer{}
	plan := readPlan(t)
	f := plan.Prescriptions()[0].Fields()[1]
	f.TreatmentType = record.V("Arc")
	f.Modality = record.V("Protons")
	ds, err := Convert(plan, testOptions(logs))
	if err != nil {
		t.Fatal(err)
	}
	b := ds.Items(BeamSequence)[1]
	if b.Value(BeamType) != "" || b.Value(RadiationType) != "" {
		t.Errorf("unsupported beam gave %q %q", b.Value(BeamType), b.Value(RadiationType))
	}
	for _, msg := range []string{"unsupported beam type", "unsupported radiation type", "not a photon beam"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("missing log %q in %s", msg, logs)
		}
	}
}
