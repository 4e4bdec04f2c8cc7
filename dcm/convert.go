package dcm

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/carlosqueiroz/rtp-connect/debug"
	"github.com/carlosqueiroz/rtp-connect/record"
)

const (
	rtPlanStorage       = "1.2.840.10008.5.1.4.1.1.481.5"
	rtStructureSetStore = "1.2.840.10008.5.1.4.1.1.481.3"

	// SoftwareVersion is written to Software Versions (0018,1020).
	SoftwareVersion = "rtp-connect-go"
)

// Options control a conversion.  The zero value is usable.
type Options struct {
	// Manufacturer, Model and SerialNumber are written to every beam
	// when non-empty.
	Manufacturer string
	Model        string
	SerialNumber string

	// Now gives the creation time; defaults to time.Now.
	Now func() time.Time
	// UID makes up UIDs the plan does not carry; defaults to NewUID.
	UID func() string
	// Logger receives conversion problems; defaults to slog.Default().
	Logger *slog.Logger
}

type converter struct {
	opts   Options
	logger *slog.Logger
	date   string
	time   string
}

func newConverter(opts Options) *converter {
	c := &converter{opts: opts, logger: opts.Logger}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.opts.Now == nil {
		c.opts.Now = time.Now
	}
	if c.opts.UID == nil {
		c.opts.UID = NewUID
	}
	now := c.opts.Now()
	c.date = now.Format("20060102")
	c.time = now.Format("150405")
	return c
}

// uid returns v, or a new UID if v is empty.
func (c *converter) uid(v record.Value) string {
	if v.IsEmpty() {
		return c.opts.UID()
	}
	return v.String()
}

func personName(last, first, middle record.Value) string {
	return last.String() + "^" + first.String() + "^" + middle.String() + "^^"
}

// Convert builds an RT Plan dataset from plan and its descendants.
//
// Only the first prescription is converted.  Fields whose treatment
// type or modality is "Unspecified" (setup and imaging fields) are
// skipped.  A plan without prescription or fields still gives a
// dataset, but one that is not a valid RT Plan; the problem is logged.
func Convert(plan *record.Plan, opts Options) (*Dataset, error) {
	if plan == nil {
		return nil, ErrNoPlan
	}
	c := newConverter(opts)
	ds := c.convert(plan)
	if debug.Convert() {
		debug.Logf("converted plan %q: %d beams\n", plan.PlanID.String(), len(ds.Items(BeamSequence)))
		debug.LogAny(ds)
	}
	return ds, nil
}

func (c *converter) convert(plan *record.Plan) *Dataset {
	var rx *record.Prescription
	if rxs := plan.Prescriptions(); len(rxs) > 0 {
		rx = rxs[0]
	} else {
		c.logger.Error("no prescription record; the RT Plan will not be valid")
	}
	var site *record.SiteSetup
	if rx != nil {
		site = rx.SiteSetup()
	}

	ds := New()
	ds.Set(SpecificCharacterSet, "ISO_IR 100")
	ds.Set(InstanceCreationDate, c.date)
	ds.Set(InstanceCreationTime, c.time)
	ds.Set(SOPClassUID, rtPlanStorage)
	ds.Set(SOPInstanceUID, c.sopInstanceUID(rx))
	ds.Set(StudyDate, c.date)
	ds.Set(StudyTime, c.time)
	ds.Set(AccessionNumber, "")
	ds.Set(Modality, "RTPLAN")
	ds.Set(Manufacturer, "rtp-connect")
	ds.Set(ReferringPhysiciansName, personName(plan.MDLastName, plan.MDFirstName, plan.MDMiddleInitial))
	ds.Set(OperatorsName, personName(plan.AuthorLastName, plan.AuthorFirstName, plan.AuthorMiddleInitial))
	ds.Set(PatientsName, personName(plan.PatientLastName, plan.PatientFirstName, plan.PatientMiddleInitial))
	ds.Set(PatientID, plan.PatientID.String())
	ds.Set(PatientsBirthDate, "")
	ds.Set(PatientsSex, "")
	ds.Set(ManufacturersModelName, "RTP-to-DICOM")
	ds.Set(SoftwareVersions, SoftwareVersion)
	ds.Set(StudyInstanceUID, c.opts.UID())
	ds.Set(SeriesInstanceUID, c.opts.UID())
	ds.Set(StudyID, "1")
	ds.Set(SeriesNumber, "1")
	if site != nil {
		ds.Set(FrameOfReferenceUID, c.uid(site.FrameOfRefUID))
	} else {
		ds.Set(FrameOfReferenceUID, c.opts.UID())
	}
	ds.Set(PositionReferenceIndicator, "")

	planName := plan.CourseID.String()
	planDesc := plan.Diagnosis.String()
	if rx != nil {
		planName = rx.RxSiteName.String()
		planDesc = rx.Technique.String()
	}
	ds.Set(RTPlanLabel, truncate(planName, 16))
	ds.Set(RTPlanName, planName)
	ds.Set(RTPlanDescription, planDesc)
	ds.Set(RTPlanDate, orDefault(plan.PlanDate, c.date))
	ds.Set(RTPlanTime, orDefault(plan.PlanTime, c.time))
	ds.Set(RTPlanGeometry, "PATIENT")
	ds.Set(ApprovalStatus, "UNAPPROVED")

	ss := ds.Sequence(ReferencedStructureSetSequence).AddItem()
	ss.Set(ReferencedSOPClassUID, rtStructureSetStore)
	if site != nil {
		ss.Set(ReferencedSOPInstanceUID, c.uid(site.StructureSetUID))
	} else {
		ss.Set(ReferencedSOPInstanceUID, c.opts.UID())
	}

	ps := ds.Sequence(PatientSetupSequence).AddItem()
	pos := "HFS"
	if site != nil {
		pos = orDefault(site.PatientOrientation, pos)
	}
	ps.Set(PatientPosition, pos)
	ps.Set(PatientSetupNumber, "1")
	ps.Set(SetupTechnique, "ISOCENTRIC")

	dr := ds.Sequence(DoseReferenceSequence).AddItem()
	dr.Set(DoseReferenceNumber, "1")
	dr.Set(DoseReferenceStructureType, "SITE")
	dr.Set(DoseReferenceDescription, planName)
	dr.Set(DoseReferenceType, "TARGET")

	fg := ds.Sequence(FractionGroupSequence).AddItem()
	fg.Set(FractionGroupNumber, "1")
	fg.Set(NumberOfFractionsPlanned, fractions(rx))
	fg.Set(NumberOfBrachyApplicationSetups, "0")
	refBeams := fg.Sequence(ReferencedBeamSequence)
	beams := ds.Sequence(BeamSequence)

	if rx != nil {
		fields := rx.Fields()
		if len(fields) == 0 {
			c.logger.Error("no field records; the RT Plan will not be valid")
		}
		for i, f := range fields {
			if f.TreatmentType.String() == "Unspecified" || f.Modality.String() == "Unspecified" {
				if debug.Convert() {
					debug.Logf("skipping field %q\n", f.FieldName.String())
				}
				continue
			}
			c.beam(f, i, site, refBeams, beams)
		}
	}
	fg.Set(NumberOfBeams, strconv.Itoa(len(refBeams.Items)))
	return ds
}

func (c *converter) sopInstanceUID(rx *record.Prescription) string {
	if rx == nil {
		return c.opts.UID()
	}
	fields := rx.Fields()
	if len(fields) == 0 {
		return c.opts.UID()
	}
	ef := fields[0].ExtendedField()
	if ef == nil {
		return c.opts.UID()
	}
	return c.uid(ef.OriginalPlanUID)
}

// fractions derives the number of fractions from total and fraction
// dose, defaulting to 1 when either is missing.
func fractions(rx *record.Prescription) string {
	if rx == nil || rx.DoseTtl.IsEmpty() || rx.DoseTx.IsEmpty() {
		return "1"
	}
	n := float64(rx.DoseTtl.Int()) / rx.DoseTx.Float()
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return "0"
	}
	return strconv.Itoa(int(math.Round(n)))
}

func beamType(treatment string) (string, bool) {
	switch treatment {
	case "Static", "StepNShoot":
		return "STATIC", true
	case "VMAT":
		return "DYNAMIC", true
	}
	return "", false
}

func radiationType(modality string) (string, bool) {
	switch modality {
	case "Elect":
		return "ELECTRON", true
	case "Xrays":
		return "PHOTON", true
	}
	return "", false
}

func hasBackupJaws(f *record.Field) bool {
	m := strings.ToUpper(f.FieldXMode.String())
	return m == "SYM" || m == "ASY"
}

func count(v record.Value) string {
	if v.IsEmpty() {
		return "0"
	}
	return "1"
}

func (c *converter) beam(f *record.Field, i int, site *record.SiteSetup, refBeams, beams *Element) {
	modality := f.Modality.String()
	if modality != "Xrays" {
		c.logger.Warn("not a photon beam; electron conversion is experimental and other modalities are unsupported",
			"field", f.FieldName.String(), "modality", modality)
	}
	number := strconv.Itoa(i + 1)
	name := f.FieldName.String()
	if ef := f.ExtendedField(); ef != nil {
		number = ef.OriginalBeamNumber.String()
		name = ef.OriginalBeamName.String()
	}

	rb := refBeams.AddItem()
	dose := ""
	if !f.FieldDose.IsEmpty() {
		dose = ftoa(round(f.FieldDose.Float()*0.01, 4))
	}
	rb.Set(BeamDose, dose)
	rb.Set(BeamMeterset, f.FieldMonitorUnits.String())
	rb.Set(ReferencedBeamNumber, number)

	b := beams.AddItem()
	if c.opts.Manufacturer != "" {
		b.Set(Manufacturer, c.opts.Manufacturer)
	}
	if c.opts.Model != "" {
		b.Set(ManufacturersModelName, c.opts.Model)
	}
	if c.opts.SerialNumber != "" {
		b.Set(DeviceSerialNumber, c.opts.SerialNumber)
	}
	b.Set(TreatmentMachineName, truncate(f.TreatmentMachine.String(), 16))
	b.Set(PrimaryDosimeterUnit, "MU")
	b.Set(SourceAxisDistance, mm(f.SAD))
	b.Set(BeamNumber, number)
	b.Set(BeamName, name)
	b.Set(BeamDescription, f.FieldNote.String())
	bt, ok := beamType(f.TreatmentType.String())
	if !ok {
		c.logger.Error("unsupported beam type", "field", name, "treatment_type", f.TreatmentType.String())
	}
	b.Set(BeamType, bt)
	rt, ok := radiationType(modality)
	if !ok {
		c.logger.Error("unsupported radiation type", "field", name, "modality", modality)
	}
	b.Set(RadiationType, rt)
	b.Set(TreatmentDeliveryType, "TREATMENT")
	b.Set(NumberOfWedges, count(f.Wedge))
	b.Set(NumberOfCompensators, count(f.Compensator))
	b.Set(NumberOfBoli, count(f.Bolus))
	b.Set(NumberOfBlocks, count(f.Block))
	b.Set(FinalCumulativeMetersetWeight, f.FieldMonitorUnits.String())
	b.Set(ReferencedPatientSetupNumber, "1")

	cps := f.ControlPoints()
	bl := b.Sequence(BeamLimitingDeviceSequence)
	y := bl.AddItem()
	y.Set(RTBeamLimitingDeviceType, "ASYMY")
	y.Set(NumberOfLeafJawPairs, "1")
	if hasBackupJaws(f) {
		x := bl.AddItem()
		x.Set(RTBeamLimitingDeviceType, "ASYMX")
		x.Set(NumberOfLeafJawPairs, "1")
	}
	if len(cps) > 0 {
		n := cps[0].MLCLeaves.Int()
		mlc := bl.AddItem()
		mlc.Set(RTBeamLimitingDeviceType, "MLCX")
		mlc.Set(NumberOfLeafJawPairs, strconv.Itoa(n))
		bounds := LeafBoundaries(n)
		ss := make([]string, len(bounds))
		for i, v := range bounds {
			ss[i] = strconv.Itoa(v)
		}
		mlc.Set(LeafPositionBoundaries, strings.Join(ss, `\`))
	}

	if !f.EApplicator.IsEmpty() {
		app := b.Sequence(ApplicatorSequence).AddItem()
		aperture := f.EFieldDefAperture.String()
		app.Set(ApplicatorID, aperture)
		app.Set(ApplicatorType, "ELECTRON_"+strings.ToUpper(f.EApplicator.String()))
		app.Set(ApplicatorDescription, "Appl. "+aperture)
	}

	cpSeq := b.Sequence(ControlPointSequence)
	if len(cps) < 2 {
		c.fieldControlPoints(f, site, cps, cpSeq)
	} else {
		for _, cp := range cps {
			c.controlPoint(cp, site, cpSeq)
		}
	}
	b.Set(NumberOfControlPoints, strconv.Itoa(len(cpSeq.Items)))
	if debug.Convert() {
		debug.Logf("beam %s %q: %d control points\n", number, name, len(cpSeq.Items))
	}
}

func (c *converter) isocenter(item *Dataset, site *record.SiteSetup) {
	if site == nil {
		c.logger.Warn("no site setup record; isocenter position left empty")
		item.Set(IsocenterPosition, "")
		return
	}
	item.Set(IsocenterPosition, join([]float64{
		round(site.IsoPosX.Float()*10, 2),
		round(site.IsoPosY.Float()*10, 2),
		round(site.IsoPosZ.Float()*10, 2),
	}))
}

func leafJaw(a, b []float64) string {
	pos := make([]float64, 0, len(a)+len(b))
	for _, v := range a {
		pos = append(pos, round(v, 2))
	}
	for _, v := range b {
		pos = append(pos, round(v, 2))
	}
	return join(pos)
}

func doseReference(item *Dataset) {
	rd := item.Sequence(ReferencedDoseReferenceSequence).AddItem()
	rd.Set(CumulativeDoseReferenceCoefficient, "")
	rd.Set(ReferencedDoseReferenceNumber, "1")
}

// fieldControlPoints makes the two control points of a field that
// has fewer than two of its own, taking settings from the field and
// the leaves from its only control point, if any.
func (c *converter) fieldControlPoints(f *record.Field, site *record.SiteSetup, cps []*record.ControlPoint, seq *Element) {
	first := seq.AddItem()
	first.Set(ControlPointIndex, "0")
	first.Set(NominalBeamEnergy, ftoa(f.Energy.Float()))
	first.Set(DoseRateSet, f.Doserate.String())
	first.Set(GantryAngle, f.GantryAngle.String())
	first.Set(GantryRotationDirection, orDefault(f.ArcDirection, "NONE"))
	first.Set(BeamLimitingDeviceAngle, f.CollimatorAngle.String())
	first.Set(BeamLimitingDeviceRotationDirection, "NONE")
	first.Set(PatientSupportAngle, f.CouchPedestal.String())
	first.Set(PatientSupportRotationDirection, "NONE")
	first.Set(TableTopEccentricAngle, f.CouchAngle.String())
	first.Set(TableTopEccentricRotationDirection, "NONE")
	first.Set(TableTopVerticalPosition, mmOrEmpty(f.CouchVertical))
	first.Set(TableTopLongitudinalPosition, mmOrEmpty(f.CouchLongitudinal))
	first.Set(TableTopLateralPosition, mmOrEmpty(f.CouchLateral))
	c.isocenter(first, site)
	first.Set(SourceToSurfaceDistance, mm(f.SSD))
	first.Set(CumulativeMetersetWeight, "0.0")

	dp := first.Sequence(BeamLimitingDevicePositionSequence)
	y := dp.AddItem()
	y.Set(RTBeamLimitingDeviceType, "ASYMY")
	y.Set(LeafJawPositions, mm(f.CollimatorY1)+`\`+mm(f.CollimatorY2))
	if hasBackupJaws(f) {
		x := dp.AddItem()
		x.Set(RTBeamLimitingDeviceType, "ASYMX")
		x.Set(LeafJawPositions, mm(f.CollimatorX1)+`\`+mm(f.CollimatorX2))
	}
	if len(cps) > 0 {
		mlc := dp.AddItem()
		mlc.Set(RTBeamLimitingDeviceType, "MLCX")
		mlc.Set(LeafJawPositions, leafJaw(cps[0].LeafPositions()))
	}
	doseReference(first)

	second := seq.AddItem()
	second.Set(ControlPointIndex, "1")
	second.Set(CumulativeMetersetWeight, f.FieldMonitorUnits.String())
}

func (c *converter) controlPoint(cp *record.ControlPoint, site *record.SiteSetup, seq *Element) {
	f := cp.Field()
	item := seq.AddItem()
	item.Set(ControlPointIndex, strconv.Itoa(cp.Index()))
	item.Set(NominalBeamEnergy, ftoa(cp.Energy.Float()))
	item.Set(DoseRateSet, cp.Doserate.String())
	item.Set(GantryAngle, cp.GantryAngle.String())
	item.Set(GantryRotationDirection, orDefault(cp.GantryDir, "NONE"))
	item.Set(BeamLimitingDeviceAngle, cp.CollimatorAngle.String())
	item.Set(BeamLimitingDeviceRotationDirection, orDefault(cp.CollimatorDir, "NONE"))
	item.Set(PatientSupportAngle, cp.CouchPedestal.String())
	item.Set(PatientSupportRotationDirection, orDefault(cp.CouchPedDir, "NONE"))
	item.Set(TableTopEccentricAngle, cp.CouchAngle.String())
	item.Set(TableTopEccentricRotationDirection, orDefault(cp.CouchDir, "NONE"))
	item.Set(TableTopVerticalPosition, mmOrEmpty(cp.CouchVertical))
	item.Set(TableTopLongitudinalPosition, mmOrEmpty(cp.CouchLongitudinal))
	item.Set(TableTopLateralPosition, mmOrEmpty(cp.CouchLateral))
	c.isocenter(item, site)
	item.Set(SourceToSurfaceDistance, mm(cp.SSD))
	weight := cp.MonitorUnits.Float() * f.FieldMonitorUnits.Float()
	item.Set(CumulativeMetersetWeight, ftoa(round(weight, 4)))

	dp := item.Sequence(BeamLimitingDevicePositionSequence)
	y := dp.AddItem()
	y.Set(RTBeamLimitingDeviceType, "ASYMY")
	y.Set(LeafJawPositions, join([]float64{cp.DcmCollimatorY1(), cp.DcmCollimatorY2()}))
	if hasBackupJaws(f) {
		x := dp.AddItem()
		x.Set(RTBeamLimitingDeviceType, "ASYMX")
		x.Set(LeafJawPositions, join([]float64{cp.DcmCollimatorX1(), cp.DcmCollimatorX2()}))
	}
	mlc := dp.AddItem()
	mlc.Set(RTBeamLimitingDeviceType, "MLCX")
	mlc.Set(LeafJawPositions, leafJaw(cp.LeafPositions()))
	doseReference(item)
}
