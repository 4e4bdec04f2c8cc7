package dcm

// Tags of the attributes an RT Plan conversion produces.
const (
	SpecificCharacterSet                Tag = 0x00080005
	InstanceCreationDate                Tag = 0x00080012
	InstanceCreationTime                Tag = 0x00080013
	SOPClassUID                         Tag = 0x00080016
	SOPInstanceUID                      Tag = 0x00080018
	StudyDate                           Tag = 0x00080020
	StudyTime                           Tag = 0x00080030
	AccessionNumber                     Tag = 0x00080050
	Modality                            Tag = 0x00080060
	Manufacturer                        Tag = 0x00080070
	ReferringPhysiciansName             Tag = 0x00080090
	OperatorsName                       Tag = 0x00081070
	ManufacturersModelName              Tag = 0x00081090
	ReferencedSOPClassUID               Tag = 0x00081150
	ReferencedSOPInstanceUID            Tag = 0x00081155
	PatientsName                        Tag = 0x00100010
	PatientID                           Tag = 0x00100020
	PatientsBirthDate                   Tag = 0x00100030
	PatientsSex                         Tag = 0x00100040
	DeviceSerialNumber                  Tag = 0x00181000
	SoftwareVersions                    Tag = 0x00181020
	PatientPosition                     Tag = 0x00185100
	StudyInstanceUID                    Tag = 0x0020000D
	SeriesInstanceUID                   Tag = 0x0020000E
	StudyID                             Tag = 0x00200010
	SeriesNumber                        Tag = 0x00200011
	FrameOfReferenceUID                 Tag = 0x00200052
	PositionReferenceIndicator          Tag = 0x00201040
	RTPlanLabel                         Tag = 0x300A0002
	RTPlanName                          Tag = 0x300A0003
	RTPlanDescription                   Tag = 0x300A0004
	RTPlanDate                          Tag = 0x300A0006
	RTPlanTime                          Tag = 0x300A0007
	RTPlanGeometry                      Tag = 0x300A000C
	DoseReferenceSequence               Tag = 0x300A0010
	DoseReferenceNumber                 Tag = 0x300A0012
	DoseReferenceStructureType          Tag = 0x300A0014
	DoseReferenceDescription            Tag = 0x300A0016
	DoseReferenceType                   Tag = 0x300A0020
	FractionGroupSequence               Tag = 0x300A0070
	FractionGroupNumber                 Tag = 0x300A0071
	NumberOfFractionsPlanned            Tag = 0x300A0078
	NumberOfBeams                       Tag = 0x300A0080
	BeamDose                            Tag = 0x300A0084
	BeamMeterset                        Tag = 0x300A0086
	NumberOfBrachyApplicationSetups     Tag = 0x300A00A0
	BeamSequence                        Tag = 0x300A00B0
	TreatmentMachineName                Tag = 0x300A00B2
	PrimaryDosimeterUnit                Tag = 0x300A00B3
	SourceAxisDistance                  Tag = 0x300A00B4
	BeamLimitingDeviceSequence          Tag = 0x300A00B6
	RTBeamLimitingDeviceType            Tag = 0x300A00B8
	NumberOfLeafJawPairs                Tag = 0x300A00BC
	LeafPositionBoundaries              Tag = 0x300A00BE
	BeamNumber                          Tag = 0x300A00C0
	BeamName                            Tag = 0x300A00C2
	BeamDescription                     Tag = 0x300A00C3
	BeamType                            Tag = 0x300A00C4
	RadiationType                       Tag = 0x300A00C6
	TreatmentDeliveryType               Tag = 0x300A00CE
	NumberOfWedges                      Tag = 0x300A00D0
	NumberOfCompensators                Tag = 0x300A00E0
	NumberOfBoli                        Tag = 0x300A00ED
	NumberOfBlocks                      Tag = 0x300A00F0
	ApplicatorSequence                  Tag = 0x300A0107
	ApplicatorID                        Tag = 0x300A0108
	ApplicatorType                      Tag = 0x300A0109
	ApplicatorDescription               Tag = 0x300A010A
	CumulativeDoseReferenceCoefficient  Tag = 0x300A010C
	FinalCumulativeMetersetWeight       Tag = 0x300A010E
	NumberOfControlPoints               Tag = 0x300A0110
	ControlPointSequence                Tag = 0x300A0111
	ControlPointIndex                   Tag = 0x300A0112
	NominalBeamEnergy                   Tag = 0x300A0114
	DoseRateSet                         Tag = 0x300A0115
	BeamLimitingDevicePositionSequence  Tag = 0x300A011A
	LeafJawPositions                    Tag = 0x300A011C
	GantryAngle                         Tag = 0x300A011E
	GantryRotationDirection             Tag = 0x300A011F
	BeamLimitingDeviceAngle             Tag = 0x300A0120
	BeamLimitingDeviceRotationDirection Tag = 0x300A0121
	PatientSupportAngle                 Tag = 0x300A0122
	PatientSupportRotationDirection     Tag = 0x300A0123
	TableTopEccentricAngle              Tag = 0x300A0125
	TableTopEccentricRotationDirection  Tag = 0x300A0126
	TableTopVerticalPosition            Tag = 0x300A0128
	TableTopLongitudinalPosition        Tag = 0x300A0129
	TableTopLateralPosition             Tag = 0x300A012A
	IsocenterPosition                   Tag = 0x300A012C
	SourceToSurfaceDistance             Tag = 0x300A0130
	CumulativeMetersetWeight            Tag = 0x300A0134
	PatientSetupSequence                Tag = 0x300A0180
	PatientSetupNumber                  Tag = 0x300A0182
	SetupTechnique                      Tag = 0x300A01B0
	ReferencedBeamSequence              Tag = 0x300C0004
	ReferencedBeamNumber                Tag = 0x300C0006
	ReferencedDoseReferenceSequence     Tag = 0x300C0050
	ReferencedDoseReferenceNumber       Tag = 0x300C0051
	ReferencedStructureSetSequence      Tag = 0x300C0060
	ReferencedPatientSetupNumber        Tag = 0x300C006A
	ApprovalStatus                      Tag = 0x300E0002
)

// entry describes a tag in the dictionary.
type entry struct {
	VR   string
	Name string
}

var dictionary = map[Tag]entry{
	SpecificCharacterSet:                {"CS", "Specific Character Set"},
	InstanceCreationDate:                {"DA", "Instance Creation Date"},
	InstanceCreationTime:                {"TM", "Instance Creation Time"},
	SOPClassUID:                         {"UI", "SOP Class UID"},
	SOPInstanceUID:                      {"UI", "SOP Instance UID"},
	StudyDate:                           {"DA", "Study Date"},
	StudyTime:                           {"TM", "Study Time"},
	AccessionNumber:                     {"SH", "Accession Number"},
	Modality:                            {"CS", "Modality"},
	Manufacturer:                        {"LO", "Manufacturer"},
	ReferringPhysiciansName:             {"PN", "Referring Physician's Name"},
	OperatorsName:                       {"PN", "Operators' Name"},
	ManufacturersModelName:              {"LO", "Manufacturer's Model Name"},
	ReferencedSOPClassUID:               {"UI", "Referenced SOP Class UID"},
	ReferencedSOPInstanceUID:            {"UI", "Referenced SOP Instance UID"},
	PatientsName:                        {"PN", "Patient's Name"},
	PatientID:                           {"LO", "Patient ID"},
	PatientsBirthDate:                   {"DA", "Patient's Birth Date"},
	PatientsSex:                         {"CS", "Patient's Sex"},
	DeviceSerialNumber:                  {"LO", "Device Serial Number"},
	SoftwareVersions:                    {"LO", "Software Versions"},
	PatientPosition:                     {"CS", "Patient Position"},
	StudyInstanceUID:                    {"UI", "Study Instance UID"},
	SeriesInstanceUID:                   {"UI", "Series Instance UID"},
	StudyID:                             {"SH", "Study ID"},
	SeriesNumber:                        {"IS", "Series Number"},
	FrameOfReferenceUID:                 {"UI", "Frame of Reference UID"},
	PositionReferenceIndicator:          {"LO", "Position Reference Indicator"},
	RTPlanLabel:                         {"SH", "RT Plan Label"},
	RTPlanName:                          {"LO", "RT Plan Name"},
	RTPlanDescription:                   {"ST", "RT Plan Description"},
	RTPlanDate:                          {"DA", "RT Plan Date"},
	RTPlanTime:                          {"TM", "RT Plan Time"},
	RTPlanGeometry:                      {"CS", "RT Plan Geometry"},
	DoseReferenceSequence:               {"SQ", "Dose Reference Sequence"},
	DoseReferenceNumber:                 {"IS", "Dose Reference Number"},
	DoseReferenceStructureType:          {"CS", "Dose Reference Structure Type"},
	DoseReferenceDescription:            {"LO", "Dose Reference Description"},
	DoseReferenceType:                   {"CS", "Dose Reference Type"},
	FractionGroupSequence:               {"SQ", "Fraction Group Sequence"},
	FractionGroupNumber:                 {"IS", "Fraction Group Number"},
	NumberOfFractionsPlanned:            {"IS", "Number of Fractions Planned"},
	NumberOfBeams:                       {"IS", "Number of Beams"},
	BeamDose:                            {"DS", "Beam Dose"},
	BeamMeterset:                        {"DS", "Beam Meterset"},
	NumberOfBrachyApplicationSetups:     {"IS", "Number of Brachy Application Setups"},
	BeamSequence:                        {"SQ", "Beam Sequence"},
	TreatmentMachineName:                {"SH", "Treatment Machine Name"},
	PrimaryDosimeterUnit:                {"CS", "Primary Dosimeter Unit"},
	SourceAxisDistance:                  {"DS", "Source-Axis Distance"},
	BeamLimitingDeviceSequence:          {"SQ", "Beam Limiting Device Sequence"},
	RTBeamLimitingDeviceType:            {"CS", "RT Beam Limiting Device Type"},
	NumberOfLeafJawPairs:                {"IS", "Number of Leaf/Jaw Pairs"},
	LeafPositionBoundaries:              {"DS", "Leaf Position Boundaries"},
	BeamNumber:                          {"IS", "Beam Number"},
	BeamName:                            {"LO", "Beam Name"},
	BeamDescription:                     {"ST", "Beam Description"},
	BeamType:                            {"CS", "Beam Type"},
	RadiationType:                       {"CS", "Radiation Type"},
	TreatmentDeliveryType:               {"CS", "Treatment Delivery Type"},
	NumberOfWedges:                      {"IS", "Number of Wedges"},
	NumberOfCompensators:                {"IS", "Number of Compensators"},
	NumberOfBoli:                        {"IS", "Number of Boli"},
	NumberOfBlocks:                      {"IS", "Number of Blocks"},
	ApplicatorSequence:                  {"SQ", "Applicator Sequence"},
	ApplicatorID:                        {"SH", "Applicator ID"},
	ApplicatorType:                      {"CS", "Applicator Type"},
	ApplicatorDescription:               {"LO", "Applicator Description"},
	CumulativeDoseReferenceCoefficient:  {"DS", "Cumulative Dose Reference Coefficient"},
	FinalCumulativeMetersetWeight:       {"DS", "Final Cumulative Meterset Weight"},
	NumberOfControlPoints:               {"IS", "Number of Control Points"},
	ControlPointSequence:                {"SQ", "Control Point Sequence"},
	ControlPointIndex:                   {"IS", "Control Point Index"},
	NominalBeamEnergy:                   {"DS", "Nominal Beam Energy"},
	DoseRateSet:                         {"DS", "Dose Rate Set"},
	BeamLimitingDevicePositionSequence:  {"SQ", "Beam Limiting Device Position Sequence"},
	LeafJawPositions:                    {"DS", "Leaf/Jaw Positions"},
	GantryAngle:                         {"DS", "Gantry Angle"},
	GantryRotationDirection:             {"CS", "Gantry Rotation Direction"},
	BeamLimitingDeviceAngle:             {"DS", "Beam Limiting Device Angle"},
	BeamLimitingDeviceRotationDirection: {"CS", "Beam Limiting Device Rotation Direction"},
	PatientSupportAngle:                 {"DS", "Patient Support Angle"},
	PatientSupportRotationDirection:     {"CS", "Patient Support Rotation Direction"},
	TableTopEccentricAngle:              {"DS", "Table Top Eccentric Angle"},
	TableTopEccentricRotationDirection:  {"CS", "Table Top Eccentric Rotation Direction"},
	TableTopVerticalPosition:            {"DS", "Table Top Vertical Position"},
	TableTopLongitudinalPosition:        {"DS", "Table Top Longitudinal Position"},
	TableTopLateralPosition:             {"DS", "Table Top Lateral Position"},
	IsocenterPosition:                   {"DS", "Isocenter Position"},
	SourceToSurfaceDistance:             {"DS", "Source to Surface Distance"},
	CumulativeMetersetWeight:            {"DS", "Cumulative Meterset Weight"},
	PatientSetupSequence:                {"SQ", "Patient Setup Sequence"},
	PatientSetupNumber:                  {"IS", "Patient Setup Number"},
	SetupTechnique:                      {"CS", "Setup Technique"},
	ReferencedBeamSequence:              {"SQ", "Referenced Beam Sequence"},
	ReferencedBeamNumber:                {"IS", "Referenced Beam Number"},
	ReferencedDoseReferenceSequence:     {"SQ", "Referenced Dose Reference Sequence"},
	ReferencedDoseReferenceNumber:       {"IS", "Referenced Dose Reference Number"},
	ReferencedStructureSetSequence:      {"SQ", "Referenced Structure Set Sequence"},
	ReferencedPatientSetupNumber:        {"IS", "Referenced Patient Setup Number"},
	ApprovalStatus:                      {"CS", "Approval Status"},
}

// Lookup returns the value representation and name of t.  ok is false
// if t is not in the dictionary.
func Lookup(t Tag) (vr, name string, ok bool) {
	e, ok := dictionary[t]
	return e.VR, e.Name, ok
}
