package fhirmodels

// Code systems and value set constants shared by the synthetic generators.

// Code system URIs.
const (
	SystemICD10              = "http://hl7.org/fhir/sid/icd-10"
	SystemRxNorm             = "http://www.nlm.nih.gov/research/umls/rxnorm"
	SystemSNOMED             = "http://snomed.info/sct"
	SystemLOINC              = "http://loinc.org"
	SystemCVX                = "http://hl7.org/fhir/sid/cvx"
	SystemUCUM               = "http://unitsofmeasure.org"
	SystemActCode            = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	SystemParticipationType  = "http://terminology.hl7.org/CodeSystem/v3-ParticipationType"
	SystemObservationCat     = "http://terminology.hl7.org/CodeSystem/observation-category"
	SystemDiagnosticService  = "http://terminology.hl7.org/CodeSystem/v2-0074"
	SystemConditionClinical  = "http://terminology.hl7.org/CodeSystem/condition-clinical"
	SystemConditionVerStatus = "http://terminology.hl7.org/CodeSystem/condition-ver-status"
	SystemAllergyClinical    = "http://terminology.hl7.org/CodeSystem/allergyintolerance-clinical"
	SystemAllergyVerStatus   = "http://terminology.hl7.org/CodeSystem/allergyintolerance-verification"
	SystemSubscriberRelation = "http://terminology.hl7.org/CodeSystem/subscriber-relationship"
)

// EncounterStatus values per FHIR R4.
const (
	EncounterStatusPlanned    = "planned"
	EncounterStatusInProgress = "in-progress"
	EncounterStatusFinished   = "finished"
	EncounterStatusCancelled  = "cancelled"
)

// EncounterClass codes per FHIR R4 v3-ActCode.
const (
	EncounterClassAmbulatory = "AMB"
	EncounterClassEmergency  = "EMER"
	EncounterClassInpatient  = "IMP"
)

// ParticipantType codes.
const (
	ParticipantAttender = "ATND"
)

// ObservationCategory codes.
const (
	ObsCategoryVitalSigns = "vital-signs"
)

// ConditionClinicalStatus codes.
const (
	ConditionActive   = "active"
	ConditionResolved = "resolved"
)

// AdministrativeGender codes.
const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderOther   = "other"
	GenderUnknown = "unknown"
)

// Genders lists every AdministrativeGender code.
var Genders = []string{GenderMale, GenderFemale, GenderOther, GenderUnknown}
