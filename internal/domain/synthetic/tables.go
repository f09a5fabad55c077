package synthetic

import "github.com/ehr/fhirmock/pkg/fhirmodels"

// code is a coded concept drawn from one of the tables below.
type code struct {
	Code    string
	Display string
}

// vitalSign is a LOINC vital sign with a plausible normal range.
type vitalSign struct {
	Code    string
	Display string
	Unit    string
	Min     float64
	Max     float64
}

var maleFirstNames = []string{
	"James", "Michael", "Robert", "John", "David", "William", "Richard",
	"Joseph", "Thomas", "Christopher", "Charles", "Daniel", "Matthew",
	"Anthony", "Mark", "Donald", "Steven", "Andrew", "Paul", "Joshua",
	"Kenneth", "Kevin", "Brian", "Timothy", "Ronald", "Jason", "Jeffrey",
	"Ryan", "Jacob", "Gary", "Nicholas", "Eric", "Stephen", "Jonathan",
	"Frank", "Scott", "Justin", "Brandon", "Raymond", "Gregory", "Samuel",
	"Patrick", "Alexander", "Jack", "Dennis", "Jerry", "Tyler", "Aaron",
	"Jose", "Adam", "Nathan",
}

var femaleFirstNames = []string{
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan",
	"Jessica", "Sarah", "Margaret", "Dorothy", "Lisa", "Nancy", "Karen",
	"Betty", "Helen", "Sandra", "Ashley", "Kimberly", "Emily", "Donna",
	"Michelle", "Carol", "Amanda", "Melissa", "Debra", "Stephanie", "Rebecca",
	"Laura", "Sharon", "Cynthia", "Kathleen", "Amy", "Angela", "Shirley",
	"Anna", "Ruth", "Brenda", "Pamela", "Nicole", "Christine", "Samantha",
	"Katherine", "Virginia", "Emma", "Rachel", "Marie", "Joyce", "Diana",
	"Julie", "Victoria", "Megan",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green", "Adams",
	"Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter",
	"Roberts",
}

var streetNames = []string{
	"Main St", "Oak Ave", "Maple Rd", "Cedar Ln", "Park Ave", "Elm St",
	"Washington St", "Lake St", "Hill St", "Pine St", "Spruce St",
	"Central Ave", "Broadway", "Church St", "Highland Ave", "Center St",
	"North St", "Union St", "South St", "River Rd", "Market St", "Court St",
	"Park St", "Liberty St", "Franklin St", "Walnut St", "Mill St",
	"Spring St", "School St", "High St",
}

var cities = []string{"Springfield", "Riverside", "Fairview", "Lakeside"}

var states = []string{"CA", "NY", "TX", "FL", "IL"}

// ICD-10
var conditionCodes = []code{
	{"I10", "Essential (primary) hypertension"},
	{"E11", "Type 2 diabetes mellitus"},
	{"J45", "Asthma"},
	{"M17", "Osteoarthritis of knee"},
}

// RxNorm
var medicationCodes = []code{
	{"315246", "Lisinopril 10 MG Oral Tablet"},
	{"314231", "Metformin 500 MG Oral Tablet"},
	{"746281", "Albuterol 0.09 MG/ACTUAT Inhalant Solution"},
}

// SNOMED CT
var allergenCodes = []code{
	{"91935009", "Allergy to peanuts"},
	{"91934008", "Allergy to milk"},
	{"418689008", "Allergy to grass pollen"},
	{"232350006", "Allergy to house dust mite"},
}

var vitalSigns = []vitalSign{
	{"8867-4", "Heart rate", "beats/minute", 60, 100},
	{"8310-5", "Body temperature", "Cel", 36.1, 37.2},
	{"8480-6", "Systolic blood pressure", "mm[Hg]", 90, 120},
	{"8462-4", "Diastolic blood pressure", "mm[Hg]", 60, 80},
}

// LOINC panels
var reportCodes = []code{
	{"58410-2", "Complete blood count (hemogram) panel - Blood by Automated count"},
	{"30954-2", "Liver function panel - Serum or Plasma"},
	{"57021-8", "CBC W Auto Differential panel - Blood"},
}

// CVX
var vaccineCodes = []code{
	{"08", "Hepatitis B vaccine"},
	{"19", "BCG vaccine"},
	{"20", "DTaP vaccine"},
	{"10", "IPV vaccine"},
}

// SNOMED CT practice settings
var appointmentTypes = []code{
	{"408443003", "General medical practice"},
	{"394701000", "Cardiology"},
	{"394584008", "Dermatology"},
}

var encounterClasses = []code{
	{fhirmodels.EncounterClassAmbulatory, "ambulatory"},
	{fhirmodels.EncounterClassEmergency, "emergency"},
	{fhirmodels.EncounterClassInpatient, "inpatient encounter"},
}

// v3-ActCode coverage types
var coverageTypes = []code{
	{"EHCPOL", "extended healthcare"},
	{"PUBLICPOL", "public healthcare"},
	{"DENTPRG", "dental program"},
}

var encounterStatuses = []string{
	fhirmodels.EncounterStatusPlanned,
	fhirmodels.EncounterStatusInProgress,
	fhirmodels.EncounterStatusFinished,
	fhirmodels.EncounterStatusCancelled,
}

// condition-clinical codes
var conditionStatuses = []code{
	{fhirmodels.ConditionActive, "Active"},
	{fhirmodels.ConditionResolved, "Resolved"},
}
