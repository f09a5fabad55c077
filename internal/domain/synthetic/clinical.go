package synthetic

import (
	"time"

	"github.com/ehr/fhirmock/internal/platform/fhir"
	"github.com/ehr/fhirmock/pkg/fhirmodels"
)

// Condition returns an active or resolved Condition. Resolved conditions carry
// an abatement date on or after onset.
func (g *Generator) Condition() fhir.Resource {
	c := pick(g, conditionCodes)
	status := pick(g, conditionStatuses)
	onset, abatement := g.ordered(2010, 2023)
	r := fhir.Resource{
		"resourceType":  "Condition",
		"id":            g.id(),
		"code":          fhir.NewCodeableConcept(c.Code, fhirmodels.SystemICD10, c.Display),
		"subject":       g.ref("Patient"),
		"onsetDateTime": onset,
		"recordedDate":  g.date(2010, 2023),
		"clinicalStatus": fhir.CodeableConcept{Coding: []fhir.Coding{{
			System:  fhirmodels.SystemConditionClinical,
			Code:    status.Code,
			Display: status.Display,
		}}},
		"verificationStatus": fhir.CodeableConcept{Coding: []fhir.Coding{{
			System:  fhirmodels.SystemConditionVerStatus,
			Code:    "confirmed",
			Display: "Confirmed",
		}}},
	}
	if status.Code == fhirmodels.ConditionResolved {
		r["abatementDateTime"] = abatement
	}
	return r
}

func (g *Generator) AllergyIntolerance() fhir.Resource {
	a := pick(g, allergenCodes)
	return fhir.Resource{
		"resourceType":       "AllergyIntolerance",
		"id":                 g.id(),
		"clinicalStatus":     fhir.NewCodeableConcept("active", fhirmodels.SystemAllergyClinical, "Active"),
		"verificationStatus": fhir.NewCodeableConcept("confirmed", fhirmodels.SystemAllergyVerStatus, "Confirmed"),
		"type":               "allergy",
		"category":           []string{"food"},
		"criticality":        "high",
		"code":               fhir.NewCodeableConcept(a.Code, fhirmodels.SystemSNOMED, a.Display),
		"patient":            g.ref("Patient"),
		"onsetDateTime":      g.date(2000, 2023),
		"recordedDate":       g.date(2000, 2023),
	}
}

// Observation returns a final vital-sign Observation whose value lies inside
// the normal range of the chosen sign.
func (g *Generator) Observation() fhir.Resource {
	v := pick(g, vitalSigns)
	return fhir.Resource{
		"resourceType": "Observation",
		"id":           g.id(),
		"status":       "final",
		"category": []fhir.CodeableConcept{
			fhir.NewCodeableConcept(fhirmodels.ObsCategoryVitalSigns, fhirmodels.SystemObservationCat, "Vital Signs"),
		},
		"code":              fhir.NewCodeableConcept(v.Code, fhirmodels.SystemLOINC, v.Display),
		"subject":           g.ref("Patient"),
		"effectiveDateTime": g.date(2020, 2023),
		"issued":            g.now().UTC().Format(time.RFC3339),
		"valueQuantity": fhir.Quantity{
			Value:  g.between(v.Min, v.Max),
			Unit:   v.Unit,
			System: fhirmodels.SystemUCUM,
			Code:   v.Unit,
		},
	}
}

// DiagnosticReport returns a final lab report pointing at two Observation ids
// that were never generated.
func (g *Generator) DiagnosticReport() fhir.Resource {
	r := pick(g, reportCodes)
	return fhir.Resource{
		"resourceType":      "DiagnosticReport",
		"id":                g.id(),
		"status":            "final",
		"category":          fhir.NewCodeableConcept("LAB", fhirmodels.SystemDiagnosticService, "Laboratory"),
		"code":              fhir.NewCodeableConcept(r.Code, fhirmodels.SystemLOINC, r.Display),
		"subject":           g.ref("Patient"),
		"effectiveDateTime": g.date(2020, 2023),
		"issued":            g.now().UTC().Format(time.RFC3339),
		"result":            []fhir.Reference{g.ref("Observation"), g.ref("Observation")},
		"conclusion":        "All results within normal range.",
	}
}
