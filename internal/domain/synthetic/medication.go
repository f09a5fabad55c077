package synthetic

import (
	"github.com/ehr/fhirmock/internal/platform/fhir"
	"github.com/ehr/fhirmock/pkg/fhirmodels"
)

// dosage is the once-daily regimen shared by every generated statement.
type dosage struct {
	Text   string `json:"text"`
	Timing struct {
		Repeat struct {
			Frequency  int    `json:"frequency"`
			Period     int    `json:"period"`
			PeriodUnit string `json:"periodUnit"`
		} `json:"repeat"`
	} `json:"timing"`
}

func onceDaily() dosage {
	var d dosage
	d.Text = "Once daily"
	d.Timing.Repeat.Frequency = 1
	d.Timing.Repeat.Period = 1
	d.Timing.Repeat.PeriodUnit = "d"
	return d
}

func (g *Generator) MedicationStatement() fhir.Resource {
	m := pick(g, medicationCodes)
	return fhir.Resource{
		"resourceType":              "MedicationStatement",
		"id":                        g.id(),
		"status":                    "active",
		"medicationCodeableConcept": fhir.NewCodeableConcept(m.Code, fhirmodels.SystemRxNorm, m.Display),
		"subject":                   g.ref("Patient"),
		"effectiveDateTime":         g.date(2020, 2023),
		"dateAsserted":              g.date(2020, 2023),
		"dosage":                    []dosage{onceDaily()},
	}
}

func (g *Generator) Immunization() fhir.Resource {
	v := pick(g, vaccineCodes)
	return fhir.Resource{
		"resourceType":       "Immunization",
		"id":                 g.id(),
		"status":             "completed",
		"vaccineCode":        fhir.NewCodeableConcept(v.Code, fhirmodels.SystemCVX, v.Display),
		"patient":            g.ref("Patient"),
		"occurrenceDateTime": g.date(2010, 2023),
		"primarySource":      true,
	}
}
