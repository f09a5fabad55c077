package synthetic

import (
	"github.com/ehr/fhirmock/internal/platform/fhir"
	"github.com/ehr/fhirmock/pkg/fhirmodels"
)

type participant struct {
	Type       []fhir.CodeableConcept `json:"type,omitempty"`
	Actor      *fhir.Reference        `json:"actor,omitempty"`
	Individual *fhir.Reference        `json:"individual,omitempty"`
	Status     string                 `json:"status,omitempty"`
}

// ordered returns two dates from the same year range with start <= end.
func (g *Generator) ordered(startYear, endYear int) (string, string) {
	a, b := g.date(startYear, endYear), g.date(startYear, endYear)
	if b < a {
		a, b = b, a
	}
	return a, b
}

// Encounter returns an Encounter in any status. Only finished and cancelled
// encounters have a period end.
func (g *Generator) Encounter() fhir.Resource {
	class := pick(g, encounterClasses)
	status := pick(g, encounterStatuses)
	start, end := g.ordered(2020, 2023)
	switch status {
	case fhirmodels.EncounterStatusPlanned, fhirmodels.EncounterStatusInProgress:
		end = ""
	}
	practitioner := g.ref("Practitioner")
	return fhir.Resource{
		"resourceType": "Encounter",
		"id":           g.id(),
		"status":       status,
		"class": fhir.Coding{
			System:  fhirmodels.SystemActCode,
			Code:    class.Code,
			Display: class.Display,
		},
		"type": []fhir.CodeableConcept{
			fhir.NewCodeableConcept("270427003", fhirmodels.SystemSNOMED, "Patient-initiated encounter"),
		},
		"subject": g.ref("Patient"),
		"participant": []participant{{
			Type: []fhir.CodeableConcept{
				fhir.NewCodeableConcept(fhirmodels.ParticipantAttender, fhirmodels.SystemParticipationType, "attender"),
			},
			Individual: &practitioner,
		}},
		"period": fhir.Period{Start: start, End: end},
	}
}

func (g *Generator) Appointment() fhir.Resource {
	t := pick(g, appointmentTypes)
	start, end := g.ordered(2023, 2024)
	patient, practitioner := g.ref("Patient"), g.ref("Practitioner")
	return fhir.Resource{
		"resourceType": "Appointment",
		"id":           g.id(),
		"status":       "booked",
		"serviceType": []fhir.CodeableConcept{
			fhir.NewCodeableConcept(t.Code, fhirmodels.SystemSNOMED, t.Display),
		},
		"reasonCode": []fhir.CodeableConcept{
			fhir.NewCodeableConcept("453701000124103", fhirmodels.SystemSNOMED, "Routine health maintenance"),
		},
		"start": start,
		"end":   end,
		"participant": []participant{
			{Actor: &patient, Status: "accepted"},
			{Actor: &practitioner, Status: "accepted"},
		},
	}
}

func (g *Generator) Coverage() fhir.Resource {
	t := pick(g, coverageTypes)
	subscriber := g.ref("Patient")
	return fhir.Resource{
		"resourceType": "Coverage",
		"id":           g.id(),
		"status":       "active",
		"type":         fhir.NewCodeableConcept(t.Code, fhirmodels.SystemActCode, t.Display),
		"subscriber":   subscriber,
		"beneficiary":  subscriber,
		"relationship": fhir.NewCodeableConcept("self", fhirmodels.SystemSubscriberRelation, "Self"),
		"period": fhir.Period{
			Start: g.date(2020, 2023),
			End:   g.date(2024, 2025),
		},
		"payor": []fhir.Reference{g.ref("Organization")},
	}
}
