package synthetic

import (
	"fmt"
	"strings"

	"github.com/ehr/fhirmock/internal/platform/fhir"
	"github.com/ehr/fhirmock/pkg/fhirmodels"
)

// Patient returns an active Patient with a name that matches its gender, a
// birth date between 1940 and 2005, a home address, phone and email.
func (g *Generator) Patient() fhir.Resource {
	gender := pick(g, fhirmodels.Genders)

	var first string
	switch {
	case gender == fhirmodels.GenderMale:
		first = pick(g, maleFirstNames)
	case gender == fhirmodels.GenderFemale:
		first = pick(g, femaleFirstNames)
	case g.intn(2) == 0:
		first = pick(g, maleFirstNames)
	default:
		first = pick(g, femaleFirstNames)
	}
	last := pick(g, lastNames)

	return fhir.Resource{
		"resourceType": "Patient",
		"id":           g.id(),
		"active":       true,
		"name": []fhir.HumanName{{
			Use:    "official",
			Family: last,
			Given:  []string{first},
		}},
		"gender":    gender,
		"birthDate": g.date(1940, 2005),
		"address":   []fhir.Address{g.address()},
		"telecom": []fhir.ContactPoint{
			{System: "phone", Value: g.phone(), Use: "home"},
			{System: "email", Value: fmt.Sprintf("%s.%s@example.com", strings.ToLower(first), strings.ToLower(last))},
		},
	}
}
