// Package synthetic produces random, FHIR-shaped clinical resources. The
// lookup tables are fixtures: distributions and code lists carry no meaning
// beyond looking plausible.
package synthetic

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ehr/fhirmock/internal/platform/fhir"
)

const dateLayout = "2006-01-02"

// Generator draws synthetic resources from a seeded random source. It is safe
// for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand

	// NewID returns a fresh resource id. Defaults to uuid.NewString.
	NewID func() string
	// Now is used for instant fields such as Observation.issued.
	Now func() time.Time
}

// New creates a Generator. A zero seed seeds from the clock.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		NewID: uuid.NewString,
		Now:   time.Now,
	}
}

func (g *Generator) intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

func (g *Generator) float() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64()
}

func (g *Generator) id() string {
	if g.NewID == nil {
		return uuid.NewString()
	}
	return g.NewID()
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func pick[T any](g *Generator, items []T) T {
	return items[g.intn(len(items))]
}

// between returns a value in [lo, hi] rounded to one decimal place.
func (g *Generator) between(lo, hi float64) float64 {
	v := g.float()*(hi-lo) + lo
	v = math.Round(v*10) / 10
	return math.Min(math.Max(v, lo), hi)
}

// date returns a random calendar date between Jan 1 of startYear and Dec 31
// of endYear.
func (g *Generator) date(startYear, endYear int) string {
	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	span := end.Sub(start)
	offset := time.Duration(g.float() * float64(span))
	return start.Add(offset).Format(dateLayout)
}

func (g *Generator) address() fhir.Address {
	return fhir.Address{
		Use:        "home",
		Type:       "physical",
		Line:       []string{fmt.Sprintf("%d %s", g.intn(1000)+1, pick(g, streetNames))},
		City:       pick(g, cities),
		State:      pick(g, states),
		PostalCode: fmt.Sprintf("%d", g.intn(90000)+10000),
		Country:    "USA",
	}
}

func (g *Generator) phone() string {
	return fmt.Sprintf("(%d) %d-%d", g.intn(900)+100, g.intn(900)+100, g.intn(9000)+1000)
}

// ref points at a random id of resourceType. Generated resources never refer
// to each other.
func (g *Generator) ref(resourceType string) fhir.Reference {
	return fhir.NewReference(resourceType, g.id(), "")
}
