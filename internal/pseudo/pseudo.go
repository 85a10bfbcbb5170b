// Package pseudo produces synthetic personal data used to replace real
// names and email addresses. Replacement is one-way: nothing here can map a
// synthetic value back to the record it replaced.
package pseudo

import (
	"sync"

	"github.com/brianvoe/gofakeit/v7"
)

// Person is a fabricated name and email pair.
type Person struct {
	Name  string
	Email string
}

// Generator hands out synthetic persons.
//
// The zero value is ready to use: every call draws from a freshly, randomly
// seeded faker, so successive persons are independent of each other. A
// Generator built with NewSeeded instead draws a reproducible sequence.
type Generator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// New returns a Generator that seeds independently per call.
func New() *Generator {
	return &Generator{}
}

// NewSeeded returns a Generator whose sequence of persons is fully determined
// by seed.
func NewSeeded(seed uint64) *Generator {
	if seed == 0 {
		// gofakeit treats 0 as "pick a random seed"
		seed = 1
	}
	return &Generator{faker: gofakeit.New(seed)}
}

// GeneratePerson returns a structurally plausible but fabricated person.
// Name and email are generated independently; no uniqueness is guaranteed
// across calls.
func (g *Generator) GeneratePerson() Person {
	g.mu.Lock()
	defer g.mu.Unlock()

	f := g.faker
	if f == nil {
		f = gofakeit.New(0)
	}
	return Person{Name: f.Name(), Email: f.Email()}
}
