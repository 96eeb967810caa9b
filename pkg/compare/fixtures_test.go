package compare_test

import (
	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

type Person struct {
	FirstName string
	LastName  string
	Age       int
	Height    float64
	Born      int64
}

func makePerson() Person {
	return Person{
		FirstName: randomdata.FirstName(randomdata.RandomGender),
		LastName:  randomdata.LastName(),
		Age:       randomdata.Number(1, 99),
		Height:    randomdata.Decimal(140, 210),
		Born:      int64(randomdata.Number(1900, 2020)),
	}
}

func firstName(p Person) (string, error) { return p.FirstName, nil }
func lastName(p Person) (string, error)  { return p.LastName, nil }
func age(p Person) (int, error)          { return p.Age, nil }
func height(p Person) (float64, error)   { return p.Height, nil }
func born(p Person) (int64, error)       { return p.Born, nil }

func ptr[T any](v T) *T { return &v }

func ptrs[T any](vs ...T) []*T {
	out := make([]*T, len(vs))
	for i := range vs {
		out[i] = ptr(vs[i])
	}
	return out
}

// deref turns a slice of optional values into a printable form, nil elements become "<nil>".
func deref(vs []*string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		if v == nil {
			out[i] = "<nil>"
			continue
		}
		out[i] = *v
	}
	return out
}
