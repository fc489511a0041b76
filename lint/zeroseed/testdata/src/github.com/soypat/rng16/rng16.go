// Package rng16 mirrors the seeding API of the real package for analyzer tests.
package rng16

type Generator interface {
	Seed(seed uint16) bool
	Next() uint16
}

type Xor16 struct{ state uint16 }

func (r *Xor16) Seed(seed uint16) bool {
	if seed == 0 {
		return false
	}
	r.state = seed
	return true
}

func (r *Xor16) Next() uint16 { return r.state }

func (r *Xor16) Generate(seed uint16) uint16 {
	r.Seed(seed)
	return r.Next()
}

type XorB71 struct{ state uint16 }

func (r *XorB71) Seed(seed uint16) bool { return seed != 0 }

func (r *XorB71) Next() uint16 { return r.state }

func Prand16(seed uint16) uint16 { return seed }
