// Package rng16 implements full period 16-bit xorshift pseudo random number
// generators small enough for microcontrollers.
//
// Each generator variant is named by its shift triple tag "abc", three hex digits
// describing the recipe
//
//	x ^= x << a
//	x ^= x >> b
//	x ^= x << c
//
// applied to a 16-bit state which is also the output. All variants visit every
// non-zero 16-bit value exactly once before repeating. Zero is a fixed point of
// every recipe: a generator must be seeded with a non-zero value before use,
// otherwise Next returns 0 forever.
//
// Generators are not safe for concurrent use.
package rng16

import (
	"strconv"
	"strings"
)

//go:generate go run ./internal/genvariants -o xor16_gen.go
//go:generate stringer -type=errGeneric -linecomment -output stringers.go .

// Generator is implemented by every generator variant in this package.
type Generator interface {
	// Seed sets the generator state and reports whether seed was accepted.
	// Zero seeds are rejected.
	Seed(seed uint16) bool
	// Next advances the state and returns it.
	Next() uint16
}

// Variant identifies a generator recipe. The zero value is not a valid variant.
type Variant uint8

// Default is the recipe used by [Xor16].
const Default = Variant3D9

// Variants returns all valid variants in catalogue order.
func Variants() []Variant {
	vs := make([]Variant, 0, variantEnd-1)
	for v := Variant11E; v < variantEnd; v++ {
		vs = append(vs, v)
	}
	return vs
}

// IsValid reports whether v is a known variant.
func (v Variant) IsValid() bool { return v > 0 && v < variantEnd }

// String returns the shift triple tag of v, i.e: "b71".
func (v Variant) String() string {
	if !v.IsValid() {
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variantTags[v]
}

// Shifts returns the left, right and left shift amounts of the recipe.
func (v Variant) Shifts() (a, b, c uint8) {
	if !v.IsValid() {
		return 0, 0, 0
	}
	tag := variantTags[v]
	return unhex(tag[0]), unhex(tag[1]), unhex(tag[2])
}

// ParseVariant returns the variant named by tag. Tags are case insensitive and
// may carry a "xor16_" prefix.
func ParseVariant(tag string) (Variant, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	tag = strings.TrimPrefix(tag, "xor16_")
	for v := Variant11E; v < variantEnd; v++ {
		if variantTags[v] == tag {
			return v, nil
		}
	}
	return 0, ErrUnknownVariant
}

func unhex(c byte) uint8 {
	if c <= '9' {
		return c - '0'
	}
	return c - 'a' + 10
}
