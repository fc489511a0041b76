package rng16

import "testing"

// lanes holds the state as the low and high 8-bit registers an 8-bit
// microcontroller operates on. The recipes below are written with lane
// operations only: shifts carry bits between lanes explicitly.
type lanes struct {
	lo, hi byte
}

func toLanes(x uint16) lanes { return lanes{lo: byte(x), hi: byte(x >> 8)} }

func (l lanes) word() uint16 { return uint16(l.hi)<<8 | uint16(l.lo) }

func (l lanes) xor(m lanes) lanes { return lanes{lo: l.lo ^ m.lo, hi: l.hi ^ m.hi} }

// shl shifts the lane pair left one bit at a time, carrying bit 7 of lo into hi.
func (l lanes) shl(n int) lanes {
	for i := 0; i < n; i++ {
		carry := l.lo >> 7
		l.lo <<= 1
		l.hi = l.hi<<1 | carry
	}
	return l
}

// shr shifts the lane pair right one bit at a time, carrying bit 0 of hi into lo.
func (l lanes) shr(n int) lanes {
	for i := 0; i < n; i++ {
		carry := l.hi & 1
		l.hi >>= 1
		l.lo = l.lo>>1 | carry<<7
	}
	return l
}

// shl7 is a left shift by 7 done as a byte move and a single right rotate.
func (l lanes) shl7() lanes { return lanes{lo: l.lo << 7, hi: l.lo>>1 | l.hi<<7} }

// shr7 is a right shift by 7 done as a byte move and a single left rotate.
func (l lanes) shr7() lanes { return lanes{lo: l.hi<<1 | l.lo>>7, hi: l.hi >> 7} }

func swapNibbles(b byte) byte { return b<<4 | b>>4 }

// bitTo extracts bit from of b and places it at bit to of an otherwise zero byte.
func bitTo(b byte, from, to uint) byte { return (b >> from & 1) << to }

type laneStep func(lanes) lanes

func xorShl(n int) laneStep { return func(l lanes) lanes { return l.xor(l.shl(n)) } }
func xorShr(n int) laneStep { return func(l lanes) lanes { return l.xor(l.shr(n)) } }
func xorShl7(l lanes) lanes { return l.xor(l.shl7()) }
func xorShr7(l lanes) lanes { return l.xor(l.shr7()) }

// intoHi xors f(lo) into the high lane.
func intoHi(f func(lo byte) byte) laneStep {
	return func(l lanes) lanes {
		l.hi ^= f(l.lo)
		return l
	}
}

// intoLo xors f(hi) into the low lane.
func intoLo(f func(hi byte) byte) laneStep {
	return func(l lanes) lanes {
		l.lo ^= f(l.hi)
		return l
	}
}

func shlTop3(lo byte) byte { return swapNibbles(lo) << 1 & 0xe0 } // x<<13 into hi.

var laneRecipes = map[Variant][]laneStep{
	Variant3D9: {xorShl(3), intoLo(func(hi byte) byte { return swapNibbles(hi) >> 1 & 7 }), intoHi(func(lo byte) byte { return lo << 1 })},
	Variant11E: {xorShl(1), xorShr(1), intoHi(func(lo byte) byte { return bitTo(lo, 0, 6) | bitTo(lo, 1, 7) })},
	Variant25F: {xorShl(2), xorShr(5), intoHi(func(lo byte) byte { return bitTo(lo, 0, 7) })},
	Variant31F: {xorShl(3), xorShr(1), intoHi(func(lo byte) byte { return bitTo(lo, 0, 7) })},
	Variant3B1: {xorShl(3), intoLo(func(hi byte) byte { return hi >> 3 }), xorShl(1)},
	Variant3BB: {xorShl(3), intoLo(func(hi byte) byte { return hi >> 3 }), intoHi(func(lo byte) byte { return lo << 3 })},
	Variant57E: {xorShl(5), xorShr7, intoHi(func(lo byte) byte { return bitTo(lo, 0, 6) | bitTo(lo, 1, 7) })},
	Variant5B6: {xorShl(5), intoLo(func(hi byte) byte { return hi >> 3 }), xorShl(6)},
	Variant71B: {xorShl7, xorShr(1), intoHi(func(lo byte) byte { return lo << 3 })},
	Variant7F1: {xorShl7, intoLo(func(hi byte) byte { return bitTo(hi, 7, 0) }), xorShl(1)},
	Variant897: {intoHi(func(lo byte) byte { return lo }), intoLo(func(hi byte) byte { return hi >> 1 }), xorShl7},
	VariantB17: {intoHi(func(lo byte) byte { return lo << 3 }), xorShr(1), xorShl7},
	VariantB71: {intoHi(func(lo byte) byte { return lo << 3 }), xorShr7, xorShl(1)},
	VariantBB4: {intoHi(func(lo byte) byte { return lo << 3 }), intoLo(func(hi byte) byte { return hi >> 3 }), xorShl(4)},
	VariantC3D: {intoHi(func(lo byte) byte { return swapNibbles(lo) & 0xf0 }), xorShr(3), intoHi(shlTop3)},
	VariantD3B: {intoHi(shlTop3), xorShr(3), intoHi(func(lo byte) byte { return lo << 3 })},
	VariantD79: {intoHi(shlTop3), xorShr7, intoHi(func(lo byte) byte { return lo << 1 })},
	VariantD97: {intoHi(shlTop3), intoLo(func(hi byte) byte { return hi >> 1 }), xorShl7},
	VariantF13: {intoHi(func(lo byte) byte { return bitTo(lo, 0, 7) }), xorShr(1), xorShl(3)},
}

func TestLaneRecipes(t *testing.T) {
	for v, recipe := range laneRecipes {
		for x := 0; x < 1<<16; x++ {
			l := toLanes(uint16(x))
			for _, step := range recipe {
				l = step(l)
			}
			if got, want := l.word(), v.Step(uint16(x)); got != want {
				t.Fatalf("%s: lane recipe on %#04x got %#04x; want %#04x", v, x, got, want)
			}
		}
	}
	var rng Xor16
	for _, x := range []uint16{1, 0x8000, 0x1234, 0xffff} {
		rng.Seed(x)
		if got, want := rng.Next(), Default.Step(x); got != want {
			t.Errorf("default generator on %#04x: got %#04x; want %#04x", x, got, want)
		}
	}
}
