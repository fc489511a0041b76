package rng16

import (
	"testing"
)

func TestFullPeriod(t *testing.T) {
	// A single cycle through every non-zero value from seed 1 implies the
	// same holds for any non-zero starting state.
	for _, v := range Variants() {
		period, err := walkCycle(v.New(), 1)
		if err != "" {
			t.Errorf("%s: %s", v, err)
		} else if period != 1<<16-1 {
			t.Errorf("%s: got period %d; want %d", v, period, 1<<16-1)
		}
	}
	var def Xor16
	period, err := walkCycle(&def, 1)
	if err != "" || period != 1<<16-1 {
		t.Errorf("default: period %d %s", period, err)
	}
}

// walkCycle seeds g and advances it until it returns to seed or misbehaves.
func walkCycle(g Generator, seed uint16) (period int, errmsg string) {
	if !g.Seed(seed) {
		return 0, "seed rejected"
	}
	var visited [1 << 16]bool
	for {
		x := g.Next()
		period++
		switch {
		case x == 0:
			return period, "reached zero"
		case x == seed:
			return period, ""
		case visited[x]:
			return period, "cycle does not return to seed"
		}
		visited[x] = true
	}
}

func TestB71VisitsAll(t *testing.T) {
	var rng XorB71
	if !rng.Seed(0x1234) {
		t.Fatal("seed rejected")
	}
	var count [1 << 16]int
	for i := 0; i < 1<<16-1; i++ {
		count[rng.Next()]++
	}
	if count[0] != 0 {
		t.Fatalf("zero produced %d times", count[0])
	}
	for x := 1; x < len(count); x++ {
		if count[x] != 1 {
			t.Fatalf("value %#04x produced %d times", x, count[x])
		}
	}
	if rng.state != 0x1234 {
		t.Errorf("got state %#04x after full period; want %#04x", rng.state, 0x1234)
	}
}

func TestKnownSequences(t *testing.T) {
	var b71 XorB71
	b71.Seed(0x1234)
	for _, want := range []uint16{0xd5f0, 0xffed, 0xbb46, 0x9ef0} {
		got := b71.Next()
		if got != want {
			t.Fatalf("b71: got %#04x; want %#04x", got, want)
		}
	}
	var def Xor16
	def.Seed(1)
	for _, want := range []uint16{0x1209, 0x0845, 0x946f, 0x1b16} {
		got := def.Next()
		if got != want {
			t.Fatalf("default: got %#04x; want %#04x", got, want)
		}
	}
	if got := Prand16(1); got != 0x8181 {
		t.Errorf("Prand16(1): got %#04x; want 0x8181", got)
	}
}

func TestZeroFixedPoint(t *testing.T) {
	for _, v := range Variants() {
		g := v.New()
		for i := 0; i < 4; i++ {
			if got := g.Next(); got != 0 {
				t.Fatalf("%s: unseeded generator returned %#04x", v, got)
			}
		}
		if got := v.Step(0); got != 0 {
			t.Errorf("%s: Step(0) = %#04x", v, got)
		}
	}
}

func TestSeedGuard(t *testing.T) {
	for _, v := range Variants() {
		g := v.New()
		if g.Seed(0) {
			t.Fatalf("%s: accepted zero seed", v)
		}
		if got := g.Next(); got != 0 {
			t.Fatalf("%s: rejected seed modified state", v)
		}
		const seed = 0xbeef
		if !g.Seed(seed) {
			t.Fatalf("%s: rejected %#04x", v, seed)
		}
		if g.Seed(0) {
			t.Fatalf("%s: accepted zero seed after seeding", v)
		}
		if got, want := g.Next(), v.Step(seed); got != want {
			t.Errorf("%s: got %#04x after zero reseed; want %#04x", v, got, want)
		}
	}

	var rng Xor16
	rng.Seed(0x1234)
	if rng.state != 0x1234 {
		t.Errorf("got state %#04x; want 0x1234", rng.state)
	}
	if rng.Seed(0) || rng.state != 0x1234 {
		t.Errorf("zero seed altered state to %#04x", rng.state)
	}
}

func TestGenerate(t *testing.T) {
	var rng Xor16
	if got := rng.Generate(0); got != 0 {
		t.Errorf("Generate(0) = %#04x; want 0", got)
	}
	rng.Seed(0x55)
	if got := rng.Generate(0); got != 0 || rng.state != 0x55 {
		t.Errorf("Generate(0) = %#04x altered state to %#04x", got, rng.state)
	}
	got := rng.Generate(0x1234)
	if want := Default.Step(0x1234); got != want {
		t.Errorf("Generate(0x1234) = %#04x; want %#04x", got, want)
	}
	if want := uint16(0xa390); got != want {
		t.Errorf("Generate(0x1234) = %#04x; want %#04x", got, want)
	}
	if rng.state != got {
		t.Errorf("state %#04x does not match output %#04x", rng.state, got)
	}
}

func TestVariantCatalogue(t *testing.T) {
	vs := Variants()
	if len(vs) != 60 {
		t.Fatalf("got %d variants; want 60", len(vs))
	}
	seen := make(map[string]bool)
	for _, v := range vs {
		tag := v.String()
		if seen[tag] {
			t.Fatalf("duplicate tag %q", tag)
		}
		seen[tag] = true
		got, err := ParseVariant(tag)
		if err != nil || got != v {
			t.Fatalf("ParseVariant(%q) = %v, %v", tag, got, err)
		}
		got, err = ParseVariant("XOR16_" + tag)
		if err != nil || got != v {
			t.Fatalf("ParseVariant prefixed %q = %v, %v", tag, got, err)
		}
		a, b, c := v.Shifts()
		x := uint16(0xace1)
		x ^= x << a
		x ^= x >> b
		x ^= x << c
		if got := v.Step(0xace1); got != x {
			t.Errorf("%s: Step does not match shifts (%d,%d,%d)", v, a, b, c)
		}
	}
	for _, bad := range []string{"", "000", "b7", "b711", "zzz", "798x"} {
		if _, err := ParseVariant(bad); err != ErrUnknownVariant {
			t.Errorf("ParseVariant(%q): got err %v; want %v", bad, err, ErrUnknownVariant)
		}
	}
	var invalid Variant
	if invalid.IsValid() || invalid.New() != nil || invalid.Step(1) != 0 {
		t.Error("zero Variant should be invalid")
	}
	if variantEnd.IsValid() || variantEnd.String() != "Variant(61)" {
		t.Errorf("got %q for out of range variant", variantEnd.String())
	}
	if Default.String() != "3d9" {
		t.Errorf("got default %q", Default.String())
	}
}

func TestErrors(t *testing.T) {
	if ErrZeroSeed.Error() != "seed must not be zero" {
		t.Error(ErrZeroSeed.Error())
	}
	if ErrBadWidth.Error() != "unsupported ADC reading width" {
		t.Error(ErrBadWidth.Error())
	}
}

func TestNextNoAlloc(t *testing.T) {
	var rng XorB71
	rng.Seed(1)
	allocs := testing.AllocsPerRun(100, func() {
		rng.Next()
		rng.Seed(rng.Next())
	})
	if allocs != 0 {
		t.Errorf("got %v allocations per run; want 0", allocs)
	}
}

func BenchmarkXor16(b *testing.B) {
	var rng Xor16
	rng.Seed(1)
	for i := 0; i < b.N; i++ {
		rng.Next()
	}
}

func BenchmarkVariantStep(b *testing.B) {
	x := uint16(1)
	for i := 0; i < b.N; i++ {
		x = VariantB71.Step(x)
	}
}
