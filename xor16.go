package rng16

// Xor16 is the default generator, using the same recipe as [Default].
// The zero value is unseeded.
type Xor16 struct {
	state uint16
}

// Seed sets the state of the generator to seed and reports whether seed was accepted.
// A zero seed is rejected and leaves the state unchanged.
func (r *Xor16) Seed(seed uint16) bool { return seedState(&r.state, seed) }

// Next advances the generator and returns the new state.
func (r *Xor16) Next() uint16 {
	r.state = step3D9(r.state)
	return r.state
}

// Generate seeds the generator and returns the value following seed.
// A zero seed is rejected: the state is left unchanged and 0 is returned.
func (r *Xor16) Generate(seed uint16) uint16 {
	if !r.Seed(seed) {
		return 0
	}
	return r.Next()
}

// Prand16 returns the value following seed in the 798 sequence. It is meant
// for callers that keep the generator state themselves, i.e. in a packet header.
func Prand16(seed uint16) uint16 {
	// 16bit Xorshift  https://en.wikipedia.org/wiki/Xorshift
	return step798(seed)
}

// seedState is the seed guard shared by all generators. The state is only
// written when seed is non-zero.
func seedState(state *uint16, seed uint16) bool {
	if seed == 0 {
		return false
	}
	*state = seed
	return true
}
