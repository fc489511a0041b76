package a

import "github.com/soypat/rng16"

const zero = 0

const adcBits = 10

func seeds(g rng16.Generator, x uint16) {
	var def rng16.Xor16
	def.Seed(0)                // want `Seed: seed is always zero`
	def.Seed(zero)             // want `Seed: seed is always zero`
	def.Generate(adcBits - 10) // want `Generate: seed is always zero`
	g.Seed(0x0000)             // want `Seed: seed is always zero`
	rng16.Prand16(0)           // want `Prand16: seed is always zero`

	var b71 rng16.XorB71
	b71.Seed(uint16(0)) // want `Seed: seed is always zero`

	def.Seed(1)
	def.Seed(x)
	def.Seed(x - x)
	b71.Seed(0x1234)
	g.Seed(adcBits)
	other(0)
}

func other(seed uint16) {}
