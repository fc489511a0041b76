// Package seed derives generator seeds from low entropy hardware sources such
// as a floating ADC input and a free running tick counter.
//
// Raw ADC samples carry most of their noise in the few lowest bits. The
// functions in this package spread those bits over the whole 16-bit word so
// that similar readings yield very different seeds. A zero result means no seed
// could be derived and must not be used to seed a generator.
package seed

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/crypto/blake2s"
)

// FromADC derives a seed from an ADC reading with the given number of
// meaningful low bits. Bits above the width are ignored. Distinct readings
// yield distinct seeds. It returns 0 for an unsupported width.
//
// Widths 8, 10 and 12 never yield 0. Wider readings yield 0 only for a zero reading.
func FromADC(reading uint16, width Width) uint16 {
	if !width.IsValid() {
		return 0
	}
	v := reading & width.Mask()
	lo, hi := byte(v), byte(v>>8)
	switch width {
	case Width16:
		hi ^= nibswap(lo)
		lo ^= nibswap(hi)
	case Width15:
		hi = hi<<1 ^ nibswap(lo)
		lo ^= nibswap(hi)
	case Width14:
		hi = hi<<2 ^ nibswap(lo)
		lo ^= hi
	case Width13:
		hi = hi<<3 ^ nibswap(lo)
		lo ^= nibswap(hi)
	case Width12:
		hi ^= nibswap(lo)
		lo = ^(lo ^ hi)
	case Width10:
		hi = hi<<6 ^ nibswap(lo)
		lo = ^(lo ^ hi)
	case Width8:
		hi = lo
		lo = ^lo
	}
	return uint16(hi)<<8 | uint16(lo)
}

// FromADCTick is like FromADC but mixes in a whitened tick count, see [WhitenTick].
// It returns 0 for an unsupported width. The result may be 0 for valid
// arguments, callers must let the seed guard reject it.
func FromADCTick(reading uint16, width Width, tick uint16) uint16 {
	if !width.IsValid() {
		return 0
	}
	return WhitenTick(tick) ^ FromADC(reading, width)
}

// WhitenTick reverses the nibble order of tick and flips alternating bits so
// that small counter values have as many set bits as unset ones on average.
func WhitenTick(tick uint16) uint16 {
	tick = bits.ReverseBytes16(tick)
	hi, lo := nibswap(byte(tick>>8)), nibswap(byte(tick))
	return uint16(hi^0x55)<<8 | uint16(lo^0xaa)
}

// FromBytes derives a seed from arbitrary data such as a device serial number
// by hashing it with BLAKE2s-256. It returns the first non-zero big endian
// 16-bit word of the digest.
func FromBytes(data []byte) uint16 {
	sum := blake2s.Sum256(data)
	for i := 0; i < len(sum); i += 2 {
		if w := binary.BigEndian.Uint16(sum[i:]); w != 0 {
			return w
		}
	}
	return 0
}

func nibswap(b byte) byte { return b<<4 | b>>4 }
