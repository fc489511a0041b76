package seed

import (
	"strconv"

	"github.com/soypat/rng16"
)

// Width is the number of meaningful low bits in a hardware reading.
type Width uint8

// Supported reading widths.
const (
	Width8  Width = 8
	Width10 Width = 10
	Width12 Width = 12
	Width13 Width = 13
	Width14 Width = 14
	Width15 Width = 15
	Width16 Width = 16
)

// IsValid reports whether w is one of the supported widths.
func (w Width) IsValid() bool {
	switch w {
	case Width8, Width10, Width12, Width13, Width14, Width15, Width16:
		return true
	}
	return false
}

// Mask returns the mask selecting the meaningful bits of a reading, or 0 for an invalid width.
func (w Width) Mask() uint16 {
	if !w.IsValid() {
		return 0
	}
	return uint16(1)<<w - 1
}

func (w Width) String() string {
	if !w.IsValid() {
		return "Width(" + strconv.Itoa(int(w)) + ")"
	}
	return strconv.Itoa(int(w)) + "-bit"
}

// ParseWidth returns the Width for a bit count.
func ParseWidth(bits int) (Width, error) {
	if bits < 0 || bits > 16 || !Width(bits).IsValid() {
		return 0, rng16.ErrBadWidth
	}
	return Width(bits), nil
}
