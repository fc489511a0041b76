package rng16

type errGeneric uint8

// Generic errors returned by parsing helpers and tools. Generators themselves
// signal failure with a false or zero result.
const (
	_                 errGeneric = iota // non-initialized err
	ErrZeroSeed                         // seed must not be zero
	ErrUnknownVariant                   // unknown generator variant
	ErrBadWidth                         // unsupported ADC reading width
)

func (err errGeneric) Error() string {
	return err.String()
}
