package internal

import (
	"errors"
	"fmt"
)

type ValidateFlags uint8

const (
	// ValidateAllowMultiErrors keeps accumulating errors after the first one.
	ValidateAllowMultiErrors ValidateFlags = 1 << iota
)

// Validator accumulates argument errors. The zero value keeps only the first error.
type Validator struct {
	accum []error
	flags ValidateFlags
}

func NewValidator(flags ValidateFlags) *Validator {
	return &Validator{flags: flags}
}

func (v *Validator) ResetErr() {
	v.accum = v.accum[:0]
}

func (v *Validator) HasError() bool {
	return len(v.accum) != 0
}

// Err returns nil, the single error or all errors joined.
func (v *Validator) Err() error {
	if len(v.accum) == 1 {
		return v.accum[0]
	} else if len(v.accum) == 0 {
		return nil
	}
	return errors.Join(v.accum...)
}

func (v *Validator) AddError(err error) {
	if err == nil {
		panic("error argument to AddError cannot be nil")
	} else if len(v.accum) != 0 && v.flags&ValidateAllowMultiErrors == 0 {
		return
	}
	v.accum = append(v.accum, err)
}

// AddFieldErr adds err attributed to the named argument or config key.
func (v *Validator) AddFieldErr(field string, err error) {
	if err == nil {
		panic("err argument to AddFieldErr cannot be nil")
	}
	v.AddError(&FieldErr{Field: field, Err: err})
}

type FieldErr struct {
	Field string
	Err   error
}

func (fe *FieldErr) Error() string {
	return fmt.Sprintf("%s: %s", fe.Field, fe.Err.Error())
}

func (fe *FieldErr) Unwrap() error { return fe.Err }
