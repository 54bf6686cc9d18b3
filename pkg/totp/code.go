package totp

import "fmt"

// Code is a single one-time password, a decimal value in [0, 999999].
// Leading zeros are significant and restored by the formatting methods.
type Code uint32

// String returns the zero-padded six-digit form, e.g. "007459".
func (c Code) String() string {
	return fmt.Sprintf("%06d", uint32(c))
}

// Formatted returns the display form: two three-digit groups separated by a
// single space, always exactly seven characters ("042" never drops to "42").
func (c Code) Formatted() string {
	return fmt.Sprintf("%03d %03d", uint32(c)/1000, uint32(c)%1000)
}
