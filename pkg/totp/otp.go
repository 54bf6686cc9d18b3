package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"time"
)

const (
	DefaultDigits = 6  // Standard 6-digit codes
	DefaultPeriod = 30 // 30-second validity window (RFC 6238 standard)

	// codeModulus reduces the truncated HMAC value to DefaultDigits digits.
	codeModulus = 1_000_000
)

// GenerateHOTP implements the RFC 4226 HMAC-based One-Time Password
// algorithm. Every step is bit-exact against the RFC: big-endian counter
// encoding, dynamic truncation, sign-bit clearing, decimal reduction.
// Anything less and the codes stop matching standard authenticator apps.
func GenerateHOTP(secret Secret, counter uint64) Code {
	// Convert counter to big-endian 8-byte array (RFC 4226 requirement)
	msg := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		msg[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(sha1.New, secret)
	mac.Write(msg)
	digest := mac.Sum(nil)

	// Dynamic truncation (RFC 4226): low nibble of the final byte selects a
	// 4-byte window, read big-endian with the sign bit cleared.
	offset := digest[len(digest)-1] & 0x0f
	value := (uint32(digest[offset]&0x7f) << 24) |
		(uint32(digest[offset+1]) << 16) |
		(uint32(digest[offset+2]) << 8) |
		uint32(digest[offset+3])

	return Code(value % codeModulus)
}

// GenerateTOTP returns the code for the 30-second interval containing the
// given instant. Only that interval is considered; no clock-skew window is
// applied on either side.
func GenerateTOTP(secret Secret, at time.Time) Code {
	return GenerateHOTP(secret, TimeCounter(at, DefaultPeriod))
}

// GenerateTOTPWithPeriod returns the code for the interval of the given
// length, in seconds, containing the given instant.
func GenerateTOTPWithPeriod(secret Secret, at time.Time, period int) Code {
	return GenerateHOTP(secret, TimeCounter(at, period))
}

// TimeCounter converts a wall-clock instant into its RFC 6238 interval
// number: floor of Unix seconds over the period. An instant exactly on a
// boundary belongs to the interval it opens. Non-positive periods fall back
// to DefaultPeriod; instants before the Unix epoch map to interval zero.
func TimeCounter(at time.Time, period int) uint64 {
	if period <= 0 {
		period = DefaultPeriod
	}
	sec := at.Unix()
	if sec < 0 {
		return 0
	}
	return uint64(sec) / uint64(period)
}

// Remaining reports how many whole seconds are left in the interval
// containing the given instant before the code rotates. At an exact boundary
// the full period remains; fractional seconds round the count down, matching
// a countdown computed against a real-valued clock.
func Remaining(at time.Time, period int) int {
	if period <= 0 {
		period = DefaultPeriod
	}
	p := int64(period) * int64(time.Second)
	elapsed := at.UnixNano() % p
	if elapsed < 0 {
		elapsed += p
	}
	return int((p - elapsed) / int64(time.Second))
}
