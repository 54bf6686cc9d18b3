// Package totp generates Time-based One-Time Passwords (TOTP) and their
// underlying HMAC-based counterparts (HOTP).
//
// The package covers the full enrollment-to-code lifecycle: parsing and
// minting base32 secrets, bit-exact RFC 4226/6238 code calculation, and
// otpauth:// URI construction compatible with Google Authenticator,
// 1Password and similar apps. Secrets exist only in memory; nothing here
// touches the filesystem or the network.
//
// # Architecture
//
// The package is divided into three cohesive layers.
//
//   - secret – functions in secret.go normalize and decode user-supplied
//     base32 secrets (ParseSecret), re-encode raw key material (Encode) and
//     mint new random secrets (GenerateSecret).
//
//   - code   – functions in otp.go perform the RFC algorithms: GenerateHOTP
//     for counter-based codes, GenerateTOTP and GenerateTOTPWithPeriod for
//     time-based ones, plus the interval arithmetic (TimeCounter, Remaining)
//     a countdown display is built on.
//
//   - uri    – helpers in uri.go validate enrollment parameters and build
//     the provisioning URI (GetTOTPURI) that authenticator apps scan.
//
// # Usage
//
// The minimal happy path for enrolling and generating a code:
//
//	package main
//
//	import (
//	    "fmt"
//	    "time"
//
//	    "github.com/dmitrymomot/otptick/pkg/totp"
//	)
//
//	func main() {
//	    // 1. Mint a brand-new secret
//	    encoded, _ := totp.GenerateSecret(totp.DefaultSecretLength)
//
//	    // 2. Display the bootstrap URI/QR code to the user
//	    uri, _ := totp.GetTOTPURI(totp.TOTPParams{
//	        Secret:      encoded,
//	        AccountName: "alice@example.com",
//	        Issuer:      "Acme",
//	    })
//	    fmt.Println(uri)
//
//	    // 3. Generate the code for the current interval
//	    secret, _ := totp.ParseSecret(encoded)
//	    fmt.Println(totp.GenerateTOTP(secret, time.Now()))
//	}
//
// Codes are returned as the Code type, which keeps leading zeros intact via
// String ("007459") and Formatted ("007 459").
//
// # Error Handling
//
// Operations that can fail return descriptive errors that may be wrapped
// using errors.Join. Inspect them with errors.Is against package level
// sentinels such as ErrInvalidSecret and ErrMissingSecret. The code
// generators themselves are total functions: given a parsed Secret they
// always produce a Code.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
//
// To explore more usage scenarios refer to the package level unit-tests.
package totp
