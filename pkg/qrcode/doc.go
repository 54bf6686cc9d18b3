// Package qrcode provides simple helpers for generating QR code images
// either as raw PNG bytes or as block art that can be printed straight to a
// terminal.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// sensible defaults and input validation for enrollment flows where the code
// content is an otpauth:// URI.
//
// # Architecture
//
// The core of the package lives in the Generate and Terminal functions. Both
// delegate QR-code generation to the upstream library and then post-process
// the result:
//
//   - Generate validates the input and returns a PNG image in a byte slice.
//   - Terminal renders the code with half-height block characters, quiet
//     zone included, for scanning directly off the screen.
//
// Errors that can be returned are declared as package-level variables so
// they can be compared with errors.Is.
//
// # Usage
//
//	import "github.com/dmitrymomot/otptick/pkg/qrcode"
//
//	// Create PNG bytes
//	img, err := qrcode.Generate("otpauth://totp/...", 256)
//	if err != nil {
//		// handle error
//	}
//
//	// Print a scannable code to the console
//	art, err := qrcode.Terminal("otpauth://totp/...")
//	if err != nil {
//		// handle error
//	}
//	fmt.Print(art)
//
// # Error Handling
//
// The functions return well-defined sentinel errors:
//
//   - ErrEmptyContent           – the content argument was empty.
//   - ErrFailedToGenerateQRCode – the underlying library could not generate
//     the QR code.
//
// Wrap your error handling with errors.Is for robust comparisons.
//
// See the package tests for more usage examples.
package qrcode
