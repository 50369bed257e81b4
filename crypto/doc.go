// Package crypto provides the primitives an NKN-style address based client
// needs: SHA-256, double SHA-256, RIPEMD-160, AES-CBC over block aligned data,
// secure random bytes and ECDSA over P-256.
//
// ECDSA signatures leave this package in the fixed 64-byte raw form
// (r || s, each 32 bytes big-endian). Verify accepts either that form or DER.
// The conversion between the two lives in codec.go.
//
// # Errors
//
// Fallible operations return *Error whose kind is ErrInvalidInput for bad
// arguments or ErrProviderUnavailable for a broken environment:
//
//	ok, err := crypto.VerifyBytes(pub, msg, sig)
//	if errors.Is(err, crypto.ErrInvalidInput) {
//		// reject the peer's message
//	}
//
// Hash functions cannot fail on input and panic if the provider is missing.
package crypto
