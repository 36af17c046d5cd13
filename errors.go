package encryptservice

import (
	"errors"

	"github.com/Minby93/EncryptService/crypto/ciphers"
	"github.com/Minby93/EncryptService/crypto/ciphers/gost_ecb"
)

// -----------------------------------------------------------------------------

var (
	// ErrMissingMessage is returned when the request carries no message.
	ErrMissingMessage = errors.New("message is required")

	// ErrMissingKey is returned when the request carries no key.
	ErrMissingKey = errors.New("key is required")

	// ErrInvalidHexEncoding is returned by `DecryptText` when the ciphertext is not a hex string.
	ErrInvalidHexEncoding = errors.New("invalid hex encoding")

	// ErrInvalidUtf8 is returned by `DecryptText` when the recovered plaintext is not valid UTF-8.
	ErrInvalidUtf8 = errors.New("invalid utf-8 plaintext")

	ErrInvalidStoredData = errors.New("invalid stored data")

	ErrInvalidKeyLength      = gost_ecb.ErrInvalidKeyLength
	ErrInvalidBlockAlignment = gost_ecb.ErrInvalidBlockAlignment
	ErrInvalidPadding        = gost_ecb.ErrInvalidPadding
	ErrEngineNotSupported    = ciphers.ErrEngineNotSupported
)

// -----------------------------------------------------------------------------

// IsClientError returns true if the error was caused by the caller's input rather than by the
// service itself.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrMissingMessage,
		ErrMissingKey,
		ErrInvalidHexEncoding,
		ErrInvalidUtf8,
		ErrInvalidKeyLength,
		ErrInvalidBlockAlignment,
		ErrInvalidPadding,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
