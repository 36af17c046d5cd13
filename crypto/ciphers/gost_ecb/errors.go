package gost_ecb

import (
	"errors"
)

// -----------------------------------------------------------------------------

var (
	// ErrInvalidKeyLength is returned when the key is not exactly KeySize bytes long. No round
	// computation is attempted in that case.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidBlockAlignment is returned when a ciphertext length is not a multiple of BlockSize.
	ErrInvalidBlockAlignment = errors.New("invalid block alignment")

	// ErrInvalidPadding is returned when the decrypted payload does not end with a well-formed
	// padding block.
	ErrInvalidPadding = errors.New("invalid padding")
)
