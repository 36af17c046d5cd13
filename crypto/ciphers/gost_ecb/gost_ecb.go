package gost_ecb

import (
	"errors"
	"io"

	"github.com/Minby93/EncryptService/models"
)

// -----------------------------------------------------------------------------

type gostEcbCipher struct {
	block *blockCipher
}

// -----------------------------------------------------------------------------

// GenerateKey generates a new random 256-bit GOST key.
func GenerateKey(r io.Reader) ([]byte, error) {
	key := make([]byte, KeySize)

	n, err := io.ReadFull(r, key)
	if err != nil {
		return nil, err
	}
	if n != KeySize {
		return nil, errors.New("unable to generate gost key")
	}

	// Done.
	return key, nil
}

// NewFromKey creates a new GOST/ECB cipher object from the given key. The random source is not
// needed because the mode uses neither nonces nor IVs.
func NewFromKey(key []byte, _ io.Reader) (models.Cipher, error) {
	block, err := newBlockCipher(key)
	if err != nil {
		return nil, err
	}

	// Done.
	return &gostEcbCipher{
		block: block,
	}, nil
}

// KeyLen returns the length of the key used by the GOST cipher.
func (c *gostEcbCipher) KeyLen() int {
	return KeySize
}

// Encrypt pads and encrypts the given plaintext.
func (c *gostEcbCipher) Encrypt(plaintext []byte) ([]byte, error) {
	return c.block.sealECB(plaintext), nil
}

// Decrypt decrypts the given ciphertext and removes the padding.
func (c *gostEcbCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	return c.block.openECB(ciphertext)
}
