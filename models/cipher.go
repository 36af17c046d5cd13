package models

// -----------------------------------------------------------------------------

// Cipher is the minimal interface that must be implemented by all message ciphers.
type Cipher interface {
	// KeyLen returns the length of the key used by the cipher.
	KeyLen() int

	// Encrypt encrypts the whole plaintext at once. The input is not modified.
	Encrypt(plaintext []byte) ([]byte, error)
	// Decrypt decrypts the whole ciphertext at once. On failure, no partial plaintext is returned.
	Decrypt(ciphertext []byte) ([]byte, error)
}
