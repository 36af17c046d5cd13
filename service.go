package encryptservice

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"unicode/utf8"

	"github.com/Minby93/EncryptService/crypto/ciphers"
	"github.com/Minby93/EncryptService/util"
)

// -----------------------------------------------------------------------------

// Service converts text requests into calls to a cipher engine. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	engine string
	rg     io.Reader
}

// Options configure the Service parameters.
type Options struct {
	// Encryption engine to use. Defaults to `gost-ecb`.
	Engine string

	// An optional random number generator reader. If nil, crypto/rand.Reader is used.
	RandomGeneratorReader io.Reader
}

// -----------------------------------------------------------------------------

// New creates a new text encryption service.
func New(opts Options) (*Service, error) {
	engine := opts.Engine
	if len(engine) == 0 {
		engine = ciphers.EngineGostEcb
	}
	if !ciphers.IsEngineSupported(engine) {
		return nil, ciphers.ErrEngineNotSupported
	}

	rg := opts.RandomGeneratorReader
	if rg == nil {
		rg = rand.Reader
	}

	// Done
	return &Service{
		engine: engine,
		rg:     rg,
	}, nil
}

// Engine returns the name of the encryption engine in use.
func (s *Service) Engine() string {
	return s.engine
}

// EncryptText encrypts a UTF-8 message with a 32-byte text key and returns the ciphertext as a
// lowercase hex string.
func (s *Service) EncryptText(message string, key string) (string, error) {
	err := validateRequest(message, key)
	if err != nil {
		return "", err
	}

	keyMaterial := []byte(key)
	defer util.SafeZeroMem(keyMaterial)

	cipher, err := ciphers.NewFromKey(s.engine, keyMaterial, s.rg)
	if err != nil {
		return "", err
	}
	ciphertext, err := cipher.Encrypt([]byte(message))
	if err != nil {
		return "", err
	}

	// Done
	return hex.EncodeToString(ciphertext), nil
}

// DecryptText decrypts a hex-encoded ciphertext with a 32-byte text key and returns the recovered
// UTF-8 message.
func (s *Service) DecryptText(ciphertextHex string, key string) (string, error) {
	var plaintext []byte

	err := validateRequest(ciphertextHex, key)
	if err != nil {
		return "", err
	}

	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return "", util.NewExtendedError(ErrInvalidHexEncoding, err.Error())
	}

	keyMaterial := []byte(key)
	defer func() {
		util.SafeZeroMem(keyMaterial)
		util.SafeZeroMem(plaintext)
	}()

	cipher, err := ciphers.NewFromKey(s.engine, keyMaterial, s.rg)
	if err != nil {
		return "", err
	}
	plaintext, err = cipher.Decrypt(ciphertext)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", ErrInvalidUtf8
	}

	// Done
	return string(plaintext), nil
}

// GenerateKey creates a new random key for the service's engine.
func (s *Service) GenerateKey() (*Key, error) {
	return GenerateKey(s.engine, s.rg)
}

func validateRequest(message string, key string) error {
	if len(message) == 0 {
		return ErrMissingMessage
	}
	if len(key) == 0 {
		return ErrMissingKey
	}
	return nil
}
