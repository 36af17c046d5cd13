package encryptservice_test

import (
	"errors"
	"strings"
	"testing"

	encryptservice "github.com/Minby93/EncryptService"
)

// -----------------------------------------------------------------------------

const (
	testKey = "0123456789abcdef0123456789abcdef"
)

var (
	errTestMustFail = errors.New("this sub-test was expected to fail")
)

// -----------------------------------------------------------------------------

func TestEncryptDecryptText(t *testing.T) {
	svc := createService(t)

	t.Log("Encrypting 'hello world!'...")
	ciphertext, err := svc.EncryptText("hello world!", testKey)
	if err != nil {
		t.Fatal(err)
	}
	if ciphertext != "b36362bbec7dee0e88c364442f1aa6e6" {
		t.Fatalf("unexpected ciphertext %s", ciphertext)
	}

	t.Log("Decrypting it back...")
	plaintext, err := svc.DecryptText(ciphertext, testKey)
	if err != nil {
		t.Fatal(err)
	}
	if plaintext != "hello world!" {
		t.Fatalf("original and decrypted text mismatch: %q", plaintext)
	}

	t.Log("Decrypting upper-case hex...")
	plaintext, err = svc.DecryptText(strings.ToUpper(ciphertext), testKey)
	if err != nil {
		t.Fatal(err)
	}
	if plaintext != "hello world!" {
		t.Fatalf("original and decrypted text mismatch: %q", plaintext)
	}
}

func TestUnicodeText(t *testing.T) {
	svc := createService(t)

	message := "Сообщение и ключ обязательны"
	ciphertext, err := svc.EncryptText(message, testKey)
	if err != nil {
		t.Fatal(err)
	}
	plaintext, err := svc.DecryptText(ciphertext, testKey)
	if err != nil {
		t.Fatal(err)
	}
	if plaintext != message {
		t.Fatalf("original and decrypted text mismatch: %q", plaintext)
	}
}

func TestRequestValidation(t *testing.T) {
	svc := createService(t)

	cases := []struct {
		name    string
		fn      func() (string, error)
		wantErr error
	}{
		{"encrypt without message", func() (string, error) { return svc.EncryptText("", testKey) }, encryptservice.ErrMissingMessage},
		{"encrypt without key", func() (string, error) { return svc.EncryptText("abc", "") }, encryptservice.ErrMissingKey},
		{"encrypt with short key", func() (string, error) { return svc.EncryptText("abc", "short") }, encryptservice.ErrInvalidKeyLength},
		{"encrypt with multi-byte key", func() (string, error) { return svc.EncryptText("abc", strings.Repeat("ж", 32)) }, encryptservice.ErrInvalidKeyLength},
		{"decrypt without message", func() (string, error) { return svc.DecryptText("", testKey) }, encryptservice.ErrMissingMessage},
		{"decrypt bad hex", func() (string, error) { return svc.DecryptText("zz", testKey) }, encryptservice.ErrInvalidHexEncoding},
		{"decrypt odd hex", func() (string, error) { return svc.DecryptText("abc", testKey) }, encryptservice.ErrInvalidHexEncoding},
		{"decrypt misaligned", func() (string, error) { return svc.DecryptText("b36362bbec7dee", testKey) }, encryptservice.ErrInvalidBlockAlignment},
		{"decrypt with long key", func() (string, error) { return svc.DecryptText("b36362bbec7dee0e", testKey+"x") }, encryptservice.ErrInvalidKeyLength},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.fn()
			if err == nil {
				t.Fatal(errTestMustFail)
			}
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("unexpected error: %v", err)
			}
			if !encryptservice.IsClientError(err) {
				t.Fatalf("error %v should be reported as a client error", err)
			}
		})
	}
}

func TestDecryptWithWrongKey(t *testing.T) {
	svc := createService(t)

	ciphertext, err := svc.EncryptText("hello world!", testKey)
	if err != nil {
		t.Fatal(err)
	}

	t.Log("Decrypting with a different key (expected to fail)...")
	_, err = svc.DecryptText(ciphertext, "fedcba9876543210fedcba9876543210")
	if err == nil {
		t.Fatal(errTestMustFail)
	}
	if !encryptservice.IsClientError(err) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnsupportedEngine(t *testing.T) {
	_, err := encryptservice.New(encryptservice.Options{
		Engine: "des-ecb",
	})
	if !errors.Is(err, encryptservice.ErrEngineNotSupported) {
		t.Fatalf("expected ErrEngineNotSupported, got %v", err)
	}
	if encryptservice.IsClientError(err) {
		t.Fatal("engine errors are not client errors")
	}
}

// -----------------------------------------------------------------------------

func createService(t *testing.T) *encryptservice.Service {
	svc, err := encryptservice.New(encryptservice.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if svc.Engine() != "gost-ecb" {
		t.Fatalf("unexpected default engine %s", svc.Engine())
	}
	return svc
}
