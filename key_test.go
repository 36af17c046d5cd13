package encryptservice_test

import (
	"bytes"
	"errors"
	"testing"

	encryptservice "github.com/Minby93/EncryptService"
)

// -----------------------------------------------------------------------------

func TestKeySerialization(t *testing.T) {
	svc := createService(t)

	t.Log("Generating a new key...")
	key, err := svc.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	if len(key.Material) != 32 || key.Engine != "gost-ecb" {
		t.Fatalf("unexpected key %d bytes for %s", len(key.Material), key.Engine)
	}

	t.Log("Serializing and deserializing it...")
	restored, err := encryptservice.DeserializeKey(key.Serialize())
	if err != nil {
		t.Fatal(err)
	}
	if restored.ID != key.ID || restored.Engine != key.Engine || !bytes.Equal(restored.Material, key.Material) {
		t.Fatal("restored key differs from the original")
	}
	if restored.CreationTime.Unix() != key.CreationTime.Unix() {
		t.Fatal("creation time not preserved")
	}

	t.Log("Deserializing corrupted data (expected to fail)...")
	buf := key.Serialize()
	if _, err = encryptservice.DeserializeKey(buf[:len(buf)-1]); err == nil {
		t.Fatal(errTestMustFail)
	}
	if _, err = encryptservice.DeserializeKey(append(buf, 0)); !errors.Is(err, encryptservice.ErrInvalidStoredData) {
		t.Fatalf("expected ErrInvalidStoredData, got %v", err)
	}
	if _, err = encryptservice.DeserializeKey([]byte{1}); !errors.Is(err, encryptservice.ErrInvalidStoredData) {
		t.Fatalf("expected ErrInvalidStoredData, got %v", err)
	}
}

func TestKeySplitAndCombine(t *testing.T) {
	key, err := encryptservice.NewKey("gost-ecb", []byte("0123456789abcdef0123456789abcdef"))
	if err != nil {
		t.Fatal(err)
	}

	t.Log("Splitting the key into 5 shares with a threshold of 3...")
	shares, err := key.Split(5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(shares) != 5 {
		t.Fatalf("unexpected number of shares %d", len(shares))
	}

	t.Log("Combining 3 of them...")
	combined, err := encryptservice.CombineKey([][]byte{shares[4], shares[0], shares[2]})
	if err != nil {
		t.Fatal(err)
	}
	if combined.ID != key.ID || !bytes.Equal(combined.Material, key.Material) {
		t.Fatal("combined key differs from the original")
	}

	t.Log("Using the combined key...")
	original, err := key.Cipher(nil)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := combined.Cipher(nil)
	if err != nil {
		t.Fatal(err)
	}
	ciphertext, err := original.Encrypt([]byte("custody"))
	if err != nil {
		t.Fatal(err)
	}
	plaintext, err := rebuilt.Decrypt(ciphertext)
	if err != nil {
		t.Fatal(err)
	}
	if string(plaintext) != "custody" {
		t.Fatal("original and decrypted text mismatch")
	}

	t.Log("Splitting into a single share...")
	single, err := key.Split(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	combined, err = encryptservice.CombineKey(single)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(combined.Material, key.Material) {
		t.Fatal("combined key differs from the original")
	}

	t.Log("Using invalid split parameters (expected to fail)...")
	for _, p := range [][2]int{{0, 0}, {3, 4}, {256, 2}, {2, 0}} {
		if _, err = key.Split(p[0], p[1]); err == nil {
			t.Fatalf("split(%d, %d): %v", p[0], p[1], errTestMustFail)
		}
	}
}

func TestKeyZeroize(t *testing.T) {
	material := []byte("0123456789abcdef0123456789abcdef")

	key, err := encryptservice.NewKey("gost-ecb", material)
	if err != nil {
		t.Fatal(err)
	}
	key.Zeroize()

	if !bytes.Equal(key.Material, make([]byte, 32)) {
		t.Fatal("key material not wiped")
	}
	if string(material) != "0123456789abcdef0123456789abcdef" {
		t.Fatal("NewKey must copy the material")
	}

	if _, err = encryptservice.NewKey("unknown", material); !errors.Is(err, encryptservice.ErrEngineNotSupported) {
		t.Fatalf("expected ErrEngineNotSupported, got %v", err)
	}
}
