package encryptservice

import (
	"errors"
	"hash/fnv"
	"io"
	"time"

	"github.com/Minby93/EncryptService/crypto/ciphers"
	"github.com/Minby93/EncryptService/models"
	"github.com/Minby93/EncryptService/util"
	bstd "github.com/deneonet/benc/std"
	"github.com/mxmauro/shamir"
)

// -----------------------------------------------------------------------------

const (
	keyVersion = 1

	maxShares = 255
)

// -----------------------------------------------------------------------------

// Key holds the material of a cipher key plus the engine it belongs to.
type Key struct {
	ID           uint32
	Engine       string
	Material     []byte
	CreationTime time.Time
}

// -----------------------------------------------------------------------------

// GenerateKey creates a new random key for the given engine.
func GenerateKey(engine string, rg io.Reader) (*Key, error) {
	material, err := ciphers.GenerateKey(engine, rg)
	if err != nil {
		return nil, err
	}
	return newKey(engine, material, time.Now().UTC()), nil
}

// NewKey wraps existing key material. The material is copied.
func NewKey(engine string, material []byte) (*Key, error) {
	if !ciphers.IsEngineSupported(engine) {
		return nil, ciphers.ErrEngineNotSupported
	}
	if len(material) == 0 {
		return nil, ErrMissingKey
	}

	buf := make([]byte, len(material))
	copy(buf, material)
	return newKey(engine, buf, time.Now().UTC()), nil
}

func newKey(engine string, material []byte, now time.Time) *Key {
	// Create ID.
	h := fnv.New32a()
	_, _ = h.Write(material)
	_, _ = h.Write([]byte(now.String()))

	return &Key{
		ID:           h.Sum32(),
		Engine:       engine,
		Material:     material,
		CreationTime: now,
	}
}

// DeserializeKey decodes a key previously encoded with `Serialize`.
func DeserializeKey(buf []byte) (*Key, error) {
	var ct int64

	if len(buf) <= bstd.SizeUint16() {
		return nil, ErrInvalidStoredData
	}

	k := Key{}

	success := false
	defer func() {
		if !success {
			k.Zeroize()
		}
	}()

	// Deserialize data.
	ofs, version, err := bstd.UnmarshalUint16(0, buf)
	if err != nil {
		return nil, ErrInvalidStoredData
	}
	switch version {
	case 1:
		ofs, k.ID, err = bstd.UnmarshalUint32(ofs, buf)
		if err != nil {
			return nil, ErrInvalidStoredData
		}
		ofs, k.Engine, err = bstd.UnmarshalString(ofs, buf)
		if err != nil {
			return nil, ErrInvalidStoredData
		}
		ofs, k.Material, err = bstd.UnmarshalBytesCopied(ofs, buf)
		if err != nil {
			return nil, ErrInvalidStoredData
		}
		ofs, ct, err = bstd.UnmarshalInt64(ofs, buf)
		if err != nil {
			return nil, ErrInvalidStoredData
		}
		k.CreationTime = time.Unix(ct, 0).UTC()

	default:
		return nil, errors.New("unsupported key version")
	}

	// Check if we reached the end of the buffer.
	if ofs != len(buf) {
		return nil, ErrInvalidStoredData
	}

	// Check if the engine is supported.
	if !ciphers.IsEngineSupported(k.Engine) {
		return nil, ciphers.ErrEngineNotSupported
	}

	// Done
	success = true
	return &k, nil
}

// CombineKey rebuilds a key from the parts returned by `Split`.
func CombineKey(parts [][]byte) (*Key, error) {
	if len(parts) == 0 {
		return nil, errors.New("no key parts provided")
	}
	if len(parts) == 1 {
		return DeserializeKey(parts[0])
	}

	merged, err := shamir.Combine(parts)
	if err != nil {
		return nil, util.NewExtendedError(err, "unable to combine key parts")
	}
	defer util.SafeZeroMem(merged)

	return DeserializeKey(merged)
}

// Serialize encodes the key into a versioned binary form.
func (k *Key) Serialize() []byte {
	bufSize := bstd.SizeUint16() + bstd.SizeUint32() + bstd.SizeString(k.Engine) + bstd.SizeBytes(k.Material) +
		bstd.SizeUint64()
	buf := make([]byte, bufSize)

	ofs := bstd.MarshalUint16(0, buf, keyVersion)
	ofs = bstd.MarshalUint32(ofs, buf, k.ID)
	ofs = bstd.MarshalString(ofs, buf, k.Engine)
	ofs = bstd.MarshalBytes(ofs, buf, k.Material)
	_ = bstd.MarshalInt64(ofs, buf, k.CreationTime.Unix())

	// Done
	return buf
}

// Split divides the serialized key into the given number of shares, any threshold of which rebuild
// it. With a single share, the serialized key itself is returned.
func (k *Key) Split(shares int, threshold int) ([][]byte, error) {
	if shares < 1 || shares > maxShares || threshold < 1 || threshold > shares {
		return nil, errors.New("invalid shares or threshold parameter")
	}

	serialized := k.Serialize()
	if shares == 1 {
		return [][]byte{serialized}, nil
	}
	defer util.SafeZeroMem(serialized)

	// Split the key using the Shamir algorithm.
	return shamir.Split(serialized, shares, threshold)
}

// Cipher creates a cipher object for the key's engine.
func (k *Key) Cipher(rg io.Reader) (models.Cipher, error) {
	return ciphers.NewFromKey(k.Engine, k.Material, rg)
}

// Zeroize wipes the key material.
func (k *Key) Zeroize() {
	k.ID = 0
	k.Engine = ""
	util.SafeZeroMem(k.Material)
	k.CreationTime = time.Time{}
}
