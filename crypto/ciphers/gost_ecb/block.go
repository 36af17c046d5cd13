package gost_ecb

import (
	"crypto/cipher"
	"encoding/binary"
)

// -----------------------------------------------------------------------------

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 8

	// KeySize is the cipher key size in bytes.
	KeySize = 32

	rounds = 32
)

// -----------------------------------------------------------------------------

type roundKeys [8]uint32

type blockCipher struct {
	keys roundKeys
}

// -----------------------------------------------------------------------------

// Round key order. Encryption walks the key words forward three times and then backwards once.
// Decryption uses the exact reverse order.
var (
	encryptSchedule [rounds]uint8
	decryptSchedule [rounds]uint8
)

func init() {
	for idx := 0; idx < 24; idx++ {
		encryptSchedule[idx] = uint8(idx % 8)
	}
	for idx := 0; idx < 8; idx++ {
		encryptSchedule[24+idx] = uint8(7 - idx)
	}
	for idx := 0; idx < rounds; idx++ {
		decryptSchedule[idx] = encryptSchedule[rounds-1-idx]
	}
}

// -----------------------------------------------------------------------------

// NewCipher creates a GOST 28147-89 block cipher from the given 256-bit key.
func NewCipher(key []byte) (cipher.Block, error) {
	c, err := newBlockCipher(key)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newBlockCipher(key []byte) (*blockCipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	c := &blockCipher{
		keys: expandKey(key),
	}

	// Done.
	return c, nil
}

// BlockSize returns the cipher block size.
func (c *blockCipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst. Dst and src must overlap entirely or not at all.
func (c *blockCipher) Encrypt(dst, src []byte) {
	checkBlocks(dst, src)
	encryptBlock(dst, src, &c.keys)
}

// Decrypt decrypts the first block in src into dst. Dst and src must overlap entirely or not at all.
func (c *blockCipher) Decrypt(dst, src []byte) {
	checkBlocks(dst, src)
	decryptBlock(dst, src, &c.keys)
}

func (c *blockCipher) zeroize() {
	c.keys.zeroize()
}

func checkBlocks(dst, src []byte) {
	if len(src) < BlockSize {
		panic("gost_ecb: input not full block")
	}
	if len(dst) < BlockSize {
		panic("gost_ecb: output not full block")
	}
}

func expandKey(key []byte) roundKeys {
	var k roundKeys

	for idx := 0; idx < 8; idx++ {
		k[idx] = binary.LittleEndian.Uint32(key[4*idx:])
	}
	return k
}

func (k *roundKeys) zeroize() {
	for idx := range k {
		k[idx] = 0
	}
}

func encryptBlock(dst, src []byte, k *roundKeys) {
	cryptBlock(dst, src, k, &encryptSchedule)
}

func decryptBlock(dst, src []byte, k *roundKeys) {
	cryptBlock(dst, src, k, &decryptSchedule)
}

func cryptBlock(dst, src []byte, k *roundKeys, schedule *[rounds]uint8) {
	left := binary.LittleEndian.Uint32(src[0:4])
	right := binary.LittleEndian.Uint32(src[4:8])

	for idx := 0; idx < rounds-1; idx++ {
		// The mixed half becomes the next left operand.
		left, right = round(left, right, k[schedule[idx]])
		left, right = right, left
	}
	// The last round keeps its halves in place so the reversed schedule undoes the whole block.
	left, right = round(left, right, k[schedule[rounds-1]])

	binary.LittleEndian.PutUint32(dst[0:4], left)
	binary.LittleEndian.PutUint32(dst[4:8], right)
}

// EncryptBlock encrypts a single 8-byte block with the given 256-bit key.
func EncryptBlock(block []byte, key []byte) ([]byte, error) {
	return transformBlock(block, key, encryptBlock)
}

// DecryptBlock decrypts a single 8-byte block with the given 256-bit key.
func DecryptBlock(block []byte, key []byte) ([]byte, error) {
	return transformBlock(block, key, decryptBlock)
}

func transformBlock(block []byte, key []byte, fn func(dst, src []byte, k *roundKeys)) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(block) != BlockSize {
		return nil, ErrInvalidBlockAlignment
	}

	k := expandKey(key)
	defer k.zeroize()

	out := make([]byte, BlockSize)
	fn(out, block, &k)

	// Done.
	return out, nil
}
