package gost_ecb

import (
	"bytes"

	"github.com/Minby93/EncryptService/util"
)

// -----------------------------------------------------------------------------

// EncryptMessage pads the message and encrypts every 8-byte block independently with the given
// 256-bit key. The result is always a non-empty multiple of BlockSize.
func EncryptMessage(message []byte, key []byte) ([]byte, error) {
	c, err := newBlockCipher(key)
	if err != nil {
		return nil, err
	}
	defer c.zeroize()

	return c.sealECB(message), nil
}

// DecryptMessage decrypts every 8-byte block of the ciphertext with the given 256-bit key and
// strips the padding. Nothing is returned unless the whole message decrypts cleanly.
func DecryptMessage(ciphertext []byte, key []byte) ([]byte, error) {
	c, err := newBlockCipher(key)
	if err != nil {
		return nil, err
	}
	defer c.zeroize()

	return c.openECB(ciphertext)
}

func (c *blockCipher) sealECB(plaintext []byte) []byte {
	out := pad(plaintext)
	for ofs := 0; ofs < len(out); ofs += BlockSize {
		block := out[ofs : ofs+BlockSize]
		encryptBlock(block, block, &c.keys)
	}
	return out
}

func (c *blockCipher) openECB(ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%BlockSize != 0 {
		return nil, ErrInvalidBlockAlignment
	}

	out := make([]byte, len(ciphertext))
	for ofs := 0; ofs < len(ciphertext); ofs += BlockSize {
		decryptBlock(out[ofs:ofs+BlockSize], ciphertext[ofs:ofs+BlockSize], &c.keys)
	}

	plaintext, err := unpad(out)
	if err != nil {
		util.SafeZeroMem(out)
		return nil, err
	}

	// Done.
	return plaintext, nil
}

// pad appends between 1 and BlockSize bytes, each holding the padding length. Input already
// aligned to the block size receives a full extra block.
func pad(data []byte) []byte {
	padLen := BlockSize - (len(data) % BlockSize)

	out := make([]byte, len(data)+padLen)
	copy(out, data)
	copy(out[len(data):], bytes.Repeat([]byte{byte(padLen)}, padLen))
	return out
}

func unpad(data []byte) ([]byte, error) {
	dataLen := len(data)
	if dataLen == 0 || dataLen%BlockSize != 0 {
		return nil, ErrInvalidPadding
	}

	padLen := int(data[dataLen-1])
	if padLen < 1 || padLen > BlockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[dataLen-padLen:] {
		if int(b) != padLen {
			return nil, ErrInvalidPadding
		}
	}
	return data[:dataLen-padLen], nil
}
