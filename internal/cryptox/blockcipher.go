// Package cryptox holds the at-rest ciphers and key helpers used by ImageKeeper:
// AES-256-CBC with PKCS padding (optionally sealed with an HMAC tag),
// per-asset key derivation, key wrapping under a server master key and
// argon2id password hashing for access grants.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
)

// KeySize is the AES-256 key length used for every asset.
const KeySize = 32

// Pad appends PKCS padding: p bytes of value p, where p is in [1, blockSize].
func Pad(data []byte, blockSize int) []byte {
	p := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+p)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(p)
	}
	return out
}

// Unpad trims the padding announced by the last byte. Only the pad length is
// checked; the pad bytes themselves are not, so a wrong key yields garbage
// rather than an error in most cases.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, common.ErrMalformedCiphertext
	}
	p := int(data[len(data)-1])
	if p < 1 || p > blockSize {
		return nil, common.ErrMalformedCiphertext
	}
	return data[:len(data)-p], nil
}

// EncryptCBC encrypts plaintext with AES-256-CBC under a fresh random IV.
// The result is IV || ciphertext.
func EncryptCBC(plaintext, key []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	padded := Pad(plaintext, aes.BlockSize)
	out := make([]byte, aes.BlockSize+len(padded))

	iv := out[:aes.BlockSize]
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("iv: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)
	return out, nil
}

// DecryptCBC reverses EncryptCBC. It reads the first block as the IV.
func DecryptCBC(ciphertext, key []byte) ([]byte, error) {
	block, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < 2*aes.BlockSize || len(ciphertext)%aes.BlockSize != 0 {
		return nil, common.ErrMalformedCiphertext
	}

	iv := ciphertext[:aes.BlockSize]
	body := make([]byte, len(ciphertext)-aes.BlockSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(body, ciphertext[aes.BlockSize:])

	return Unpad(body, aes.BlockSize)
}

func newBlock(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(key))
	}
	return aes.NewCipher(key)
}
