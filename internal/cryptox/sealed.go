package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"io"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"golang.org/x/crypto/hkdf"
)

// TagSize is the length of the HMAC-SHA256 tag appended by Seal.
const TagSize = sha256.Size

const macInfo = "imagekeeper/mac"

// Seal encrypts plaintext with EncryptCBC and appends an HMAC-SHA256 tag over
// IV || ciphertext (encrypt-then-MAC). The MAC key is derived from key with
// HKDF so the same asset key serves both purposes.
func Seal(plaintext, key []byte) ([]byte, error) {
	ct, err := EncryptCBC(plaintext, key)
	if err != nil {
		return nil, err
	}
	macKey, err := deriveMACKey(key)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(macKey)

	return append(ct, tag(macKey, ct)...), nil
}

// Open checks the tag produced by Seal and decrypts the payload. A tag
// mismatch yields common.ErrIntegrity and nothing is decrypted.
func Open(sealed, key []byte) ([]byte, error) {
	if len(sealed) < TagSize {
		return nil, common.ErrMalformedCiphertext
	}
	macKey, err := deriveMACKey(key)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(macKey)

	ct, got := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]
	if !hmac.Equal(got, tag(macKey, ct)) {
		return nil, common.ErrIntegrity
	}
	return DecryptCBC(ct, key)
}

func tag(macKey, data []byte) []byte {
	m := hmac.New(sha256.New, macKey)
	m.Write(data)
	return m.Sum(nil)
}

func deriveMACKey(key []byte) ([]byte, error) {
	if _, err := newBlock(key); err != nil {
		return nil, err
	}
	out := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte(macInfo)), out); err != nil {
		return nil, err
	}
	return out, nil
}
