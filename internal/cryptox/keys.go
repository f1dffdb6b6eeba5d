package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"golang.org/x/crypto/hkdf"
)

// NewAssetKey derives a fresh 32-byte key for one asset. The input keying
// material mixes the owner and asset identifiers with a random salt, the
// current time and the process id; the salt alone guarantees uniqueness.
func NewAssetKey(ownerID, assetID string) ([]byte, error) {
	salt := common.GenerateRandByteArray(32)
	defer common.WipeByteArray(salt)

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(time.Now().UnixNano()))

	ikm := make([]byte, 0, len(ownerID)+len(assetID)+len(salt)+16)
	ikm = append(ikm, ownerID...)
	ikm = append(ikm, '|')
	ikm = append(ikm, assetID...)
	ikm = append(ikm, '|')
	ikm = append(ikm, salt...)
	ikm = append(ikm, ts[:]...)
	ikm = binary.BigEndian.AppendUint32(ikm, uint32(os.Getpid()))
	defer common.WipeByteArray(ikm)

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, salt, []byte("imagekeeper/asset-key")), key); err != nil {
		return nil, fmt.Errorf("derive asset key: %w", err)
	}
	return key, nil
}

// WrapKey encrypts an asset key under the server master key with AES-GCM.
// The output is nonce || ciphertext.
func WrapKey(assetKey, masterKey []byte) ([]byte, error) {
	gcm, err := newGCM(masterKey)
	if err != nil {
		return nil, err
	}
	nonce := common.GenerateRandByteArray(gcm.NonceSize())
	return gcm.Seal(nonce, nonce, assetKey, nil), nil
}

// UnwrapKey reverses WrapKey.
func UnwrapKey(wrapped, masterKey []byte) ([]byte, error) {
	gcm, err := newGCM(masterKey)
	if err != nil {
		return nil, err
	}
	if len(wrapped) < gcm.NonceSize() {
		return nil, common.ErrMalformedCiphertext
	}
	nonce, ct := wrapped[:gcm.NonceSize()], wrapped[gcm.NonceSize():]
	key, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, errors.Join(common.ErrIntegrity, err)
	}
	return key, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("master key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
