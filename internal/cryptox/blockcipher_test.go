package cryptox

import (
	"bytes"
	"crypto/aes"
	"errors"
	"testing"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	k := make([]byte, KeySize)
	for i := range k {
		k[i] = byte(i * 7)
	}
	return k
}

func TestPad(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		wantPad int
	}{
		{"empty", 0, 16},
		{"one byte", 1, 15},
		{"fifteen", 15, 1},
		{"exact block", 16, 16},
		{"two blocks", 32, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Pad(bytes.Repeat([]byte{0xAA}, tt.in), aes.BlockSize)
			require.Len(t, out, tt.in+tt.wantPad)
			for _, b := range out[tt.in:] {
				assert.Equal(t, byte(tt.wantPad), b)
			}
		})
	}
}

func TestUnpad_Errors(t *testing.T) {
	_, err := Unpad(nil, aes.BlockSize)
	assert.ErrorIs(t, err, common.ErrMalformedCiphertext)

	bad := bytes.Repeat([]byte{0}, aes.BlockSize)
	_, err = Unpad(bad, aes.BlockSize)
	assert.ErrorIs(t, err, common.ErrMalformedCiphertext)

	bad[len(bad)-1] = 17
	_, err = Unpad(bad, aes.BlockSize)
	assert.ErrorIs(t, err, common.ErrMalformedCiphertext)
}

func TestCBC_RoundTrip(t *testing.T) {
	key := testKey()
	for _, n := range []int{0, 1, 15, 16, 17, 32, 1000} {
		plain := bytes.Repeat([]byte{byte(n)}, n)

		ct, err := EncryptCBC(plain, key)
		require.NoError(t, err)
		require.Zero(t, len(ct)%aes.BlockSize)
		require.GreaterOrEqual(t, len(ct), 2*aes.BlockSize, "IV plus at least one block")

		got, err := DecryptCBC(ct, key)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(plain, got), "len %d", n)
	}
}

func TestCBC_FreshIVPerCall(t *testing.T) {
	key := testKey()
	plain := []byte("photo.png bytes")

	a, err := EncryptCBC(plain, key)
	require.NoError(t, err)
	b, err := EncryptCBC(plain, key)
	require.NoError(t, err)

	assert.NotEqual(t, a[:aes.BlockSize], b[:aes.BlockSize])
	assert.NotEqual(t, a, b)
}

func TestCBC_KnownPlaintextStartsWithIV(t *testing.T) {
	key := testKey()
	plain := []byte("\x89PNG\r\n\x1a\nfake image payload")

	ct, err := EncryptCBC(plain, key)
	require.NoError(t, err)
	assert.Len(t, ct, aes.BlockSize+len(Pad(plain, aes.BlockSize)))

	got, err := DecryptCBC(ct, key)
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestCBC_BadInput(t *testing.T) {
	_, err := EncryptCBC([]byte("x"), []byte("short"))
	assert.Error(t, err)

	_, err = DecryptCBC(make([]byte, aes.BlockSize), testKey())
	assert.True(t, errors.Is(err, common.ErrMalformedCiphertext))

	_, err = DecryptCBC(make([]byte, 40), testKey())
	assert.True(t, errors.Is(err, common.ErrMalformedCiphertext))
}
