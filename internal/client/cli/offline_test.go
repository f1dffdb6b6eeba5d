package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/stego"
	"github.com/dmitrijs2005/imagekeeper/internal/watermark"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	for _, algo := range []string{algoCBC, algoCBCHMAC} {
		t.Run(algo, func(t *testing.T) {
			a, out, dir := newTestApp(t, "")
			in := filepath.Join(dir, "plain.bin")
			enc := filepath.Join(dir, "plain.enc")
			dec := filepath.Join(dir, "plain.dec")
			require.NoError(t, os.WriteFile(in, []byte("not really an image"), 0o600))

			stubPasswords(t, "pass", "pass", "pass")
			require.NoError(t, run(t, a, dir, "encrypt", "--in", in, "--out", enc, "--algo", algo))
			assert.Contains(t, out.String(), "encrypted")

			data, err := os.ReadFile(enc)
			require.NoError(t, err)
			assert.Greater(t, len(data), saltSize+16)

			a, _, _ = newTestApp(t, "")
			require.NoError(t, run(t, a, dir, "decrypt", "--in", enc, "--out", dec, "--algo", algo))
			got, err := os.ReadFile(dec)
			require.NoError(t, err)
			assert.Equal(t, "not really an image", string(got))
		})
	}
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	a, _, dir := newTestApp(t, "")
	in := filepath.Join(dir, "plain.bin")
	enc := filepath.Join(dir, "plain.enc")
	require.NoError(t, os.WriteFile(in, []byte("secret"), 0o600))

	stubPasswords(t, "right", "right", "wrong")
	require.NoError(t, run(t, a, dir, "encrypt", "--in", in, "--out", enc))

	a, _, _ = newTestApp(t, "")
	err := run(t, a, dir, "decrypt", "--in", enc, "--out", filepath.Join(dir, "x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrIntegrity)
}

func TestEncrypt_Errors(t *testing.T) {
	tests := []struct {
		name      string
		passwords []string
		algo      string
		wantErr   error
	}{
		{"mismatch", []string{"a", "b"}, algoCBCHMAC, errPasswordMismatch},
		{"empty", []string{"", ""}, algoCBCHMAC, common.ErrValidation},
		{"unknown algo", []string{"a", "a"}, "rot13", common.ErrUnsupportedAlgo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, dir := newTestApp(t, "")
			in := filepath.Join(dir, "plain.bin")
			require.NoError(t, os.WriteFile(in, []byte("x"), 0o600))

			stubPasswords(t, tt.passwords...)
			err := run(t, a, dir, "encrypt", "--in", in, "--out", filepath.Join(dir, "out"), "--algo", tt.algo)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecrypt_ShortFile(t *testing.T) {
	a, _, dir := newTestApp(t, "")
	in := filepath.Join(dir, "short")
	require.NoError(t, os.WriteFile(in, []byte("tiny"), 0o600))

	err := run(t, a, dir, "decrypt", "--in", in, "--out", filepath.Join(dir, "out"))
	assert.ErrorIs(t, err, common.ErrMalformedCiphertext)
}

func TestChaos_RoundTrip(t *testing.T) {
	a, _, dir := newTestApp(t, "")
	orig := gradient(24, 16)
	in := writeTestPNG(t, dir, "in.png", orig)
	scrambled := filepath.Join(dir, "scrambled.png")
	restored := filepath.Join(dir, "restored.png")

	stubPasswords(t, "k3y", "k3y", "k3y")
	require.NoError(t, run(t, a, dir, "chaos", "encrypt", "--in", in, "--out", scrambled))
	_, err := os.Stat(scrambled + ".streams")
	require.NoError(t, err)
	assert.NotEqual(t, orig.Pix, readTestImage(t, scrambled).Pix)

	a, _, _ = newTestApp(t, "")
	require.NoError(t, run(t, a, dir, "chaos", "decrypt", "--in", scrambled, "--out", restored))
	assert.Equal(t, orig.Pix, readTestImage(t, restored).Pix)
}

func TestChaos_DecryptWrongPassphrase(t *testing.T) {
	a, _, dir := newTestApp(t, "")
	in := writeTestPNG(t, dir, "in.png", gradient(8, 8))
	scrambled := filepath.Join(dir, "s.png")

	stubPasswords(t, "k3y", "k3y", "other")
	require.NoError(t, run(t, a, dir, "chaos", "encrypt", "--in", in, "--out", scrambled))

	a, _, _ = newTestApp(t, "")
	err := run(t, a, dir, "chaos", "decrypt", "--in", scrambled, "--out", filepath.Join(dir, "r.png"))
	assert.ErrorIs(t, err, common.ErrIntegrity)
}

func TestStego_EmbedExtractCapacity(t *testing.T) {
	a, out, dir := newTestApp(t, "")
	in := writeTestPNG(t, dir, "in.png", gradient(64, 48))
	marked := filepath.Join(dir, "marked.png")

	require.NoError(t, run(t, a, dir, "stego", "embed", "--in", in, "--out", marked, "--message", "(c) Jane"))

	a, out, _ = newTestApp(t, "")
	require.NoError(t, run(t, a, dir, "stego", "extract", "--in", marked))
	assert.Contains(t, out.String(), "(c) Jane")

	a, out, _ = newTestApp(t, "")
	require.NoError(t, run(t, a, dir, "-o", "json", "stego", "capacity", "--in", in))
	assert.JSONEq(t, `{"width":64,"height":48,"max_chars":`+strconv.Itoa(stego.CapacityFor(64, 48))+`}`, out.String())
}

func TestStego_EmbedPromptsForMessage(t *testing.T) {
	a, _, dir := newTestApp(t, "from stdin\n")
	in := writeTestPNG(t, dir, "in.png", gradient(64, 48))
	marked := filepath.Join(dir, "marked.png")

	require.NoError(t, run(t, a, dir, "stego", "embed", "--in", in, "--out", marked))

	img, err := readImage(marked)
	require.NoError(t, err)
	msg, err := stego.New().Extract(img)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", msg)
}

func TestStego_TooLong(t *testing.T) {
	a, _, dir := newTestApp(t, "")
	in := writeTestPNG(t, dir, "in.png", gradient(8, 8))

	err := run(t, a, dir, "stego", "embed", "--in", in, "--out", filepath.Join(dir, "m.png"), "--message", "far too long for this image")
	assert.ErrorIs(t, err, common.ErrCapacityExceeded)
}

func TestWatermark(t *testing.T) {
	a, out, dir := newTestApp(t, "")
	orig := gradient(120, 80)
	in := writeTestPNG(t, dir, "in.png", orig)
	marked := filepath.Join(dir, "marked.png")

	require.NoError(t, run(t, a, dir, "watermark", "--in", in, "--out", marked,
		"--text", "DRAFT", "--pattern", "single", "--opacity", "100", "--rotation", "0", "--color", "#000"))
	assert.Contains(t, out.String(), "watermarked")

	got := readTestImage(t, marked)
	assert.Equal(t, orig.Rect, got.Rect)
	assert.NotEqual(t, orig.Pix, got.Pix)
}

func TestWatermark_InvalidSettings(t *testing.T) {
	a, _, dir := newTestApp(t, "")
	in := writeTestPNG(t, dir, "in.png", gradient(16, 16))

	err := run(t, a, dir, "watermark", "--in", in, "--out", filepath.Join(dir, "m.png"), "--pattern", "spiral")
	require.Error(t, err)
	assert.ErrorIs(t, err, watermark.ErrInvalidSettings)
}
