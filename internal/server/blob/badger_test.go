package blob

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBadger(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := OpenBadger("", "http://localhost:8080/", []byte("sign-key"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadgerStore_PutGetDelete(t *testing.T) {
	s := newBadger(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "assets/o/a/original.enc", []byte("cipher"), "application/octet-stream"))
	require.NoError(t, s.Put(ctx, "grants/g/protected.png", []byte("png"), "image/png"))

	got, err := s.Get(ctx, "assets/o/a/original.enc")
	require.NoError(t, err)
	assert.Equal(t, []byte("cipher"), got)
	assert.Equal(t, "image/png", s.ContentType("grants/g/protected.png"))

	require.NoError(t, s.Delete(ctx, "assets/o/a/original.enc"))
	_, err = s.Get(ctx, "assets/o/a/original.enc")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.NoError(t, s.Delete(ctx, "missing"))
	assert.Equal(t, "application/octet-stream", s.ContentType("missing"))
}

func TestBadgerStore_SignedLinks(t *testing.T) {
	s := newBadger(t)
	clock := &timex.FixedClock{T: time.Unix(1_700_000_000, 0)}
	s.clock = clock

	link, err := s.PresignGet(context.Background(), "grants/g/protected.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "http://localhost:8080/files/grants/g/protected.png?"))

	u, err := url.Parse(link)
	require.NoError(t, err)
	exp, sig := u.Query().Get("exp"), u.Query().Get("sig")

	assert.NoError(t, s.Verify("grants/g/protected.png", exp, sig))
	assert.ErrorIs(t, s.Verify("grants/other/protected.png", exp, sig), ErrBadSignature)
	assert.ErrorIs(t, s.Verify("grants/g/protected.png", "1700009999", sig), ErrBadSignature)
	assert.ErrorIs(t, s.Verify("grants/g/protected.png", "soon", sig), ErrBadSignature)

	clock.Advance(PresignExpiry + time.Second)
	assert.ErrorIs(t, s.Verify("grants/g/protected.png", exp, sig), ErrBadSignature)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "assets/o1/a1/original.enc", AssetKey("o1", "a1"))
	assert.Equal(t, "assets/o1/a1/streams.cbor.zst", SidecarKey("o1", "a1"))
	assert.Equal(t, "grants/g1/protected.png", ArtifactKey("g1"))
}
