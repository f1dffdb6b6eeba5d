package blob

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/dmitrijs2005/imagekeeper/internal/timex"
)

// FilesPrefix is the REST path the signed URLs of BadgerStore point at.
const FilesPrefix = "/files/"

var ErrBadSignature = errors.New("blob: bad or expired signature")

const (
	dataPrefix = "blob:"
	typePrefix = "type:"
)

// BadgerStore keeps blobs in an embedded badger database and hands out
// HMAC-signed links served by the REST endpoint.
type BadgerStore struct {
	db      *badger.DB
	baseURL string
	signKey []byte
	clock   timex.Clock
}

// OpenBadger opens (or creates) the store at path. An empty path keeps
// everything in memory.
func OpenBadger(path, baseURL string, signKey []byte) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{
		db:      db,
		baseURL: strings.TrimRight(baseURL, "/"),
		signKey: signKey,
		clock:   timex.SystemClock{},
	}, nil
}

func (s *BadgerStore) Close() error { return s.db.Close() }

func (s *BadgerStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(dataPrefix+key), data); err != nil {
			return err
		}
		return txn.Set([]byte(typePrefix+key), []byte(contentType))
	})
}

func (s *BadgerStore) Get(_ context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(dataPrefix + key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, common.ErrorNotFound
	}
	return data, err
}

// ContentType returns the type recorded by Put.
func (s *BadgerStore) ContentType(key string) string {
	var ct string
	_ = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(typePrefix + key))
		if err != nil {
			return err
		}
		v, err := item.ValueCopy(nil)
		ct = string(v)
		return err
	})
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}

func (s *BadgerStore) Delete(_ context.Context, key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(dataPrefix + key)); err != nil {
			return err
		}
		return txn.Delete([]byte(typePrefix + key))
	})
}

// PresignGet returns {baseURL}/files/{key}?exp=&sig= valid for PresignExpiry.
func (s *BadgerStore) PresignGet(_ context.Context, key string) (string, error) {
	exp := s.clock.Now().Add(PresignExpiry).Unix()
	q := url.Values{}
	q.Set("exp", strconv.FormatInt(exp, 10))
	q.Set("sig", s.sign(key, exp))
	return s.baseURL + FilesPrefix + key + "?" + q.Encode(), nil
}

// Verify checks the exp and sig query values of a link for key.
func (s *BadgerStore) Verify(key, exp, sig string) error {
	e, err := strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return ErrBadSignature
	}
	if s.clock.Now().Unix() > e {
		return ErrBadSignature
	}
	if !hmac.Equal([]byte(sig), []byte(s.sign(key, e))) {
		return ErrBadSignature
	}
	return nil
}

func (s *BadgerStore) sign(key string, exp int64) string {
	mac := hmac.New(sha256.New, s.signKey)
	mac.Write([]byte(key))
	mac.Write([]byte{0})
	mac.Write([]byte(strconv.FormatInt(exp, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}
