package keysign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"slices"
	"strings"
)

// Separator joins data and its tag. It is outside the base64url alphabet.
const Separator = "."

// Strict decoding rejects tags whose unused trailing bits are set, so every
// tag has exactly one textual form.
var tagEncoding = base64.RawURLEncoding.Strict()

// Keys signs with the first key and verifies against every key in order.
type Keys struct {
	keys [][]byte
	hash func() hash.Hash
}

type Option func(*Keys)

// WithHash selects the HMAC digest. SHA-256 is used by default.
func WithHash(h func() hash.Hash) Option {
	return func(k *Keys) {
		if h != nil {
			k.hash = h
		}
	}
}

// New builds a key set from keys, newest first. Empty keys are dropped and
// the remaining ones are copied.
func New(keys [][]byte, opts ...Option) (*Keys, error) {
	cleaned := cleanKeys(keys)
	if len(cleaned) == 0 {
		return nil, ErrNoKeys
	}

	k := &Keys{keys: cleaned, hash: sha256.New}
	for _, opt := range opts {
		opt(k)
	}
	return k, nil
}

// Sign appends the tag of data computed with the newest key.
func (k *Keys) Sign(data string) (string, error) {
	return data + Separator + k.tag(k.keys[0], data), nil
}

// Verify returns the signed data when its tag matches any key.
func (k *Keys) Verify(signed string) (string, error) {
	data, _, err := k.verify(signed)
	return data, err
}

// Match reports the index of the key that verifies signed, or -1.
// A positive index means the token was signed with a retired key and may be re-issued.
func (k *Keys) Match(signed string) int {
	_, idx, err := k.verify(signed)
	if err != nil {
		return -1
	}
	return idx
}

func (k *Keys) verify(signed string) (string, int, error) {
	// The base64 decoder skips CR and LF; Sign never emits them.
	if strings.ContainsAny(signed, "\r\n") {
		return "", -1, ErrMalformed
	}
	i := strings.LastIndex(signed, Separator)
	if i < 0 {
		return "", -1, ErrMalformed
	}
	data, tag := signed[:i], signed[i+len(Separator):]

	got, err := tagEncoding.DecodeString(tag)
	if err != nil {
		return "", -1, ErrMalformed
	}

	// Try all keys to support rotation - tokens signed with older keys stay valid
	for idx, key := range k.keys {
		if hmac.Equal(got, k.sum(key, data)) {
			return data, idx, nil
		}
	}
	return "", -1, ErrInvalidSignature
}

func (k *Keys) tag(key []byte, data string) string {
	return tagEncoding.EncodeToString(k.sum(key, data))
}

func (k *Keys) sum(key []byte, data string) []byte {
	mac := hmac.New(k.hash, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}

func cleanKeys(keys [][]byte) [][]byte {
	out := make([][]byte, 0, len(keys))
	for _, key := range keys {
		if len(key) > 0 {
			out = append(out, slices.Clone(key))
		}
	}
	return out
}
