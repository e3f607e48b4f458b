package keysign

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keySize = 32 // AES-256

// deriveKey stretches secret into a 32-byte key bound to purpose.
func deriveKey(secret []byte, purpose string) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, nil, []byte(purpose))

	key := make([]byte, keySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}
	return key, nil
}
