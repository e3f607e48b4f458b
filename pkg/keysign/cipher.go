package keysign

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
)

const cipherPurpose = "cookiekit-cipher-v1"

// Cipher encrypts tokens with AES-256-GCM. Each secret is turned into an AES
// key with HKDF, so secrets of any length are accepted.
type Cipher struct {
	aeads []cipher.AEAD
}

// NewCipher builds a cipher from keys, newest first.
func NewCipher(keys [][]byte) (*Cipher, error) {
	cleaned := cleanKeys(keys)
	if len(cleaned) == 0 {
		return nil, ErrNoKeys
	}

	aeads := make([]cipher.AEAD, 0, len(cleaned))
	for _, secret := range cleaned {
		key, err := deriveKey(secret, cipherPurpose)
		if err != nil {
			return nil, err
		}
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, errors.Join(ErrEncryptionFailed, err)
		}
		gcm, err := cipher.NewGCM(block)
		if err != nil {
			return nil, errors.Join(ErrEncryptionFailed, err)
		}
		aeads = append(aeads, gcm)
	}

	return &Cipher{aeads: aeads}, nil
}

// Sign encrypts data with the newest key. The nonce is prepended to the
// ciphertext and the result is unpadded base64url.
func (c *Cipher) Sign(data string) (string, error) {
	gcm := c.aeads[0]

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Join(ErrEncryptionFailed, err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(data), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Verify decrypts sealed, trying every key in order.
func (c *Cipher) Verify(sealed string) (string, error) {
	if strings.ContainsAny(sealed, "\r\n") {
		return "", ErrMalformed
	}
	raw, err := base64.RawURLEncoding.Strict().DecodeString(sealed)
	if err != nil {
		return "", ErrMalformed
	}

	for _, gcm := range c.aeads {
		n := gcm.NonceSize()
		if len(raw) < n+gcm.Overhead() {
			return "", ErrMalformed
		}
		plain, err := gcm.Open(nil, raw[:n], raw[n:], nil)
		if err == nil {
			return string(plain), nil
		}
	}
	return "", ErrDecryptionFailed
}
