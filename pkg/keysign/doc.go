// Package keysign signs and verifies short string tokens with an ordered set
// of secret keys, newest first.
//
// Three signers share the same Sign/Verify shape:
//
//   - Keys: HMAC (SHA-256 by default). Sign appends "." plus the unpadded
//     base64url tag computed with the newest key. Verify tries every key in
//     order using constant-time comparison.
//   - Cipher: AES-256-GCM. Sign encrypts with the newest key, Verify decrypts
//     with each key in turn. AES keys are derived from the secrets with
//     HKDF-SHA-256 (golang.org/x/crypto/hkdf).
//   - SecureCookie: github.com/gorilla/securecookie codecs combined with
//     EncodeMulti/DecodeMulti.
//
// # Key rotation
//
// Put the new key first and keep the old ones after it. New tokens are
// signed with the new key while tokens issued under old keys keep verifying
// until their key is removed from the list. Keys.Match reports which key
// verified a token so callers can re-issue tokens signed with a retired key.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiekit/pkg/keysign"
//
//	keys, err := keysign.New([][]byte{newSecret, oldSecret})
//	if err != nil { log.Fatal(err) }
//
//	signed, _ := keys.Sign("payload")
//	data, err := keys.Verify(signed)
//
// # Error Handling
//
// Verification failures are returned as ErrMalformed, ErrInvalidSignature or
// ErrDecryptionFailed. Construction without any non-empty key returns ErrNoKeys.
package keysign
