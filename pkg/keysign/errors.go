package keysign

import "errors"

var (
	ErrNoKeys           = errors.New("keysign.no_keys")
	ErrMalformed        = errors.New("keysign.malformed")
	ErrInvalidSignature = errors.New("keysign.invalid_signature")
	ErrDecryptionFailed = errors.New("keysign.decryption_failed")
	ErrEncryptionFailed = errors.New("keysign.encryption_failed")
	ErrKeyDerivation    = errors.New("keysign.key_derivation_failed")
)
