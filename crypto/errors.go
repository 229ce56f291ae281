package crypto

import "errors"

var (
	ErrEmptyKey            = errors.New("key cannot be empty")
	ErrMalformedCiphertext = errors.New("ciphertext length does not fit the key")
	ErrInvalidGrid         = errors.New("keyword does not yield a 25-letter grid")
	ErrUnknownCipher       = errors.New("unknown cipher")
	ErrEmptyChain          = errors.New("cipher chain has no stages")
	ErrIrreversibleChain   = errors.New("cipher chain cannot be decoded")
)
