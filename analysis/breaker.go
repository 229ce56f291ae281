package analysis

import (
	"fmt"

	"classical-cipher-backend/crypto"
)

// Method records which estimator chose the key length.
type Method string

const (
	MethodKasiski  Method = "kasiski"
	MethodFriedman Method = "friedman"
)

// Result is the outcome of a ciphertext-only attack on a Vigenère message.
type Result struct {
	Candidates         []int   `json:"candidates"`
	IndexOfCoincidence float64 `json:"index_of_coincidence"`
	FriedmanEstimate   *int    `json:"friedman_estimate,omitempty"`
	KeyLength          int     `json:"key_length"`
	Method             Method  `json:"method"`
	Key                string  `json:"key"`
	Plaintext          string  `json:"plaintext"`
}

// Break recovers the key of a Vigenère ciphertext and decrypts it.
//
// Statistics are taken over the ciphertext's letters only, uppercased, since
// the key does not advance on other characters. The top Kasiski candidate
// wins; without one the Friedman estimate is used.
func Break(ciphertext string) (*Result, error) {
	letters := crypto.LettersOnly(ciphertext)

	result := &Result{
		Candidates: Kasiski(letters),
	}

	ic, icErr := IndexOfCoincidence(letters)
	if icErr == nil {
		result.IndexOfCoincidence = ic
	}
	estimate, friedmanErr := EstimateKeyLength(ic)
	if icErr != nil {
		friedmanErr = icErr
	}
	if friedmanErr == nil {
		result.FriedmanEstimate = &estimate
	}

	switch {
	case len(result.Candidates) > 0:
		result.KeyLength = result.Candidates[0]
		result.Method = MethodKasiski
	case friedmanErr != nil:
		return nil, fmt.Errorf("no repeated trigrams and friedman test failed: %w", friedmanErr)
	default:
		result.KeyLength = max(estimate, 1)
		result.Method = MethodFriedman
	}

	key, err := RecoverKey(letters, result.KeyLength)
	if err != nil {
		return nil, fmt.Errorf("recover key of length %d: %w", result.KeyLength, err)
	}
	codec, err := crypto.NewVigenere(key)
	if err != nil {
		return nil, fmt.Errorf("decrypt with recovered key: %w", err)
	}
	result.Key = codec.Key()
	result.Plaintext, err = codec.Decode(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decrypt with recovered key: %w", err)
	}
	return result, nil
}
