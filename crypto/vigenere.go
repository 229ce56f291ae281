package crypto

import (
	"strings"
)

// Vigenere is the polyalphabetic substitution cipher over A..Z.
type Vigenere struct {
	key   []int
	table CipherTable
}

// NewVigenere builds a codec from key. Characters of key that are not letters
// are ignored; a key with no letters is rejected.
func NewVigenere(key string) (*Vigenere, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	shifts := make([]int, 0, len(key))
	for _, r := range key {
		if IsLetter(r) {
			shifts = append(shifts, LetterValue(r))
		}
	}
	if len(shifts) == 0 {
		return nil, ErrEmptyKey
	}

	return &Vigenere{
		key:   shifts,
		table: NewCipherTable(),
	}, nil
}

func (v *Vigenere) Kind() Kind {
	return KindVigenere
}

// Key returns the normalized uppercase key.
func (v *Vigenere) Key() string {
	var b strings.Builder
	for _, s := range v.key {
		b.WriteByte(byte(s) + 'A')
	}
	return b.String()
}

func (v *Vigenere) Encode(plaintext string) (string, error) {
	var b strings.Builder
	b.Grow(len(plaintext))

	keyIndex := 0
	for _, char := range plaintext {
		if !IsLetter(char) {
			b.WriteRune(char)
			continue
		}
		row := v.key[keyIndex%len(v.key)]
		encrypted := rune(v.table.Lookup(row, LetterValue(char)))
		if isLower(char) {
			encrypted = encrypted - 'A' + 'a'
		}
		b.WriteRune(encrypted)
		keyIndex++
	}

	return b.String(), nil
}

func (v *Vigenere) Decode(ciphertext string) (string, error) {
	var b strings.Builder
	b.Grow(len(ciphertext))

	keyIndex := 0
	for _, char := range ciphertext {
		if !IsLetter(char) {
			b.WriteRune(char)
			continue
		}
		row := v.key[keyIndex%len(v.key)]
		decrypted := rune(v.table.IndexInRow(row, byte(toUpper(char)))) + 'A'
		if isLower(char) {
			decrypted = decrypted - 'A' + 'a'
		}
		b.WriteRune(decrypted)
		keyIndex++
	}

	return b.String(), nil
}

// ValidateKey validates that a key or keyword is usable.
func ValidateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
