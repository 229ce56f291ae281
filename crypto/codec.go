package crypto

import (
	"fmt"
	"strings"
)

// Kind names a cipher.
type Kind string

const (
	KindVigenere            Kind = "vigenere"
	KindTransposition       Kind = "transposition"
	KindDoubleTransposition Kind = "double_transposition"
	KindPlayfair            Kind = "playfair"

	// KindChain identifies a Chain of other codecs.
	KindChain Kind = "cascade"
)

// Codec is a reversible text cipher bound to its key material.
type Codec interface {
	// Kind returns the cipher this codec implements
	Kind() Kind

	// Encode enciphers text
	Encode(text string) (string, error)

	// Decode reverses Encode
	Decode(text string) (string, error)
}

// Descriptor describes a cipher and the key material it takes.
type Descriptor struct {
	Kind        Kind   `json:"kind"`
	Keys        int    `json:"keys"`
	Description string `json:"description"`
}

var descriptors = []Descriptor{
	{KindVigenere, 1, "Polyalphabetic substitution; letters shift by the repeating key"},
	{KindTransposition, 1, "Columnar transposition; columns read in keyword order"},
	{KindDoubleTransposition, 2, "Columns permuted by the first key, rows by the second"},
	{KindPlayfair, 1, "Digraph substitution on a 5x5 keyword square"},
}

// Kinds lists the supported ciphers.
func Kinds() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// ParseKind resolves a cipher name, ignoring case and surrounding spaces.
// KindChain is accepted; it is built with NewChain rather than New.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	if kind == KindChain {
		return kind, nil
	}
	for _, d := range descriptors {
		if d.Kind == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCipher, name)
}

// New builds the codec for kind from keys. Double transposition takes the
// column key then the row key; every other cipher takes one key.
func New(kind Kind, keys ...string) (Codec, error) {
	var want int
	for _, d := range descriptors {
		if d.Kind == kind {
			want = d.Keys
		}
	}
	if want == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, kind)
	}
	if len(keys) < want {
		return nil, fmt.Errorf("%s needs %d key(s), got %d: %w", kind, want, len(keys), ErrEmptyKey)
	}
	if len(keys) > want {
		return nil, fmt.Errorf("%s takes %d key(s), got %d", kind, want, len(keys))
	}

	switch kind {
	case KindVigenere:
		return NewVigenere(keys[0])
	case KindTransposition:
		return NewTransposition(keys[0])
	case KindDoubleTransposition:
		return NewDoubleTransposition(keys[0], keys[1])
	default:
		return NewPlayfair(keys[0])
	}
}
