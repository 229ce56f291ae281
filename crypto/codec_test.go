package crypto

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		kind Kind
		keys []string
	}{
		{KindVigenere, []string{"LEMON"}},
		{KindTransposition, []string{"SECRET"}},
		{KindDoubleTransposition, []string{"SECRET", "CRYPTO"}},
		{KindPlayfair, []string{"MATRIX"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			codec, err := New(tt.kind, tt.keys...)
			if err != nil {
				t.Fatalf("new %s: %v", tt.kind, err)
			}
			if codec.Kind() != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, codec.Kind())
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New("rot13", "KEY"); !errors.Is(err, ErrUnknownCipher) {
		t.Errorf("expected ErrUnknownCipher, got %v", err)
	}
	if _, err := New(KindDoubleTransposition, "SECRET"); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey for missing row key, got %v", err)
	}
	if _, err := New(KindVigenere); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey for missing key, got %v", err)
	}
	if _, err := New(KindVigenere, "A", "B"); err == nil {
		t.Error("expected an error for surplus keys")
	}
	if _, err := New(KindPlayfair, "M4TRIX"); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("  Double_Transposition ")
	if err != nil {
		t.Fatalf("parse kind: %v", err)
	}
	if kind != KindDoubleTransposition {
		t.Errorf("unexpected kind %s", kind)
	}
	if kind, err := ParseKind("Cascade"); err != nil || kind != KindChain {
		t.Errorf("expected cascade to parse, got %q, %v", kind, err)
	}
	if _, err := New(KindChain, "KEY"); !errors.Is(err, ErrUnknownCipher) {
		t.Errorf("expected New to reject the cascade, got %v", err)
	}
	if _, err := ParseKind("enigma"); !errors.Is(err, ErrUnknownCipher) {
		t.Errorf("expected ErrUnknownCipher, got %v", err)
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 4 {
		t.Fatalf("expected 4 ciphers, got %d", len(kinds))
	}
	kinds[0].Keys = 99
	if Kinds()[0].Keys == 99 {
		t.Error("Kinds must return a copy")
	}
}

func TestChainRoundTrip(t *testing.T) {
	vigenere, _ := NewVigenere("KEY")
	transposition, _ := NewTransposition("SECRET")
	double, _ := NewDoubleTransposition("SECRET", "CRYPTO")

	chain, err := NewChain(vigenere, transposition, double)
	if err != nil {
		t.Fatalf("new chain: %v", err)
	}
	if chain.Kind() != KindChain {
		t.Errorf("unexpected kind %s", chain.Kind())
	}

	text := "Attack at dawn, hold the bridge"
	encoded, err := chain.Encode(text)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := chain.Decode(encoded)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded != text {
		t.Errorf("expected %q, got %q", text, decoded)
	}

	want := []Kind{KindVigenere, KindTransposition, KindDoubleTransposition}
	for i, k := range chain.Stages() {
		if k != want[i] {
			t.Errorf("stage %d: expected %s, got %s", i, want[i], k)
		}
	}
}

func TestChainMatchesManualComposition(t *testing.T) {
	vigenere, _ := NewVigenere("KEY")
	playfair, _ := NewPlayfair("CRYPTO")
	chain, _ := NewChain(vigenere, playfair)

	text := "Meet me at the usual place"
	step, _ := vigenere.Encode(text)
	want, _ := playfair.Encode(step)

	got, err := chain.Encode(text)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestChainPlayfairStage(t *testing.T) {
	vigenere, _ := NewVigenere("KEY")
	playfair, _ := NewPlayfair("CRYPTO")

	cascade, _ := NewChain(vigenere, playfair)
	if cascade.Reversible() {
		t.Error("expected a Playfair stage after Vigenère to be irreversible")
	}
	for _, text := range []string{"ATTACK AT DAWN", "MEET ME AT THE USUAL PLACE"} {
		encoded, err := cascade.Encode(text)
		if err != nil {
			t.Fatalf("encode %q: %v", text, err)
		}
		if _, err := cascade.Decode(encoded); !errors.Is(err, ErrIrreversibleChain) {
			t.Errorf("decode %q: expected ErrIrreversibleChain, got %v", text, err)
		}
	}

	first, _ := NewChain(playfair, vigenere)
	if !first.Reversible() {
		t.Fatal("expected a leading Playfair stage to decode")
	}
	encoded, err := first.Encode("HIDE THE GOLD")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := first.Decode(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != "HIDE THE GOLD" {
		t.Errorf("expected %q, got %q", "HIDE THE GOLD", decoded)
	}
}

func TestChainErrors(t *testing.T) {
	if _, err := NewChain(); !errors.Is(err, ErrEmptyChain) {
		t.Errorf("expected ErrEmptyChain, got %v", err)
	}
	if _, err := NewChain(nil); err == nil {
		t.Error("expected an error for a nil stage")
	}

	transposition, _ := NewTransposition("SECRET")
	chain, _ := NewChain(transposition)
	if _, err := chain.Decode("ABC"); !errors.Is(err, ErrMalformedCiphertext) {
		t.Errorf("expected ErrMalformedCiphertext, got %v", err)
	}
}
