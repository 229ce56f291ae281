package analysis

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"classical-cipher-backend/crypto"
)

const taleOfTwoCities = "It was the best of times, it was the worst of times, it was the age of wisdom, " +
	"it was the age of foolishness, it was the epoch of belief, it was the epoch of incredulity, " +
	"it was the season of light, it was the season of darkness, it was the spring of hope, " +
	"it was the winter of despair, we had everything before us, we had nothing before us, " +
	"we were all going direct to heaven, we were all going direct the other way."

func encrypt(t *testing.T, text, key string) string {
	t.Helper()
	v, err := crypto.NewVigenere(key)
	if err != nil {
		t.Fatalf("new vigenere: %v", err)
	}
	out, err := v.Encode(text)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return out
}

func TestRepeats(t *testing.T) {
	repeats := Repeats("ABCxyzABCqABC")
	if len(repeats) != 1 {
		t.Fatalf("expected 1 repeat, got %d: %+v", len(repeats), repeats)
	}
	if repeats[0].Trigram != "ABC" {
		t.Errorf("unexpected trigram %q", repeats[0].Trigram)
	}
	if !reflect.DeepEqual(repeats[0].Positions, []int{0, 6, 10}) {
		t.Errorf("unexpected positions %v", repeats[0].Positions)
	}
	if !reflect.DeepEqual(repeats[0].Distances(), []int{6, 4}) {
		t.Errorf("unexpected distances %v", repeats[0].Distances())
	}
}

func TestKasiski(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []int
	}{
		{"single distance", "ABCxyzABC", []int{2, 3}},
		{"prime distance has no divisors", "ABCxyABC", []int{}},
		{"ties keep insertion order", "ABCdefghiABCXYZqXYZ", []int{3, 2}},
		{"no repeats", "ABCDEFGHIJ", []int{}},
		{"too short", "AB", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Kasiski(tt.text)
			if len(got) != len(tt.expected) || (len(got) > 0 && !reflect.DeepEqual(got, tt.expected)) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestKasiskiPeriodicText(t *testing.T) {
	for _, period := range []int{4, 6, 9} {
		pattern := "ABCDEFGHIJ"[:period]
		candidates := Kasiski(strings.Repeat(pattern, 12))
		if len(candidates) == 0 {
			t.Fatalf("period %d: no candidates", period)
		}
		if period%candidates[0] != 0 {
			t.Errorf("period %d: top candidate %d does not divide it", period, candidates[0])
		}
	}
}

func TestKasiskiFindsVigenereKeyLength(t *testing.T) {
	tests := []struct {
		key string
		top int
	}{
		{"LEMON", 5},
		{"KEY", 3},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			letters := crypto.LettersOnly(encrypt(t, taleOfTwoCities, tt.key))
			candidates := Kasiski(letters)
			if len(candidates) == 0 || candidates[0] != tt.top {
				t.Errorf("expected top candidate %d, got %v", tt.top, candidates)
			}
		})
	}
}

func TestDivisorTallyCounts(t *testing.T) {
	tally := DivisorTally("ABCxyzABCxyzABC")
	counts := map[int]int{}
	for _, d := range tally {
		counts[d.Length] = d.Count
	}
	// ABC, BCx, Cxy, xyz, yzA, zAB each repeat at distance 6
	if counts[2] != counts[3] || counts[2] == 0 {
		t.Errorf("expected equal non-zero counts for 2 and 3, got %v", counts)
	}
	if _, ok := counts[6]; ok {
		t.Error("a distance must not count itself as a divisor")
	}
}

func TestIndexOfCoincidence(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
	}{
		{"AABB", 1.0 / 3},
		{"AAAA", 1},
		{"ABCD", 0},
		{"AAABCDEFGHIJK", RandomIC},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ic, err := IndexOfCoincidence(tt.text)
			if err != nil {
				t.Fatalf("index of coincidence: %v", err)
			}
			if math.Abs(ic-tt.expected) > 1e-12 {
				t.Errorf("expected %f, got %f", tt.expected, ic)
			}
		})
	}
}

func TestIndexOfCoincidenceTooShort(t *testing.T) {
	for _, text := range []string{"", "A"} {
		if _, err := IndexOfCoincidence(text); !errors.Is(err, ErrDegenerateStatistics) {
			t.Errorf("%q: expected ErrDegenerateStatistics, got %v", text, err)
		}
	}
}

func TestEstimateKeyLength(t *testing.T) {
	tests := []struct {
		ic       float64
		expected int
	}{
		{EnglishIC, 1},
		{0.0534, 2},
		{0.0, -1},
		{1.0, 0},
	}

	for _, tt := range tests {
		got, err := EstimateKeyLength(tt.ic)
		if err != nil {
			t.Fatalf("ic %f: %v", tt.ic, err)
		}
		if got != tt.expected {
			t.Errorf("ic %f: expected %d, got %d", tt.ic, tt.expected, got)
		}
	}

	if _, err := EstimateKeyLength(RandomIC); !errors.Is(err, ErrDegenerateStatistics) {
		t.Errorf("expected ErrDegenerateStatistics, got %v", err)
	}
}

func TestFriedman(t *testing.T) {
	if _, err := Friedman("AAABCDEFGHIJK"); !errors.Is(err, ErrDegenerateStatistics) {
		t.Errorf("expected ErrDegenerateStatistics, got %v", err)
	}

	plain := crypto.LettersOnly(taleOfTwoCities)
	estimate, err := Friedman(plain)
	if err != nil {
		t.Fatalf("friedman: %v", err)
	}
	if estimate != 1 {
		t.Errorf("expected English plaintext to estimate 1, got %d", estimate)
	}
}

func TestSplitByKeyLength(t *testing.T) {
	got := SplitByKeyLength("ABCDEFGH", 3)
	if !reflect.DeepEqual(got, []string{"ADG", "BEH", "CF"}) {
		t.Errorf("unexpected columns %q", got)
	}
}

func TestMostFrequent(t *testing.T) {
	tests := []struct {
		text     string
		expected rune
		ok       bool
	}{
		{"ABBC", 'B', true},
		{"ABAB", 'A', true},
		{"CBAABC", 'C', true},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := MostFrequent(tt.text)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("%q: expected %c/%v, got %c/%v", tt.text, tt.expected, tt.ok, got, ok)
		}
	}
}

func TestLetterFrequencies(t *testing.T) {
	counts := LetterFrequencies("Aa b!")
	if counts[0] != 2 || counts[1] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
}

func TestRecoverKey(t *testing.T) {
	tests := []struct {
		name       string
		ciphertext string
		keyLength  int
		expected   string
	}{
		{"plain E columns", "EEEE", 2, "AA"},
		{"shifted", "IHIH", 2, "ED"},
		{"lowercase", "ihih", 2, "ED"},
		{"wraps", "DD", 1, "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := RecoverKey(tt.ciphertext, tt.keyLength)
			if err != nil {
				t.Fatalf("recover key: %v", err)
			}
			if key != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, key)
			}
		})
	}
}

func TestRecoverKeyErrors(t *testing.T) {
	if _, err := RecoverKey("ABC", 0); !errors.Is(err, ErrInvalidKeyLength) {
		t.Errorf("expected ErrInvalidKeyLength, got %v", err)
	}
	if _, err := RecoverKey("AB", 3); !errors.Is(err, ErrDegenerateStatistics) {
		t.Errorf("expected ErrDegenerateStatistics, got %v", err)
	}
}

func TestBreakRecoversKey(t *testing.T) {
	ciphertext := encrypt(t, taleOfTwoCities, "KEY")

	result, err := Break(ciphertext)
	if err != nil {
		t.Fatalf("break: %v", err)
	}
	if result.Method != MethodKasiski {
		t.Errorf("expected kasiski, got %s", result.Method)
	}
	if result.KeyLength != 3 {
		t.Errorf("expected key length 3, got %d", result.KeyLength)
	}
	if result.Key != "KEY" {
		t.Errorf("expected key KEY, got %q", result.Key)
	}
	if result.Plaintext != taleOfTwoCities {
		t.Errorf("plaintext mismatch:\n%s", result.Plaintext)
	}
	if result.FriedmanEstimate == nil {
		t.Error("expected a friedman estimate")
	}
}

func TestBreakFallsBackToFriedman(t *testing.T) {
	result, err := Break("abcdefghijklmnopqrstuvwxyz")
	if err != nil {
		t.Fatalf("break: %v", err)
	}
	if result.Method != MethodFriedman {
		t.Errorf("expected friedman, got %s", result.Method)
	}
	if result.FriedmanEstimate == nil || *result.FriedmanEstimate != -1 {
		t.Errorf("expected estimate -1, got %v", result.FriedmanEstimate)
	}
	if result.KeyLength != 1 {
		t.Errorf("expected key length clamped to 1, got %d", result.KeyLength)
	}
	if result.Key != "W" {
		t.Errorf("expected key W, got %q", result.Key)
	}
}

func TestBreakDegenerate(t *testing.T) {
	if _, err := Break("A"); !errors.Is(err, ErrDegenerateStatistics) {
		t.Errorf("expected ErrDegenerateStatistics, got %v", err)
	}
}
