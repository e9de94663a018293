package generator

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		fastMode bool
		want     error
	}{
		{"empty", 0, true, nil},
		{"at fast ceiling", Base58FastModeMax, true, nil},
		{"above fast ceiling", Base58FastModeMax + 1, true, ErrFastModeEnabled},
		{"above fast ceiling, fast off", Base58FastModeMax + 1, false, nil},
		{"at absolute ceiling", Base58Max, false, nil},
		{"above absolute ceiling", Base58Max + 1, false, ErrRequestTooLong},
		{"above absolute ceiling, fast on", Base58Max + 1, true, ErrFastModeEnabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLength(strings.Repeat("a", tt.n), tt.fastMode, Base58FastModeMax, Base58Max)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateLength(%d, %v) = %v, want %v", tt.n, tt.fastMode, err, tt.want)
			}
		})
	}
}

func TestIsBase58Char(t *testing.T) {
	for _, c := range Base58Alphabet {
		if !IsBase58Char(c) {
			t.Errorf("IsBase58Char(%q) = false", c)
		}
	}
	for _, c := range "0OIl-_ é" {
		if IsBase58Char(c) {
			t.Errorf("IsBase58Char(%q) = true", c)
		}
	}
	if len(Base58Alphabet) != 58 {
		t.Fatalf("alphabet has %d characters", len(Base58Alphabet))
	}
}

func TestValidateAlphabetReportsFirstBadChar(t *testing.T) {
	err := ValidateAlphabet("abc0l", IsBase58Char, ErrInputNotBase58)
	if !errors.Is(err, ErrInputNotBase58) {
		t.Fatalf("got %v, want ErrInputNotBase58", err)
	}
	var ice *InvalidCharError
	if !errors.As(err, &ice) {
		t.Fatalf("got %T, want *InvalidCharError", err)
	}
	if ice.Char != '0' || ice.Pos != 3 {
		t.Errorf("got char %q at %d, want '0' at 3", ice.Char, ice.Pos)
	}
}

func TestValidateRegexChars(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"^E.*T$", nil},
		{"^(ab|cd)[1-9]{2}x+?$", nil},
		{"^0", ErrRegexNotBase58},
		{"a\\d", ErrInvalidRegex},
		{"a b", ErrInvalidRegex},
		{"a,b", ErrInvalidRegex},
	}
	for _, tt := range tests {
		err := ValidateRegexChars(tt.pattern, IsBase58Char, ErrRegexNotBase58)
		if !errors.Is(err, tt.want) {
			t.Errorf("ValidateRegexChars(%q) = %v, want %v", tt.pattern, err, tt.want)
		}
	}
}

func TestParseNetwork(t *testing.T) {
	tests := map[string]Network{
		"bitcoin":  Bitcoin,
		"BTC":      Bitcoin,
		"Ethereum": Ethereum,
		"eth":      Ethereum,
		" solana ": Solana,
	}
	for in, want := range tests {
		got, err := ParseNetwork(in)
		if err != nil || got != want {
			t.Errorf("ParseNetwork(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseNetwork("dogecoin"); !errors.Is(err, ErrUnknownNetwork) {
		t.Errorf("ParseNetwork(dogecoin) = %v, want ErrUnknownNetwork", err)
	}
}

func TestParseVanityMode(t *testing.T) {
	for _, m := range []VanityMode{Prefix, Suffix, Anywhere, Regex} {
		got, err := ParseVanityMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseVanityMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseVanityMode("middle"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseVanityMode(middle) = %v, want ErrUnknownMode", err)
	}
}
