package ui

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/ethereum"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2*time.Minute + 5*time.Second, "2m 5s"},
		{3*time.Hour + 7*time.Minute, "3h 7m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatHashRate(t *testing.T) {
	if got := FormatHashRate(2500000); got != "2.5M/s" {
		t.Errorf("got %q", got)
	}
	if got := FormatHashRate(1500); got != "1.5K/s" {
		t.Errorf("got %q", got)
	}
	if got := FormatHashRate(12); got != "12/s" {
		t.Errorf("got %q", got)
	}
}

func TestEstimateDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		network generator.Network
		pattern string
		mode    generator.VanityMode
		cs      bool
		want    uint64
	}{
		{"eth prefix", generator.Ethereum, "dead", generator.Prefix, false, 65536},
		{"btc digits", generator.Bitcoin, "11", generator.Prefix, false, 58 * 58},
		{"btc case sensitive", generator.Bitcoin, "ab", generator.Suffix, true, 58 * 58},
		{"btc folded", generator.Bitcoin, "ab", generator.Suffix, false, 29 * 29},
		{"btc no fold for o", generator.Bitcoin, "o", generator.Prefix, false, 58},
		{"regex", generator.Solana, "^abc", generator.Regex, false, 0},
		{"empty", generator.Solana, "", generator.Prefix, false, 0},
		{"eth anywhere", generator.Ethereum, "dead", generator.Anywhere, false, 65536 / 37},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDifficulty(tt.network, tt.pattern, tt.mode, tt.cs); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}

	if got := EstimateDifficulty(generator.Solana, strings.Repeat("1", 20), generator.Prefix, true); got != math.MaxUint64 {
		t.Errorf("long pattern should saturate, got %d", got)
	}
}

func TestProbability(t *testing.T) {
	if Probability(0, 100) != 0 {
		t.Error("no attempts should give 0")
	}
	if p := Probability(69, 100); p < 0.49 || p > 0.51 {
		t.Errorf("Probability(69, 100) = %f, want about 0.5", p)
	}
	if Probability(10, 0) != 0 {
		t.Error("unknown difficulty should give 0")
	}
}

func TestSearchLine(t *testing.T) {
	want := "Searching key pair for Ethereum chain where the address has the suffix: 'beef' (case sensitivity disabled) with 8 threads."
	if got := SearchLine(generator.Ethereum, "beef", generator.Suffix, false, 8); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestPrintSuccess(t *testing.T) {
	var buf bytes.Buffer
	old := Out
	Out = &buf
	defer func() { Out = old }()

	secret := make([]byte, 32)
	secret[31] = 1
	kp, err := ethereum.FromPrivateKey(secret)
	if err != nil {
		t.Fatal(err)
	}
	PrintSuccess(kp, generator.Stats{Attempts: 1234, HashRate: 10, ElapsedSecs: 2})
	PrintError(errors.New("boom"))

	got := buf.String()
	for _, want := range []string{"0x7e5f4552091a69125d5dfcb7b8c2659029395bdf", "1,234 keys", "boom"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
