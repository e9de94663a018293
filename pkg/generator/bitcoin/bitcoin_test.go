package bitcoin

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// referenceAddress derives the P2PKH address through btcutil alone.
func referenceAddress(t *testing.T, wifStr string) string {
	t.Helper()
	wif, err := btcutil.DecodeWIF(wifStr)
	if err != nil {
		t.Fatalf("DecodeWIF(%q): %v", wifStr, err)
	}
	if !wif.CompressPubKey {
		t.Fatalf("WIF %q is not flagged compressed", wifStr)
	}
	pkh := btcutil.Hash160(wif.PrivKey.PubKey().SerializeCompressed())
	addr, err := btcutil.NewAddressPubKeyHash(pkh, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatal(err)
	}
	return addr.EncodeAddress()
}

func TestKnownVector(t *testing.T) {
	secret := mustDecodeHex(t, "0000000000000000000000000000000000000000000000000000000000000001")
	kp, err := FromPrivateKey(secret)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := kp.Address(), "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"; got != want {
		t.Errorf("Address() = %s, want %s", got, want)
	}
	if got, want := kp.WIF(), "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn"; got != want {
		t.Errorf("WIF() = %s, want %s", got, want)
	}
	if got, want := kp.PublicKeyString(), "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"; got != want {
		t.Errorf("PublicKeyString() = %s, want %s", got, want)
	}
	if got, want := kp.PrivateKeyHex(), strings.Repeat("0", 63)+"1"; got != want {
		t.Errorf("PrivateKeyHex() = %s, want %s", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	g := newKeyGenerator()
	batch := make([]generator.KeyPair, generator.BatchSize)
	g.FillBatch(batch)

	seen := make(map[string]bool)
	for _, candidate := range batch {
		kp := candidate.(*KeyPair)
		if !strings.HasPrefix(kp.Address(), "1") {
			t.Errorf("address %s does not start with 1", kp.Address())
		}
		if string(kp.AddressBytes()) != kp.Address() {
			t.Errorf("AddressBytes() = %q, Address() = %q", kp.AddressBytes(), kp.Address())
		}
		if got := referenceAddress(t, kp.WIF()); got != kp.Address() {
			t.Errorf("WIF %s derives %s, keypair has %s", kp.WIF(), got, kp.Address())
		}
		again, err := FromWIF(kp.PrivateKeyString())
		if err != nil {
			t.Fatal(err)
		}
		if again.Address() != kp.Address() {
			t.Errorf("FromWIF derives %s, want %s", again.Address(), kp.Address())
		}
		if seen[kp.Address()] {
			t.Errorf("duplicate address %s in batch", kp.Address())
		}
		seen[kp.Address()] = true
	}
}

func TestGenerateRandom(t *testing.T) {
	kp := GenerateRandom()
	if got := referenceAddress(t, kp.WIF()); got != kp.Address() {
		t.Errorf("derived %s, want %s", got, kp.Address())
	}
	if kp.Network() != generator.Bitcoin {
		t.Errorf("Network() = %v", kp.Network())
	}
}

func TestFromPrivateKeyRejectsOutOfRange(t *testing.T) {
	for _, s := range []string{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
		"01",
	} {
		if _, err := FromPrivateKey(mustDecodeHex(t, s)); !errors.Is(err, ErrInvalidPrivateKey) {
			t.Errorf("FromPrivateKey(%s) = %v, want ErrInvalidPrivateKey", s, err)
		}
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		pattern  string
		fastMode bool
		want     error
	}{
		{"tst", true, nil},
		{"", true, nil},
		{"Emiv", true, nil},
		{"abcde", true, nil},
		{"abcdef", true, generator.ErrFastModeEnabled},
		{"abcdef", false, nil},
		{strings.Repeat("a", 25), false, nil},
		{strings.Repeat("a", 26), false, generator.ErrRequestTooLong},
		{"tst0", true, generator.ErrInputNotBase58},
		{"tstI", true, generator.ErrInputNotBase58},
		{"tstO", true, generator.ErrInputNotBase58},
		{"tstl", true, generator.ErrInputNotBase58},
	}
	for _, tt := range tests {
		for _, cs := range []bool{true, false} {
			err := Chain{}.ValidateInput(tt.pattern, tt.fastMode, cs)
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateInput(%q, fast=%v, cs=%v) = %v, want %v", tt.pattern, tt.fastMode, cs, err, tt.want)
			}
		}
	}
}

func TestValidateRegex(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"^E.*T$", nil},
		{"^1[a-z]{3}", nil},
		{"^0", generator.ErrRegexNotBase58},
		{"^l+$", generator.ErrRegexNotBase58},
		{"^a\\w", generator.ErrInvalidRegex},
	}
	for _, tt := range tests {
		if err := (Chain{}).ValidateRegex(tt.pattern); !errors.Is(err, tt.want) {
			t.Errorf("ValidateRegex(%q) = %v, want %v", tt.pattern, err, tt.want)
		}
	}
}

func TestAdjust(t *testing.T) {
	c := Chain{}
	if got := c.AdjustInput("tst", generator.Prefix); got != "1tst" {
		t.Errorf("AdjustInput prefix = %q", got)
	}
	for _, m := range []generator.VanityMode{generator.Suffix, generator.Anywhere} {
		if got := c.AdjustInput("tst", m); got != "tst" {
			t.Errorf("AdjustInput(%v) = %q", m, got)
		}
	}

	regexes := map[string]string{
		"^E.*T$": "^1E.*T$",
		"^1abc":  "^1abc",
		"abc$":   "abc$",
		"^":      "^1",
	}
	for in, want := range regexes {
		if got := c.AdjustRegex(in); got != want {
			t.Errorf("AdjustRegex(%q) = %q, want %q", in, got, want)
		}
	}
}

func BenchmarkFillBatch(b *testing.B) {
	g := newKeyGenerator()
	batch := make([]generator.KeyPair, generator.BatchSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.FillBatch(batch)
	}
}
