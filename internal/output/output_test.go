package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/bitcoin"
	"github.com/Amr-9/VanityHunter/pkg/generator/ethereum"
	"github.com/Amr-9/VanityHunter/pkg/generator/solana"
)

func keyOne() []byte {
	k := make([]byte, 32)
	k[31] = 1
	return k
}

func TestDecoration(t *testing.T) {
	tests := []struct {
		mode generator.VanityMode
		cs   bool
		how  string
		csd  string
	}{
		{generator.Prefix, true, "has the prefix", "(case sensitive)"},
		{generator.Suffix, false, "has the suffix", "(case sensitivity disabled)"},
		{generator.Anywhere, false, "has the string", "(case sensitivity disabled)"},
		{generator.Regex, true, "satisfies the given regex", "(case sensitive)"},
	}
	for _, tt := range tests {
		how, csd := Decoration(tt.mode, tt.cs)
		if how != tt.how || csd != tt.csd {
			t.Errorf("Decoration(%v, %v) = %q, %q", tt.mode, tt.cs, how, csd)
		}
	}

	want := "Key pair which their address has the prefix: 'Emiv' (case sensitive)\n"
	if got := Header("Emiv", generator.Prefix, true); got != want {
		t.Errorf("Header = %q, want %q", got, want)
	}
}

func TestFormatKeyPair(t *testing.T) {
	btc, err := bitcoin.FromPrivateKey(keyOne())
	if err != nil {
		t.Fatal(err)
	}
	eth, err := ethereum.FromPrivateKey(keyOne())
	if err != nil {
		t.Fatal(err)
	}
	sol, err := solana.FromSeed(keyOne())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		kp   generator.KeyPair
		want []string
	}{
		{"bitcoin", btc, []string{
			"private_key (wif): KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn\n",
			"public_key (compressed): 0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798\n",
			"address (compressed): 1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH\n",
		}},
		{"ethereum", eth, []string{
			"private_key (hex): 0x0000000000000000000000000000000000000000000000000000000000000001\n",
			"address: 0x7e5f4552091a69125d5dfcb7b8c2659029395bdf\n",
			"address (checksum): 0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf\n",
		}},
		{"solana", sol, []string{
			"private_key (hex seed): " + sol.PrivateKeyHex() + "\n",
			"private_key (base58): " + sol.PrivateKeyString() + "\n",
			"address: " + sol.Address() + "\n",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatKeyPair(tt.kp)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("missing %q in\n%s", w, got)
				}
			}
			if !strings.HasSuffix(got, "\n\n") {
				t.Error("record should end with a blank line")
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	got := FormatError("tala", generator.Anywhere, false, generator.ErrInputNotBase58)
	if !strings.HasPrefix(got, "Key pair which their address has the string: 'tala' (case sensitivity disabled)\n\n") {
		t.Errorf("bad header in %q", got)
	}
	if !strings.HasSuffix(got, "Skipping because of error: "+generator.ErrInputNotBase58.Error()+"\n\n") {
		t.Errorf("bad body in %q", got)
	}
}

func TestAppendToFile(t *testing.T) {
	dir := t.TempDir()

	if err := AppendToFile(filepath.Join(dir, "out.csv"), "x"); !errors.Is(err, ErrNotTextFile) {
		t.Fatalf("got %v, want ErrNotTextFile", err)
	}

	name := filepath.Join(dir, "out.txt")
	if err := AppendToFile(name, "first\n"); err != nil {
		t.Fatal(err)
	}
	if err := AppendToFile(name, "second\n"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("content = %q", data)
	}

	info, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 && os.PathSeparator == '/' {
		t.Errorf("permissions = %v, want owner only", perm)
	}
}
