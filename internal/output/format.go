package output

import (
	"fmt"
	"strings"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/bitcoin"
	"github.com/Amr-9/VanityHunter/pkg/generator/ethereum"
	"github.com/Amr-9/VanityHunter/pkg/generator/solana"
)

// FormatKeyPair renders kp as labelled lines followed by a blank line.
func FormatKeyPair(kp generator.KeyPair) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}

	switch k := kp.(type) {
	case *bitcoin.KeyPair:
		line("private_key (hex)", k.PrivateKeyHex())
		line("private_key (wif)", k.WIF())
		line("public_key (compressed)", k.PublicKeyString())
		line("address (compressed)", k.Address())
	case *ethereum.KeyPair:
		line("private_key (hex)", k.PrivateKeyString())
		line("public_key (uncompressed)", k.PublicKeyString())
		line("address", k.DisplayAddress())
		line("address (checksum)", k.ChecksumAddress())
	case *solana.KeyPair:
		line("private_key (hex seed)", k.PrivateKeyHex())
		line("private_key (base58)", k.PrivateKeyString())
		line("public_key (base58)", k.PublicKeyString())
		line("address", k.Address())
	default:
		line("private_key", kp.PrivateKeyString())
		line("public_key", kp.PublicKeyString())
		line("address", kp.DisplayAddress())
	}
	b.WriteByte('\n')
	return b.String()
}

// FormatResult renders a full record: header, blank line, key pair.
func FormatResult(pattern string, mode generator.VanityMode, caseSensitive bool, kp generator.KeyPair) string {
	return Header(pattern, mode, caseSensitive) + "\n" + FormatKeyPair(kp)
}

// FormatError renders a record for a pattern that was not searched.
func FormatError(pattern string, mode generator.VanityMode, caseSensitive bool, err error) string {
	return Header(pattern, mode, caseSensitive) + "\n" + fmt.Sprintf("Skipping because of error: %v\n\n", err)
}
