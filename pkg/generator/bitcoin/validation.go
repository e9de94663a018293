package bitcoin

import (
	"strings"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// leadingChar is the first character of every P2PKH mainnet address.
const leadingChar = "1"

// Chain is the Bitcoin chain policy and key generator factory.
type Chain struct{}

var _ generator.Chain = Chain{}

func (Chain) Network() generator.Network { return generator.Bitcoin }

// NewKeyGenerator returns a generator for use by a single worker.
func (Chain) NewKeyGenerator() generator.KeyGenerator { return newKeyGenerator() }

// ValidateInput checks a literal pattern against the base58 alphabet and
// length ceilings. Bitcoin addresses can be matched either case-sensitively
// or not.
func (Chain) ValidateInput(pattern string, fastMode, _ bool) error {
	if err := generator.ValidateLength(pattern, fastMode, generator.Base58FastModeMax, generator.Base58Max); err != nil {
		return err
	}
	return generator.ValidateAlphabet(pattern, generator.IsBase58Char, generator.ErrInputNotBase58)
}

// ValidateRegex checks every literal character of a regex against base58.
func (Chain) ValidateRegex(pattern string) error {
	return generator.ValidateRegexChars(pattern, generator.IsBase58Char, generator.ErrRegexNotBase58)
}

// AdjustInput prepends the leading '1' to a prefix pattern.
func (Chain) AdjustInput(pattern string, mode generator.VanityMode) string {
	if mode == generator.Prefix {
		return leadingChar + pattern
	}
	return pattern
}

// AdjustRegex inserts the leading '1' after a start anchor, so "^E" becomes
// "^1E". Patterns already anchored on "^1" are left alone.
func (Chain) AdjustRegex(pattern string) string {
	if strings.HasPrefix(pattern, "^") && !strings.HasPrefix(pattern, "^"+leadingChar) {
		return "^" + leadingChar + pattern[1:]
	}
	return pattern
}
