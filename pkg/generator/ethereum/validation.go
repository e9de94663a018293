package ethereum

import (
	"strings"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Chain is the Ethereum chain policy and key generator factory.
type Chain struct{}

var _ generator.Chain = Chain{}

func (Chain) Network() generator.Network { return generator.Ethereum }

// NewKeyGenerator returns a generator for use by a single worker.
func (Chain) NewKeyGenerator() generator.KeyGenerator { return newKeyGenerator() }

// ValidateInput rejects case-sensitive requests, then applies the base16
// length ceilings and alphabet. A literal "0x" is not accepted: addresses are
// matched without it.
func (Chain) ValidateInput(pattern string, fastMode, caseSensitive bool) error {
	if caseSensitive {
		return generator.ErrEthereumCaseSensitive
	}
	if err := generator.ValidateLength(pattern, fastMode, generator.Base16FastModeMax, generator.Base16Max); err != nil {
		return err
	}
	return generator.ValidateAlphabet(pattern, generator.IsBase16Char, generator.ErrInputNotBase16)
}

// ValidateRegex checks every literal character of a regex against base16.
func (Chain) ValidateRegex(pattern string) error {
	return generator.ValidateRegexChars(pattern, generator.IsBase16Char, generator.ErrRegexNotBase16)
}

// AdjustInput returns the pattern unchanged: Ethereum addresses have no
// fixed leading character once 0x is dropped.
func (Chain) AdjustInput(pattern string, _ generator.VanityMode) string {
	return pattern
}

// AdjustRegex strips a literal 0x after the start anchor and lowercases the
// rest, since matched addresses are lowercase hex. Lowercasing cannot change
// the meaning of a valid pattern: its only letters are hex digits.
func (Chain) AdjustRegex(pattern string) string {
	if rest, ok := strings.CutPrefix(pattern, "^0x"); ok {
		pattern = "^" + rest
	}
	return strings.ToLower(pattern)
}
