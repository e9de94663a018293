package solana

import (
	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Chain is the Solana chain policy and key generator factory.
// Solana addresses are base58 with no fixed first character, so patterns
// are never adjusted.
type Chain struct{}

var _ generator.Chain = Chain{}

func (Chain) Network() generator.Network { return generator.Solana }

// NewKeyGenerator returns a generator for use by a single worker.
func (Chain) NewKeyGenerator() generator.KeyGenerator { return newKeyGenerator() }

func (Chain) ValidateInput(pattern string, fastMode, _ bool) error {
	if err := generator.ValidateLength(pattern, fastMode, generator.Base58FastModeMax, generator.Base58Max); err != nil {
		return err
	}
	return generator.ValidateAlphabet(pattern, generator.IsBase58Char, generator.ErrInputNotBase58)
}

func (Chain) ValidateRegex(pattern string) error {
	return generator.ValidateRegexChars(pattern, generator.IsBase58Char, generator.ErrRegexNotBase58)
}

func (Chain) AdjustInput(pattern string, _ generator.VanityMode) string { return pattern }

func (Chain) AdjustRegex(pattern string) string { return pattern }
