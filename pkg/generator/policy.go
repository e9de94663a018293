package generator

import (
	"strings"
	"unicode"
)

// Pattern length ceilings. The fast-mode ceiling keeps the expected search
// time short; the absolute ceiling is the longest pattern worth searching.
const (
	Base58FastModeMax = 5
	Base58Max         = 25
	Base16FastModeMax = 16
	Base16Max         = 40
)

// RegexMetaChars are the only non-alphanumeric characters a regex pattern
// may contain.
const RegexMetaChars = "^$.*+?()[]{}|-"

// Base58Alphabet excludes 0, O, I and l.
const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// IsBase58Char reports whether c belongs to the base58 alphabet.
func IsBase58Char(c rune) bool {
	return c < 128 && strings.IndexByte(Base58Alphabet, byte(c)) >= 0
}

// IsBase16Char reports whether c is a hex digit in either case.
func IsBase16Char(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ValidateLength applies the fast-mode ceiling and then the absolute one.
func ValidateLength(pattern string, fastMode bool, fastMax, max int) error {
	n := len(pattern)
	if fastMode && n > fastMax {
		return ErrFastModeEnabled
	}
	if n > max {
		return ErrRequestTooLong
	}
	return nil
}

// ValidateAlphabet returns an *InvalidCharError wrapping notInAlphabet for
// the first character rejected by valid.
func ValidateAlphabet(pattern string, valid func(rune) bool, notInAlphabet error) error {
	for i, c := range pattern {
		if !valid(c) {
			return &InvalidCharError{Char: c, Pos: i, Err: notInAlphabet}
		}
	}
	return nil
}

// ValidateRegexChars walks a regex pattern one character at a time.
// Metacharacters from RegexMetaChars pass, letters and digits must satisfy
// valid (else notInAlphabet), and anything else is ErrInvalidRegex.
func ValidateRegexChars(pattern string, valid func(rune) bool, notInAlphabet error) error {
	for i, c := range pattern {
		switch {
		case strings.ContainsRune(RegexMetaChars, c):
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			if !valid(c) {
				return &InvalidCharError{Char: c, Pos: i, Err: notInAlphabet}
			}
		default:
			return &InvalidCharError{Char: c, Pos: i, Err: ErrInvalidRegex}
		}
	}
	return nil
}
