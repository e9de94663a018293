package generator

import (
	"errors"
	"fmt"
)

// Validation errors. All of them are returned before any worker starts.
var (
	ErrFastModeEnabled       = errors.New("pattern is too long for fast mode, disable fast mode to search for it")
	ErrRequestTooLong        = errors.New("pattern is longer than any address of this chain can match")
	ErrInputNotBase58        = errors.New("pattern is not base58; do not use zero '0', uppercase i 'I', uppercase o 'O' or lowercase L 'l'")
	ErrInputNotBase16        = errors.New("pattern is not base16; use only 0-9 and a-f")
	ErrRegexNotBase58        = errors.New("regex literal is not base58; do not use zero '0', uppercase i 'I', uppercase o 'O' or lowercase L 'l'")
	ErrRegexNotBase16        = errors.New("regex literal is not base16; use only 0-9 and a-f")
	ErrInvalidRegex          = errors.New("invalid regex")
	ErrEthereumCaseSensitive = errors.New("case sensitive matching is not supported for ethereum addresses")

	ErrUnknownNetwork = errors.New("unknown network")
	ErrUnknownMode    = errors.New("unknown vanity mode")
)

// InvalidCharError reports the first offending character of a pattern.
// It unwraps to one of the sentinel errors above.
type InvalidCharError struct {
	Char rune
	Pos  int
	Err  error
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("%v (got %q at position %d)", e.Err, e.Char, e.Pos)
}

func (e *InvalidCharError) Unwrap() error {
	return e.Err
}
