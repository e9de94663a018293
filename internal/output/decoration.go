// Package output formats found key pairs and appends them to result files.
package output

import (
	"fmt"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Decoration returns the phrases describing a search: how the address
// relates to the pattern and whether case matters.
func Decoration(mode generator.VanityMode, caseSensitive bool) (string, string) {
	var how string
	switch mode {
	case generator.Suffix:
		how = "has the suffix"
	case generator.Anywhere:
		how = "has the string"
	case generator.Regex:
		how = "satisfies the given regex"
	default:
		how = "has the prefix"
	}

	cs := "(case sensitivity disabled)"
	if caseSensitive {
		cs = "(case sensitive)"
	}
	return how, cs
}

// Header is the first line of a result record.
func Header(pattern string, mode generator.VanityMode, caseSensitive bool) string {
	how, cs := Decoration(mode, caseSensitive)
	return fmt.Sprintf("Key pair which their address %s: '%s' %s\n", how, pattern, cs)
}
