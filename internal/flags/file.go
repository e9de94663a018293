package flags

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Pattern is one line of an input file.
type Pattern struct {
	Line  int
	Text  string
	Flags *VanityFlags // nil when the line has no flags
	Err   error        // set when the line's flags could not be parsed
}

// ReadFile reads patterns from an input file, one per line. Each line holds
// the pattern followed by optional flags, for example:
//
//	Emiv -p -c
//	TALA -a
//	3169
//	test -o test-output.txt
//
// Blank lines and lines starting with '#' are skipped. A line with bad flags
// is returned with Err set so the other patterns can still run.
func ReadFile(path string) ([]Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	patterns, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return patterns, nil
}

// Read reads patterns from r in the ReadFile format.
func Read(r io.Reader) ([]Pattern, error) {
	var patterns []Pattern
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		text, flags, err := ParseLine(line)
		patterns = append(patterns, Pattern{Line: n, Text: text, Flags: flags, Err: err})
	}
	return patterns, scanner.Err()
}

// ParseLine splits a line into its pattern and flags. The flags are nil when
// the line holds only a pattern.
func ParseLine(line string) (string, *VanityFlags, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, nil
	}
	pattern := fields[0]
	if len(fields) == 1 {
		return pattern, nil, nil
	}

	fs := pflag.NewFlagSet(pattern, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		f                                 VanityFlags
		prefix, suffix, anywhere, isRegex bool
		chain                             string
	)
	fs.BoolVarP(&prefix, "prefix", "p", false, "match at the start of the address")
	fs.BoolVarP(&suffix, "suffix", "s", false, "match at the end of the address")
	fs.BoolVarP(&anywhere, "anywhere", "a", false, "match anywhere in the address")
	fs.BoolVarP(&isRegex, "regex", "r", false, "treat the pattern as a regular expression")
	fs.BoolVarP(&f.CaseSensitive, "case-sensitive", "c", false, "match case-sensitively")
	fs.BoolVarP(&f.DisableFastMode, "disable-fast-mode", "d", false, "allow long patterns")
	fs.BoolVarP(&f.ForceFlags, "force-flags", "f", false, "let command line flags win")
	fs.StringVarP(&f.OutputFile, "output-file", "o", "", "append results to this .txt file")
	fs.StringVar(&chain, "chain", "", "bitcoin, ethereum or solana")

	if err := fs.Parse(fields[1:]); err != nil {
		return pattern, nil, fmt.Errorf("flags for %q: %w", pattern, err)
	}
	if fs.NArg() > 0 {
		return pattern, nil, fmt.Errorf("flags for %q: unexpected argument %q", pattern, fs.Arg(0))
	}

	f.Mode = SelectMode(prefix, suffix, anywhere, isRegex)
	if chain != "" {
		n, err := generator.ParseNetwork(chain)
		if err != nil {
			return pattern, nil, fmt.Errorf("flags for %q: %w", pattern, err)
		}
		f.Network = &n
	}
	return pattern, &f, nil
}
