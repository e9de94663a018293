// Package flags holds the per-pattern search options and merges options
// given on the command line with those given next to a pattern in an input
// file.
package flags

import (
	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// DefaultThreads is the worker count used when none is given.
const DefaultThreads = 16

// VanityFlags are the options that control one search. Mode and Network are
// nil when not set, so file values can fall back to command line values.
type VanityFlags struct {
	Threads         int
	OutputFile      string
	ForceFlags      bool // command line flags override file flags
	CaseSensitive   bool
	DisableFastMode bool
	Mode            *generator.VanityMode
	Network         *generator.Network
}

// Unify combines command line flags (the receiver) with the flags found on a
// pattern's line in an input file. A nil file means the line had no flags,
// and the command line flags apply unchanged.
//
// With ForceFlags set the command line wins outright. Otherwise case
// sensitivity and fast mode come from the file, while mode, network and
// output file come from the file when it sets them.
func (f VanityFlags) Unify(file *VanityFlags) VanityFlags {
	if f.ForceFlags || file == nil {
		return f
	}

	unified := VanityFlags{
		Threads:         f.Threads,
		OutputFile:      file.OutputFile,
		ForceFlags:      f.ForceFlags,
		CaseSensitive:   file.CaseSensitive,
		DisableFastMode: file.DisableFastMode,
		Mode:            file.Mode,
		Network:         file.Network,
	}
	if unified.OutputFile == "" {
		unified.OutputFile = f.OutputFile
	}
	if unified.Mode == nil {
		unified.Mode = f.Mode
	}
	if unified.Network == nil {
		unified.Network = f.Network
	}
	return unified
}

// VanityMode returns the selected mode, Prefix when unset.
func (f VanityFlags) VanityMode() generator.VanityMode {
	if f.Mode == nil {
		return generator.Prefix
	}
	return *f.Mode
}

// Chain returns the selected network, Bitcoin when unset.
func (f VanityFlags) Chain() generator.Network {
	if f.Network == nil {
		return generator.Bitcoin
	}
	return *f.Network
}

// Config converts the flags into a search configuration for pattern.
func (f VanityFlags) Config(pattern string) *generator.Config {
	return &generator.Config{
		Network:       f.Chain(),
		Mode:          f.VanityMode(),
		Pattern:       pattern,
		Workers:       f.Threads,
		CaseSensitive: f.CaseSensitive,
		FastMode:      !f.DisableFastMode,
	}
}

// SelectMode picks the mode from mutually exclusive switches. When several
// are set the order of precedence is regex, anywhere, suffix, prefix.
// It returns nil when none is set.
func SelectMode(prefix, suffix, anywhere, regex bool) *generator.VanityMode {
	var m generator.VanityMode
	switch {
	case regex:
		m = generator.Regex
	case anywhere:
		m = generator.Anywhere
	case suffix:
		m = generator.Suffix
	case prefix:
		m = generator.Prefix
	default:
		return nil
	}
	return &m
}
