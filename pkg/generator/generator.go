// Package generator defines the types shared by the vanity search engine and
// the per-chain key generators (Bitcoin, Ethereum, Solana).
package generator

import (
	"fmt"
	"strings"
)

// BatchSize is the number of candidate keypairs a worker derives per batch.
const BatchSize = 64

// Network represents the blockchain network for address generation.
type Network int

const (
	Bitcoin  Network = iota // Bitcoin (secp256k1, SHA256+RIPEMD160, Base58Check)
	Ethereum                // Ethereum (secp256k1, Keccak-256, Hex)
	Solana                  // Solana (Ed25519, Base58)
)

// String returns the network name.
func (n Network) String() string {
	switch n {
	case Bitcoin:
		return "Bitcoin"
	case Ethereum:
		return "Ethereum"
	case Solana:
		return "Solana"
	default:
		return "Unknown"
	}
}

// ParseNetwork parses a chain name such as "bitcoin", "eth" or "SOL".
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bitcoin", "btc":
		return Bitcoin, nil
	case "ethereum", "eth":
		return Ethereum, nil
	case "solana", "sol":
		return Solana, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
}

// VanityMode selects how the pattern is compared with an address.
type VanityMode int

const (
	Prefix VanityMode = iota
	Suffix
	Anywhere
	Regex
)

func (m VanityMode) String() string {
	switch m {
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	case Anywhere:
		return "anywhere"
	case Regex:
		return "regex"
	default:
		return "unknown"
	}
}

// ParseVanityMode parses "prefix", "suffix", "anywhere" or "regex".
func ParseVanityMode(s string) (VanityMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefix":
		return Prefix, nil
	case "suffix":
		return Suffix, nil
	case "anywhere":
		return Anywhere, nil
	case "regex":
		return Regex, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// KeyPair is a generated private key together with its derived address.
// Implementations are immutable and safe to pass between goroutines.
type KeyPair interface {
	Network() Network

	// Address is the address exactly as the matchers see it.
	// For Ethereum this is the lowercase hex without the 0x prefix.
	Address() string

	// AddressBytes returns Address as bytes. Callers must not modify it.
	AddressBytes() []byte

	// DisplayAddress is the address as shown to users.
	DisplayAddress() string

	PrivateKeyHex() string

	// PrivateKeyString is the chain-native private key text
	// (WIF for Bitcoin, 0x-hex for Ethereum, base58 for Solana).
	PrivateKeyString() string

	PublicKeyString() string
}

// KeyGenerator produces random keypairs for one chain. A KeyGenerator owns
// its entropy buffer and hashing state, so it must not be shared between
// goroutines; each search worker creates its own.
type KeyGenerator interface {
	// Generate returns one random keypair.
	Generate() KeyPair

	// FillBatch overwrites every element of batch with a fresh keypair.
	FillBatch(batch []KeyPair)
}

// Chain is the per-network capability set used by the search engine:
// key generation plus pattern validation and adjustment.
type Chain interface {
	Network() Network
	NewKeyGenerator() KeyGenerator

	ValidateInput(pattern string, fastMode, caseSensitive bool) error
	ValidateRegex(pattern string) error

	// AdjustInput accounts for fixed address framing of a literal pattern.
	AdjustInput(pattern string, mode VanityMode) string
	// AdjustRegex does the same for a regex pattern.
	AdjustRegex(pattern string) string
}

// Config holds the configuration for one vanity search.
type Config struct {
	Network       Network    // Target network
	Mode          VanityMode // Prefix, Suffix, Anywhere or Regex
	Pattern       string     // Literal pattern or regular expression
	Workers       int        // Number of concurrent workers (0 = engine default)
	CaseSensitive bool       // Literal modes only
	FastMode      bool       // Enforce the short pattern ceiling
}

// Stats holds real-time performance statistics.
type Stats struct {
	Attempts    uint64  // Total number of addresses generated
	HashRate    float64 // Current hashes per second
	ElapsedSecs float64 // Time elapsed since start
}

// Generator defines the contract for search backends.
type Generator interface {
	// Generate validates the configured pattern and blocks until a
	// matching keypair is found.
	Generate(config *Config) (KeyPair, error)

	// Stats returns the current performance statistics.
	// This method is safe to call concurrently from any goroutine.
	Stats() Stats

	// Name returns the implementation name (e.g., "CPU").
	Name() string
}
