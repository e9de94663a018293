package cpu

import (
	"fmt"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/bitcoin"
	"github.com/Amr-9/VanityHunter/pkg/generator/ethereum"
	"github.com/Amr-9/VanityHunter/pkg/generator/solana"
)

// ChainFor returns the chain implementation for a network.
func ChainFor(n generator.Network) (generator.Chain, error) {
	switch n {
	case generator.Bitcoin:
		return bitcoin.Chain{}, nil
	case generator.Ethereum:
		return ethereum.Chain{}, nil
	case generator.Solana:
		return solana.Chain{}, nil
	}
	return nil, fmt.Errorf("%w: %v", generator.ErrUnknownNetwork, n)
}

// Generate validates and adjusts a literal pattern for chain and searches for
// it with threads workers.
func Generate(chain generator.Chain, pattern string, threads int, caseSensitive, fastMode bool, mode generator.VanityMode) (generator.KeyPair, error) {
	return NewCPUGenerator(threads).GenerateLiteral(chain, pattern, caseSensitive, fastMode, mode)
}

// GenerateRegex validates and adjusts a regex for chain and searches for it
// with threads workers.
func GenerateRegex(chain generator.Chain, pattern string, threads int) (generator.KeyPair, error) {
	return NewCPUGenerator(threads).GenerateRegex(chain, pattern)
}
