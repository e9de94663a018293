package cpu

import (
	"fmt"
	"regexp"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/match"
)

// CPUGenerator implements the Generator interface using CPU-based goroutines.
// It supports Bitcoin, Ethereum and Solana through generator.Chain.
type CPUGenerator struct {
	attempts  atomic.Uint64 // Total candidates generated in the current search
	startTime atomic.Int64  // Unix nanoseconds when the current search started
	workers   int           // Number of concurrent workers
	logger    *zap.Logger
}

// Option configures a CPUGenerator.
type Option func(*CPUGenerator)

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(g *CPUGenerator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewCPUGenerator creates a new CPU-based generator.
// If workers is 0, it defaults to the number of CPU cores.
func NewCPUGenerator(workers int, opts ...Option) *CPUGenerator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g := &CPUGenerator{
		workers: workers,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Workers returns the default number of workers per search.
func (g *CPUGenerator) Workers() int {
	return g.workers
}

// Stats returns the current performance statistics.
func (g *CPUGenerator) Stats() generator.Stats {
	start := g.startTime.Load()
	if start == 0 {
		return generator.Stats{}
	}
	attempts := g.attempts.Load()
	elapsed := time.Since(time.Unix(0, start)).Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return generator.Stats{
		Attempts:    attempts,
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}

// Generate runs the search described by config.
func (g *CPUGenerator) Generate(config *generator.Config) (generator.KeyPair, error) {
	chain, err := ChainFor(config.Network)
	if err != nil {
		return nil, err
	}

	workers := g.workers
	if config.Workers > 0 {
		workers = config.Workers
	}

	if config.Mode == generator.Regex {
		return g.generateRegex(chain, config.Pattern, workers)
	}
	return g.generateLiteral(chain, config.Pattern, workers, config.CaseSensitive, config.FastMode, config.Mode)
}

// GenerateLiteral validates and adjusts a Prefix, Suffix or Anywhere pattern
// for chain and blocks until a matching keypair is found. An empty pattern
// returns a single random keypair. Regex mode is forwarded to GenerateRegex.
func (g *CPUGenerator) GenerateLiteral(chain generator.Chain, pattern string, caseSensitive, fastMode bool, mode generator.VanityMode) (generator.KeyPair, error) {
	if mode == generator.Regex {
		return g.generateRegex(chain, pattern, g.workers)
	}
	return g.generateLiteral(chain, pattern, g.workers, caseSensitive, fastMode, mode)
}

// GenerateRegex validates and adjusts a regex pattern for chain and blocks
// until an address matching it is found. An empty pattern returns a single
// random keypair.
func (g *CPUGenerator) GenerateRegex(chain generator.Chain, pattern string) (generator.KeyPair, error) {
	return g.generateRegex(chain, pattern, g.workers)
}

func (g *CPUGenerator) generateLiteral(chain generator.Chain, pattern string, workers int, caseSensitive, fastMode bool, mode generator.VanityMode) (generator.KeyPair, error) {
	if err := chain.ValidateInput(pattern, fastMode, caseSensitive); err != nil {
		return nil, err
	}
	if pattern == "" {
		return chain.NewKeyGenerator().Generate(), nil
	}

	adjusted := chain.AdjustInput(pattern, mode)
	matcher := match.NewMatcher(adjusted, mode, caseSensitive)
	g.logger.Debug("literal search",
		zap.Stringer("network", chain.Network()),
		zap.Stringer("mode", mode),
		zap.String("pattern", adjusted),
		zap.Bool("case_sensitive", caseSensitive),
		zap.Int("workers", workers))

	return g.search(chain, workers, func() predicate {
		return func(kp generator.KeyPair) bool {
			return matcher.Matches(kp.AddressBytes())
		}
	}), nil
}

func (g *CPUGenerator) generateRegex(chain generator.Chain, pattern string, workers int) (generator.KeyPair, error) {
	adjusted := chain.AdjustRegex(pattern)
	if err := chain.ValidateRegex(adjusted); err != nil {
		return nil, err
	}
	if pattern == "" {
		return chain.NewKeyGenerator().Generate(), nil
	}
	if _, err := regexp.Compile(adjusted); err != nil {
		return nil, fmt.Errorf("%w: %v", generator.ErrInvalidRegex, err)
	}

	g.logger.Debug("regex search",
		zap.Stringer("network", chain.Network()),
		zap.String("pattern", adjusted),
		zap.Int("workers", workers))

	return g.findRegex(chain, adjusted, workers), nil
}

// Find searches for an address matching an already validated and adjusted
// literal pattern.
func (g *CPUGenerator) Find(chain generator.Chain, pattern string, caseSensitive bool, mode generator.VanityMode) generator.KeyPair {
	matcher := match.NewMatcher(pattern, mode, caseSensitive)
	return g.search(chain, g.workers, func() predicate {
		return func(kp generator.KeyPair) bool {
			return matcher.Matches(kp.AddressBytes())
		}
	})
}

// FindRegex searches for an address matching an already validated and
// adjusted regex. The pattern must compile; GenerateRegex checks that.
func (g *CPUGenerator) FindRegex(chain generator.Chain, pattern string) generator.KeyPair {
	return g.findRegex(chain, pattern, g.workers)
}

func (g *CPUGenerator) findRegex(chain generator.Chain, pattern string, workers int) generator.KeyPair {
	return g.search(chain, workers, func() predicate {
		// Each worker gets its own compiled copy.
		re := regexp.MustCompile(pattern)
		return func(kp generator.KeyPair) bool {
			return re.MatchString(kp.Address())
		}
	})
}

// predicate decides whether a candidate keypair is the one searched for.
type predicate func(generator.KeyPair) bool

// search starts workers goroutines and blocks until one of them hands over a
// match. Losing workers stop on their own at their next match or batch
// boundary; search does not wait for them.
func (g *CPUGenerator) search(chain generator.Chain, workers int, newPredicate func() predicate) generator.KeyPair {
	g.attempts.Store(0)
	g.startTime.Store(time.Now().UnixNano())

	var found atomic.Bool
	resultChan := make(chan generator.KeyPair, 1)

	for i := 0; i < workers; i++ {
		go g.worker(chain, newPredicate, &found, resultChan)
	}

	result := <-resultChan
	stats := g.Stats()
	g.logger.Debug("match found",
		zap.Stringer("network", chain.Network()),
		zap.String("address", result.DisplayAddress()),
		zap.Uint64("attempts", stats.Attempts),
		zap.Float64("elapsed_seconds", stats.ElapsedSecs))
	return result
}

// worker generates batches of candidates until it, or another worker,
// claims the win. Only the goroutine that flips found from false to true
// sends on resultChan, so the channel never holds more than one value.
func (g *CPUGenerator) worker(chain generator.Chain, newPredicate func() predicate, found *atomic.Bool, resultChan chan<- generator.KeyPair) {
	keys := chain.NewKeyGenerator()
	matches := newPredicate()
	batch := make([]generator.KeyPair, generator.BatchSize)

	for !found.Load() {
		keys.FillBatch(batch)
		g.attempts.Add(uint64(len(batch)))

		for _, kp := range batch {
			if !matches(kp) {
				continue
			}
			if found.CompareAndSwap(false, true) {
				resultChan <- kp
			}
			return
		}
	}
}
