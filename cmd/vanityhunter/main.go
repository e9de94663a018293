package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Amr-9/VanityHunter/internal/flags"
	"github.com/Amr-9/VanityHunter/internal/output"
	"github.com/Amr-9/VanityHunter/internal/ui"
	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/cpu"
)

const (
	version    = "1.0"
	updateRate = 33 * time.Millisecond
)

var (
	inputFile string
	cli       flags.VanityFlags
	prefix    bool
	suffix    bool
	anywhere  bool
	isRegex   bool
	ethereum  bool
	solana    bool
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "vanityhunter [flags] <pattern>",
		Short: "Vanity address generator for Bitcoin, Ethereum and Solana",
		Long: `vanityhunter searches random key pairs until the address matches a
prefix, suffix, substring or regular expression.

Examples:
  vanityhunter Emiv -c
  vanityhunter -e -s beef
  vanityhunter --solana -r '^So.*l$'
  vanityhunter -i patterns.txt -o found.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if inputFile != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		SilenceUsage: true,
		RunE:         run,
	}

	f := root.Flags()
	f.StringVarP(&inputFile, "input-file", "i", "", "read patterns and their flags from a file, one per line")
	f.StringVarP(&cli.OutputFile, "output-file", "o", "", "append results to this .txt file")
	f.IntVarP(&cli.Threads, "threads", "t", flags.DefaultThreads, "number of worker goroutines")
	f.BoolVarP(&prefix, "prefix", "p", false, "address starts with the pattern (default)")
	f.BoolVarP(&suffix, "suffix", "s", false, "address ends with the pattern")
	f.BoolVarP(&anywhere, "anywhere", "a", false, "address contains the pattern")
	f.BoolVarP(&isRegex, "regex", "r", false, "address matches the pattern as a regular expression")
	f.BoolVarP(&cli.CaseSensitive, "case-sensitive", "c", false, "match case-sensitively")
	f.BoolVarP(&cli.DisableFastMode, "disable-fast-mode", "d", false, "allow patterns longer than the fast limit")
	f.BoolVarP(&cli.ForceFlags, "force-flags", "f", false, "command line flags override flags in the input file")
	f.BoolVarP(&ethereum, "ethereum", "e", false, "search Ethereum addresses")
	f.BoolVar(&solana, "solana", false, "search Solana addresses")
	f.BoolVar(&verbose, "verbose", false, "log search diagnostics")
	root.MarkFlagsMutuallyExclusive("prefix", "suffix", "anywhere", "regex")
	root.MarkFlagsMutuallyExclusive("ethereum", "solana")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	if err := raisePriority(); err != nil {
		logger.Debug("could not raise process priority", zap.Error(err))
	}

	cli.Mode = flags.SelectMode(prefix, suffix, anywhere, isRegex)
	switch {
	case ethereum:
		n := generator.Ethereum
		cli.Network = &n
	case solana:
		n := generator.Solana
		cli.Network = &n
	}

	var patterns []flags.Pattern
	if inputFile != "" {
		patterns, err = flags.ReadFile(inputFile)
		if err != nil {
			return err
		}
	} else {
		patterns = []flags.Pattern{{Line: 1, Text: args[0]}}
	}

	ui.PrintWelcomeBanner(version)
	ui.PrintSystemInfo(cli.Threads)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for _, p := range patterns {
		if p.Err != nil {
			logger.Warn("skipping input line", zap.Int("line", p.Line), zap.Error(p.Err))
			ui.PrintError(p.Err)
			continue
		}
		hunt(logger, p, cli.Unify(p.Flags), sigChan)
	}
	return nil
}

type searchResult struct {
	keyPair generator.KeyPair
	err     error
}

// hunt runs one search and reports its result. Errors are reported and the
// caller moves on to the next pattern.
func hunt(logger *zap.Logger, p flags.Pattern, vf flags.VanityFlags, sigChan <-chan os.Signal) {
	config := vf.Config(p.Text)
	gen := cpu.NewCPUGenerator(vf.Threads, cpu.WithLogger(logger))

	ui.PrintSearchInfo(config.Network, config.Pattern, config.Mode, config.CaseSensitive, gen.Workers())
	progress := ui.NewProgress(ui.EstimateDifficulty(config.Network, config.Pattern, config.Mode, config.CaseSensitive))

	resultChan := make(chan searchResult, 1)
	go func() {
		kp, err := gen.Generate(config)
		resultChan <- searchResult{kp, err}
	}()

	ticker := time.NewTicker(updateRate)
	defer ticker.Stop()

	for {
		select {
		case res := <-resultChan:
			progress.Finish()
			report(logger, config, vf.OutputFile, res, gen.Stats())
			return

		case <-ticker.C:
			progress.Update(gen.Stats())

		case <-sigChan:
			// Workers cannot be stopped, so leave the process.
			progress.Finish()
			ui.PrintCancelled(gen.Stats())
			logger.Sync()
			os.Exit(130)
		}
	}
}

func report(logger *zap.Logger, config *generator.Config, outputFile string, res searchResult, stats generator.Stats) {
	var record string
	if res.err != nil {
		ui.PrintError(res.err)
		record = output.FormatError(config.Pattern, config.Mode, config.CaseSensitive, res.err)
	} else {
		ui.PrintSuccess(res.keyPair, stats)
		record = output.FormatResult(config.Pattern, config.Mode, config.CaseSensitive, res.keyPair)
	}

	if outputFile == "" {
		return
	}
	if err := output.AppendToFile(outputFile, record); err != nil {
		ui.PrintError(err)
		logger.Debug("save result", zap.String("file", outputFile), zap.Error(err))
		return
	}
	ui.PrintSaved(outputFile)
}
