// Package ui renders the console side of a search: banner, search line,
// live progress and results.
package ui

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/klauspost/cpuid/v2"
	"github.com/schollz/progressbar/v3"

	"github.com/Amr-9/VanityHunter/internal/output"
	"github.com/Amr-9/VanityHunter/pkg/generator"
)

var (
	cyanBold   = color.New(color.FgCyan, color.Bold).SprintFunc()
	greenBold  = color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow     = color.New(color.FgYellow).SprintFunc()
	purpleBold = color.New(color.FgMagenta, color.Bold).SprintFunc()
	redBold    = color.New(color.FgRed, color.Bold).SprintFunc()
	dim        = color.New(color.Faint).SprintFunc()
)

// Out is where console output goes.
var Out io.Writer = color.Output

// PrintWelcomeBanner shows the program name and version.
func PrintWelcomeBanner(version string) {
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, cyanBold("  ╔══════════════════════════════════════════════════╗"))
	fmt.Fprintln(Out, cyanBold("  ║              V A N I T Y   H U N T E R           ║"))
	fmt.Fprintln(Out, cyanBold("  ╚══════════════════════════════════════════════════╝"))
	fmt.Fprintf(Out, "    %s %s\n\n", yellow("Bitcoin, Ethereum and Solana vanity addresses"), dim("v"+version))
}

// PrintSystemInfo shows the CPU the search runs on.
func PrintSystemInfo(workers int) {
	simd := "none"
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F):
		simd = "AVX-512"
	case cpuid.CPU.Supports(cpuid.AVX2):
		simd = "AVX2"
	case cpuid.CPU.Supports(cpuid.ASIMD):
		simd = "NEON"
	}
	fmt.Fprintf(Out, "    %s %s %s\n",
		purpleBold("CPU"),
		cpuid.CPU.BrandName,
		dim(fmt.Sprintf("(%d cores, %d logical, SIMD %s, %d workers)",
			cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores, simd, workers)))
}

// SearchLine describes the search about to start.
func SearchLine(network generator.Network, pattern string, mode generator.VanityMode, caseSensitive bool, threads int) string {
	how, cs := output.Decoration(mode, caseSensitive)
	return fmt.Sprintf("Searching key pair for %s chain where the address %s: '%s' %s with %d threads.",
		network, how, pattern, cs, threads)
}

// PrintSearchInfo prints SearchLine and the expected number of attempts.
func PrintSearchInfo(network generator.Network, pattern string, mode generator.VanityMode, caseSensitive bool, threads int) {
	fmt.Fprintf(Out, "\n    %s\n", greenBold(SearchLine(network, pattern, mode, caseSensitive, threads)))
	if d := EstimateDifficulty(network, pattern, mode, caseSensitive); d > 0 {
		fmt.Fprintf(Out, "    %s\n\n", dim("expected attempts 1/"+FormatNumber(d)))
	} else {
		fmt.Fprintln(Out)
	}
}

func addressLen(network generator.Network) int {
	switch network {
	case generator.Ethereum:
		return 40
	case generator.Solana:
		return 44
	}
	return 34
}

// EstimateDifficulty approximates how many keys must be tried to find a
// match. It returns 0 when no estimate is possible, as for a regex.
func EstimateDifficulty(network generator.Network, pattern string, mode generator.VanityMode, caseSensitive bool) uint64 {
	if mode == generator.Regex || pattern == "" {
		return 0
	}

	base := 58.0
	if network == generator.Ethereum {
		base = 16
	}
	d := 1.0
	for _, c := range pattern {
		p := base
		// Base58 letters match both cases when case is ignored, except the
		// ones missing from the alphabet in one case.
		if network != generator.Ethereum && !caseSensitive && isFoldable(c) {
			p = base / 2
		}
		d *= p
	}
	if mode == generator.Anywhere {
		if positions := addressLen(network) - len(pattern) + 1; positions > 1 {
			d /= float64(positions)
		}
	}

	if d >= math.MaxUint64 {
		return math.MaxUint64
	}
	if d < 1 {
		return 1
	}
	return uint64(d)
}

func isFoldable(c rune) bool {
	switch c {
	case 'i', 'I', 'l', 'L', 'o', 'O':
		return false
	}
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Progress is a live spinner showing attempts and speed.
type Progress struct {
	bar        *progressbar.ProgressBar
	difficulty uint64
}

// NewProgress starts a spinner on stderr.
func NewProgress(difficulty uint64) *Progress {
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("searching"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("keys"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{bar: bar, difficulty: difficulty}
}

// Update moves the spinner to the current attempt count.
func (p *Progress) Update(stats generator.Stats) {
	if p.difficulty > 0 {
		p.bar.Describe(fmt.Sprintf("searching %.0f%%", 100*Probability(stats.Attempts, p.difficulty)))
	}
	_ = p.bar.Set64(int64(stats.Attempts))
}

// Finish stops and clears the spinner.
func (p *Progress) Finish() {
	_ = p.bar.Finish()
}

// Probability is the chance of having found a match after attempts tries.
func Probability(attempts, difficulty uint64) float64 {
	if difficulty == 0 {
		return 0
	}
	return 1 - math.Pow(1-1/float64(difficulty), float64(attempts))
}

// PrintSuccess shows the found key pair.
func PrintSuccess(kp generator.KeyPair, stats generator.Stats) {
	fmt.Fprintf(Out, "\n    %s\n\n", greenBold("ADDRESS FOUND"))
	fmt.Fprintf(Out, "       %s\n\n", greenBold(kp.DisplayAddress()))
	for _, line := range strings.Split(strings.TrimRight(output.FormatKeyPair(kp), "\n"), "\n") {
		fmt.Fprintf(Out, "    %s\n", line)
	}
	fmt.Fprintf(Out, "\n    %s   %s   %s\n",
		cyanBold(FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second)))),
		purpleBold(FormatNumber(stats.Attempts)+" keys"),
		yellow(FormatHashRate(stats.HashRate)))
	fmt.Fprintf(Out, "    %s\n", redBold("KEEP YOUR PRIVATE KEY SECRET!"))
}

// PrintSaved reports where a result was written.
func PrintSaved(file string) {
	fmt.Fprintf(Out, "    %s %s\n", dim("saved to"), file)
}

// PrintError reports a pattern that was skipped.
func PrintError(err error) {
	fmt.Fprintf(Out, "    %s %v\n", redBold("Skipping because of error:"), err)
}

// PrintCancelled reports an interrupted search.
func PrintCancelled(stats generator.Stats) {
	fmt.Fprintf(Out, "\n    %s after %s attempts in %s\n",
		yellow("Search cancelled"),
		FormatNumber(stats.Attempts),
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
}

// FormatHashRate formats a key rate.
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return s
	}
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, s[i])
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
