package match

// lowerTable maps every byte to its ASCII lowercase form. Bytes outside
// 'A'..'Z' map to themselves.
var lowerTable = func() (t [256]byte) {
	for i := range t {
		c := byte(i)
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		t[i] = c
	}
	return t
}()

// Lower returns an ASCII-lowercased copy of p.
func Lower(p []byte) []byte {
	out := make([]byte, len(p))
	for i, c := range p {
		out[i] = lowerTable[c]
	}
	return out
}

// The fold functions below expect a pattern that has already been passed
// through Lower; only the address side is folded per byte.

// HasPrefixFold is the case-insensitive HasPrefix.
func HasPrefixFold(addr, lowerPattern []byte) bool {
	if len(lowerPattern) > len(addr) {
		return false
	}
	return equalFold(addr[:len(lowerPattern)], lowerPattern)
}

// HasSuffixFold is the case-insensitive HasSuffix.
func HasSuffixFold(addr, lowerPattern []byte) bool {
	if len(lowerPattern) > len(addr) {
		return false
	}
	return equalFold(addr[len(addr)-len(lowerPattern):], lowerPattern)
}

// Algorithm is the substring search strategy used by ContainsFold.
type Algorithm int

const (
	SingleByte Algorithm = iota // one-byte linear scan
	Horspool                    // bad-character skip table
	Naive                       // compare at every offset
)

func (a Algorithm) String() string {
	switch a {
	case SingleByte:
		return "single-byte"
	case Horspool:
		return "horspool"
	default:
		return "naive"
	}
}

// Pattern lengths searched with Horspool; the bounds also keep every shift
// within a uint8.
const (
	horspoolMin = 5
	horspoolMax = 16
)

// AlgorithmFor returns the strategy ContainsFold uses for a pattern of
// length n.
func AlgorithmFor(n int) Algorithm {
	switch {
	case n == 1:
		return SingleByte
	case n >= horspoolMin && n <= horspoolMax:
		return Horspool
	default:
		return Naive
	}
}

// ContainsFold is the case-insensitive Contains.
func ContainsFold(addr, lowerPattern []byte) bool {
	m := len(lowerPattern)
	if m == 0 {
		return true
	}
	if m > len(addr) {
		return false
	}
	switch AlgorithmFor(m) {
	case SingleByte:
		return indexByteFold(addr, lowerPattern[0])
	case Horspool:
		skip := newSkipTable(lowerPattern)
		return skip.contains(addr, lowerPattern)
	default:
		return containsNaive(addr, lowerPattern)
	}
}

func equalFold(a, lowerB []byte) bool {
	for i, c := range lowerB {
		if lowerTable[a[i]] != c {
			return false
		}
	}
	return true
}

func indexByteFold(addr []byte, c byte) bool {
	for _, b := range addr {
		if lowerTable[b] == c {
			return true
		}
	}
	return false
}

func containsNaive(addr, p []byte) bool {
	first := p[0]
	for i := 0; i+len(p) <= len(addr); i++ {
		if lowerTable[addr[i]] == first && equalFold(addr[i+1:i+len(p)], p[1:]) {
			return true
		}
	}
	return false
}

// skipTable holds the Horspool shift for every (lowercased) byte value.
// Patterns are at most horspoolMax long, so a shift fits in a byte.
type skipTable [256]uint8

func newSkipTable(p []byte) *skipTable {
	var t skipTable
	m := len(p)
	for i := range t {
		t[i] = uint8(m)
	}
	for i := 0; i < m-1; i++ {
		t[p[i]] = uint8(m - 1 - i)
	}
	return &t
}

func (t *skipTable) contains(addr, p []byte) bool {
	m := len(p)
	last := p[m-1]
	for pos := 0; pos+m <= len(addr); {
		c := lowerTable[addr[pos+m-1]]
		if c == last && equalFold(addr[pos:pos+m-1], p[:m-1]) {
			return true
		}
		pos += int(t[c])
	}
	return false
}
