// Package match provides the byte-level pattern tests run against every
// candidate address. None of the functions allocate.
package match

import "bytes"

// HasPrefix reports whether addr begins with pattern, byte for byte.
func HasPrefix(addr, pattern []byte) bool {
	return len(pattern) <= len(addr) && bytes.Equal(addr[:len(pattern)], pattern)
}

// HasSuffix reports whether addr ends with pattern, byte for byte.
func HasSuffix(addr, pattern []byte) bool {
	return len(pattern) <= len(addr) && bytes.Equal(addr[len(addr)-len(pattern):], pattern)
}

// Contains reports whether pattern occurs anywhere in addr.
func Contains(addr, pattern []byte) bool {
	return len(pattern) <= len(addr) && bytes.Index(addr, pattern) >= 0
}
