package generator

import "crypto/rand"

// ReadEntropy fills buf from the system CSPRNG. Key generation has no way to
// continue without randomness, so a failing source panics.
func ReadEntropy(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic("generator: reading system randomness: " + err.Error())
	}
}
