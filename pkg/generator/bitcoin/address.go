package bitcoin

import (
	"crypto/sha256"
	"hash"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

// p2pkhVersion is the mainnet pay-to-pubkey-hash version byte. It makes
// every legacy address start with '1'.
const p2pkhVersion = 0x00

// addressHasher computes HASH160 with hash states that are reused across
// calls. It is owned by a single worker.
type addressHasher struct {
	sha    hash.Hash
	ripemd hash.Hash
	sum    [sha256.Size]byte
	h160   [ripemd160.Size]byte
}

func newAddressHasher() *addressHasher {
	return &addressHasher{
		sha:    sha256.New(),
		ripemd: ripemd160.New(),
	}
}

// hash160 computes RIPEMD160(SHA256(data)). The result is only valid until
// the next call.
func (h *addressHasher) hash160(data []byte) []byte {
	h.sha.Reset()
	h.sha.Write(data)
	sum := h.sha.Sum(h.sum[:0])

	h.ripemd.Reset()
	h.ripemd.Write(sum)
	return h.ripemd.Sum(h.h160[:0])
}

// legacyAddress creates a P2PKH (1...) address from a compressed public key.
// Legacy address = Base58Check(0x00 + HASH160(pubkey))
func (h *addressHasher) legacyAddress(compressedPubKey []byte) string {
	return base58.CheckEncode(h.hash160(compressedPubKey), p2pkhVersion)
}
