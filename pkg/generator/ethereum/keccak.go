package ethereum

import (
	"encoding/binary"
	"hash"

	"github.com/cloudflare/circl/simd/keccakf1600"
	"golang.org/x/crypto/sha3"
)

// pubKeyLen is the length of an uncompressed public key without the 0x04
// format byte: X || Y.
const pubKeyLen = 64

// addressHasher computes Keccak-256 over 64-byte public keys. With AVX2 it
// hashes four keys per permutation; otherwise it falls back to a reused
// sequential Keccak state. It is owned by a single worker.
type addressHasher struct {
	simd   bool
	perm   keccakf1600.StateX4
	keccak hash.Hash
	sum    [32]byte
}

func newAddressHasher() *addressHasher {
	return &addressHasher{
		simd:   keccakf1600.IsEnabledX4(),
		keccak: sha3.NewLegacyKeccak256(),
	}
}

// hash256 computes Keccak-256 of one input. The result is only valid until
// the next call.
func (h *addressHasher) hash256(data []byte) []byte {
	h.keccak.Reset()
	h.keccak.Write(data)
	return h.keccak.Sum(h.sum[:0])
}

// hashAll writes Keccak-256(pubKeys[i]) into out[i] for every key.
func (h *addressHasher) hashAll(pubKeys [][pubKeyLen]byte, out [][32]byte) {
	i := 0
	if h.simd {
		for ; i+4 <= len(pubKeys); i += 4 {
			h.keccak256x4((*[4][pubKeyLen]byte)(pubKeys[i:i+4]), (*[4][32]byte)(out[i:i+4]))
		}
	}
	for ; i < len(pubKeys); i++ {
		copy(out[i][:], h.hash256(pubKeys[i][:]))
	}
}

// keccak256x4 computes 4 Keccak-256 hashes of 64-byte inputs with one
// interleaved permutation. A 64-byte message fits in a single 136-byte
// block, so the state is loaded, padded and permuted once.
func (h *addressHasher) keccak256x4(data *[4][pubKeyLen]byte, hashes *[4][32]byte) {
	state := h.perm.Initialize(false) // 24-round Keccak
	clear(state)

	for lane := 0; lane < 4; lane++ {
		d := data[lane][:]
		for word := 0; word < 8; word++ {
			state[4*word+lane] = binary.LittleEndian.Uint64(d[word*8 : word*8+8])
		}
		// Padding: 0x01 at byte 64 (word 8), 0x80 at byte 135 (top of word 16).
		state[4*8+lane] = 0x01
		state[4*16+lane] = 0x8000000000000000
	}

	h.perm.Permute()

	for lane := 0; lane < 4; lane++ {
		for word := 0; word < 4; word++ {
			binary.LittleEndian.PutUint64(hashes[lane][word*8:word*8+8], state[4*word+lane])
		}
	}
}
