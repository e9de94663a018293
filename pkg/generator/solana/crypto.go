package solana

import (
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

var (
	ErrInvalidSeed       = errors.New("solana: seed must be 32 bytes")
	ErrMismatchedKeypair = errors.New("solana: public half of keypair does not match its seed")
)

// KeyPair is an Ed25519 keypair. The Solana address is the base58
// encoding of the 32-byte public key.
type KeyPair struct {
	seed         [ed25519.SeedSize]byte
	pubKey       [ed25519.PublicKeySize]byte
	address      string
	addressBytes []byte
}

func newKeyPair(seed, pubKey []byte) *KeyPair {
	k := &KeyPair{}
	copy(k.seed[:], seed)
	copy(k.pubKey[:], pubKey)
	k.address = base58.Encode(pubKey)
	k.addressBytes = []byte(k.address)
	return k
}

var _ generator.KeyPair = (*KeyPair)(nil)

func (k *KeyPair) Network() generator.Network { return generator.Solana }
func (k *KeyPair) Address() string            { return k.address }
func (k *KeyPair) AddressBytes() []byte       { return k.addressBytes }
func (k *KeyPair) DisplayAddress() string     { return k.address }

// PrivateKey returns the 64-byte secret key (seed || public key).
func (k *KeyPair) PrivateKey() solanago.PrivateKey {
	key := make(solanago.PrivateKey, 0, ed25519.PrivateKeySize)
	key = append(key, k.seed[:]...)
	return append(key, k.pubKey[:]...)
}

func (k *KeyPair) PublicKey() solanago.PublicKey {
	return solanago.PublicKeyFromBytes(k.pubKey[:])
}

// Ed25519 returns the secret key in crypto/ed25519 form.
func (k *KeyPair) Ed25519() ed25519.PrivateKey {
	return ed25519.PrivateKey(k.PrivateKey())
}

// PrivateKeyHex returns the 32-byte seed as hex.
func (k *KeyPair) PrivateKeyHex() string { return hex.EncodeToString(k.seed[:]) }

// PrivateKeyString returns the 64-byte secret key in base58, the format
// wallets import.
func (k *KeyPair) PrivateKeyString() string { return k.PrivateKey().String() }

func (k *KeyPair) PublicKeyString() string { return k.PublicKey().String() }

// GenerateRandom generates one random Solana keypair.
func GenerateRandom() *KeyPair {
	return newKeyGenerator().next()
}

// FromSeed rebuilds a keypair from its 32-byte seed.
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, ErrInvalidSeed
	}
	return newKeyGenerator().derive(seed), nil
}

// FromBase58 rebuilds a keypair from a base58 64-byte secret key.
func FromBase58(s string) (*KeyPair, error) {
	key, err := solanago.PrivateKeyFromBase58(s)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, ErrInvalidSeed
	}
	kp, err := FromSeed(key[:ed25519.SeedSize])
	if err != nil {
		return nil, err
	}
	if !key.PublicKey().Equals(kp.PublicKey()) {
		return nil, ErrMismatchedKeypair
	}
	return kp, nil
}

// keyGenerator is the per-worker Solana generator. It keeps the scalar and
// point used for the base multiplication so a batch allocates only its
// results.
type keyGenerator struct {
	entropy [generator.BatchSize * ed25519.SeedSize]byte
	scalar  edwards25519.Scalar
	point   edwards25519.Point
}

func newKeyGenerator() *keyGenerator {
	return &keyGenerator{}
}

// derive expands seed the way RFC 8032 does: the clamped lower half of
// SHA-512(seed) is the secret scalar.
func (g *keyGenerator) derive(seed []byte) *KeyPair {
	digest := sha512.Sum512(seed)
	s, err := g.scalar.SetBytesWithClamping(digest[:32])
	if err != nil {
		panic("solana: " + err.Error())
	}
	return newKeyPair(seed, g.point.ScalarBaseMult(s).Bytes())
}

func (g *keyGenerator) next() *KeyPair {
	seed := g.entropy[:ed25519.SeedSize]
	generator.ReadEntropy(seed)
	return g.derive(seed)
}

func (g *keyGenerator) Generate() generator.KeyPair {
	return g.next()
}

func (g *keyGenerator) FillBatch(batch []generator.KeyPair) {
	const n = ed25519.SeedSize
	for len(batch) > 0 {
		count := min(len(batch), generator.BatchSize)
		buf := g.entropy[:count*n]
		generator.ReadEntropy(buf)
		for i := 0; i < count; i++ {
			batch[i] = g.derive(buf[i*n : (i+1)*n])
		}
		batch = batch[count:]
	}
}
