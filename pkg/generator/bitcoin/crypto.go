package bitcoin

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// ErrInvalidPrivateKey is returned for secrets that are not 32 bytes or not
// in [1, N-1].
var ErrInvalidPrivateKey = errors.New("bitcoin: invalid private key")

// KeyPair is a secp256k1 key with its compressed public key and legacy
// P2PKH address.
type KeyPair struct {
	privKey      *btcec.PrivateKey
	pubKey       []byte // compressed, 33 bytes
	address      string
	addressBytes []byte
}

func newKeyPair(privKey *btcec.PrivateKey, compressed []byte, address string) *KeyPair {
	return &KeyPair{
		privKey:      privKey,
		pubKey:       compressed,
		address:      address,
		addressBytes: []byte(address),
	}
}

var _ generator.KeyPair = (*KeyPair)(nil)

func (k *KeyPair) Network() generator.Network { return generator.Bitcoin }
func (k *KeyPair) Address() string            { return k.address }
func (k *KeyPair) AddressBytes() []byte       { return k.addressBytes }
func (k *KeyPair) DisplayAddress() string     { return k.address }

// PrivateKey returns the secp256k1 private key.
func (k *KeyPair) PrivateKey() *btcec.PrivateKey { return k.privKey }

// PublicKey returns the secp256k1 public key.
func (k *KeyPair) PublicKey() *btcec.PublicKey { return k.privKey.PubKey() }

// PrivateKeyHex returns the 32-byte private key as uppercase hex.
func (k *KeyPair) PrivateKeyHex() string {
	return fmt.Sprintf("%X", k.privKey.Serialize())
}

// PrivateKeyString returns the compressed mainnet WIF.
func (k *KeyPair) PrivateKeyString() string { return k.WIF() }

// PublicKeyString returns the compressed public key as hex.
func (k *KeyPair) PublicKeyString() string { return hex.EncodeToString(k.pubKey) }

// WIF returns the private key in Wallet Import Format, flagged for a
// compressed public key (starts with K or L on mainnet).
func (k *KeyPair) WIF() string {
	return PrivateKeyToWIF(k.privKey)
}

// PrivateKeyToWIF converts a private key to compressed mainnet WIF.
// WIF = Base58Check(0x80 + privKey + 0x01)
func PrivateKeyToWIF(privKey *btcec.PrivateKey) string {
	wif, err := btcutil.NewWIF(privKey, &chaincfg.MainNetParams, true)
	if err != nil {
		// Only possible with nil params.
		panic(err)
	}
	return wif.String()
}

// GenerateRandom generates one random Bitcoin keypair.
func GenerateRandom() *KeyPair {
	return newKeyGenerator().next()
}

// FromPrivateKey rebuilds a keypair from a raw 32-byte secret.
func FromPrivateKey(secret []byte) (*KeyPair, error) {
	if len(secret) != 32 || !validScalar(secret) {
		return nil, ErrInvalidPrivateKey
	}
	return newAddressHasher().derive(secret), nil
}

// FromWIF rebuilds a keypair from a WIF string. The address is always the
// compressed-key P2PKH address.
func FromWIF(s string) (*KeyPair, error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, fmt.Errorf("decode wif: %w", err)
	}
	return FromPrivateKey(wif.PrivKey.Serialize())
}

// validScalar reports whether b is a private key in [1, N-1].
func validScalar(b []byte) bool {
	var k btcec.ModNScalar
	overflow := k.SetByteSlice(b)
	return !overflow && !k.IsZero()
}

func (h *addressHasher) derive(secret []byte) *KeyPair {
	privKey, pubKey := btcec.PrivKeyFromBytes(secret)
	compressed := pubKey.SerializeCompressed()
	return newKeyPair(privKey, compressed, h.legacyAddress(compressed))
}

// keyGenerator is the per-worker Bitcoin generator. One entropy read covers
// a whole batch.
type keyGenerator struct {
	entropy [generator.BatchSize * 32]byte
	hasher  *addressHasher
}

func newKeyGenerator() *keyGenerator {
	return &keyGenerator{hasher: newAddressHasher()}
}

func (g *keyGenerator) next() *KeyPair {
	secret := g.entropy[:32]
	generator.ReadEntropy(secret)
	return g.fromEntropy(secret)
}

// fromEntropy derives a keypair from secret, redrawing it while it is out of
// range.
func (g *keyGenerator) fromEntropy(secret []byte) *KeyPair {
	for !validScalar(secret) {
		generator.ReadEntropy(secret)
	}
	return g.hasher.derive(secret)
}

func (g *keyGenerator) Generate() generator.KeyPair {
	return g.next()
}

func (g *keyGenerator) FillBatch(batch []generator.KeyPair) {
	for len(batch) > 0 {
		n := min(len(batch), generator.BatchSize)
		buf := g.entropy[:n*32]
		generator.ReadEntropy(buf)
		for i := 0; i < n; i++ {
			batch[i] = g.fromEntropy(buf[i*32 : (i+1)*32])
		}
		batch = batch[n:]
	}
}
