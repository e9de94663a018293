package ethereum

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// ErrInvalidPrivateKey is returned for secrets that are not 32 bytes or not
// in [1, N-1].
var ErrInvalidPrivateKey = errors.New("ethereum: invalid private key")

// addressHexLen is the length of a hex address without 0x.
const addressHexLen = 2 * common.AddressLength

// KeyPair is a secp256k1 key with its Ethereum address.
type KeyPair struct {
	privKey      [32]byte
	pubKey       [pubKeyLen]byte // X || Y
	address      string          // lowercase hex, no 0x
	addressBytes []byte
}

// newKeyPair builds a keypair from a secret, its public key and
// Keccak-256(pubKey).
func newKeyPair(secret []byte, pubKey *[pubKeyLen]byte, digest []byte) *KeyPair {
	var hexBuf [addressHexLen]byte
	hexEncode(hexBuf[:], digest[32-common.AddressLength:])

	k := &KeyPair{
		pubKey:       *pubKey,
		addressBytes: hexBuf[:],
	}
	copy(k.privKey[:], secret)
	k.address = string(k.addressBytes)
	return k
}

var _ generator.KeyPair = (*KeyPair)(nil)

func (k *KeyPair) Network() generator.Network { return generator.Ethereum }

// Address returns the lowercase hex address without 0x.
func (k *KeyPair) Address() string      { return k.address }
func (k *KeyPair) AddressBytes() []byte { return k.addressBytes }

// DisplayAddress returns the lowercase address with 0x.
func (k *KeyPair) DisplayAddress() string { return "0x" + k.address }

// ChecksumAddress returns the EIP-55 mixed-case address.
func (k *KeyPair) ChecksumAddress() string {
	return k.CommonAddress().Hex()
}

func (k *KeyPair) CommonAddress() common.Address {
	return common.HexToAddress(k.address)
}

// PrivateKey returns the key as a go-ethereum compatible ECDSA key.
func (k *KeyPair) PrivateKey() *ecdsa.PrivateKey {
	return crypto.ToECDSAUnsafe(k.privKey[:])
}

func (k *KeyPair) PrivateKeyHex() string { return hex.EncodeToString(k.privKey[:]) }

// PrivateKeyString returns the private key as 0x-prefixed hex.
func (k *KeyPair) PrivateKeyString() string { return hexutil.Encode(k.privKey[:]) }

// PublicKeyString returns the uncompressed public key (0x04...) as hex.
func (k *KeyPair) PublicKeyString() string {
	return hexutil.Encode(append([]byte{0x04}, k.pubKey[:]...))
}

// GenerateRandom generates one random Ethereum keypair.
func GenerateRandom() *KeyPair {
	return newKeyGenerator().next()
}

// FromPrivateKey rebuilds a keypair from a raw 32-byte secret.
func FromPrivateKey(secret []byte) (*KeyPair, error) {
	if len(secret) != 32 {
		return nil, ErrInvalidPrivateKey
	}
	var k secp256k1.ModNScalar
	if k.SetByteSlice(secret) || k.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	var pub [pubKeyLen]byte
	serializePubKey(&k, &pub)
	return newKeyPair(secret, &pub, newAddressHasher().hash256(pub[:])), nil
}

// FromECDSA rebuilds a keypair from a go-ethereum private key.
func FromECDSA(key *ecdsa.PrivateKey) (*KeyPair, error) {
	return FromPrivateKey(crypto.FromECDSA(key))
}

func serializePubKey(k *secp256k1.ModNScalar, out *[pubKeyLen]byte) {
	uncompressed := secp256k1.NewPrivateKey(k).PubKey().SerializeUncompressed()
	copy(out[:], uncompressed[1:])
}

// keyGenerator is the per-worker Ethereum generator. Public keys of a batch
// are derived first and then hashed together.
type keyGenerator struct {
	entropy [generator.BatchSize * 32]byte
	pubKeys [generator.BatchSize][pubKeyLen]byte
	digests [generator.BatchSize][32]byte
	hasher  *addressHasher
}

func newKeyGenerator() *keyGenerator {
	return &keyGenerator{hasher: newAddressHasher()}
}

// publicKey derives the public key of secret into out, redrawing secret
// while it is out of range.
func (g *keyGenerator) publicKey(secret []byte, out *[pubKeyLen]byte) {
	var k secp256k1.ModNScalar
	for k.SetByteSlice(secret) || k.IsZero() {
		generator.ReadEntropy(secret)
	}
	serializePubKey(&k, out)
}

func (g *keyGenerator) next() *KeyPair {
	secret := g.entropy[:32]
	generator.ReadEntropy(secret)
	g.publicKey(secret, &g.pubKeys[0])
	return newKeyPair(secret, &g.pubKeys[0], g.hasher.hash256(g.pubKeys[0][:]))
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
			g.publicKey(buf[i*32:(i+1)*32], &g.pubKeys[i])
		}
		g.hasher.hashAll(g.pubKeys[:n], g.digests[:n])
		for i := 0; i < n; i++ {
			batch[i] = newKeyPair(buf[i*32:(i+1)*32], &g.pubKeys[i], g.digests[i][:])
		}
		batch = batch[n:]
	}
}

// hexEncode encodes src into dst as lowercase hexadecimal.
// dst must be at least len(src)*2 bytes.
func hexEncode(dst, src []byte) {
	const hextable = "0123456789abcdef"
	for i, v := range src {
		dst[i*2] = hextable[v>>4]
		dst[i*2+1] = hextable[v&0x0f]
	}
}
