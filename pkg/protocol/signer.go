package protocol

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/tradewire/protocol/pkg/blockchain"
	"github.com/tradewire/protocol/pkg/curves"
	"github.com/tradewire/protocol/pkg/errs"
)

// Signer owns the session's long-term signing keys and the per-chain pools
// of ephemeral R-values that threshold signing consumes one-at-a-time.
//
// Signer carries no synchronization of its own: every access goes through
// State.Signer, which holds the session lock for the duration of the
// returned critical section.
type Signer struct {
	btcKey *btcec.PrivateKey
	ethKey *ecdsa.PrivateKey
	neoKey *ecdh.PrivateKey

	// pools holds derived shared secrets not yet consumed by a signature.
	pools map[blockchain.Blockchain][][]byte
	// available counts R-values usable for signing, maintained separately
	// from the pool store because replenishment accounting is an explicit
	// protocol step (FillRVals), not a side effect of storage.
	available map[blockchain.Blockchain]int
}

// NewSigner builds a signer from a validated keyfile.
func NewSigner(keyfile *Keyfile) (*Signer, error) {
	btcKeyRaw, err := hex.DecodeString(strings.TrimPrefix(keyfile.BitcoinKey, "0x"))
	if err != nil {
		return nil, errs.Wrap(err, "invalid bitcoin key hex")
	}
	btcKey, _ := btcec.PrivKeyFromBytes(btcKeyRaw)

	ethKey, err := ethcrypto.HexToECDSA(strings.TrimPrefix(keyfile.EthereumKey, "0x"))
	if err != nil {
		return nil, errs.Wrap(err, "invalid ethereum key")
	}

	neoKeyRaw, err := hex.DecodeString(strings.TrimPrefix(keyfile.NEOKey, "0x"))
	if err != nil {
		return nil, errs.Wrap(err, "invalid neo key hex")
	}
	neoKey, err := ecdh.P256().NewPrivateKey(neoKeyRaw)
	if err != nil {
		return nil, errs.Wrap(err, "invalid neo key")
	}

	return &Signer{
		btcKey:    btcKey,
		ethKey:    ethKey,
		neoKey:    neoKey,
		pools:     make(map[blockchain.Blockchain][][]byte),
		available: make(map[blockchain.Blockchain]int),
	}, nil
}

// PublicKey returns the chain-tagged public key of the signer's long-term
// key for the given blockchain.
func (s *Signer) PublicKey(chain blockchain.Blockchain) (blockchain.PublicKey, error) {
	switch chain {
	case blockchain.Bitcoin:
		return blockchain.NewPublicKey(chain, curves.HexK1Point(s.btcKey.PubKey()))
	case blockchain.Ethereum:
		return blockchain.NewPublicKey(chain, hex.EncodeToString(ethcrypto.CompressPubkey(&s.ethKey.PublicKey)))
	case blockchain.NEO:
		return blockchain.NewPublicKey(chain, curves.HexR1Point(s.neoKey.PublicKey()))
	default:
		return blockchain.PublicKey{}, errs.Errorf("unknown blockchain: %d", chain)
	}
}

// StoreRPool appends freshly derived shared secrets to the chain's pool.
// Storage alone does not make the secrets usable; the caller must follow up
// with FillRVals in the same critical section.
func (s *Signer) StoreRPool(chain blockchain.Blockchain, secrets [][]byte) {
	s.pools[chain] = append(s.pools[chain], secrets...)
}

// FillRVals records that count new R-values are available for the chain.
// It is not idempotent: two calls record two independent replenishments, so
// callers must call it exactly once per successfully completed fill.
func (s *Signer) FillRVals(chain blockchain.Blockchain, count int) {
	s.available[chain] += count
}

// RValCount reports how many R-values are currently usable for the chain.
func (s *Signer) RValCount(chain blockchain.Blockchain) int {
	return s.available[chain]
}

// ConsumeRVal removes and returns one R-value for the chain, curve-matched
// by construction since pools are keyed by blockchain. Fails when the pool
// is dry; callers should trigger a pool fill and retry.
func (s *Signer) ConsumeRVal(chain blockchain.Blockchain) ([]byte, error) {
	pool := s.pools[chain]
	if len(pool) == 0 || s.available[chain] == 0 {
		return nil, errs.Errorf("r-value pool for %s is empty", chain)
	}
	rval := pool[len(pool)-1]
	s.pools[chain] = pool[:len(pool)-1]
	s.available[chain]--
	return rval, nil
}
