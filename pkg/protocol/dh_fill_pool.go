package protocol

import (
	"context"
	"crypto/ecdh"
	"encoding/json"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/google/uuid"

	"github.com/tradewire/protocol/pkg/blockchain"
	"github.com/tradewire/protocol/pkg/curves"
	"github.com/tradewire/protocol/pkg/errs"
	"github.com/tradewire/protocol/pkg/graphql"
)

// RPoolBatchSize is the number of R-values generated per pool fill. Pool
// accounting assumes fixed-size batches, so changing it is a recompilation
// decision, never a runtime one.
const RPoolBatchSize = 100

const dhFillPoolQuery = `mutation DhFillPool($blockchain: Blockchain!, $publics: [String!]!) {
  dhFillPool(blockchain: $blockchain, publics: $publics)
}`

// DhFillPoolRequest coordinates a Diffie-Hellman exchange with the exchange
// server to replenish one blockchain's R-value pool. The client sends a
// batch of public points; the server answers with its own batch; each party
// combines its secrets with the other's publics to derive the same shared
// values. Bitcoin and Ethereum use secp256k1, NEO uses secp256r1.
//
// The request holds both secrets and publics, but only publics ever reach
// the wire; secrets stay local and become the raw material folded into the
// session pool when the response is processed. A failed or abandoned
// request's secrets are simply dropped, never resubmitted.
type DhFillPoolRequest struct {
	id    uuid.UUID
	chain blockchain.Blockchain
	k1    *K1FillPool
	r1    *R1FillPool
}

var _ Operation[DhFillPoolResponse] = (*DhFillPoolRequest)(nil)

// NewDhFillPoolRequest creates a pool-fill request for the given blockchain,
// immediately generating a fresh batch of RPoolBatchSize secret/public pairs
// on the chain-appropriate curve. Generation failure is fatal to the
// instance: the caller may construct a new request but the core never
// retries with degraded randomness or a smaller batch.
func NewDhFillPoolRequest(chain blockchain.Blockchain) (*DhFillPoolRequest, error) {
	req := &DhFillPoolRequest{id: uuid.New(), chain: chain}
	switch chain.Curve() {
	case blockchain.CurveSecp256r1:
		pool, err := NewR1FillPool()
		if err != nil {
			return nil, err
		}
		req.r1 = pool
	default:
		pool, err := NewK1FillPool()
		if err != nil {
			return nil, err
		}
		req.k1 = pool
	}
	return req, nil
}

// ID is the correlation id used in logs; it never reaches the wire.
func (r *DhFillPoolRequest) ID() uuid.UUID { return r.id }

// Blockchain returns the chain whose pool this request fills.
func (r *DhFillPoolRequest) Blockchain() blockchain.Blockchain { return r.chain }

// publicsHex serializes the local public points for the outgoing payload.
func (r *DhFillPoolRequest) publicsHex() []string {
	if r.r1 != nil {
		out := make([]string, len(r.r1.Publics))
		for i, p := range r.r1.Publics {
			out[i] = curves.HexR1Point(p)
		}
		return out
	}
	out := make([]string, len(r.k1.Publics))
	for i, p := range r.k1.Publics {
		out[i] = curves.HexK1Point(p)
	}
	return out
}

type dhFillPoolVariables struct {
	Blockchain blockchain.Blockchain `json:"blockchain"`
	Publics    []string              `json:"publics"`
}

// GraphQL builds the outgoing payload from the batch's public points only.
func (r *DhFillPoolRequest) GraphQL(_ context.Context, _ *State) (graphql.Request, error) {
	return graphql.NewRequest("DhFillPool", dhFillPoolQuery, dhFillPoolVariables{
		Blockchain: r.chain,
		Publics:    r.publicsHex(),
	})
}

// ResponseFromJSON parses the raw wire response.
func (r *DhFillPoolRequest) ResponseFromJSON(raw json.RawMessage) (graphql.Result[DhFillPoolResponse], error) {
	return graphql.Decode[DhFillPoolResponse](raw)
}

// ProcessResponse derives the shared secrets from the server's publics and
// credits the session pool. Derivation happens before the state lock is
// taken; only the pool mutation runs inside the critical section. Exactly
// one successful call per request: completing this step is what makes the
// new R-values usable by signing operations.
func (r *DhFillPoolRequest) ProcessResponse(ctx context.Context, response *DhFillPoolResponse, state *State) error {
	serverPublics, err := ServerPublicsFromHex(r.chain, response)
	if err != nil {
		return err
	}
	shared, err := r.deriveSharedSecrets(serverPublics)
	if err != nil {
		return err
	}

	signer, release, err := state.Signer(ctx)
	if err != nil {
		return err
	}
	defer release()

	signer.StoreRPool(r.chain, shared)
	signer.FillRVals(r.chain, RPoolBatchSize)
	state.Logger().Debug("r-value pool replenished",
		"op", r.id, "blockchain", r.chain, "count", RPoolBatchSize)
	return nil
}

// deriveSharedSecrets combines each local secret with the positionally
// matching server public. The pairing is strictly positional, so a length
// mismatch between request and response is a protocol error.
func (r *DhFillPoolRequest) deriveSharedSecrets(server *ServerPublics) ([][]byte, error) {
	if server.chain != r.chain {
		return nil, errs.Errorf("server publics tagged %s for a %s pool fill", server.chain, r.chain)
	}

	if r.r1 != nil {
		if len(server.r1) != len(r.r1.Secrets) {
			return nil, errs.Errorf("server returned %d publics, expected %d", len(server.r1), len(r.r1.Secrets))
		}
		shared := make([][]byte, len(r.r1.Secrets))
		for i, secret := range r.r1.Secrets {
			val, err := curves.SharedSecretR1(secret, server.r1[i])
			if err != nil {
				return nil, err
			}
			shared[i] = val
		}
		return shared, nil
	}

	if len(server.k1) != len(r.k1.Secrets) {
		return nil, errs.Errorf("server returned %d publics, expected %d", len(server.k1), len(r.k1.Secrets))
	}
	shared := make([][]byte, len(r.k1.Secrets))
	for i, secret := range r.k1.Secrets {
		shared[i] = curves.SharedSecretK1(secret, server.k1[i])
	}
	return shared, nil
}

// K1FillPool is a batch of secp256k1 secret/public pairs (Bitcoin, Ethereum).
type K1FillPool struct {
	Secrets []*btcec.PrivateKey
	Publics []*btcec.PublicKey
}

// NewK1FillPool generates a fresh secp256k1 batch of RPoolBatchSize pairs.
func NewK1FillPool() (*K1FillPool, error) {
	secrets, publics, err := curves.DHInitK1(RPoolBatchSize)
	if err != nil {
		return nil, err
	}
	return &K1FillPool{Secrets: secrets, Publics: publics}, nil
}

// R1FillPool is a batch of secp256r1 secret/public pairs (NEO).
type R1FillPool struct {
	Secrets []*ecdh.PrivateKey
	Publics []*ecdh.PublicKey
}

// NewR1FillPool generates a fresh secp256r1 batch of RPoolBatchSize pairs.
func NewR1FillPool() (*R1FillPool, error) {
	secrets, publics, err := curves.DHInitR1(RPoolBatchSize)
	if err != nil {
		return nil, err
	}
	return &R1FillPool{Secrets: secrets, Publics: publics}, nil
}

// DhFillPoolResponse is the server's half of the exchange: its public
// points, still hex-encoded. It never holds secrets.
type DhFillPoolResponse struct {
	ServerPublics []string `json:"dhFillPool"`
}

// ServerPublics is the server's points parsed onto the curve the request
// was made for. Encodings that do not decode to a point on that curve are
// rejected here, before any combination happens.
type ServerPublics struct {
	chain blockchain.Blockchain
	k1    []*btcec.PublicKey
	r1    []*ecdh.PublicKey
}

// ServerPublicsFromHex parses the response's hex points using the curve of
// the given blockchain.
func ServerPublicsFromHex(chain blockchain.Blockchain, response *DhFillPoolResponse) (*ServerPublics, error) {
	out := &ServerPublics{chain: chain}
	switch chain.Curve() {
	case blockchain.CurveSecp256r1:
		out.r1 = make([]*ecdh.PublicKey, len(response.ServerPublics))
		for i, h := range response.ServerPublics {
			point, err := curves.ParseR1Point(h)
			if err != nil {
				return nil, err
			}
			out.r1[i] = point
		}
	default:
		out.k1 = make([]*btcec.PublicKey, len(response.ServerPublics))
		for i, h := range response.ServerPublics {
			point, err := curves.ParseK1Point(h)
			if err != nil {
				return nil, err
			}
			out.k1[i] = point
		}
	}
	return out, nil
}
