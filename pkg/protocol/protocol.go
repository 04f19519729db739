package protocol

import (
	"context"
	"encoding/json"

	"github.com/tradewire/protocol/pkg/graphql"
)

// Operation is the contract every wire operation of the exchange protocol
// implements, parameterized by its typed response. The three methods
// correspond to the three steps documented in the package comment; see
// DhFillPoolRequest for the fully worked instance.
//
// Operations own their data exclusively; only State is shared, and only
// ProcessResponse may mutate it.
type Operation[R any] interface {
	// GraphQL builds the outgoing wire payload. The state argument is
	// available for operations whose payload depends on session data; the
	// context bounds any state-lock acquisition.
	GraphQL(ctx context.Context, state *State) (graphql.Request, error)

	// ResponseFromJSON parses raw response bytes into either a typed
	// response or a server-reported error. It is pure: no state access, no
	// panics on malformed input.
	ResponseFromJSON(raw json.RawMessage) (graphql.Result[R], error)

	// ProcessResponse applies the response's effects to shared state,
	// holding the state lock only for the portion that touches state.
	ProcessResponse(ctx context.Context, response *R, state *State) error
}
