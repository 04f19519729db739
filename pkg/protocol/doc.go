// Package protocol is the core of the exchange client: the generic
// three-step contract every wire operation implements, the shared session
// state guarding the signer and its per-chain R-value pools, and the
// Diffie-Hellman pool-fill operation that replenishes those pools.
//
// Every operation moves through the same three steps:
//
//  1. GraphQL builds the outgoing wire payload. It may suspend only to
//     acquire the state lock, never for network I/O.
//  2. ResponseFromJSON parses the raw wire response into either a typed
//     response or a server-reported error (see pkg/graphql).
//  3. ProcessResponse applies the response's effects to shared state. This
//     is the only step permitted to mutate state, and it must take the state
//     lock only for the mutation itself, never for cryptographic work.
//
// The transport that carries payloads between steps 1 and 2 is an external
// collaborator; this package opens no sockets and implements no retries.
package protocol
