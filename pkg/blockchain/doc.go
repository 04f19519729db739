// Package blockchain defines the chain-polymorphic type layer the protocol
// core routes per-chain data through: the closed Blockchain enumeration, the
// one-byte payload Prefix tags, chain-tagged Address and PublicKey sum types
// with validated construction and fallible narrowing, and the asset registry
// loaded from assets.yaml.
//
// Types specific to an individual protocol operation live next to that
// operation in pkg/protocol; only data shared across operations lives here.
package blockchain
