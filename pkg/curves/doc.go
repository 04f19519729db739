// Package curves exposes the curve-specific primitives the Diffie-Hellman
// pool fill consumes: batch keypair initializers and point-scalar
// combination, for secp256k1 (Bitcoin, Ethereum) via btcec and secp256r1
// (NEO) via the standard library's NIST P-256 implementation.
//
// The package deliberately contains no curve arithmetic of its own; it only
// adapts the underlying libraries to the batch shapes the pool fill needs.
package curves
