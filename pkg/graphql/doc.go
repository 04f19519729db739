// Package graphql defines the wire documents the protocol core exchanges
// with the exchange's GraphQL endpoint, without opening any sockets itself.
//
// Outgoing operations are Request values: an operation name, a query
// document and its variables, marshalled to the standard GraphQL JSON shape.
// Incoming bytes decode through a two-level result: Decode first establishes
// that the bytes are a well-formed GraphQL response (anything else is a
// decoding failure), then Result distinguishes a typed success payload from
// a ServerError (a structurally valid response in which the server rejected
// the operation). Callers must branch on the two outcomes separately; a
// server "no" is not a transport failure.
package graphql
