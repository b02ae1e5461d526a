// Package clsign implements the Camenisch-Lysyanskaya (CL) signature
// scheme: key generation, signing, and verification over a tuple of
// scalar messages, using the same BLS12-381 pairing the zkp package's
// Pedersen commitments run over.
//
// Following the asymmetric-curve adaptation documented alongside the
// signature-possession block, the public key's (X, Y, Z_k) components and
// the scheme's own generator live in G2; signature components
// (a, b, c, A_k, B_k) live in G1. Every pairing evaluation in this package
// therefore pairs a G1 element against a G2 element.
package clsign
