// Package group is the algebraic adapter: a thin surface over the BLS12-381
// pairing-friendly curve (github.com/consensys/gnark-crypto) exposing the
// scalar field Z, the commitment group G (realized as G1), the CL
// public-key group (realized as G2), the pairing target T (realized as
// GT), the bilinear pairing, and the Pedersen commitment g^x h^o.
package group
