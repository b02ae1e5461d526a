// Package zkp implements a non-interactive zero-knowledge proof-composition
// engine for arithmetic relations over Pedersen-committed secret values.
//
// A caller builds a ProofDescription by declaring secret and public
// variables, appending deterministic computations between them, and
// appending relation blocks (equality, weighted-sum-to-zero, product,
// equality-to-a-public-value, and CL-signature possession, the last built
// on package clsign's signature scheme). The prover then creates a prover Instance,
// sets its primary variable values, calls Update to run the computations
// and derive commitments, and drives the three-move Sigma-protocol
// (ClaimGen, then — after a challenge is agreed — ResponseGen). The
// verifier mirrors this with a verifier Instance built from public values
// and commitments, and calls ResponseVerify.
package zkp
