// Package pool provides sync.Pool-backed object pools for scalar and
// group-element values. The proof engine's scalar helpers (used in
// response generation and verification) and CL signing draw big.Int
// values from it; the slice and point pools are not used by the engine.
// Every pooled big.Int is zeroed before it is
// returned to its pool, which is where transient secret-buffer hygiene is
// enforced; long-lived secret state is zeroed explicitly by its owner
// instead of relying on the pool.
package pool
