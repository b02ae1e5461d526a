package zkp

import "math/big"

type computationKind int

const (
	compSetConst computationKind = iota
	compMov
)

// computation is a single deterministic assignment populating dst from
// either a constant or another variable's current value. Computations are
// kept in a single ordered slice with a per-node isSecret flag rather than
// split into separate secret/public lists — both give identical semantics,
// and the single list is the simpler of the two.
type computation struct {
	isSecret bool
	kind     computationKind
	dst      Variable
	src      Variable
	value    *big.Int
}

func (p *ProofDescription) appendComputation(c computation) {
	p.checkOpen()
	p.computations = append(p.computations, c)
}

// apply runs one computation against inst. The verifier skips any
// computation tagged isSecret since it lacks secret storage.
func (c *computation) apply(inst *Instance) {
	if c.isSecret && !inst.isProver {
		return
	}
	switch c.kind {
	case compSetConst:
		inst.setRaw(c.dst, c.value)
	case compMov:
		inst.setRaw(c.dst, inst.Get(c.src))
	default:
		panic("zkp: unknown computation kind")
	}
}
