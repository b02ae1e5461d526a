package zkp

import "math/big"

// Variable is an opaque, immutable handle to a secret or public value
// declared within a ProofDescription. It packs its kind and its dense
// index within that kind into a single word: the high bit is the kind tag,
// the remaining bits are the index. Variables are arena indices, not
// owning references — they are meaningless outside the proof description
// that allocated them.
type Variable uint32

const (
	secretFlag = uint32(1) << 31
	indexMask  = secretFlag - 1
)

func secretVariable(index int) Variable { return Variable(secretFlag | uint32(index)) }
func publicVariable(index int) Variable { return Variable(uint32(index)) }

// IsSecret reports whether v names a secret variable.
func (v Variable) IsSecret() bool { return uint32(v)&secretFlag != 0 }

// IsPublic reports whether v names a public variable.
func (v Variable) IsPublic() bool { return !v.IsSecret() }

// Index returns v's dense index within its kind.
func (v Variable) Index() int { return int(uint32(v) & indexMask) }

// VarSecret allocates a fresh secret variable.
func (p *ProofDescription) VarSecret() Variable {
	p.checkOpen()
	v := secretVariable(p.numSecret)
	p.numSecret++
	return v
}

// VarPublic allocates a fresh public variable.
func (p *ProofDescription) VarPublic() Variable {
	p.checkOpen()
	v := publicVariable(p.numPublic)
	p.numPublic++
	return v
}

// VarConst allocates a fresh public variable permanently bound to value via
// a set_const computation, run identically by prover and verifier.
func (p *ProofDescription) VarConst(value *big.Int) Variable {
	v := p.VarPublic()
	p.appendComputation(computation{kind: compSetConst, isSecret: false, dst: v, value: new(big.Int).Set(value)})
	return v
}

// VarConstInt64 is a convenience wrapper over VarConst for int64 constants.
func (p *ProofDescription) VarConstInt64(value int64) Variable {
	return p.VarConst(big.NewInt(value))
}

// VarConstUint64 is a convenience wrapper over VarConst for uint64 constants.
func (p *ProofDescription) VarConstUint64(value uint64) Variable {
	return p.VarConst(new(big.Int).SetUint64(value))
}

// VarSecretFor returns a secret variable holding the same value as v. If v
// is already secret it is returned unchanged; otherwise a fresh secret
// mirror v' is allocated, a computation v' <- v is appended, and an
// equals-public block asserting v' = v is appended, so that v' can stand
// in anywhere a block requires a secret-only operand.
func (p *ProofDescription) VarSecretFor(v Variable) Variable {
	if v.IsSecret() {
		return v
	}
	mirror := p.VarSecret()
	p.appendComputation(computation{kind: compMov, isSecret: true, dst: mirror, src: v})
	RequireEqualPublic(p, mirror, v)
	return mirror
}
