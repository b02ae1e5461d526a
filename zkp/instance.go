package zkp

import (
	"crypto/rand"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/dzamkov/zkp/group"
	"github.com/dzamkov/zkp/wiretype"
)

// Instance holds one run's variable values, openings, commitments, and
// per-block supplement data. A prover instance carries secret values and
// openings; a verifier instance carries only commitments and public
// values.
type Instance struct {
	desc     *ProofDescription
	isProver bool

	secretValues      []*big.Int
	secretOpenings    []*big.Int
	secretCommitments []bls12381.G1Affine
	publicValues      []*big.Int

	supplement *wiretype.CompositeValue

	updated bool
	rng     io.Reader
}

// NewProverInstance creates a prover instance over desc. rng supplies the
// randomness drawn for secret openings; nil defaults to crypto/rand.Reader.
func NewProverInstance(desc *ProofDescription, rng io.Reader) *Instance {
	if rng == nil {
		rng = rand.Reader
	}
	desc.freeze()
	inst := &Instance{
		desc:              desc,
		isProver:          true,
		secretValues:      make([]*big.Int, desc.numSecret),
		secretOpenings:    make([]*big.Int, desc.numSecret),
		secretCommitments: make([]bls12381.G1Affine, desc.numSecret),
		publicValues:      make([]*big.Int, desc.numPublic),
		supplement:        desc.supplementType.New().(*wiretype.CompositeValue),
		rng:               rng,
	}
	for i := range inst.secretValues {
		inst.secretValues[i] = big.NewInt(0)
		inst.secretOpenings[i] = big.NewInt(0)
	}
	for j := range inst.publicValues {
		inst.publicValues[j] = big.NewInt(0)
	}
	return inst
}

// NewVerifierInstance creates a verifier instance over desc: it holds
// commitments and public values, but no secret values or openings.
func NewVerifierInstance(desc *ProofDescription) *Instance {
	desc.freeze()
	inst := &Instance{
		desc:              desc,
		isProver:          false,
		secretCommitments: make([]bls12381.G1Affine, desc.numSecret),
		publicValues:      make([]*big.Int, desc.numPublic),
		supplement:        desc.supplementType.New().(*wiretype.CompositeValue),
	}
	for j := range inst.publicValues {
		inst.publicValues[j] = big.NewInt(0)
	}
	return inst
}

// IsProver reports whether inst is a prover instance.
func (inst *Instance) IsProver() bool { return inst.isProver }

// SetSecret sets a secret variable's value, drawing a fresh opening and
// atomically recomputing its commitment. Calling this on a verifier
// instance, or with a non-secret variable, is misuse and panics.
func (inst *Instance) SetSecret(v Variable, value *big.Int) {
	if !inst.isProver {
		panic("zkp: SetSecret called on a verifier instance")
	}
	if !v.IsSecret() {
		panic("zkp: SetSecret called with a public variable")
	}
	i := v.Index()
	opening, err := group.RandomScalar(inst.rng)
	if err != nil {
		panic("zkp: failed to draw secret opening: " + err.Error())
	}
	commitment := group.CommitG1(inst.desc.G, inst.desc.H, value, opening)
	inst.secretValues[i] = new(big.Int).Set(value)
	inst.secretOpenings[i] = opening
	inst.secretCommitments[i] = commitment
}

// SetSecretInt64 is a convenience wrapper over SetSecret.
func (inst *Instance) SetSecretInt64(v Variable, value int64) {
	inst.SetSecret(v, big.NewInt(value))
}

// SetPublic sets a public variable's value directly. Calling this with a
// secret variable is misuse and panics.
func (inst *Instance) SetPublic(v Variable, value *big.Int) {
	if !v.IsPublic() {
		panic("zkp: SetPublic called with a secret variable")
	}
	inst.publicValues[v.Index()] = new(big.Int).Set(value)
}

// SetPublicInt64 is a convenience wrapper over SetPublic.
func (inst *Instance) SetPublicInt64(v Variable, value int64) {
	inst.SetPublic(v, big.NewInt(value))
}

// setRaw is the internal setter used by computations: it dispatches on the
// variable's own kind rather than requiring the caller to already know it.
func (inst *Instance) setRaw(v Variable, value *big.Int) {
	if v.IsSecret() {
		inst.SetSecret(v, value)
	} else {
		inst.SetPublic(v, value)
	}
}

// Get returns a variable's current value. Reading a secret variable on a
// verifier instance is misuse and panics — the verifier never holds secret
// values.
func (inst *Instance) Get(v Variable) *big.Int {
	if v.IsSecret() {
		if !inst.isProver {
			panic("zkp: Get called for a secret variable on a verifier instance")
		}
		return inst.secretValues[v.Index()]
	}
	return inst.publicValues[v.Index()]
}

// Opening returns the Pedersen opening for a secret variable. Prover-only.
func (inst *Instance) Opening(v Variable) *big.Int {
	if !inst.isProver {
		panic("zkp: Opening called on a verifier instance")
	}
	return inst.secretOpenings[v.Index()]
}

// Commitment returns the Pedersen commitment for a secret variable. Valid
// on both prover and verifier instances.
func (inst *Instance) Commitment(v Variable) bls12381.G1Affine {
	return inst.secretCommitments[v.Index()]
}

// Supplement returns the block-owned supplement value at slot, e.g. to
// store a CL signature for a signature-possession block to consume.
func (inst *Instance) Supplement(slot int) wiretype.Value {
	return inst.supplement.At(slot)
}

// Update runs every computation in the proof description's insertion
// order, deriving dependent variable values (and, for secret targets,
// fresh openings and commitments) from their sources. The verifier skips
// computations tagged secret. Update must be called, at least once, before
// ClaimGen.
func (inst *Instance) Update() {
	for i := range inst.desc.computations {
		inst.desc.computations[i].apply(inst)
	}
	inst.updated = true
}

// CommitmentsWrite writes every secret commitment, in index order, as
// length-prefixed canonical G1 encodings.
func (inst *Instance) CommitmentsWrite(w io.Writer) error {
	for i := range inst.secretCommitments {
		v := &wiretype.G1Value{Point: inst.secretCommitments[i]}
		if err := v.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// CommitmentsRead reads exactly NumSecret commitments, in index order,
// overwriting the instance's commitment slots.
func (inst *Instance) CommitmentsRead(r io.Reader) error {
	for i := range inst.secretCommitments {
		v := &wiretype.G1Value{}
		if err := v.ReadFrom(r); err != nil {
			return err
		}
		inst.secretCommitments[i] = v.Point
	}
	return nil
}

// PublicValuesWrite writes every public value, in index order, as
// length-prefixed big-endian scalars.
func (inst *Instance) PublicValuesWrite(w io.Writer) error {
	for _, pv := range inst.publicValues {
		sv := &wiretype.ScalarValue{Int: pv}
		if err := sv.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

// PublicValuesRead reads exactly NumPublic public values, in index order.
func (inst *Instance) PublicValuesRead(r io.Reader) error {
	for j := range inst.publicValues {
		sv := &wiretype.ScalarValue{Int: new(big.Int)}
		if err := sv.ReadFrom(r); err != nil {
			return err
		}
		inst.publicValues[j] = sv.Int
	}
	return nil
}

// WriteVar serializes a single variable's current value. This is a local
// instance-persistence helper, distinct from the prover-to-verifier wire
// message built from CommitmentsWrite/PublicValuesWrite — it is never safe
// to send a secret variable's WriteVar output to a verifier.
func (inst *Instance) WriteVar(w io.Writer, v Variable) error {
	sv := &wiretype.ScalarValue{Int: inst.Get(v)}
	return sv.WriteTo(w)
}

// ReadVar loads a single variable's value. For a secret variable this
// re-derives a fresh opening and commitment, preserving the
// opening-freshness invariant on read as well as on write.
func (inst *Instance) ReadVar(r io.Reader, v Variable) error {
	sv := &wiretype.ScalarValue{Int: new(big.Int)}
	if err := sv.ReadFrom(r); err != nil {
		return err
	}
	inst.setRaw(v, sv.Int)
	return nil
}

// Clear zeroes every secret value and opening before the instance is
// released, per the engine's secret-buffer-hygiene requirement.
func (inst *Instance) Clear() {
	for _, v := range inst.secretValues {
		if v != nil {
			v.SetInt64(0)
		}
	}
	for _, o := range inst.secretOpenings {
		if o != nil {
			o.SetInt64(0)
		}
	}
	if inst.supplement != nil {
		inst.supplement.Clear()
	}
}
