package pool

import (
	"math/big"
	"sync"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ObjectPool groups the per-type sync.Pool instances used across the
// engine and the signature module.
type ObjectPool struct {
	bigIntPool      sync.Pool
	bigIntSlicePool sync.Pool
	g1JacPool       sync.Pool
	g1AffinePool    sync.Pool
	g1AffineSlice   sync.Pool
	g2JacPool       sync.Pool
	g2AffinePool    sync.Pool
	g2AffineSlice   sync.Pool
}

// NewObjectPool constructs an empty pool with its New funcs wired up.
func NewObjectPool() *ObjectPool {
	p := &ObjectPool{}
	p.bigIntPool.New = func() interface{} { return new(big.Int) }
	p.bigIntSlicePool.New = func() interface{} { return make([]*big.Int, 0, 8) }
	p.g1JacPool.New = func() interface{} { return new(bls12381.G1Jac) }
	p.g1AffinePool.New = func() interface{} { return new(bls12381.G1Affine) }
	p.g1AffineSlice.New = func() interface{} { return make([]bls12381.G1Affine, 0, 8) }
	p.g2JacPool.New = func() interface{} { return new(bls12381.G2Jac) }
	p.g2AffinePool.New = func() interface{} { return new(bls12381.G2Affine) }
	p.g2AffineSlice.New = func() interface{} { return make([]bls12381.G2Affine, 0, 8) }
	return p
}

// GetBigInt returns a pooled *big.Int set to zero.
func (p *ObjectPool) GetBigInt() *big.Int {
	v := p.bigIntPool.Get().(*big.Int)
	v.SetInt64(0)
	return v
}

// PutBigInt zeroes v and returns it to the pool.
func (p *ObjectPool) PutBigInt(v *big.Int) {
	v.SetInt64(0)
	p.bigIntPool.Put(v)
}

// GetBigIntSlice returns a pooled, zero-length []*big.Int.
func (p *ObjectPool) GetBigIntSlice() []*big.Int {
	return p.bigIntSlicePool.Get().([]*big.Int)[:0]
}

// PutBigIntSlice zeroes every element and returns the slice to the pool.
func (p *ObjectPool) PutBigIntSlice(s []*big.Int) {
	for _, v := range s {
		if v != nil {
			v.SetInt64(0)
		}
	}
	p.bigIntSlicePool.Put(s[:0])
}

// GetG1Jac returns a pooled *bls12381.G1Jac.
func (p *ObjectPool) GetG1Jac() *bls12381.G1Jac { return p.g1JacPool.Get().(*bls12381.G1Jac) }

// PutG1Jac returns a *bls12381.G1Jac to the pool.
func (p *ObjectPool) PutG1Jac(v *bls12381.G1Jac) {
	*v = bls12381.G1Jac{}
	p.g1JacPool.Put(v)
}

// GetG1Affine returns a pooled *bls12381.G1Affine.
func (p *ObjectPool) GetG1Affine() *bls12381.G1Affine {
	return p.g1AffinePool.Get().(*bls12381.G1Affine)
}

// PutG1Affine returns a *bls12381.G1Affine to the pool.
func (p *ObjectPool) PutG1Affine(v *bls12381.G1Affine) {
	*v = bls12381.G1Affine{}
	p.g1AffinePool.Put(v)
}

// GetG1AffineSlice returns a pooled, zero-length []bls12381.G1Affine.
func (p *ObjectPool) GetG1AffineSlice() []bls12381.G1Affine {
	return p.g1AffineSlice.Get().([]bls12381.G1Affine)[:0]
}

// PutG1AffineSlice returns a []bls12381.G1Affine to the pool.
func (p *ObjectPool) PutG1AffineSlice(s []bls12381.G1Affine) {
	p.g1AffineSlice.Put(s[:0])
}

// GetG2Jac returns a pooled *bls12381.G2Jac.
func (p *ObjectPool) GetG2Jac() *bls12381.G2Jac { return p.g2JacPool.Get().(*bls12381.G2Jac) }

// PutG2Jac returns a *bls12381.G2Jac to the pool.
func (p *ObjectPool) PutG2Jac(v *bls12381.G2Jac) {
	*v = bls12381.G2Jac{}
	p.g2JacPool.Put(v)
}

// GetG2Affine returns a pooled *bls12381.G2Affine.
func (p *ObjectPool) GetG2Affine() *bls12381.G2Affine {
	return p.g2AffinePool.Get().(*bls12381.G2Affine)
}

// PutG2Affine returns a *bls12381.G2Affine to the pool.
func (p *ObjectPool) PutG2Affine(v *bls12381.G2Affine) {
	*v = bls12381.G2Affine{}
	p.g2AffinePool.Put(v)
}

// GetG2AffineSlice returns a pooled, zero-length []bls12381.G2Affine.
func (p *ObjectPool) GetG2AffineSlice() []bls12381.G2Affine {
	return p.g2AffineSlice.Get().([]bls12381.G2Affine)[:0]
}

// PutG2AffineSlice returns a []bls12381.G2Affine to the pool.
func (p *ObjectPool) PutG2AffineSlice(s []bls12381.G2Affine) {
	p.g2AffineSlice.Put(s[:0])
}

// Default is the process-wide pool used by package-level Get*/Put* helpers.
var Default = NewObjectPool()

func GetBigInt() *big.Int                       { return Default.GetBigInt() }
func PutBigInt(v *big.Int)                      { Default.PutBigInt(v) }
func GetBigIntSlice() []*big.Int                { return Default.GetBigIntSlice() }
func PutBigIntSlice(s []*big.Int)               { Default.PutBigIntSlice(s) }
func GetG1Jac() *bls12381.G1Jac                 { return Default.GetG1Jac() }
func PutG1Jac(v *bls12381.G1Jac)                { Default.PutG1Jac(v) }
func GetG1Affine() *bls12381.G1Affine           { return Default.GetG1Affine() }
func PutG1Affine(v *bls12381.G1Affine)          { Default.PutG1Affine(v) }
func GetG1AffineSlice() []bls12381.G1Affine     { return Default.GetG1AffineSlice() }
func PutG1AffineSlice(s []bls12381.G1Affine)    { Default.PutG1AffineSlice(s) }
func GetG2Jac() *bls12381.G2Jac                 { return Default.GetG2Jac() }
func PutG2Jac(v *bls12381.G2Jac)                { Default.PutG2Jac(v) }
func GetG2Affine() *bls12381.G2Affine           { return Default.GetG2Affine() }
func PutG2Affine(v *bls12381.G2Affine)          { Default.PutG2Affine(v) }
func GetG2AffineSlice() []bls12381.G2Affine     { return Default.GetG2AffineSlice() }
func PutG2AffineSlice(s []bls12381.G2Affine)    { Default.PutG2AffineSlice(s) }
