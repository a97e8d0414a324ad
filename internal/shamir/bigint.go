// Package shamir implements Shamir's (k,n)-threshold Secret Sharing over
// GF(p), where p = 2^e - 1 is a Mersenne prime. It provides the finite-field
// polynomial machinery, security-level selection, and share encoding that a
// split/combine operation is built from.
package shamir

import "math/big"

// BigInt is the arbitrary-precision signed integer contract the core is
// built on. All outward-facing types depend on this interface rather than
// *math/big.Int directly, so an alternate backend could be substituted
// without touching call sites.
type BigInt interface {
	Add(other BigInt) BigInt
	Sub(other BigInt) BigInt
	Mul(other BigInt) BigInt
	Div(other BigInt) BigInt
	Mod(other BigInt) BigInt
	Pow(exp BigInt) BigInt
	Neg() BigInt
	Abs() BigInt
	Sign() int
	Cmp(other BigInt) int
	Eq(other BigInt) bool
	BitLen() int
	ByteLen() int
	Sqrt() BigInt
	Bytes() []byte // little-endian, unsigned, minimal
}

// bigInt is the math/big-backed implementation of BigInt. It is the one
// place in the core built directly on the standard library; see DESIGN.md
// for why no corpus library covers arbitrary-precision integer arithmetic
// at exponents up to 43,112,609 bits.
type bigInt struct {
	v *big.Int
}

// NewBigInt wraps an int64 as a BigInt.
func NewBigInt(n int64) BigInt {
	return &bigInt{v: big.NewInt(n)}
}

// BigIntFromLEBytes constructs a BigInt from a little-endian unsigned byte
// slice.
func BigIntFromLEBytes(data []byte) BigInt {
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	return &bigInt{v: new(big.Int).SetBytes(be)}
}

func wrap(v *big.Int) BigInt {
	return &bigInt{v: v}
}

func unwrap(b BigInt) *big.Int {
	return b.(*bigInt).v //nolint:forcetypeassert // BigInt has exactly one implementation
}

func (b *bigInt) Add(other BigInt) BigInt {
	return wrap(new(big.Int).Add(b.v, unwrap(other)))
}

func (b *bigInt) Sub(other BigInt) BigInt {
	return wrap(new(big.Int).Sub(b.v, unwrap(other)))
}

func (b *bigInt) Mul(other BigInt) BigInt {
	return wrap(new(big.Int).Mul(b.v, unwrap(other)))
}

// Div is truncated division (toward zero), matching Go's big.Int.Quo.
func (b *bigInt) Div(other BigInt) BigInt {
	o := unwrap(other)
	if o.Sign() == 0 {
		panic("shamir: division by zero")
	}
	return wrap(new(big.Int).Quo(b.v, o))
}

// Mod is truncated modulo (may return negative for a negative dividend);
// the core always normalizes via ((a % p) + p) % p where non-negative
// results are required.
func (b *bigInt) Mod(other BigInt) BigInt {
	o := unwrap(other)
	if o.Sign() == 0 {
		panic("shamir: division by zero")
	}
	return wrap(new(big.Int).Rem(b.v, o))
}

// Pow requires a non-negative exponent.
func (b *bigInt) Pow(exp BigInt) BigInt {
	e := unwrap(exp)
	if e.Sign() < 0 {
		panic("shamir: negative exponent")
	}
	return wrap(new(big.Int).Exp(b.v, e, nil))
}

func (b *bigInt) Neg() BigInt {
	return wrap(new(big.Int).Neg(b.v))
}

func (b *bigInt) Abs() BigInt {
	return wrap(new(big.Int).Abs(b.v))
}

func (b *bigInt) Sign() int {
	return b.v.Sign()
}

func (b *bigInt) Cmp(other BigInt) int {
	return b.v.Cmp(unwrap(other))
}

func (b *bigInt) Eq(other BigInt) bool {
	return b.Cmp(other) == 0
}

func (b *bigInt) BitLen() int {
	return b.v.BitLen()
}

func (b *bigInt) ByteLen() int {
	return (b.v.BitLen() + 7) / 8
}

func (b *bigInt) Sqrt() BigInt {
	return wrap(new(big.Int).Sqrt(b.v))
}

// Bytes returns the minimal little-endian unsigned representation.
func (b *bigInt) Bytes() []byte {
	be := b.v.Bytes()
	le := make([]byte, len(be))
	for i, v := range be {
		le[len(be)-1-i] = v
	}
	return le
}

// mod0 computes ((a mod p) + p) mod p, i.e. the non-negative field
// representative of a, regardless of a's sign.
func mod0(a, p BigInt) BigInt {
	return a.Mod(p).Add(p).Mod(p)
}
