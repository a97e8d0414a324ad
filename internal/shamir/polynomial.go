package shamir

import (
	"crypto/rand"

	"github.com/arlovane/mersig/internal/secure"
)

// Polynomial is a degree k-1 polynomial over GF(p), coefficients indexed low
// to high: coefficients[0] is the intercept (the secret), coefficients[i]
// for i >= 1 are uniformly random in [0, p).
type Polynomial struct {
	coefficients []BigInt
	prime        BigInt
}

// newPolynomial builds a random polynomial of degree k-1 with the given
// intercept. Each non-constant coefficient is sampled from a secure.Bytes
// buffer that is destroyed immediately after the BigInt is built from it,
// so the random material is consumed but never retained.
func newPolynomial(intercept BigInt, k int, p BigInt) (Polynomial, error) {
	coeffs := make([]BigInt, k)
	coeffs[0] = intercept

	for i := 1; i < k; i++ {
		c, err := sampleCoefficient(p)
		if err != nil {
			return Polynomial{}, err
		}
		coeffs[i] = c
	}

	return Polynomial{coefficients: coeffs, prime: p}, nil
}

// sampleCoefficient draws ceil(bitlen(p)/8) random bytes into a secure.Bytes
// buffer, builds |a| mod p from it, and destroys the buffer before
// returning.
func sampleCoefficient(p BigInt) (BigInt, error) {
	byteLen := (p.BitLen() + 7) / 8

	buf, err := secure.NewBytes(byteLen)
	if err != nil {
		return nil, err
	}
	defer buf.Destroy()

	if _, err := rand.Read(buf.Bytes()); err != nil {
		panic("shamir: random source failure: " + err.Error())
	}

	a := BigIntFromLEBytes(buf.Bytes())
	return mod0(a.Abs(), p), nil
}

// Evaluate computes P(x) mod p via Horner's method: a <- 0; for c in
// coefficients reversed: a <- (a*x + c) mod p.
func (p Polynomial) Evaluate(x BigInt) BigInt {
	a := NewBigInt(0)
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		a = mod0(a.Mul(x).Add(p.coefficients[i]), p.prime)
	}
	return a
}
