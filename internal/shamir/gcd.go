package shamir

// ExtendedGCD computes (g, s, t) such that s*a + t*b = g, with g >= 0 when
// b > 0. When gcd(a, p) = 1 — always true for 0 < a < p with p prime — s is
// the modular inverse of a mod p.
func ExtendedGCD(a, b BigInt) (g, s, t BigInt) {
	oldR, r := a, b
	oldS, s := NewBigInt(1), NewBigInt(0)
	oldT, t := NewBigInt(0), NewBigInt(1)

	for r.Sign() != 0 {
		q := oldR.Div(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}

	return oldR, oldS, oldT
}
