package shamir

import (
	"strconv"

	ssserr "github.com/arlovane/mersig/pkg/errors"

	"github.com/arlovane/mersig/internal/secure"
)

const minShares = 2

// Combiner re-infers the modulus from share magnitudes, interpolates, and
// decodes the reconstructed field element back to a Secret. It is NOT safe
// for concurrent use: it caches a mutable current level + prime.
type Combiner struct {
	level securityLevel
}

// NewCombiner constructs a Combiner at the process default security level;
// Reconstruct always overrides this by inferring the level from the shares.
func NewCombiner() *Combiner {
	return &Combiner{level: newSecurityLevel()}
}

// Level returns the security level the Combiner inferred during its most
// recent Reconstruct call, or the process default if it has not run yet.
func (c *Combiner) Level() int {
	return c.level.level
}

// Reconstruct interpolates a Secret from a ShareSet, a slice of share
// strings, or a single newline-separated string of shares.
func (c *Combiner) Reconstruct(input any) (Secret, error) {
	ss, err := toShareSet(input)
	if err != nil {
		return Secret{}, err
	}

	points := ss.Points()
	if len(points) < minShares {
		return Secret{}, ssserr.WithDetails(ssserr.ErrNotEnoughShares, map[string]string{
			"have": strconv.Itoa(len(points)),
		})
	}

	if err := c.inferLevel(points); err != nil {
		return Secret{}, err
	}

	if err := checkDistinctX(points); err != nil {
		return Secret{}, err
	}

	value, err := lagrangeAtZero(points, c.level.prime)
	if err != nil {
		return Secret{}, err
	}

	// The wire format (HEX(x)-HEX(y)) carries no explicit length field, so
	// the reconstructed byte length is the value's own minimal little-endian
	// length. This is bit-exact whenever the secret's highest-order byte is
	// non-zero (true of any text or PEM payload) but cannot recover
	// deliberately zero-padded byte strings reconstructed from wire shares
	// alone — see DESIGN.md.
	byteLen := value.ByteLen()
	if byteLen == 0 {
		byteLen = 1
	}
	return FromFieldElement(value, byteLen), nil
}

func toShareSet(input any) (ShareSet, error) {
	switch v := input.(type) {
	case ShareSet:
		return v, nil
	case []string:
		return ParseShareSet(joinLines(v))
	case string:
		return ParseShareSet(v)
	default:
		return ShareSet{}, ssserr.WithDetails(ssserr.ErrInvalidArgument, map[string]string{
			"reason": "unsupported input type for Reconstruct",
		})
	}
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

func checkDistinctX(points []Point) error {
	seen := make(map[string]bool, len(points))
	for _, p := range points {
		key := hexBE(p.X)
		if seen[key] {
			return ssserr.WithDetails(ssserr.ErrDuplicateShareX, map[string]string{
				"x": key,
			})
		}
		seen[key] = true
	}
	return nil
}

// inferLevel implements §4.8: starting from the level implied by the
// largest y-value's byte length, descend while a smaller modulus in E
// still "fits" that value, then step back up once.
func (c *Combiner) inferLevel(points []Point) error {
	maxY := points[0].Y
	for _, p := range points[1:] {
		if p.Y.Cmp(maxY) > 0 {
			maxY = p.Y
		}
	}
	if maxY == nil {
		return ssserr.ErrNoShareValues
	}

	level := bitsPerByte * maxY.ByteLen()
	if err := c.level.set(level); err != nil {
		return err
	}
	i := indexOfLevel(c.level.level)

	for i > 0 && c.level.level > minLevel {
		p := c.level.prime
		if !mod0(maxY, p).Eq(maxY) {
			break
		}
		i--
		c.level.level = E[i]
		c.level.prime = MersennePrime(E[i])
	}

	if c.level.level > minLevel {
		i++
		c.level.level = E[i]
		c.level.prime = MersennePrime(E[i])
	}

	return nil
}

// lagrangeAtZero reconstructs f(0) per §4.7, staging the recovered field
// element's bytes in a secure.Bytes buffer before handing them to the
// caller's immutable Secret.
func lagrangeAtZero(points []Point, p BigInt) (BigInt, error) {
	m := len(points)
	numProd := make([]BigInt, m)
	denProd := make([]BigInt, m)

	for i := 0; i < m; i++ {
		numProd[i] = NewBigInt(1)
		denProd[i] = NewBigInt(1)
		for j := 0; j < m; j++ {
			if j == i {
				continue
			}
			numProd[i] = numProd[i].Mul(NewBigInt(0).Sub(points[j].X))
			denProd[i] = denProd[i].Mul(points[i].X.Sub(points[j].X))
		}
	}

	d := NewBigInt(1)
	for _, dp := range denProd {
		d = d.Mul(dp)
	}

	n := NewBigInt(0)
	for i := 0; i < m; i++ {
		yPrime := mod0(points[i].Y, p)
		term, err := DivMod(numProd[i].Mul(d).Mul(yPrime), denProd[i], p)
		if err != nil {
			return nil, err
		}
		n = n.Add(term)
	}

	a, err := DivMod(n, d, p)
	if err != nil {
		return nil, err
	}
	a = a.Add(p)

	value := mod0(a, p)

	buf, err := secure.FromSlice(value.Bytes())
	if err != nil {
		return nil, err
	}
	defer buf.Destroy()
	return BigIntFromLEBytes(buf.Bytes()), nil
}

// DivMod computes n*s*g mod-free (the caller reduces downstream) where
// (g, s, _) = ExtendedGCD(d, p). The multiplication by g is a no-op when
// gcd(d, p) = 1 — always true here — but is preserved for bit-for-bit
// agreement with the reference arithmetic (§9 open question).
func DivMod(n, d, p BigInt) (BigInt, error) {
	g, s, _ := ExtendedGCD(d, p)
	if g.Sign() == 0 {
		return nil, ssserr.WithDetails(ssserr.ErrInvalidInput, map[string]string{
			"reason": "division by zero in DivMod",
		})
	}
	return n.Mul(s).Mul(g), nil
}
