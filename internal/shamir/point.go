package shamir

import (
	"encoding/hex"
	"strings"

	ssserr "github.com/arlovane/mersig/pkg/errors"
)

// Point is a single (x, y) share: x is the 1-based participant index, y is
// the polynomial evaluated at x, reduced mod p.
type Point struct {
	X BigInt
	Y BigInt
}

// Equal reports whether two points are componentwise equal.
func (p Point) Equal(other Point) bool {
	return p.X.Eq(other.X) && p.Y.Eq(other.Y)
}

// Less orders points by the magnitude of sqrt(x^2 + y^2), an implementation
// choice (§9 notes a lexicographic order is equally valid). Interpolation
// does not call it; duplicate x values are rejected by the Combiner instead.
func (p Point) Less(other Point) bool {
	mag := func(pt Point) BigInt {
		return pt.X.Mul(pt.X).Add(pt.Y.Mul(pt.Y)).Sqrt()
	}
	return mag(p).Cmp(mag(other)) < 0
}

// String renders a share as HEX(x) "-" HEX(y), big-endian, upper-case.
func (p Point) String() string {
	return hexBE(p.X) + "-" + hexBE(p.Y)
}

// ParsePoint parses a single share string of the form HEX(x)-HEX(y).
func ParsePoint(s string) (Point, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Point{}, ssserr.WithDetails(ssserr.ErrMalformedShare, map[string]string{
			"share": s,
		})
	}

	x, err := parseHexBE(parts[0])
	if err != nil {
		return Point{}, err
	}
	y, err := parseHexBE(parts[1])
	if err != nil {
		return Point{}, err
	}

	return Point{X: x, Y: y}, nil
}

// hexBE renders a BigInt as big-endian, upper-case hex with no leading
// zero-stripping beyond what big.Int's minimal byte form already implies.
func hexBE(v BigInt) string {
	raw := v.Bytes() // little-endian
	be := make([]byte, len(raw))
	for i, b := range raw {
		be[len(raw)-1-i] = b
	}
	if len(be) == 0 {
		be = []byte{0}
	}
	return strings.ToUpper(hex.EncodeToString(be))
}

// parseHexBE decodes a big-endian, case-insensitive hex string into a
// BigInt, rejecting any non-hex character as InvalidInput.
func parseHexBE(s string) (BigInt, error) {
	if s == "" || !isHex(s) {
		return nil, ssserr.WithDetails(ssserr.ErrNonHexShare, map[string]string{
			"value": s,
		})
	}
	padded := s
	if len(padded)%2 != 0 {
		padded = "0" + padded
	}
	be, err := hex.DecodeString(padded)
	if err != nil {
		return nil, ssserr.WithDetails(ssserr.ErrNonHexShare, map[string]string{
			"value": s,
		})
	}
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	return BigIntFromLEBytes(le), nil
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
