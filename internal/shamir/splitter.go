package shamir

import (
	"strconv"

	ssserr "github.com/arlovane/mersig/pkg/errors"
)

const (
	minThreshold = 2
	maxShares    = 1<<31 - 1
	bitsPerByte  = 8
)

// Splitter composes the security level, polynomial, and point machinery to
// produce a ShareSet from a secret. It is NOT safe for concurrent use: it
// caches a mutable current level + prime that any call may update.
type Splitter struct {
	level securityLevel
}

// NewSplitter constructs a Splitter at the process default security level.
func NewSplitter() *Splitter {
	return &Splitter{level: newSecurityLevel()}
}

// Level returns the Splitter's current security level (Mersenne exponent).
func (s *Splitter) Level() int {
	return s.level.level
}

// SetLevel validates and adopts a requested security level per §4.1.
func (s *Splitter) SetLevel(v int) error {
	return s.level.set(v)
}

// MakeShares with no secret samples a uniform random secret at the
// Splitter's current level.
func (s *Splitter) MakeShares(k, n int) (ShareSet, error) {
	return s.makeShares(k, n, nil, false)
}

// MakeSharesWithSecret splits an explicit secret, auto-raising the level to
// at least 8*secret.ByteLen() if the current level is smaller. The level is
// never lowered by this auto-raise.
func (s *Splitter) MakeSharesWithSecret(k, n int, secret Secret) (ShareSet, error) {
	if err := s.level.raiseAtLeast(bitsPerByte * secret.ByteLen()); err != nil {
		return ShareSet{}, err
	}
	return s.makeShares(k, n, &secret, true)
}

// MakeSharesAtLevel samples a uniform random secret at an explicit level.
func (s *Splitter) MakeSharesAtLevel(k, n, level int) (ShareSet, error) {
	if err := s.level.set(level); err != nil {
		return ShareSet{}, err
	}
	return s.makeShares(k, n, nil, false)
}

// MakeSharesAt splits an explicit secret at an explicit level. After the
// level is set it is auto-raised, as in MakeSharesWithSecret, to at least
// 8*secret.ByteLen() if it is smaller; it is never lowered.
func (s *Splitter) MakeSharesAt(k, n int, secret Secret, level int) (ShareSet, error) {
	if err := s.level.set(level); err != nil {
		return ShareSet{}, err
	}
	if err := s.level.raiseAtLeast(bitsPerByte * secret.ByteLen()); err != nil {
		return ShareSet{}, err
	}
	return s.makeShares(k, n, &secret, true)
}

func (s *Splitter) makeShares(k, n int, secret *Secret, haveSecret bool) (ShareSet, error) {
	if k < minThreshold {
		return ShareSet{}, ssserr.WithDetails(ssserr.ErrThresholdTooSmall, map[string]string{
			"k": strconv.Itoa(k),
		})
	}
	if n < k {
		return ShareSet{}, ssserr.WithDetails(ssserr.ErrTooFewShares, map[string]string{
			"n": strconv.Itoa(n),
			"k": strconv.Itoa(k),
		})
	}
	if n < 1 || n > maxShares {
		return ShareSet{}, ssserr.WithDetails(ssserr.ErrSharesOutOfRange, map[string]string{
			"n": strconv.Itoa(n),
		})
	}

	p := s.level.prime

	var sec Secret
	if haveSecret && secret != nil {
		sec = *secret
	} else {
		sec = randomSecret(p)
	}

	poly, err := newPolynomial(sec.Value(), k, p)
	if err != nil {
		return ShareSet{}, err
	}

	points := make([]Point, n)
	for i := 1; i <= n; i++ {
		x := NewBigInt(int64(i))
		points[i-1] = Point{X: x, Y: poly.Evaluate(x)}
	}

	return ShareSet{secret: &sec, hasSecret: true, points: points}, nil
}
