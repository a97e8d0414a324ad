package shamir

import (
	"strconv"
	"sync/atomic"

	ssserr "github.com/arlovane/mersig/pkg/errors"
)

// E is the set of permitted Mersenne-prime exponents, in ascending order.
// These are the known Mersenne-prime exponents up to 43,112,609.
var E = []int{ //nolint:gochecknoglobals // fixed table, read-only after init
	5, 7, 13, 17, 19, 31, 61, 89, 107, 127, 521, 607, 1279, 2203, 2281, 3217,
	4253, 4423, 9689, 9941, 11213, 19937, 21701, 23209, 44497, 86243, 110503,
	132049, 216091, 756839, 859433, 1257787, 1398269, 2976221, 3021377,
	6972593, 13466917, 20996011, 24036583, 25964951, 30402457, 32582657,
	37156667, 42643801, 43112609,
}

// defaultLevelModern and defaultLevelLegacy are the security levels a new
// Splitter/Combiner starts at: 13 under the modern floor, 7 under legacy mode.
const (
	defaultLevelModern = 13
	defaultLevelLegacy = 7
	legacyFloor        = 13
	minLevel           = 5
)

// legacyMode is the process-wide LEGACY_MODE flag from spec §4.1. It is
// read-mostly: implementations should set it once at startup rather than
// toggle it against in-flight splits.
var legacyMode atomic.Bool //nolint:gochecknoglobals // process-wide flag by design

// SetLegacyMode sets the process-wide LEGACY_MODE flag.
func SetLegacyMode(on bool) {
	legacyMode.Store(on)
}

// LegacyMode reports the current value of the process-wide LEGACY_MODE flag.
func LegacyMode() bool {
	return legacyMode.Load()
}

// defaultLevel returns the level a freshly constructed Splitter/Combiner
// starts at, honoring LEGACY_MODE.
func defaultLevel() int {
	if LegacyMode() {
		return defaultLevelLegacy
	}
	return defaultLevelModern
}

// snap applies the §4.1 setter semantics to a requested level v: reject
// levels below the absolute floor, raise sub-legacy-floor requests when
// legacy mode is off, then round up to the next permitted exponent in E.
func snap(v int, legacy bool) (int, error) {
	if v < minLevel {
		return 0, ssserr.WithDetails(ssserr.ErrLevelOutOfRange, map[string]string{
			"level": strconv.Itoa(v),
			"min":   strconv.Itoa(minLevel),
		})
	}
	if !legacy && v < legacyFloor {
		v = legacyFloor
	}
	for _, e := range E {
		if e >= v {
			return e, nil
		}
	}
	return 0, ssserr.WithDetails(ssserr.ErrLevelOutOfRange, map[string]string{
		"level": strconv.Itoa(v),
		"max":   strconv.Itoa(E[len(E)-1]),
	})
}

// SnapLevel is the exported form of snap, exposing §4.1's pure setter
// semantics to callers outside the package (the CLI's `level snap`).
func SnapLevel(v int, legacy bool) (int, error) {
	return snap(v, legacy)
}

// indexOfLevel returns the index of level within E, or -1 if not present.
func indexOfLevel(level int) int {
	for i, e := range E {
		if e == level {
			return i
		}
	}
	return -1
}

// MersennePrime returns p = 2^e - 1 for a permitted exponent e.
func MersennePrime(e int) BigInt {
	return NewBigInt(2).Pow(NewBigInt(int64(e))).Sub(NewBigInt(1))
}

// securityLevel models §9's guidance: the level table is a pure function
// (snap); a Splitter/Combiner owns its own mutable level + cached prime,
// set through this type rather than through the table itself.
type securityLevel struct {
	level int
	prime BigInt
}

// newSecurityLevel constructs a securityLevel at the process default,
// honoring LEGACY_MODE at the time of construction.
func newSecurityLevel() securityLevel {
	level := defaultLevel()
	return securityLevel{level: level, prime: MersennePrime(level)}
}

// set snaps v per §4.1 and, on success, updates the cached level and prime.
func (s *securityLevel) set(v int) error {
	snapped, err := snap(v, LegacyMode())
	if err != nil {
		return err
	}
	s.level = snapped
	s.prime = MersennePrime(snapped)
	return nil
}

// raiseAtLeast snaps v and adopts it only if it is more restrictive than the
// level currently cached; used by the Splitter's secret-driven auto-raise,
// which never lowers an explicitly requested level.
func (s *securityLevel) raiseAtLeast(v int) error {
	snapped, err := snap(v, LegacyMode())
	if err != nil {
		return err
	}
	if snapped > s.level {
		s.level = snapped
		s.prime = MersennePrime(snapped)
	}
	return nil
}
