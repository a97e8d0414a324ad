package shamir

import (
	"crypto/rand"

	ssserr "github.com/arlovane/mersig/pkg/errors"
)

// Secret is a field element plus the byte length of its canonical
// representation. The byte length is preserved across encode/decode so
// leading or trailing zero-bytes in the original value are not silently
// dropped.
type Secret struct {
	value   BigInt
	byteLen int
}

// NewSecretFromBytes encodes a byte string as a field element, interpreting
// it as little-endian unsigned and retaining its length as the canonical
// byte length.
func NewSecretFromBytes(s []byte) (Secret, error) {
	if s == nil {
		return Secret{}, ssserr.ErrNilSecret
	}
	return Secret{
		value:   BigIntFromLEBytes(s),
		byteLen: len(s),
	}, nil
}

// NewSecretFromInt encodes a non-negative integer as a field element,
// emitting the minimal little-endian byte count (one zero byte for 0).
func NewSecretFromInt(n int64) (Secret, error) {
	if n < 0 {
		return Secret{}, ssserr.WithDetails(ssserr.ErrInvalidArgument, map[string]string{
			"reason": "secret integer must be non-negative",
		})
	}
	v := NewBigInt(n)
	byteLen := v.ByteLen()
	if byteLen == 0 {
		byteLen = 1
	}
	return Secret{value: v, byteLen: byteLen}, nil
}

// FromFieldElement wraps a reconstructed field element and the original
// byte length the Combiner inferred for it.
func FromFieldElement(value BigInt, byteLen int) Secret {
	return Secret{value: value, byteLen: byteLen}
}

// Value returns the field element this Secret encodes.
func (s Secret) Value() BigInt {
	return s.value
}

// ByteLen returns the canonical byte length recorded at encode time.
func (s Secret) ByteLen() int {
	return s.byteLen
}

// Bytes decodes the Secret back to its canonical little-endian byte form,
// truncated or zero-padded to the recorded byte length.
func (s Secret) Bytes() []byte {
	raw := s.value.Bytes()
	out := make([]byte, s.byteLen)
	n := len(raw)
	if n > s.byteLen {
		n = s.byteLen
	}
	copy(out, raw[:n])
	return out
}

// randomSecret samples a uniform field element in [0, p) using a
// cryptographically secure source, consumed but never retained.
func randomSecret(p BigInt) Secret {
	byteLen := (p.BitLen() + 7) / 8
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		panic("shamir: random source failure: " + err.Error())
	}
	v := mod0(BigIntFromLEBytes(buf), p)
	return Secret{value: v, byteLen: byteLen}
}
