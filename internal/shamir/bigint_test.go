package shamir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBigInt_LEByteRoundTrip(t *testing.T) {
	t.Parallel()

	cases := [][]byte{
		{},
		{0x01},
		{0xff, 0x00, 0x00},
		{0x39, 0x30}, // LE encoding of 12345
	}

	for _, data := range cases {
		v := BigIntFromLEBytes(data)
		assert.True(t, BigIntFromLEBytes(v.Bytes()).Eq(v), "round trip of %x", data)
	}
}

func TestBigInt_ArithmeticBasics(t *testing.T) {
	t.Parallel()

	a := NewBigInt(12345)
	b := NewBigInt(100)

	assert.True(t, a.Add(b).Eq(NewBigInt(12445)))
	assert.True(t, a.Sub(b).Eq(NewBigInt(12245)))
	assert.True(t, a.Mul(NewBigInt(2)).Eq(NewBigInt(24690)))
	assert.True(t, a.Div(b).Eq(NewBigInt(123)))
	assert.True(t, a.Mod(b).Eq(NewBigInt(45)))
}

func TestBigInt_NegativeMod(t *testing.T) {
	t.Parallel()

	a := NewBigInt(-7)
	p := NewBigInt(5)

	// Truncated mod may be negative for a negative dividend.
	assert.Equal(t, -1, a.Mod(p).Sign())

	// mod0 always normalizes to a non-negative field representative.
	assert.True(t, mod0(a, p).Eq(NewBigInt(3)))
}

func TestBigInt_DivisionByZeroPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewBigInt(1).Div(NewBigInt(0))
	})
}

func TestBigInt_PowNegativeExponentPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewBigInt(2).Pow(NewBigInt(-1))
	})
}

func TestBigInt_Sqrt(t *testing.T) {
	t.Parallel()

	assert.True(t, NewBigInt(16).Sqrt().Eq(NewBigInt(4)))
	assert.True(t, NewBigInt(15).Sqrt().Eq(NewBigInt(3)))
}

func TestBigInt_MinimalLEBytes(t *testing.T) {
	t.Parallel()

	v := NewBigInt(12345)
	le := v.Bytes()
	assert.Equal(t, []byte{0x39, 0x30}, le)
}
