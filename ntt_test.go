package mldsa

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randRingElement(r *rand.Rand) ringElement {
	var f ringElement
	for i := range f {
		f[i] = fieldElement(r.Uint32() % q)
	}
	return f
}

func TestNTTRoundtrip(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for trial := 0; trial < 64; trial++ {
		f := randRingElement(r)
		got := invNTT(ntt(f))
		require.Equal(t, f, got)
	}
}

// TestNTTIsLinear checks ntt(a+b) == ntt(a)+ntt(b), the property that lets
// keygen/sign/verify compute A*s and c*s as pointwise products in NTT
// domain rather than schoolbook polynomial convolution.
func TestNTTIsLinear(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 64; trial++ {
		a := randRingElement(r)
		b := randRingElement(r)

		lhs := ntt(polyAdd(a, b))
		rhs := polyAdd(ntt(a), ntt(b))
		require.Equal(t, lhs, rhs)
	}
}

func TestPowerTwoRoundReconstructsCoefficient(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	for trial := 0; trial < 1<<12; trial++ {
		x := fieldElement(r.Uint32() % q)
		r1, r0 := power2Round(x)
		got := fieldAdd(fieldElement(uint32(r1)<<d), r0)
		require.Equal(t, x, got)
	}
}

func TestDecomposeReconstructsCoefficient(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	gammas := []uint32{gamma2QMinus1Div32, gamma2QMinus1Div88}
	for _, gamma2 := range gammas {
		for trial := 0; trial < 1<<12; trial++ {
			x := fieldElement(r.Uint32() % q)
			r1, r0 := decompose(x, gamma2)
			got := fieldAdd(fieldElement(r1*2*gamma2), fieldElement(uint32(r0+int32(q))%q))
			require.Equal(t, x, got)
		}
	}
}

// TestMakeHintUseHintRoundtrip checks that, given a correctly computed
// hint, useHint(makeHint(...)) reproduces HighBits(w) from an approximate
// w' a bounded perturbation away from w -- exactly the role hints play in
// signature verification (§4.7's r/ct0 split).
func TestMakeHintUseHintRoundtrip(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	gamma2 := uint32(gamma2QMinus1Div32)
	for trial := 0; trial < 1<<12; trial++ {
		w := fieldElement(r.Uint32() % q)
		// Perturbation in [-(gamma2-1), gamma2-1], the bound sign enforces on ct0.
		zc := r.Int31n(2*int32(gamma2)-1) - (int32(gamma2) - 1)
		z := fieldElement((zc + q) % q)

		hint := makeHint(z, w, gamma2)
		wPrime := fieldAdd(w, z)
		recovered := useHint(hint, wPrime, gamma2)
		expected := fieldElement(highBits(w, gamma2))
		require.Equal(t, expected, recovered)
	}
}

func TestPackT1Roundtrip(t *testing.T) {
	r := rand.New(rand.NewSource(30))
	var f ringElement
	for i := range f {
		f[i] = fieldElement(r.Uint32() % 1024)
	}
	got := unpackT1(packT1(f))
	require.Equal(t, f, got)
}

func TestPackT0Roundtrip(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	const center = 1 << 12
	var f ringElement
	for i := range f {
		c := fieldElement(r.Intn(1 << 13))
		f[i] = fieldSub(center, c)
	}
	got := unpackT0(packT0(f))
	require.Equal(t, f, got)
}

func TestPackEta2Roundtrip(t *testing.T) {
	r := rand.New(rand.NewSource(32))
	f := sampleBoundedPoly(randBytes(r, 64), eta2, 0)
	got, err := unpackEta2(packEta2(f))
	require.NoError(t, err)
	require.Equal(t, f, got)
}

func TestPackEta4Roundtrip(t *testing.T) {
	r := rand.New(rand.NewSource(33))
	f := sampleBoundedPoly(randBytes(r, 64), eta4, 0)
	got, err := unpackEta4(packEta4(f))
	require.NoError(t, err)
	require.Equal(t, f, got)
}

func TestUnpackEta2RejectsOutOfRange(t *testing.T) {
	b := make([]byte, encodingSize3)
	b[0] = 0xFF // first nibble group = 7, out of [0,4] after centering
	_, err := unpackEta2(b)
	require.ErrorIs(t, err, ErrInvalidEtaEncoding)
}

func TestPackZ17Roundtrip(t *testing.T) {
	r := rand.New(rand.NewSource(34))
	f := expandMask(randBytes(r, 32), gamma1Bits17)
	got := unpackZ17Sig(packZ17(f))
	require.Equal(t, f, got)
}

func TestPackZ19Roundtrip(t *testing.T) {
	r := rand.New(rand.NewSource(35))
	f := expandMask(randBytes(r, 32), gamma1Bits19)
	got := unpackZ19Sig(packZ19(f))
	require.Equal(t, f, got)
}

func TestHintPackRoundtrip(t *testing.T) {
	const k, omega = 6, omega55
	hints := make([]ringElement, k)
	r := rand.New(rand.NewSource(36))
	total := 0
	for i := 0; i < k && total < omega; i++ {
		for j := 0; j < n && total < omega; j++ {
			if r.Intn(4) == 0 {
				hints[i][j] = 1
				total++
			}
		}
	}

	packed := packHint(hints, omega)
	got := make([]ringElement, k)
	ok := unpackHint(packed, got, omega)
	require.True(t, ok)
	require.Equal(t, hints, got)
}

func TestHintUnpackRejectsMalformedPadding(t *testing.T) {
	const k, omega = 6, omega55
	b := make([]byte, omega+k)
	b[0] = 5 // row 0's single index
	for i := 0; i < k; i++ {
		b[omega+i] = 1 // every running total is 1: rows 1..k-1 hold no index
	}
	b[1] = 7 // slot past the final running total must be zero: invalid
	hints := make([]ringElement, k)
	ok := unpackHint(b, hints, omega)
	require.False(t, ok)
}

func randBytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}
