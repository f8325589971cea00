package mldsa

// fieldElement is an integer modulo q, always in reduced form [0, q).
//
// Coefficients of ringElement/nttElement are always stored as canonical
// fieldElement values (§3: "the representative is reduced before
// comparisons and before serialization"). The only values that live
// permanently in Montgomery form are the precomputed NTT twiddles
// (zetas, see ntt.go) and invN. fieldMul takes one Montgomery-form
// operand and one canonical operand and returns a canonical product;
// this is what lets sampled, canonical polynomial coefficients be
// multiplied directly against the Montgomery-form zeta table without an
// explicit per-call conversion.
type fieldElement uint32

// ringElement is a polynomial with n coefficients in Z_q, in the
// "normal" (coefficient) domain. highBits/lowBits/makeHint/useHint/
// infinityNorm are only meaningful here (§3).
type ringElement [n]fieldElement

// nttElement is the NTT representation of a polynomial, in the
// "evaluation" domain. Pointwise multiply (nttMul) is only meaningful
// here (§3). The domain is not carried in the type; callers track it
// through the data-flow graph of keygen/sign/verify, per the Design
// Notes in spec.md §9.
type nttElement [n]fieldElement

// Montgomery form constants.
const (
	// qInv = q^(-1) mod 2^32
	qInv = 58728449
	// qNegInv = -q^(-1) mod 2^32 = 2^32 - qInv
	qNegInv = 4236238847
	// montR = 2^32 mod q (Montgomery R)
	montR = 4193792
	// montR2 = 2^64 mod q (Montgomery R^2)
	montR2 = 2365951
	// invN = n^(-1) * R^2 mod q (for inverse NTT scaling)
	invN = 41978
)

// fieldReduceOnce reduces a value < 2q to [0, q).
func fieldReduceOnce(a uint32) fieldElement {
	// If a >= q, subtract q
	x := a - q
	// If underflow (a < q), x has high bit set
	x += (x >> 31) * q
	return fieldElement(x)
}

// fieldAdd returns (a + b) mod q.
func fieldAdd(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) + uint32(b))
}

// fieldSub returns (a - b) mod q.
func fieldSub(a, b fieldElement) fieldElement {
	return fieldReduceOnce(uint32(a) - uint32(b) + q)
}

// fieldNeg returns (-a) mod q.
func fieldNeg(a fieldElement) fieldElement {
	return fieldSub(0, a)
}

// fieldReduce performs Montgomery reduction: returns a * R^(-1) mod q
// where a < q * 2^32.
func fieldReduce(a uint64) fieldElement {
	// Montgomery reduction: t = ((a mod 2^32) * qNegInv) mod 2^32
	t := uint32(a) * qNegInv
	// result = (a + t*q) / 2^32
	return fieldReduceOnce(uint32((a + uint64(t)*q) >> 32))
}

// fieldMul returns (a * b) mod q using Montgomery multiplication. If
// exactly one of a, b is in Montgomery form, the result is canonical;
// if both are canonical, the result is a*b*R^(-1) mod q.
func fieldMul(a, b fieldElement) fieldElement {
	return fieldReduce(uint64(a) * uint64(b))
}

// toMontgomery converts a canonical field element to Montgomery form
// (returns a*R mod q).
func toMontgomery(a fieldElement) fieldElement {
	return fieldMul(a, montR2)
}

// fieldCanonicalMul returns (a * b) mod q for two canonical field
// elements, implementing §4.1's plain multiplication on top of the
// Montgomery hot path used by ntt.go.
func fieldCanonicalMul(a, b fieldElement) fieldElement {
	return fieldMul(toMontgomery(a), b)
}

// fieldExp returns a^e mod q by square-and-multiply. Not constant-time
// over e: §4.1 notes this is acceptable because the scheme never raises
// a secret value to a secret or data-dependent exponent.
func fieldExp(a fieldElement, e uint32) fieldElement {
	result := fieldElement(1)
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = fieldCanonicalMul(result, base)
		}
		base = fieldCanonicalMul(base, base)
		e >>= 1
	}
	return result
}

// fieldInverse returns a^(-1) mod q via Fermat's little theorem
// (a^(q-2)). fieldInverse(0) == 0, matching the 0/0 = 0 convention used
// by fieldDiv (§4.1): 0 raised to any positive power is 0.
func fieldInverse(a fieldElement) fieldElement {
	return fieldExp(a, q-2)
}

// fieldDiv returns a/b mod q, i.e. a * b^(-1). By convention 0/0 = 0,
// and more generally a/0 = 0 for any a, matching fieldInverse(0) == 0.
func fieldDiv(a, b fieldElement) fieldElement {
	return fieldCanonicalMul(a, fieldInverse(b))
}

// fieldEqual reports whether a and b are the same canonical
// representative.
func fieldEqual(a, b fieldElement) bool {
	return a == b
}

// polyAdd adds two polynomials coefficient-wise.
func polyAdd[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldAdd(a[i], b[i])
	}
	return c
}

// polySub subtracts two polynomials coefficient-wise.
func polySub[T ~[n]fieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = fieldSub(a[i], b[i])
	}
	return c
}

// polyNeg negates a polynomial coefficient-wise.
func polyNeg[T ~[n]fieldElement](a T) (c T) {
	for i := range c {
		c[i] = fieldNeg(a[i])
	}
	return c
}
