package mldsa

// This file implements the PolyVec/PolyMat layer of spec.md §4.4:
// componentwise lifts of the Poly operations (field.go, poly.go, ntt.go)
// plus matrix-by-vector multiply in NTT domain. Go has no const-generic
// array lengths (a type parameter cannot stand for an array's length),
// so PolyVec/PolyMat aren't distinct named types here — k and l are
// compile-time constants per security level (mldsa44.go/65.go/87.go),
// and a [k]ringElement / [k*l]nttElement array is sliced (arr[:]) when
// passed to these helpers. Slicing a fixed array does not allocate, so
// the "no heap allocation in the hot path" guidance of §5 still holds.

// vecNTT computes the forward NTT of every polynomial in src, storing
// results in dst. dst and src must have equal length.
func vecNTT(dst []nttElement, src []ringElement) {
	for i := range src {
		dst[i] = ntt(src[i])
	}
}

// vecINTT computes the inverse NTT of every polynomial in src, storing
// results in dst. dst and src must have equal length.
func vecINTT(dst []ringElement, src []nttElement) {
	for i := range src {
		dst[i] = invNTT(src[i])
	}
}

// vecAdd adds two polynomial vectors componentwise into dst. All three
// slices must have equal length; dst may alias a or b.
func vecAdd(dst, a, b []ringElement) {
	for i := range dst {
		dst[i] = polyAdd(a[i], b[i])
	}
}

// matVecMulNTT computes dst[i] = sum_{j=0}^{cols-1} a[i*cols+j] * v[j]
// for i in [0, rows), entirely in NTT domain. a is the row-major
// rows x cols matrix produced by ExpandA (sample.go's sampleNTTPoly);
// v has length cols; dst has length rows.
//
// This is the one piece of arithmetic shared verbatim by keygen (A*s1),
// Public (A*s1) and sign (A*y) across all three parameter levels (§4.6).
// Verify computes A*z in its own loop, fused with the c*t1*2^d subtraction.
func matVecMulNTT(dst, a, v []nttElement, rows, cols int) {
	for i := 0; i < rows; i++ {
		var acc nttElement
		for j := 0; j < cols; j++ {
			acc = polyAdd(acc, nttMul(a[i*cols+j], v[j]))
		}
		dst[i] = acc
	}
}

// expandAInto fills a (row-major rows x cols, NTT domain) by rejection
// sampling against rho, per §4.4's ExpandA: A[i][j] = RejNTTPoly(rho, j, i).
func expandAInto(a []nttElement, rho []byte, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a[i*cols+j] = sampleNTTPoly(rho, byte(j), byte(i))
		}
	}
}
