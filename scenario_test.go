package mldsa

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// constReader is a deterministic io.Reader that always yields the same
// repeating byte, used in place of crypto/rand.Reader to make the
// end-to-end scenarios reproducible (§8's "deterministic byte generator").
type constReader byte

func (c constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

func sequentialMessage(n int) []byte {
	m := make([]byte, n)
	for i := range m {
		m[i] = byte(i + 1)
	}
	return m
}

// TestScenarioS1Level44 is §8's S1: level 44, 1-byte message, all-zero
// seed and rnd. Signing twice must yield byte-identical signatures.
func TestScenarioS1Level44(t *testing.T) {
	key, err := NewKey44(make([]byte, SeedSize))
	require.NoError(t, err)

	message := sequentialMessage(1)

	sig1, err := key.SignWithContext(constReader(0), message, nil)
	require.NoError(t, err)
	require.True(t, key.PublicKey().Verify(sig1, message, nil))

	sig2, err := key.SignWithContext(constReader(0), message, nil)
	require.NoError(t, err)
	require.True(t, bytes.Equal(sig1, sig2))
}

// TestScenarioS2Level65 is §8's S2: level 65, 32-byte message.
func TestScenarioS2Level65(t *testing.T) {
	key, err := NewKey65(make([]byte, SeedSize))
	require.NoError(t, err)

	message := sequentialMessage(32)

	sig, err := key.SignWithContext(constReader(0), message, nil)
	require.NoError(t, err)
	require.True(t, key.PublicKey().Verify(sig, message, nil))
}

// TestScenarioS3Level87 is §8's S3: level 87, empty message.
func TestScenarioS3Level87(t *testing.T) {
	key, err := NewKey87(make([]byte, SeedSize))
	require.NoError(t, err)

	sig, err := key.SignWithContext(constReader(0), nil, nil)
	require.NoError(t, err)
	require.True(t, key.PublicKey().Verify(sig, nil, nil))
}

// TestScenarioS4TamperSignature is §8's S4: flipping bit 0 of the
// signature's first byte must cause verification to fail.
func TestScenarioS4TamperSignature(t *testing.T) {
	key, err := NewKey44(make([]byte, SeedSize))
	require.NoError(t, err)

	message := sequentialMessage(1)
	sig, err := key.SignWithContext(constReader(0), message, nil)
	require.NoError(t, err)

	tampered := append([]byte(nil), sig...)
	tampered[0] ^= 0x01
	require.False(t, key.PublicKey().Verify(tampered, message, nil))
}

// TestScenarioS5TamperPublicKey is §8's S5: flipping bit 3 of byte 40 of
// the encoded public key must cause verification to fail.
func TestScenarioS5TamperPublicKey(t *testing.T) {
	key, err := NewKey44(make([]byte, SeedSize))
	require.NoError(t, err)

	message := sequentialMessage(1)
	sig, err := key.SignWithContext(constReader(0), message, nil)
	require.NoError(t, err)
	require.True(t, key.PublicKey().Verify(sig, message, nil))

	pkBytes := key.PublicKey().Bytes()
	pkBytes[40] ^= 1 << 3
	tamperedPK, err := NewPublicKey44(pkBytes)
	require.NoError(t, err)
	require.False(t, tamperedPK.Verify(sig, message, nil))
}

// TestScenarioS6Hedged is §8's S6: two sign calls on the same (sk,
// message) with different nonzero rnd must both verify and, with
// overwhelming probability, differ.
func TestScenarioS6Hedged(t *testing.T) {
	key, err := NewKey44(make([]byte, SeedSize))
	require.NoError(t, err)

	message := sequentialMessage(1)

	sigA, err := key.SignWithContext(constReader(0x11), message, nil)
	require.NoError(t, err)
	sigB, err := key.SignWithContext(constReader(0x22), message, nil)
	require.NoError(t, err)

	require.True(t, key.PublicKey().Verify(sigA, message, nil))
	require.True(t, key.PublicKey().Verify(sigB, message, nil))
	require.False(t, bytes.Equal(sigA, sigB))
}

// TestTamperRejectionAllLevels fuzzes a single random bit flip in the
// signature for each security level, covering §8 property 6 across all
// three parameter sets (S4 only exercises level 44).
func TestTamperRejectionAllLevels(t *testing.T) {
	cases := []struct {
		name string
		sign func(msg []byte) ([]byte, func([]byte, []byte) bool, error)
	}{
		{
			name: "44",
			sign: func(msg []byte) ([]byte, func([]byte, []byte) bool, error) {
				key, err := GenerateKey44(constReader(0x42))
				if err != nil {
					return nil, nil, err
				}
				sig, err := key.SignWithContext(constReader(0x99), msg, nil)
				return sig, func(s, m []byte) bool { return key.PublicKey().Verify(s, m, nil) }, err
			},
		},
		{
			name: "65",
			sign: func(msg []byte) ([]byte, func([]byte, []byte) bool, error) {
				key, err := GenerateKey65(constReader(0x42))
				if err != nil {
					return nil, nil, err
				}
				sig, err := key.SignWithContext(constReader(0x99), msg, nil)
				return sig, func(s, m []byte) bool { return key.PublicKey().Verify(s, m, nil) }, err
			},
		},
		{
			name: "87",
			sign: func(msg []byte) ([]byte, func([]byte, []byte) bool, error) {
				key, err := GenerateKey87(constReader(0x42))
				if err != nil {
					return nil, nil, err
				}
				sig, err := key.SignWithContext(constReader(0x99), msg, nil)
				return sig, func(s, m []byte) bool { return key.PublicKey().Verify(s, m, nil) }, err
			},
		},
	}

	message := sequentialMessage(8)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig, verify, err := tc.sign(message)
			require.NoError(t, err)
			require.True(t, verify(sig, message))

			rng := rand.New(rand.NewSource(int64(len(sig))))
			bit := rng.Intn(len(sig) * 8)
			tampered := append([]byte(nil), sig...)
			tampered[bit/8] ^= 1 << (bit % 8)
			require.False(t, verify(tampered, message))
		})
	}
}
