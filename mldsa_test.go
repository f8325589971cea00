package mldsa

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateKey44(t *testing.T) {
	key, err := GenerateKey44(rand.Reader)
	require.NoError(t, err)
	require.NotNil(t, key)
}

func TestGenerateKey65(t *testing.T) {
	key, err := GenerateKey65(rand.Reader)
	require.NoError(t, err)
	require.NotNil(t, key)
}

func TestGenerateKey87(t *testing.T) {
	key, err := GenerateKey87(rand.Reader)
	require.NoError(t, err)
	require.NotNil(t, key)
}

func TestSignVerify44(t *testing.T) {
	key, err := GenerateKey44(rand.Reader)
	require.NoError(t, err)

	message := []byte("hello, world!")
	sig, err := key.SignWithContext(rand.Reader, message, nil)
	require.NoError(t, err)
	require.Len(t, sig, SignatureSize44)

	pk := key.PublicKey()
	require.True(t, pk.Verify(sig, message, nil))
	require.False(t, pk.Verify(sig, []byte("wrong message"), nil))

	badSig := append([]byte(nil), sig...)
	badSig[0] ^= 0xFF
	require.False(t, pk.Verify(badSig, message, nil))
}

func TestSignVerify65(t *testing.T) {
	key, err := GenerateKey65(rand.Reader)
	require.NoError(t, err)

	message := []byte("hello, world!")
	sig, err := key.SignWithContext(rand.Reader, message, nil)
	require.NoError(t, err)
	require.Len(t, sig, SignatureSize65)

	pk := key.PublicKey()
	require.True(t, pk.Verify(sig, message, nil))
	require.False(t, pk.Verify(sig, []byte("wrong message"), nil))

	badSig := append([]byte(nil), sig...)
	badSig[0] ^= 0xFF
	require.False(t, pk.Verify(badSig, message, nil))
}

func TestSignVerify87(t *testing.T) {
	key, err := GenerateKey87(rand.Reader)
	require.NoError(t, err)

	message := []byte("hello, world!")
	sig, err := key.SignWithContext(rand.Reader, message, nil)
	require.NoError(t, err)
	require.Len(t, sig, SignatureSize87)

	pk := key.PublicKey()
	require.True(t, pk.Verify(sig, message, nil))
	require.False(t, pk.Verify(sig, []byte("wrong message"), nil))

	badSig := append([]byte(nil), sig...)
	badSig[0] ^= 0xFF
	require.False(t, pk.Verify(badSig, message, nil))
}

func TestSignVerifyWithContext65(t *testing.T) {
	key, err := GenerateKey65(rand.Reader)
	require.NoError(t, err)

	message := []byte("hello, world!")
	context := []byte("test context")

	sig, err := key.SignWithContext(rand.Reader, message, context)
	require.NoError(t, err)

	pk := key.PublicKey()

	require.True(t, pk.Verify(sig, message, context))
	require.False(t, pk.Verify(sig, message, []byte("wrong context")))
	require.False(t, pk.Verify(sig, message, nil))
}

// TestCryptoSignerInterface exercises the standard-library entry points
// (Public/Sign/SignMessage) rather than the *Key convenience wrappers, to
// confirm all three levels satisfy crypto.Signer and crypto.MessageSigner
// identically.
func TestCryptoSignerInterface(t *testing.T) {
	message := []byte("signed via crypto.Signer")

	key44, err := GenerateKey44(rand.Reader)
	require.NoError(t, err)
	sig44, err := key44.PrivateKey44.Sign(rand.Reader, message, &SignerOpts{})
	require.NoError(t, err)
	require.True(t, key44.PublicKey().Verify(sig44, message, nil))

	key65, err := GenerateKey65(rand.Reader)
	require.NoError(t, err)
	sig65, err := key65.PrivateKey65.Sign(rand.Reader, message, &SignerOpts{Context: []byte("ctx")})
	require.NoError(t, err)
	require.True(t, key65.PublicKey().Verify(sig65, message, []byte("ctx")))

	key87, err := GenerateKey87(rand.Reader)
	require.NoError(t, err)
	sig87, err := key87.PrivateKey87.SignMessage(rand.Reader, message, nil)
	require.NoError(t, err)
	require.True(t, key87.PublicKey().Verify(sig87, message, nil))

	pub := key65.PrivateKey65.Public()
	pk65, ok := pub.(*PublicKey65)
	require.True(t, ok)
	require.True(t, pk65.Equal(key65.PublicKey()))
}

func TestSignRejectsPreHashed(t *testing.T) {
	key, err := GenerateKey65(rand.Reader)
	require.NoError(t, err)

	_, err = key.PrivateKey65.SignMessage(rand.Reader, []byte("msg"), crypto.SHA256)
	require.ErrorIs(t, err, ErrPreHashedMessage)
}

func TestSignRejectsLongContext(t *testing.T) {
	key, err := GenerateKey44(rand.Reader)
	require.NoError(t, err)

	longContext := make([]byte, 256)
	_, err = key.SignWithContext(rand.Reader, []byte("msg"), longContext)
	require.ErrorIs(t, err, ErrContextTooLong)
}

func TestKeyRoundtrip44(t *testing.T) {
	key, err := GenerateKey44(rand.Reader)
	require.NoError(t, err)

	seed := key.Bytes()
	key2, err := NewKey44(seed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(key.PrivateKeyBytes(), key2.PrivateKeyBytes()))

	skBytes := key.PrivateKeyBytes()
	sk, err := NewPrivateKey44(skBytes)
	require.NoError(t, err)
	require.True(t, bytes.Equal(sk.Bytes(), skBytes))

	pk := key.PublicKey()
	pkBytes := pk.Bytes()
	pk2, err := NewPublicKey44(pkBytes)
	require.NoError(t, err)
	require.True(t, bytes.Equal(pk2.Bytes(), pkBytes))
}

func TestKeyRoundtrip65(t *testing.T) {
	key, err := GenerateKey65(rand.Reader)
	require.NoError(t, err)

	seed := key.Bytes()
	key2, err := NewKey65(seed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(key.PrivateKeyBytes(), key2.PrivateKeyBytes()))

	skBytes := key.PrivateKeyBytes()
	sk, err := NewPrivateKey65(skBytes)
	require.NoError(t, err)
	require.True(t, bytes.Equal(sk.Bytes(), skBytes))

	pk := key.PublicKey()
	pkBytes := pk.Bytes()
	pk2, err := NewPublicKey65(pkBytes)
	require.NoError(t, err)
	require.True(t, bytes.Equal(pk2.Bytes(), pkBytes))
}

func TestKeyRoundtrip87(t *testing.T) {
	key, err := GenerateKey87(rand.Reader)
	require.NoError(t, err)

	seed := key.Bytes()
	key2, err := NewKey87(seed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(key.PrivateKeyBytes(), key2.PrivateKeyBytes()))

	skBytes := key.PrivateKeyBytes()
	sk, err := NewPrivateKey87(skBytes)
	require.NoError(t, err)
	require.True(t, bytes.Equal(sk.Bytes(), skBytes))

	pk := key.PublicKey()
	pkBytes := pk.Bytes()
	pk2, err := NewPublicKey87(pkBytes)
	require.NoError(t, err)
	require.True(t, bytes.Equal(pk2.Bytes(), pkBytes))
}

func TestKeySizes(t *testing.T) {
	key44, err := GenerateKey44(rand.Reader)
	require.NoError(t, err)
	require.Len(t, key44.PublicKey().Bytes(), PublicKeySize44)
	require.Len(t, key44.PrivateKeyBytes(), PrivateKeySize44)

	key65, err := GenerateKey65(rand.Reader)
	require.NoError(t, err)
	require.Len(t, key65.PublicKey().Bytes(), PublicKeySize65)
	require.Len(t, key65.PrivateKeyBytes(), PrivateKeySize65)

	key87, err := GenerateKey87(rand.Reader)
	require.NoError(t, err)
	require.Len(t, key87.PublicKey().Bytes(), PublicKeySize87)
	require.Len(t, key87.PrivateKeyBytes(), PrivateKeySize87)
}

func TestPublicKeyEquality(t *testing.T) {
	key1, err := GenerateKey65(rand.Reader)
	require.NoError(t, err)
	key2, err := GenerateKey65(rand.Reader)
	require.NoError(t, err)

	pk1 := key1.PublicKey()
	pk1Copy := key1.PublicKey()
	pk2 := key2.PublicKey()

	require.True(t, pk1.Equal(pk1Copy))
	require.False(t, pk1.Equal(pk2))
}

func TestDeterministicKeyGen(t *testing.T) {
	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}

	key1, err := NewKey65(seed)
	require.NoError(t, err)
	key2, err := NewKey65(seed)
	require.NoError(t, err)
	require.True(t, bytes.Equal(key1.PrivateKeyBytes(), key2.PrivateKeyBytes()))
}

func TestNewKeyRejectsBadSeedLength(t *testing.T) {
	_, err := NewKey65(make([]byte, SeedSize-1))
	require.ErrorIs(t, err, ErrInvalidSeedLength)
}

func TestNewPublicKeyRejectsBadLength(t *testing.T) {
	_, err := NewPublicKey65(make([]byte, PublicKeySize65-1))
	require.ErrorIs(t, err, ErrInvalidPublicKeyLength)
}

func TestNewPrivateKeyRejectsBadLength(t *testing.T) {
	_, err := NewPrivateKey65(make([]byte, PrivateKeySize65-1))
	require.ErrorIs(t, err, ErrInvalidPrivateKeyLength)
}

func BenchmarkGenerateKey44(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateKey44(rand.Reader)
	}
}

func BenchmarkGenerateKey65(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateKey65(rand.Reader)
	}
}

func BenchmarkGenerateKey87(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateKey87(rand.Reader)
	}
}

func BenchmarkSign44(b *testing.B) {
	key, _ := GenerateKey44(rand.Reader)
	message := []byte("benchmark message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key.SignWithContext(rand.Reader, message, nil)
	}
}

func BenchmarkSign65(b *testing.B) {
	key, _ := GenerateKey65(rand.Reader)
	message := []byte("benchmark message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key.SignWithContext(rand.Reader, message, nil)
	}
}

func BenchmarkSign87(b *testing.B) {
	key, _ := GenerateKey87(rand.Reader)
	message := []byte("benchmark message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key.SignWithContext(rand.Reader, message, nil)
	}
}

func BenchmarkVerify44(b *testing.B) {
	key, _ := GenerateKey44(rand.Reader)
	message := []byte("benchmark message")
	sig, _ := key.SignWithContext(rand.Reader, message, nil)
	pk := key.PublicKey()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pk.Verify(sig, message, nil)
	}
}

func BenchmarkVerify65(b *testing.B) {
	key, _ := GenerateKey65(rand.Reader)
	message := []byte("benchmark message")
	sig, _ := key.SignWithContext(rand.Reader, message, nil)
	pk := key.PublicKey()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pk.Verify(sig, message, nil)
	}
}

func BenchmarkVerify87(b *testing.B) {
	key, _ := GenerateKey87(rand.Reader)
	message := []byte("benchmark message")
	sig, _ := key.SignWithContext(rand.Reader, message, nil)
	pk := key.PublicKey()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pk.Verify(sig, message, nil)
	}
}
