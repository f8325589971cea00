package mldsa

import "github.com/pkg/errors"

// Sentinel errors returned at the package boundary (§7). Verify never
// returns an error — all of its failure modes collapse to a single
// boolean, per spec. These are the two places the scheme layer can fail:
// malformed caller input (seeds, encoded keys, contexts) and rejection-
// loop exhaustion during Sign.
var (
	// ErrInvalidSeedLength is returned when a key-generation seed is not
	// exactly SeedSize bytes.
	ErrInvalidSeedLength = errors.New("mldsa: invalid seed length")

	// ErrInvalidPublicKeyLength is returned when an encoded public key
	// does not match the expected size for its parameter set.
	ErrInvalidPublicKeyLength = errors.New("mldsa: invalid public key length")

	// ErrInvalidPrivateKeyLength is returned when an encoded private key
	// does not match the expected size for its parameter set.
	ErrInvalidPrivateKeyLength = errors.New("mldsa: invalid private key length")

	// ErrInvalidEtaEncoding is returned when a packed s1/s2 coefficient
	// decodes to a value outside [-eta, eta].
	ErrInvalidEtaEncoding = errors.New("mldsa: invalid eta encoding")

	// ErrContextTooLong is returned when a Sign context string exceeds
	// 255 bytes. Verify rejects such a context by returning false.
	ErrContextTooLong = errors.New("mldsa: context too long")

	// ErrPreHashedMessage is returned by SignMessage when opts specifies
	// a hash function; ML-DSA signs messages directly (§1 Non-goals).
	ErrPreHashedMessage = errors.New("mldsa: cannot sign pre-hashed messages")

	// ErrRejectionLoopExceeded is returned by Sign if the Fiat-Shamir
	// rejection loop does not converge within maxSignAttempts iterations
	// (§4.7, §7). This should not occur for correctly generated keys;
	// it exists so a caller cannot hang forever on a corrupted secret
	// key.
	ErrRejectionLoopExceeded = errors.New("mldsa: rejection sampling loop exceeded maximum attempts")
)
