package bcrypt

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/blowfish"
)

const (
	// MinCost is the smallest work factor accepted by [Hash] and [Verify].
	MinCost uint32 = 4
	// MaxCost is the largest work factor accepted by [Hash] and [Verify].
	MaxCost uint32 = 31
	// DefaultCost is a reasonable starting work factor. Choosing one for a
	// given deployment is left to the caller.
	DefaultCost uint32 = 12

	// SaltLen is the length of the raw salt in bytes.
	SaltLen = 16
	// DigestLen is the length of the raw output of [Digest]. Only the first
	// DigestLen-1 bytes appear in an encoded hash.
	DigestLen = 24
	// MaxPasswordLen is the number of password bytes (terminator included)
	// that bcrypt looks at. Anything beyond is ignored.
	MaxPasswordLen = 72
)

// magicCipherData is encrypted 64 times per block to produce the digest.
var magicCipherData = []byte("OrpheanBeholderScryDoubt")

// randReader is the salt source; tests swap it out.
var randReader io.Reader = rand.Reader

// Digest computes the raw 24-byte bcrypt digest into out.
//
// password must already be NUL-terminated and truncated by the caller; it
// is used verbatim as the Blowfish key. Digest panics unless salt is
// [SaltLen] bytes, password is 1 to [MaxPasswordLen] bytes, out is
// [DigestLen] bytes and cost is at most [MaxCost]. Most callers want [Hash]
// or [Verify] instead.
func Digest(cost uint32, salt, password, out []byte) {
	if len(salt) != SaltLen {
		panic("bcrypt: salt must be 16 bytes")
	}
	if len(password) == 0 || len(password) > MaxPasswordLen {
		panic("bcrypt: password must be 1 to 72 bytes")
	}
	if len(out) != DigestLen {
		panic("bcrypt: output must be 24 bytes")
	}
	if cost > MaxCost {
		panic("bcrypt: cost out of range")
	}

	c := expensiveBlowfishSetup(cost, salt, password)
	defer func() { *c = blowfish.Cipher{} }()

	copy(out, magicCipherData)
	for i := 0; i < DigestLen; i += blowfish.BlockSize {
		for j := 0; j < 64; j++ {
			c.Encrypt(out[i:i+blowfish.BlockSize], out[i:i+blowfish.BlockSize])
		}
	}
}

// expensiveBlowfishSetup runs the EksBlowfish schedule: one salted key
// expansion, then 2^cost rounds that re-key with the key and then the salt.
func expensiveBlowfishSetup(cost uint32, salt, key []byte) *blowfish.Cipher {
	c, err := blowfish.NewSaltedCipher(key, salt)
	if err != nil {
		// Only an empty key fails, and Digest has ruled that out.
		panic("bcrypt: " + err.Error())
	}
	rounds := uint64(1) << cost
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(key, c)
		blowfish.ExpandKey(salt, c)
	}
	return c
}

// hashPassword validates its input and produces the encoded parts for
// password under the given cost and raw salt.
func hashPassword(password []byte, cost uint32, salt []byte) (*HashParts, error) {
	if cost < MinCost || cost > MaxCost {
		return nil, fmt.Errorf("%w: cost %d must be in [%d, %d]", ErrCostNotAllowed, cost, MinCost, MaxCost)
	}
	if bytes.IndexByte(password, 0) >= 0 {
		return nil, ErrInvalidPassword
	}

	key := make([]byte, len(password)+1)
	copy(key, password)
	defer clear(key)
	if len(key) > MaxPasswordLen {
		key = key[:MaxPasswordLen]
	}

	var out [DigestLen]byte
	Digest(cost, salt, key, out[:])

	return &HashParts{
		version: DefaultVersion,
		cost:    cost,
		salt:    base64Encode(salt),
		hash:    base64Encode(out[:DigestLen-1]),
	}, nil
}

// Hash hashes password with a fresh random salt and returns it formatted
// under [DefaultVersion].
//
// Only the first 72 bytes of a password are significant, as in every other
// bcrypt implementation. Passwords containing a NUL byte are rejected with
// [ErrInvalidPassword].
func Hash(password []byte, cost uint32) (string, error) {
	p, err := HashWithResult(password, cost)
	if err != nil {
		return "", err
	}
	return p.Format(), nil
}

// HashWithResult is [Hash] but returns the parts, so the caller can pick the
// version tag with [HashParts.FormatVersion].
func HashWithResult(password []byte, cost uint32) (*HashParts, error) {
	var salt [SaltLen]byte
	if _, err := io.ReadFull(randReader, salt[:]); err != nil {
		return nil, fmt.Errorf("bcrypt: generating salt: %w", err)
	}
	return hashPassword(password, cost, salt[:])
}

// HashWithSalt hashes password with a caller-supplied salt. The result is
// deterministic; use it for known-answer tests and migrations, never with a
// reused salt for real credentials.
func HashWithSalt(password []byte, cost uint32, salt [SaltLen]byte) (*HashParts, error) {
	return hashPassword(password, cost, salt[:])
}

// Verify reports whether password matches hash.
//
// A mismatch is (false, nil). Malformed hashes return an error wrapping
// [ErrInvalidHash], [ErrInvalidPrefix], [ErrInvalidCost], [ErrInvalidBase64]
// or [ErrCostNotAllowed]; Verify never panics on a bad hash string. The
// digest comparison takes the same time wherever the first difference is.
// The cost range is checked before the stored digest is decoded.
func Verify(password []byte, hash string) (bool, error) {
	parts, err := Parse(hash)
	if err != nil {
		return false, err
	}

	salt, err := base64Decode(parts.salt)
	if err != nil {
		return false, err
	}
	if len(salt) != SaltLen {
		return false, fmt.Errorf("%w: salt decodes to %d bytes", ErrInvalidHash, len(salt))
	}

	generated, err := hashPassword(password, parts.cost, salt)
	if err != nil {
		return false, err
	}
	stored, err := base64Decode(parts.hash)
	if err != nil {
		return false, err
	}
	computed, err := base64Decode(generated.hash)
	if err != nil {
		return false, err
	}

	// ConstantTimeCompare returns 0 for differing lengths without looking at
	// the contents.
	return subtle.ConstantTimeCompare(stored, computed) == 1, nil
}
