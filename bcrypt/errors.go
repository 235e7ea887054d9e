package bcrypt

import "errors"

// Sentinel errors returned for bad external input.
//
// Every error returned by this package wraps one of these, so use
// [errors.Is] for comparisons:
//
//	ok, err := bcrypt.Verify(password, stored)
//	if errors.Is(err, bcrypt.ErrInvalidHash) {
//	    // stored hash is malformed
//	}
//
// Violated internal preconditions, such as passing a 15-byte salt straight
// to [Digest], are programming errors and panic instead.
var (
	// ErrCostNotAllowed is returned when a cost falls outside
	// [MinCost, MaxCost]. Parsed hashes are checked when they are verified,
	// not when they are parsed.
	ErrCostNotAllowed = errors.New("bcrypt: cost not allowed")

	// ErrInvalidPassword is returned when a password contains a NUL byte,
	// which would collide with the terminator appended before hashing.
	ErrInvalidPassword = errors.New("bcrypt: invalid password: contains NUL byte")

	// ErrInvalidCost is returned when the cost field of a hash string is not
	// an unsigned decimal integer.
	ErrInvalidCost = errors.New("bcrypt: invalid cost")

	// ErrInvalidPrefix is returned when the version tag of a hash string is
	// not one of 2a, 2b, 2x or 2y.
	ErrInvalidPrefix = errors.New("bcrypt: invalid prefix")

	// ErrInvalidHash is returned when a hash string does not have exactly
	// three $-separated fields or its salt+hash field is not 53 characters.
	ErrInvalidHash = errors.New("bcrypt: invalid hash")

	// ErrInvalidBase64 is returned when the salt or hash field contains
	// characters outside the bcrypt alphabet or has an impossible length.
	ErrInvalidBase64 = errors.New("bcrypt: invalid base64")
)
