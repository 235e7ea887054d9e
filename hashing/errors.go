package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons. Errors that originate in the bcrypt
// package are wrapped alongside these, so both checks work:
//
//	ok, err := hasher.Check(password, hash)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // stored hash is malformed
//	}
//	if errors.Is(err, bcrypt.ErrInvalidBase64) {
//	    // ... and this is why
//	}
var (
	// ErrInvalidHash is returned when a stored hash cannot be parsed or
	// decoded, or names a cost outside the supported range.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash string")

	// ErrInvalidOption is returned when a constructor receives an
	// out-of-range option (a bcrypt cost outside [4, 31], an unknown version
	// tag, a negative pool size).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Make] / [Manager.Check] when the requested driver has not been
	// registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] for an empty
	// driver name.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] and [NewPool] when
	// given a nil [Hasher].
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrAlgorithmMismatch is returned when a hash string was not produced
	// by the algorithm the [Hasher] implements.
	ErrAlgorithmMismatch = errors.New("hashing: hash was produced by a different algorithm")
)
