package hashing

import "github.com/hasbyte1/go-bcrypt/bcrypt"

// DriverName identifies a hashing driver registered with a [Manager].
type DriverName string

// DriverBcrypt selects the built-in bcrypt driver.
const DriverBcrypt DriverName = "bcrypt"

// Hasher is the interface satisfied by every password-hashing driver.
//
// Implementations must be safe for concurrent use. Every method is
// synchronous and may take as long as one full hash; wrap a Hasher in a
// [Pool] to bound and cancel waiting on a request path.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string.
	// A fresh salt is generated for every call.
	Make(password string) (string, error)

	// Check reports whether password matches hash: (true, nil) on match,
	// (false, nil) on mismatch, (false, err) if hash is malformed.
	Check(password, hash string) (bool, error)

	// NeedsRehash reports whether hash was produced with settings that differ
	// from the hasher's current configuration.
	NeedsRehash(hash string) (bool, error)

	// Info extracts the parameters recorded in hash without verifying it.
	Info(hash string) (HashInfo, error)

	// Driver returns the name this hasher registers under.
	Driver() DriverName
}

// HashInfo carries the parameters parsed from an encoded hash.
type HashInfo struct {
	Driver DriverName

	// Params holds driver-specific parameters. For bcrypt:
	//   "cost"    → int
	//   "version" → string ("2a", "2b", "2x" or "2y")
	Params map[string]any
}

// DetectDriver guesses which driver produced hash from its prefix. It does
// not validate the rest of the string.
//
// The second return value is false when the prefix is not recognised.
func DetectDriver(hash string) (DriverName, bool) {
	// $2a$, $2b$, $2x$, $2y$
	if len(hash) > 4 && hash[0] == '$' && hash[3] == '$' {
		if _, err := bcrypt.ParseVersion(hash[1:3]); err == nil {
			return DriverBcrypt, true
		}
	}
	return "", false
}
