package hashing

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

// DefaultBcryptCost is the work factor used by [DefaultBcryptOptions].
//
// At cost 12 a hash takes roughly 250 ms on a current server core. Measure
// on your own hardware and pick the highest cost your login latency budget
// allows.
const DefaultBcryptCost = int(bcrypt.DefaultCost)

// BcryptOptions configures a [BcryptHasher].
type BcryptOptions struct {
	// Cost is the bcrypt work factor, in [bcrypt.MinCost, bcrypt.MaxCost].
	// Default: [DefaultBcryptCost].
	Cost int

	// Version is the tag written into new hashes. The zero value means
	// [bcrypt.DefaultVersion] (2b). Use [bcrypt.Version2Y] when the hashes
	// are shared with PHP.
	Version bcrypt.Version
}

// DefaultBcryptOptions returns BcryptOptions with [DefaultBcryptCost] and the
// 2b tag.
func DefaultBcryptOptions() BcryptOptions {
	return BcryptOptions{Cost: DefaultBcryptCost, Version: bcrypt.DefaultVersion}
}

// BcryptHasher is the bcrypt [Hasher]. It is immutable after construction
// and safe for concurrent use.
//
// Only the first 72 bytes of a password are significant. Passwords that
// contain a NUL byte are rejected with [bcrypt.ErrInvalidPassword].
type BcryptHasher struct {
	cost    uint32
	version bcrypt.Version
}

// NewBcryptHasher constructs a BcryptHasher. It returns [ErrInvalidOption]
// if Cost is out of range or Version is not a known tag.
func NewBcryptHasher(opts BcryptOptions) (*BcryptHasher, error) {
	if opts.Cost < int(bcrypt.MinCost) || opts.Cost > int(bcrypt.MaxCost) {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if opts.Version == 0 {
		opts.Version = bcrypt.DefaultVersion
	}
	if !opts.Version.IsValid() {
		return nil, fmt.Errorf("%w: unknown bcrypt version %v", ErrInvalidOption, opts.Version)
	}
	return &BcryptHasher{cost: uint32(opts.Cost), version: opts.Version}, nil
}

// Driver returns [DriverBcrypt].
func (h *BcryptHasher) Driver() DriverName { return DriverBcrypt }

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int { return int(h.cost) }

// Version returns the tag written into new hashes.
func (h *BcryptHasher) Version() bcrypt.Version { return h.version }

// Make hashes password and formats it under the configured version, e.g.
// "$2b$12$...".
func (h *BcryptHasher) Make(password string) (string, error) {
	parts, err := bcrypt.HashWithResult([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
	}
	return parts.FormatVersion(h.version), nil
}

// Check verifies password against a bcrypt hash of any version and cost.
// A mismatch is (false, nil).
func (h *BcryptHasher) Check(password, hash string) (bool, error) {
	if !looksLikeBcrypt(hash) {
		return false, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrAlgorithmMismatch)
	}
	ok, err := bcrypt.Verify([]byte(password), hash)
	if err != nil {
		return false, wrapVerifyError(err)
	}
	return ok, nil
}

// NeedsRehash returns true if hash was produced with a different cost or
// version tag than the hasher is configured for. A lower stored cost is the
// usual reason; a higher one means the configuration was dialled back.
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	parts, err := h.parse(hash)
	if err != nil {
		return false, err
	}
	return parts.Cost() != h.cost || parts.Version() != h.version, nil
}

// Info extracts the cost and version tag from a bcrypt hash.
func (h *BcryptHasher) Info(hash string) (HashInfo, error) {
	parts, err := h.parse(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverBcrypt,
		Params: map[string]any{
			"cost":    int(parts.Cost()),
			"version": parts.Version().String(),
		},
	}, nil
}

func (h *BcryptHasher) parse(hash string) (*bcrypt.HashParts, error) {
	if !looksLikeBcrypt(hash) {
		return nil, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrAlgorithmMismatch)
	}
	parts, err := bcrypt.Parse(hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return parts, nil
}

func looksLikeBcrypt(hash string) bool {
	d, ok := DetectDriver(hash)
	return ok && d == DriverBcrypt
}

// wrapVerifyError tags errors about the stored hash with ErrInvalidHash. A
// bad password is the caller's input, not the hash's, and keeps its own
// identity.
func wrapVerifyError(err error) error {
	if errors.Is(err, bcrypt.ErrInvalidPassword) {
		return fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidHash, err)
}
