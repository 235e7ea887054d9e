package bcrypt

import "fmt"

// Version is the tag between the first two '$' of a bcrypt hash.
//
// All four versions produce the same digest for the same input; the tag only
// records which implementation family the hash claims to come from. The zero
// Version is not valid.
type Version uint8

const (
	// Version2A is the original OpenBSD tag.
	Version2A Version = iota + 1
	// Version2B is the current OpenBSD tag and this package's default.
	Version2B
	// Version2X marks hashes from crypt_blowfish's buggy 8-bit handling.
	Version2X
	// Version2Y is crypt_blowfish's (and PHP's) tag for correct hashes.
	Version2Y
)

// DefaultVersion is the tag written by [Hash] and [HashParts.Format].
const DefaultVersion = Version2B

var versionTags = [...]string{
	Version2A: "2a",
	Version2B: "2b",
	Version2X: "2x",
	Version2Y: "2y",
}

// ParseVersion maps a tag such as "2b" to its Version. Unknown tags return
// [ErrInvalidPrefix].
func ParseVersion(tag string) (Version, error) {
	for v := Version2A; v <= Version2Y; v++ {
		if versionTags[v] == tag {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPrefix, tag)
}

// IsValid reports whether v is one of the four known versions.
func (v Version) IsValid() bool {
	return v >= Version2A && v <= Version2Y
}

// String returns the tag, e.g. "2b".
func (v Version) String() string {
	if !v.IsValid() {
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
	return versionTags[v]
}
