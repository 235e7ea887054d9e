package bcrypt

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	encodedSaltLen = 22
	encodedHashLen = 31
	payloadLen     = encodedSaltLen + encodedHashLen
)

// HashParts is a bcrypt hash split into its fields. Salt and hash are kept
// in their encoded (bcrypt base64) form.
//
// A HashParts produced by [HashWithResult] can be rendered under any
// [Version] with [HashParts.FormatVersion]; one produced by [Parse] remembers
// the version it was parsed from.
type HashParts struct {
	version Version
	cost    uint32
	salt    string
	hash    string
}

// Version returns the tag the hash was parsed from, or [DefaultVersion] for
// freshly computed hashes.
func (p *HashParts) Version() Version { return p.version }

// Cost returns the work factor.
func (p *HashParts) Cost() uint32 { return p.cost }

// Salt returns the 22-character encoded salt.
func (p *HashParts) Salt() string { return p.salt }

// Hash returns the 31-character encoded digest.
func (p *HashParts) Hash() string { return p.hash }

// Format renders the hash under [DefaultVersion] (2b).
func (p *HashParts) Format() string {
	return p.FormatVersion(DefaultVersion)
}

// FormatVersion renders the hash as $<version>$<cost>$<salt><hash>, with the
// cost zero-padded to two digits. It panics if v is not a valid Version.
func (p *HashParts) FormatVersion(v Version) string {
	if !v.IsValid() {
		panic("bcrypt: invalid version " + v.String())
	}
	return fmt.Sprintf("$%s$%02d$%s%s", v, p.cost, p.salt, p.hash)
}

// String renders the hash under the 2y tag, the form PHP's password_hash
// writes. Use [HashParts.Format] for the package default.
func (p *HashParts) String() string {
	return p.FormatVersion(Version2Y)
}

// Parse splits a hash string into its parts. Empty fields between '$'
// separators are ignored, so exactly three fields must remain: version,
// cost, and the 53-character salt+hash payload.
//
// The cost is an unsigned decimal with an optional leading '+', so
// "$2b$+04$..." parses as cost 4; a '-' or any other sign is
// [ErrInvalidCost]. Parse does not check the cost range or decode the
// payload; [Verify] does.
func Parse(hash string) (*HashParts, error) {
	fields := strings.FieldsFunc(hash, func(r rune) bool { return r == '$' })
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields, got %d", ErrInvalidHash, len(fields))
	}

	v, err := ParseVersion(fields[0])
	if err != nil {
		return nil, err
	}

	cost, err := strconv.ParseUint(strings.TrimPrefix(fields[1], "+"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCost, fields[1])
	}

	payload := fields[2]
	if len(payload) != payloadLen {
		return nil, fmt.Errorf("%w: payload is %d bytes, want %d", ErrInvalidHash, len(payload), payloadLen)
	}

	return &HashParts{
		version: v,
		cost:    uint32(cost),
		salt:    payload[:encodedSaltLen],
		hash:    payload[encodedSaltLen:],
	}, nil
}

// Cost returns the work factor recorded in hash without verifying anything.
func Cost(hash string) (uint32, error) {
	p, err := Parse(hash)
	if err != nil {
		return 0, err
	}
	return p.cost, nil
}
