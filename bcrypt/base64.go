package bcrypt

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// alphabet is bcrypt's base64 alphabet. It is not RFC 4648's: '.' and '/'
// come first and digits come last.
const alphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var bcEncoding = base64.NewEncoding(alphabet).WithPadding(base64.NoPadding)

func base64Encode(src []byte) string {
	return bcEncoding.EncodeToString(src)
}

// base64Decode decodes s, rejecting anything outside the alphabet. The stdlib
// decoder silently skips '\r' and '\n', which a hash field must never carry.
func base64Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return nil, fmt.Errorf("%w: illegal byte %#x at offset %d", ErrInvalidBase64, s[i], i)
		}
	}
	b, err := bcEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return b, nil
}
