// Package bcrypt implements the bcrypt adaptive password hash.
//
// # Quick start
//
//	hash, err := bcrypt.Hash([]byte("my-secret-password"), bcrypt.DefaultCost)
//	if err != nil { log.Fatal(err) }
//
//	ok, err := bcrypt.Verify([]byte("my-secret-password"), hash) // true, nil
//
// # Hash format
//
// Hashes use the Modular Crypt Format shared by OpenBSD, crypt_blowfish, PHP
// and golang.org/x/crypto/bcrypt:
//
//	$2b$10$N9qo8uLOickgx2ZMRZoMye8fOsiTWZqYtkxvXkKm8BMzjT7t/vIdq
//	 \/ \/ \____________________/\_____________________________/
//	 |  |        salt (22)                  hash (31)
//	 |  cost, two digits
//	 version tag: 2a, 2b, 2x or 2y
//
// The four version tags are accepted on input and produce the same digest.
// [Hash] and [HashParts.Format] write 2b; [HashParts.String] writes 2y.
//
// # Errors
//
// Bad input (an out-of-range cost, a password containing NUL, a malformed
// hash string) is reported through the sentinel errors in this package.
// [Digest] is the exception: it trusts its caller and panics when handed
// buffers of the wrong size.
//
// # Cost
//
// Every increment of the cost doubles the work. Hashing is CPU-bound and
// runs to completion once started; callers on a latency-sensitive path
// should dispatch through a bounded worker such as hashing.Pool.
package bcrypt
