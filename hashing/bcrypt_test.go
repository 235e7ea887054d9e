package hashing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
	"github.com/hasbyte1/go-bcrypt/hashing"
)

// testBcryptCost is the minimum work factor so the suite runs quickly.
// Production code should use DefaultBcryptCost.
const testBcryptCost = int(bcrypt.MinCost)

func newTestBcryptHasher(t *testing.T) *hashing.BcryptHasher {
	t.Helper()
	h, err := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: testBcryptCost})
	if err != nil {
		t.Fatalf("NewBcryptHasher: %v", err)
	}
	return h
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructor
// ──────────────────────────────────────────────────────────────────────────────

func TestNewBcryptHasher_Valid(t *testing.T) {
	for _, cost := range []int{int(bcrypt.MinCost), 10, 12, int(bcrypt.MaxCost)} {
		h, err := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: cost})
		if err != nil {
			t.Errorf("cost %d: unexpected error %v", cost, err)
		}
		if h == nil {
			t.Errorf("cost %d: expected non-nil hasher", cost)
		}
		if h != nil && h.Cost() != cost {
			t.Errorf("cost %d: got %d", cost, h.Cost())
		}
	}
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	for _, cost := range []int{int(bcrypt.MinCost) - 1, 0, -1, int(bcrypt.MaxCost) + 1, 99} {
		_, err := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: cost})
		if !errors.Is(err, hashing.ErrInvalidOption) {
			t.Errorf("cost %d: expected ErrInvalidOption, got %v", cost, err)
		}
	}
}

func TestNewBcryptHasher_Version(t *testing.T) {
	h := newTestBcryptHasher(t)
	if h.Version() != bcrypt.Version2B {
		t.Errorf("zero Version should default to 2b, got %v", h.Version())
	}

	_, err := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: testBcryptCost, Version: 42})
	if !errors.Is(err, hashing.ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption for unknown version, got %v", err)
	}
}

func TestDefaultBcryptOptions(t *testing.T) {
	opts := hashing.DefaultBcryptOptions()
	if opts.Cost != hashing.DefaultBcryptCost {
		t.Errorf("got cost %d, want %d", opts.Cost, hashing.DefaultBcryptCost)
	}
	if opts.Version != bcrypt.Version2B {
		t.Errorf("got version %v, want 2b", opts.Version)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Make
// ──────────────────────────────────────────────────────────────────────────────

func TestBcryptHasher_Make_ReturnsHash(t *testing.T) {
	h := newTestBcryptHasher(t)
	hash, err := h.Make("password123")
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if !strings.HasPrefix(hash, "$2b$04$") {
		t.Fatalf("unexpected prefix: %q", hash)
	}
	if len(hash) != 60 {
		t.Fatalf("len = %d, want 60", len(hash))
	}
}

func TestBcryptHasher_Make_WritesConfiguredVersion(t *testing.T) {
	h, err := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: testBcryptCost, Version: bcrypt.Version2Y})
	if err != nil {
		t.Fatalf("NewBcryptHasher: %v", err)
	}
	hash, _ := h.Make("pw")
	if !strings.HasPrefix(hash, "$2y$") {
		t.Fatalf("expected 2y tag, got %q", hash)
	}
}

func TestBcryptHasher_Make_ProducesUniqueHashes(t *testing.T) {
	h := newTestBcryptHasher(t)
	h1, _ := h.Make("same-password")
	h2, _ := h.Make("same-password")
	if h1 == h2 {
		t.Error("two Make calls with the same password must produce different hashes (different salts)")
	}
}

func TestBcryptHasher_Make_EmptyPassword(t *testing.T) {
	h := newTestBcryptHasher(t)
	hash, err := h.Make("")
	if err != nil {
		t.Fatalf("Make empty password: %v", err)
	}
	ok, err := h.Check("", hash)
	if err != nil || !ok {
		t.Fatal("Check empty password failed")
	}
}

func TestBcryptHasher_Make_NULPassword(t *testing.T) {
	h := newTestBcryptHasher(t)
	_, err := h.Make("nul\x00byte")
	if !errors.Is(err, bcrypt.ErrInvalidPassword) {
		t.Errorf("expected bcrypt.ErrInvalidPassword, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Check
// ──────────────────────────────────────────────────────────────────────────────

func TestBcryptHasher_Check_CorrectPassword(t *testing.T) {
	h := newTestBcryptHasher(t)
	hash, _ := h.Make("hunter2")
	ok, err := h.Check("hunter2", hash)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !ok {
		t.Error("Check returned false for correct password")
	}
}

func TestBcryptHasher_Check_WrongPassword(t *testing.T) {
	h := newTestBcryptHasher(t)
	hash, _ := h.Make("hunter2")
	ok, err := h.Check("wrong-password", hash)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if ok {
		t.Error("Check returned true for wrong password")
	}
}

func TestBcryptHasher_Check_OtherCostAndVersion(t *testing.T) {
	// Check must follow the parameters recorded in the hash, not its own.
	h := newTestBcryptHasher(t)
	const stored = "$2y$05$CCCCCCCCCCCCCCCCCCCCC.E5YPO9kmyuRGyh0XouQYb4YMJKvyOeW"
	ok, err := h.Check("U*U", stored)
	if err != nil || !ok {
		t.Fatalf("Check: ok=%v err=%v", ok, err)
	}
}

func TestBcryptHasher_Check_NotBcrypt(t *testing.T) {
	h := newTestBcryptHasher(t)
	for _, hash := range []string{"not-a-hash", "$argon2id$v=19$m=65536,t=3,p=2$abc$def", "$9a$04$x"} {
		_, err := h.Check("password", hash)
		if !errors.Is(err, hashing.ErrAlgorithmMismatch) {
			t.Errorf("%q: expected ErrAlgorithmMismatch, got %v", hash, err)
		}
	}
}

func TestBcryptHasher_Check_MalformedBcrypt(t *testing.T) {
	h := newTestBcryptHasher(t)
	cases := map[string]error{
		"$2b$04$tooshort": bcrypt.ErrInvalidHash,
		"$2b$xx$N9qo8uLOickgx2ZMRZoMyeSuVmV5MQilj2yZi38Fq2CCnx12jZvOG": bcrypt.ErrInvalidCost,
		"$2b$04$N9qo8uLOickgx2ZMRZoMy!SuVmV5MQilj2yZi38Fq2CCnx12jZvOG": bcrypt.ErrInvalidBase64,
		"$2b$40$N9qo8uLOickgx2ZMRZoMyeSuVmV5MQilj2yZi38Fq2CCnx12jZvOG": bcrypt.ErrCostNotAllowed,
	}
	for hash, cause := range cases {
		ok, err := h.Check("password", hash)
		if ok {
			t.Errorf("%q: Check returned true", hash)
		}
		if !errors.Is(err, hashing.ErrInvalidHash) {
			t.Errorf("%q: expected ErrInvalidHash, got %v", hash, err)
		}
		if !errors.Is(err, cause) {
			t.Errorf("%q: expected cause %v, got %v", hash, cause, err)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NeedsRehash
// ──────────────────────────────────────────────────────────────────────────────

func TestBcryptHasher_NeedsRehash_SameConfig(t *testing.T) {
	h := newTestBcryptHasher(t)
	hash, _ := h.Make("pw")
	needs, err := h.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if needs {
		t.Error("NeedsRehash should be false when cost and version match")
	}
}

func TestBcryptHasher_NeedsRehash_DifferentCost(t *testing.T) {
	low, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: testBcryptCost})
	high, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: testBcryptCost + 1})

	hash, _ := low.Make("pw")
	needs, err := high.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if !needs {
		t.Error("NeedsRehash should be true when stored cost differs from configured cost")
	}
}

func TestBcryptHasher_NeedsRehash_DifferentVersion(t *testing.T) {
	b, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: testBcryptCost})
	y, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: testBcryptCost, Version: bcrypt.Version2Y})

	hash, _ := y.Make("pw")
	needs, err := b.NeedsRehash(hash)
	if err != nil {
		t.Fatalf("NeedsRehash: %v", err)
	}
	if !needs {
		t.Error("NeedsRehash should be true when the version tag differs")
	}
}

func TestBcryptHasher_NeedsRehash_InvalidHash(t *testing.T) {
	h := newTestBcryptHasher(t)
	if _, err := h.NeedsRehash("not-a-hash"); !errors.Is(err, hashing.ErrAlgorithmMismatch) {
		t.Errorf("expected ErrAlgorithmMismatch, got %v", err)
	}
	if _, err := h.NeedsRehash("$2b$04$short"); !errors.Is(err, hashing.ErrInvalidHash) {
		t.Errorf("expected ErrInvalidHash, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Info
// ──────────────────────────────────────────────────────────────────────────────

func TestBcryptHasher_Info(t *testing.T) {
	h := newTestBcryptHasher(t)
	hash, _ := h.Make("pw")
	info, err := h.Info(hash)
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Driver != hashing.DriverBcrypt {
		t.Errorf("Driver = %q, want %q", info.Driver, hashing.DriverBcrypt)
	}
	cost, ok := info.Params["cost"].(int)
	if !ok {
		t.Fatalf("Params[\"cost\"] is not int: %T", info.Params["cost"])
	}
	if cost != testBcryptCost {
		t.Errorf("cost = %d, want %d", cost, testBcryptCost)
	}
	if v := info.Params["version"]; v != "2b" {
		t.Errorf("version = %v, want 2b", v)
	}
}

func TestBcryptHasher_Info_InvalidHash(t *testing.T) {
	h := newTestBcryptHasher(t)
	_, err := h.Info("garbage")
	if !errors.Is(err, hashing.ErrAlgorithmMismatch) {
		t.Errorf("expected ErrAlgorithmMismatch, got %v", err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Driver
// ──────────────────────────────────────────────────────────────────────────────

func TestBcryptHasher_Driver(t *testing.T) {
	h := newTestBcryptHasher(t)
	if h.Driver() != hashing.DriverBcrypt {
		t.Errorf("got %q, want %q", h.Driver(), hashing.DriverBcrypt)
	}
}

func TestBcryptHasher_SatisfiesHasherInterface(t *testing.T) {
	h := newTestBcryptHasher(t)
	var _ hashing.Hasher = h
}

func TestDetectDriver(t *testing.T) {
	for _, hash := range []string{"$2a$10$x", "$2b$10$x", "$2x$10$x", "$2y$10$x"} {
		if d, ok := hashing.DetectDriver(hash); !ok || d != hashing.DriverBcrypt {
			t.Errorf("DetectDriver(%q) = %q, %v", hash, d, ok)
		}
	}
	for _, hash := range []string{"", "$2b", "$2c$10$x", "$argon2id$v=19$", "2b$10$x"} {
		if _, ok := hashing.DetectDriver(hash); ok {
			t.Errorf("DetectDriver(%q) should not recognise the hash", hash)
		}
	}
}
