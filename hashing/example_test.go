package hashing_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
	"github.com/hasbyte1/go-bcrypt/hashing"
)

// Example_defaultManager demonstrates the recommended out-of-the-box setup.
func Example_defaultManager() {
	// NewDefaultManager registers bcrypt at cost 12 as the default driver.
	m, err := hashing.NewDefaultManager()
	if err != nil {
		log.Fatal(err)
	}

	hash, err := m.Make("my-secret-password")
	if err != nil {
		log.Fatal(err)
	}

	ok, err := m.Check("my-secret-password", hash)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ok, hash[:7])
	// Output: true $2b$12$
}

// Example_bcryptHasher demonstrates bcrypt directly.
func Example_bcryptHasher() {
	h, err := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: int(bcrypt.MinCost)})
	if err != nil {
		log.Fatal(err)
	}

	hash, _ := h.Make("hunter2")
	ok, _ := h.Check("hunter2", hash)
	fmt.Println(ok)
	// Output: true
}

// Example_phpCompatible writes hashes PHP's password_hash accepts.
func Example_phpCompatible() {
	h, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{
		Cost:    int(bcrypt.MinCost),
		Version: bcrypt.Version2Y,
	})
	hash, _ := h.Make("hunter2")
	fmt.Println(hash[:7])
	// Output: $2y$04$
}

// Example_costUpgrade illustrates raising the cost: detect hashes made with
// the old setting and re-hash on the next successful login.
func Example_costUpgrade() {
	old, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: 4})
	legacyHash, _ := old.Make("user-password")

	m := hashing.NewManager(hashing.DriverBcrypt)
	current, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: 5})
	_ = m.RegisterDriver(hashing.DriverBcrypt, current)

	ok, err := m.CheckWithDetect("user-password", legacyHash)
	if err != nil || !ok {
		log.Fatal("login failed")
	}

	if needs, _ := m.NeedsRehash(legacyHash); needs {
		newHash, _ := m.Make("user-password")
		info, _ := m.Info(newHash)
		fmt.Println("password re-hashed at cost", info.Params["cost"])
	}
	// Output: password re-hashed at cost 5
}

// Example_hashInfo shows how to inspect the parameters embedded in a hash.
func Example_hashInfo() {
	h, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: int(bcrypt.MinCost)})
	info, err := h.Info("$2y$10$N9qo8uLOickgx2ZMRZoMye8fOsiTWZqYtkxvXkKm8BMzjT7t/vIdq")
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.Marshal(map[string]any{
		"driver":  info.Driver,
		"cost":    info.Params["cost"],
		"version": info.Params["version"],
	})
	fmt.Println(string(out))
	// Output: {"cost":10,"driver":"bcrypt","version":"2y"}
}

// Example_detectDriver demonstrates auto-detecting which algorithm produced a hash.
func Example_detectDriver() {
	driver, ok := hashing.DetectDriver("$2a$10$N9qo8uLOickgx2ZMRZoMye8fOsiTWZqYtkxvXkKm8BMzjT7t/vIdq")
	fmt.Println(driver, ok)
	// Output: bcrypt true
}

// Example_pool runs verification through a bounded pool that reports to
// Prometheus.
func Example_pool() {
	reg := prometheus.NewRegistry()
	metrics, err := hashing.NewPoolMetrics(reg)
	if err != nil {
		log.Fatal(err)
	}

	h, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: int(bcrypt.MinCost)})
	opts := hashing.DefaultPoolOptions()
	opts.Metrics = metrics
	pool, _ := hashing.NewPool(h, opts)

	ctx := context.Background()
	hashes, _ := pool.MakeAll(ctx, []string{"alice-pw", "bob-pw"})
	ok, _ := pool.Check(ctx, "bob-pw", hashes[1])
	fmt.Println(len(hashes), ok)
	// Output: 2 true
}

// ExampleHasher_interface shows callers accepting a hashing.Hasher and
// staying independent of the configuration behind it.
func ExampleHasher_interface() {
	storePassword := func(h hashing.Hasher, password string) string {
		hash, _ := h.Make(password)
		return hash
	}
	verifyPassword := func(h hashing.Hasher, password, hash string) bool {
		ok, _ := h.Check(password, hash)
		return ok
	}

	for _, v := range []bcrypt.Version{bcrypt.Version2B, bcrypt.Version2A} {
		h, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: int(bcrypt.MinCost), Version: v})
		hash := storePassword(h, "demo")
		fmt.Println(v, verifyPassword(h, "demo", hash))
	}

	// Output:
	// 2b true
	// 2a true
}
