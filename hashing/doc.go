// Package hashing puts the bcrypt package behind a driver interface, the way
// Laravel's Illuminate/Hashing does.
//
// # Architecture
//
// [Hasher] is the driver interface and [BcryptHasher] the built-in driver.
// [Manager] is a named registry with a default driver: register one or more
// Hashers, then route all hashing through the Manager. [Pool] wraps any
// Hasher with a concurrency bound, context-aware waiting, logging through
// logrus and Prometheus metrics.
//
// # Quick start
//
//	m, err := hashing.NewDefaultManager() // bcrypt, cost 12, 2b tag
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := m.Make("my-secret-password")
//	ok, _   := m.Check("my-secret-password", hash) // true
//
// # Request paths
//
// A single bcrypt hash at cost 12 keeps a core busy for hundreds of
// milliseconds. Handlers should not call a Hasher directly:
//
//	metrics, _ := hashing.NewPoolMetrics(prometheus.DefaultRegisterer)
//	opts := hashing.DefaultPoolOptions()
//	opts.Metrics = metrics
//	pool, _ := hashing.NewPool(hasher, opts)
//
//	ok, err := pool.Check(r.Context(), password, storedHash)
//
// # Rehashing
//
// Call [Manager.NeedsRehash] after every successful login. It returns true
// when the stored hash came from another driver or from the default driver
// with a different cost or version tag:
//
//	ok, _ := m.CheckWithDetect(password, storedHash)
//	if ok {
//	    if needs, _ := m.NeedsRehash(storedHash); needs {
//	        newHash, _ := m.Make(password)
//	        persist(userID, newHash)
//	    }
//	}
package hashing
