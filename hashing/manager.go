package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe registry of named [Hasher] drivers with a
// designated default.
//
// Register drivers with [Manager.RegisterDriver], pick the default with
// [Manager.SetDefaultDriver], and route day-to-day hashing through
// [Manager.Make], [Manager.Check] and [Manager.NeedsRehash]. Registering a
// second bcrypt configuration under its own name (say, a 2y driver for hashes
// shared with PHP) lets both coexist while one stays the default.
//
// A [sync.RWMutex] serialises registration while lookups run concurrently.
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager whose default is defaultDriver.
// Drivers must be registered before any hashing operation is invoked.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with the bcrypt driver registered
// under [DriverBcrypt] using [DefaultBcryptOptions], and set as default.
func NewDefaultManager() (*Manager, error) {
	bcryptH, err := NewBcryptHasher(DefaultBcryptOptions())
	if err != nil {
		return nil, fmt.Errorf("hashing: failed to create default bcrypt hasher: %w", err)
	}
	m := NewManager(DriverBcrypt)
	if err := m.RegisterDriver(DriverBcrypt, bcryptH); err != nil {
		return nil, err
	}
	return m, nil
}

// RegisterDriver adds or replaces a named hasher.
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound].
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by Make, Check, NeedsRehash and
// Info. The driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the current default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver is registered under name.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Make hashes password with the default driver.
func (m *Manager) Make(password string) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Make(password)
}

// Check verifies password against hash with the default driver.
func (m *Manager) Check(password, hash string) (bool, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// CheckWithDetect verifies password against hash using whichever driver
// the hash prefix points at. Returns [ErrInvalidHash] for an unrecognised
// prefix and [ErrDriverNotFound] if that driver is not registered.
func (m *Manager) CheckWithDetect(password, hash string) (bool, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return false, err
	}
	return h.Check(password, hash)
}

// NeedsRehash reports whether hash should be replaced on the next
// successful login: either it came from a driver other than the default, or
// the default driver reports different parameters.
func (m *Manager) NeedsRehash(hash string) (bool, error) {
	detected, ok := DetectDriver(hash)
	if !ok {
		return false, ErrInvalidHash
	}

	m.mu.RLock()
	def := m.def
	defH, registered := m.drivers[def]
	m.mu.RUnlock()
	if !registered {
		return false, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, def)
	}

	if detected != defH.Driver() {
		return true, nil
	}
	return defH.NeedsRehash(hash)
}

// Info extracts metadata from hash with the default driver.
func (m *Manager) Info(hash string) (HashInfo, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

// InfoWithDetect extracts metadata from hash using the driver its prefix
// points at.
func (m *Manager) InfoWithDetect(hash string) (HashInfo, error) {
	h, err := m.resolveByHash(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return h.Info(hash)
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}

func (m *Manager) resolveByHash(hash string) (Hasher, error) {
	name, ok := DetectDriver(hash)
	if !ok {
		return nil, ErrInvalidHash
	}
	m.mu.RLock()
	def := m.def
	defH, hasDef := m.drivers[def]
	m.mu.RUnlock()
	// Prefer the default when it implements the detected algorithm, so a
	// custom-named bcrypt default is used for bcrypt hashes.
	if hasDef && defH.Driver() == name {
		return defH, nil
	}
	return m.Driver(name)
}
