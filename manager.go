package cookiekit

import (
	"fmt"
	"iter"
	"sync"
)

// Manager is the request-scoped, thread-safe handle over one Jar.
// Concurrent handler goroutines may share a single Manager; every
// operation takes an exclusive lock for its duration and none performs
// I/O or holds the lock across calls into user code.
//
// A Manager must not outlive the request it was built for.
type Manager struct {
	mu  sync.Mutex
	jar *Jar
}

// NewManager wraps the given jar. A nil jar starts empty.
func NewManager(jar *Jar) *Manager {
	if jar == nil {
		jar = NewJar()
	}
	return &Manager{jar: jar}
}

// Add inserts the cookie into the jar, overwriting by name.
func (m *Manager) Add(c Cookie) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jar.Add(c)
}

// Set is an alias for Add.
func (m *Manager) Set(c Cookie) {
	m.Add(c)
}

// Remove tombstones the named cookie so the export phase emits an
// expiring Set-Cookie for it. Removing an absent name is not an error.
func (m *Manager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jar.Remove(name)
}

// Get returns the named cookie if present and not removed.
func (m *Manager) Get(name string) (Cookie, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jar.Get(name)
}

// Cookies returns a restartable sequence over a snapshot of the live
// cookies in name order. The snapshot is taken under the lock; later
// mutation does not affect it.
func (m *Manager) Cookies() iter.Seq[Cookie] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jar.All()
}

// SetCookieHeaders serializes every pending change into Set-Cookie
// header values, in name order. Unchanged request cookies produce no
// header. If any record fails to serialize the whole export fails;
// nothing is partially emitted.
func (m *Manager) SetCookieHeaders() ([]string, error) {
	m.mu.Lock()
	changes := m.jar.ExportChanges()
	m.mu.Unlock()

	headers := make([]string, 0, len(changes))
	for _, c := range changes {
		h, err := c.SetCookieHeader()
		if err != nil {
			return nil, fmt.Errorf("serialize cookie %q: %w", c.Name, err)
		}
		headers = append(headers, h)
	}
	return headers, nil
}
