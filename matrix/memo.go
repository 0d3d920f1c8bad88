// SPDX-License-Identifier: MIT

package matrix

import "sync"

// memo caches one boolean property behind its own lock.
type memo struct {
	mu    sync.Mutex
	valid bool
	value bool
}

// get returns the cached value, computing it under the lock on first use.
func (m *memo) get(compute func() bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.valid {
		m.value, m.valid = compute(), true
	}

	return m.value
}

// resetLocked clears the cache; the caller holds mu.
func (m *memo) resetLocked() { m.valid = false }
