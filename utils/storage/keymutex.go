package storage

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// keyMutex キーによるMutex
type keyMutex struct {
	locks []sync.Mutex
}

func newKeyMutex(count int) *keyMutex {
	return &keyMutex{locks: make([]sync.Mutex, count)}
}

func (m *keyMutex) slot(key string) *sync.Mutex {
	return &m.locks[xxhash.Sum64String(key)%uint64(len(m.locks))]
}

// Lock キーをロックします
func (m *keyMutex) Lock(key string) {
	m.slot(key).Lock()
}

// Unlock キーをアンロックします
func (m *keyMutex) Unlock(key string) {
	m.slot(key).Unlock()
}
