package concurrency

import (
	"sync"
)

// LockManager hands out named locks. Locks are created on first use and
// live for the lifetime of the manager.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// TryLock acquires the lock for key without waiting. When ok is true the
// caller must call unlock once done.
func (lm *LockManager) TryLock(key string) (unlock func(), ok bool) {
	mu := lm.GetLock(key)
	if !mu.TryLock() {
		return nil, false
	}
	return mu.Unlock, true
}
