package concurrency

import (
	"strconv"
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks    sync.Map
	inFlight sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// TryBegin marks key as in flight. It returns false without blocking if key is
// already in flight. Callers must call the returned release func once done.
func (lm *LockManager) TryBegin(key string) (release func(), ok bool) {
	if _, loaded := lm.inFlight.LoadOrStore(key, struct{}{}); loaded {
		return nil, false
	}
	var once sync.Once
	return func() {
		once.Do(func() { lm.inFlight.Delete(key) })
	}, true
}

// AccountKey is the lock key shared by every mutation of one account
func AccountKey(userID int64) string {
	return "account:" + strconv.FormatInt(userID, 10)
}
