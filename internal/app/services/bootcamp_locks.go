package services

import (
	"sync"

	"github.com/google/uuid"
)

// bootcampLocks hands out one mutex per bootcamp and forgets it once no
// caller holds or waits on it.
type bootcampLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*bootcampLock
}

type bootcampLock struct {
	mu   sync.Mutex
	refs int
}

func newBootcampLocks() *bootcampLocks {
	return &bootcampLocks{locks: make(map[uuid.UUID]*bootcampLock)}
}

// Lock blocks until the bootcamp's mutex is held and returns its release func
func (l *bootcampLocks) Lock(id uuid.UUID) func() {
	l.mu.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &bootcampLock{}
		l.locks[id] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *bootcampLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
