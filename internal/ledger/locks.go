package ledger

import "sync"

// userLocks serializes guard-then-write sequences per user. Without it two
// concurrent adds can both read the same pre-update balance and jointly
// overdraw it.
type userLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *userLocks) get(userID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	return m
}
