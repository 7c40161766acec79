package service

import "sync"

// serialLocks serializes read-decide-write cycles per record serial so two
// concurrent sessions touching the same serial cannot interleave between the
// read and the write. Locks are reference-counted and dropped once idle, so
// the map does not grow with the total number of serials ever seen.
type serialLocks struct {
	mu    sync.Mutex
	locks map[string]*serialLock
}

type serialLock struct {
	mu   sync.Mutex
	refs int
}

func newSerialLocks() *serialLocks {
	return &serialLocks{locks: make(map[string]*serialLock)}
}

// Lock acquires the lock for the given serial and returns the matching
// unlock function. The unlock function must be called exactly once.
func (s *serialLocks) Lock(serial string) func() {
	s.mu.Lock()
	l, ok := s.locks[serial]
	if !ok {
		l = &serialLock{}
		s.locks[serial] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, serial)
		}
		s.mu.Unlock()
	}
}
