package conlog

import "sync"

// serialMtx is shared by every serialized logger so that whole statements
// never interleave on the standard streams. It is held only while End writes
// a finished line. Not reentrant: an output that logs through a serialized
// logger from its Write blocks forever.
var serialMtx sync.Mutex

// noLock is the locking policy of unserialized loggers.
type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// Serialized reports whether statements of the logger are written under the
// shared lock.
func (l *Logger) Serialized() bool {
	_, unsafe := l.lock.(noLock)
	return !unsafe
}
