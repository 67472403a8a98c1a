package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultLockWait = 5 * time.Second
	staleLockAge    = 30 * time.Second
	lockPoll        = 50 * time.Millisecond
)

// ErrLockTimeout is returned when the lock cannot be acquired in time.
var ErrLockTimeout = errors.New("config: lock timeout")

// fileLock is an exclusive marker file created next to the settings file.
// A marker older than staleLockAge belongs to a crashed writer and is
// removed.
type fileLock struct {
	path string
	wait time.Duration
}

// WithLock runs fn while holding the file's lock, so concurrent processes
// cannot interleave read-modify-write cycles.
func (f *File) WithLock(fn func() error) error {
	l := fileLock{path: f.lockPath(), wait: f.lockWait}
	held, err := l.acquire()
	if err != nil {
		return err
	}
	defer l.release(held)

	return fn()
}

func (l fileLock) acquire() (*os.File, error) {
	deadline := time.Now().Add(l.wait)
	for {
		l.breakIfStale()

		held, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = held.WriteString(strconv.Itoa(os.Getpid()))
			return held, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("config: create lock: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s is held", ErrLockTimeout, l.path)
		}
		time.Sleep(lockPoll)
	}
}

func (l fileLock) breakIfStale() {
	info, err := os.Stat(l.path)
	if err == nil && time.Since(info.ModTime()) > staleLockAge {
		_ = os.Remove(l.path)
	}
}

func (l fileLock) release(held *os.File) {
	_ = held.Close()
	_ = os.Remove(l.path)
}
