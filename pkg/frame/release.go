package frame

import (
	"sync"
	"sync/atomic"
)

// Releaser is an ownership token for a capture resource. Tokens form a
// chain: releasing a derived token releases its parent too, so the last
// image derived from a frame can give the capture resource back.
type Releaser struct {
	once     sync.Once
	released atomic.Bool
	fn       func()
	parent   *Releaser
}

// NewReleaser returns a token that calls fn once on Release.
func NewReleaser(fn func()) *Releaser {
	return &Releaser{fn: fn}
}

// Derive returns a child token. Releasing the child runs fn and then
// releases r. Derive may be called on a nil token.
func (r *Releaser) Derive(fn func()) *Releaser {
	return &Releaser{fn: fn, parent: r}
}

// Release runs the release chain. Only the first call has an effect.
func (r *Releaser) Release() {
	if r == nil {
		return
	}

	r.once.Do(func() {
		if r.fn != nil {
			r.fn()
		}
		r.released.Store(true)
		r.parent.Release()
	})
}

// Released reports whether Release has completed.
func (r *Releaser) Released() bool {
	if r == nil {
		return false
	}
	return r.released.Load()
}
