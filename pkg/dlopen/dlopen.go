// Package dlopen loads shared libraries at runtime the same way the system
// loader does, so a probe here fails exactly when a program linking the
// library at runtime would.
package dlopen

import (
	"errors"
	"fmt"
)

// ErrUnsupported is wrapped by every Error from a build that cannot load
// shared libraries at all.
var ErrUnsupported = errors.New("dynamic loading is not supported in this build (requires cgo on a unix system)")

// Error describes a failed load or symbol lookup.
// Msg carries the loader's own text (dlerror on unix).
type Error struct {
	Op   string // "dlopen", "dlsym" or "dlclose"
	Name string // library file name or symbol name
	Msg  string
	Err  error // set to ErrUnsupported by builds without a loader
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Name, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// OpenFirst tries each candidate name in order and returns the first library
// that loads. If none load, the error from the last candidate is returned.
func OpenFirst(names ...string) (*Library, error) {
	if len(names) == 0 {
		return nil, &Error{Op: "dlopen", Msg: "no library names given"}
	}
	var lastErr error
	for _, name := range names {
		lib, err := Open(name)
		if err == nil {
			return lib, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
