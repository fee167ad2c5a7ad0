//go:build !cgo || !unix

package dlopen

// Library is an open shared library handle. Builds without cgo can never
// produce one.
type Library struct {
	name string
}

// Open always fails in builds without cgo.
func Open(name string) (*Library, error) {
	return nil, &Error{Op: "dlopen", Name: name, Msg: ErrUnsupported.Error(), Err: ErrUnsupported}
}

// Name returns the file name the library was opened with.
func (l *Library) Name() string {
	return l.name
}

// Call always fails in builds without cgo.
func (l *Library) Call(symbol string) (int, error) {
	return 0, &Error{Op: "dlsym", Name: symbol, Msg: ErrUnsupported.Error(), Err: ErrUnsupported}
}

// Close is a no-op in builds without cgo.
func (l *Library) Close() error {
	return nil
}
