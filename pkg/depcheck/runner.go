package depcheck

import (
	"os/exec"

	"github.com/vertti/pdfcheck/pkg/dlopen"
)

// Finder abstracts executable lookup for testability.
type Finder interface {
	LookPath(file string) (string, error)
}

// Library is a loaded shared library.
type Library interface {
	Name() string
	Call(symbol string) (int, error)
	Close() error
}

// Loader abstracts shared library loading for testability.
type Loader interface {
	Load(names ...string) (Library, error)
}

// RealFinder implements Finder using the PATH lookup of os/exec.
type RealFinder struct{}

// LookPath searches for an executable in PATH.
func (f *RealFinder) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RealLoader implements Loader using the system dynamic loader.
type RealLoader struct{}

// Load opens the first of names that the dynamic loader accepts.
func (l *RealLoader) Load(names ...string) (Library, error) {
	lib, err := dlopen.OpenFirst(names...)
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// MockFinder is a test double for Finder.
type MockFinder struct {
	LookPathFunc func(file string) (string, error)
}

// LookPath calls the mock function.
func (m *MockFinder) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}

// MockLoader is a test double for Loader.
type MockLoader struct {
	LoadFunc func(names ...string) (Library, error)
}

// Load calls the mock function.
func (m *MockLoader) Load(names ...string) (Library, error) {
	return m.LoadFunc(names...)
}

// MockLibrary is a test double for Library. Closed counts Close calls.
type MockLibrary struct {
	LibName  string
	CallFunc func(symbol string) (int, error)
	Closed   int
}

// Name returns LibName.
func (m *MockLibrary) Name() string {
	return m.LibName
}

// Call calls the mock function.
func (m *MockLibrary) Call(symbol string) (int, error) {
	return m.CallFunc(symbol)
}

// Close records the call.
func (m *MockLibrary) Close() error {
	m.Closed++
	return nil
}
