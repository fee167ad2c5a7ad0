//go:build cgo && linux

package dlopen

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openLibc(t *testing.T) *Library {
	t.Helper()
	lib, err := Open("libc.so.6")
	if err != nil {
		t.Skipf("skipping: libc.so.6 not loadable: %v", err)
	}
	return lib
}

func TestCallResolvesSymbol(t *testing.T) {
	lib := openLibc(t)
	defer lib.Close()

	pid, err := lib.Call("getpid")
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
	assert.Equal(t, "libc.so.6", lib.Name())
}

func TestCallMissingSymbol(t *testing.T) {
	lib := openLibc(t)
	defer lib.Close()

	_, err := lib.Call("pdfcheck_no_such_symbol")
	var dlErr *Error
	require.True(t, errors.As(err, &dlErr))
	assert.Equal(t, "dlsym", dlErr.Op)
	assert.Contains(t, dlErr.Msg, "pdfcheck_no_such_symbol")
}

func TestCallAfterClose(t *testing.T) {
	lib := openLibc(t)
	require.NoError(t, lib.Close())
	require.NoError(t, lib.Close())

	_, err := lib.Call("getpid")
	assert.Error(t, err)
}
