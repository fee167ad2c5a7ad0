//go:build cgo && unix

package dlopen

// #cgo linux LDFLAGS: -ldl
// #include <dlfcn.h>
// #include <stdlib.h>
// #include <string.h>
//
// static void *pdfcheck_open(const char *name, char **err) {
// 	void *h = dlopen(name, RTLD_LAZY);
// 	if (h == NULL) {
// 		const char *e = dlerror();
// 		*err = e != NULL ? strdup(e) : NULL;
// 	}
// 	return h;
// }
//
// static int pdfcheck_call_int(void *h, const char *sym, int *out, char **err) {
// 	dlerror();
// 	void *f = dlsym(h, sym);
// 	const char *e = dlerror();
// 	if (e != NULL) {
// 		*err = strdup(e);
// 		return -1;
// 	}
// 	if (f == NULL) {
// 		*err = strdup("symbol resolved to NULL");
// 		return -1;
// 	}
// 	*out = ((int (*)(void))f)();
// 	return 0;
// }
//
// static int pdfcheck_close(void *h, char **err) {
// 	if (dlclose(h) != 0) {
// 		const char *e = dlerror();
// 		*err = e != NULL ? strdup(e) : NULL;
// 		return -1;
// 	}
// 	return 0;
// }
import "C"

import "unsafe"

// Library is an open shared library handle.
type Library struct {
	name   string
	handle unsafe.Pointer
}

// Open loads the named library with lazy symbol binding.
// dlerror is read inside the same C call as dlopen because it is
// thread-local and the goroutine may move between threads.
func Open(name string) (*Library, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var cerr *C.char
	handle := C.pdfcheck_open(cname, &cerr)
	if handle == nil {
		return nil, &Error{Op: "dlopen", Name: name, Msg: takeString(cerr, "could not locate library")}
	}
	return &Library{name: name, handle: handle}, nil
}

// Name returns the file name the library was opened with.
func (l *Library) Name() string {
	return l.name
}

// Call resolves symbol as a function taking no arguments and returning a C
// int, calls it and returns the result.
func (l *Library) Call(symbol string) (int, error) {
	if l.handle == nil {
		return 0, &Error{Op: "dlsym", Name: symbol, Msg: "library " + l.name + " is closed"}
	}
	csym := C.CString(symbol)
	defer C.free(unsafe.Pointer(csym))

	var out C.int
	var cerr *C.char
	if C.pdfcheck_call_int(l.handle, csym, &out, &cerr) != 0 {
		return 0, &Error{Op: "dlsym", Name: symbol, Msg: takeString(cerr, "symbol not found")}
	}
	return int(out), nil
}

// Close releases the handle. Closing twice is a no-op.
func (l *Library) Close() error {
	if l.handle == nil {
		return nil
	}
	var cerr *C.char
	rc := C.pdfcheck_close(l.handle, &cerr)
	l.handle = nil
	if rc != 0 {
		return &Error{Op: "dlclose", Name: l.name, Msg: takeString(cerr, "close failed")}
	}
	return nil
}

func takeString(s *C.char, fallback string) string {
	if s == nil {
		return fallback
	}
	defer C.free(unsafe.Pointer(s))
	return C.GoString(s)
}
