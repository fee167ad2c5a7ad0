package depcheck

import (
	"errors"
	"strings"

	"github.com/vertti/pdfcheck/pkg/check"
	"github.com/vertti/pdfcheck/pkg/dlopen"
)

// ImportError reports that the renderer itself could not be found.
type ImportError struct {
	Name string // renderer executable name
	Err  error
}

func (e *ImportError) Error() string {
	if e.Err == nil {
		return "renderer " + e.Name + " not found"
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Classify maps err onto a failure kind. Load/link failures are tested
// first; their text is searched for library case-insensitively to tell a
// missing shaping library apart from any other loader problem. A build
// without a dynamic loader says nothing about the library, so it is never
// reported as the library missing.
func Classify(err error, library string) check.Kind {
	if err == nil {
		return check.KindNone
	}

	var dlErr *dlopen.Error
	if errors.As(err, &dlErr) {
		if errors.Is(err, dlopen.ErrUnsupported) {
			return check.KindLinkOther
		}
		if library != "" && strings.Contains(strings.ToLower(err.Error()), strings.ToLower(library)) {
			return check.KindLinkNamed
		}
		return check.KindLinkOther
	}

	var importErr *ImportError
	if errors.As(err, &importErr) {
		return check.KindImport
	}

	return check.KindUnknown
}
