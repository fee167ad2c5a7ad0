// Package depcheck verifies that PDF export can work: the WeasyPrint
// renderer is installed and the Pango text shaping library it loads at
// runtime is present and initializes.
package depcheck

import (
	"fmt"
	"runtime"

	"github.com/vertti/pdfcheck/pkg/check"
	"github.com/vertti/pdfcheck/pkg/version"
)

const (
	// DefaultRenderer is the executable WeasyPrint installs.
	DefaultRenderer = "weasyprint"
	// DefaultSymbol returns Pango's version packed as an int.
	DefaultSymbol = "pango_version"
	// DefaultKeyword identifies Pango in loader error text.
	DefaultKeyword = "pango"
)

// DefaultLibraries returns the file names Pango is commonly installed under
// on the current platform, most specific first.
func DefaultLibraries() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libpango-1.0.0.dylib", "libpango-1.0.dylib"}
	default:
		return []string{"libpango-1.0.so.0", "libpango-1.0.so"}
	}
}

// Check verifies the PDF renderer and its shaping library.
// Zero values fall back to the defaults above and the Real* collaborators.
type Check struct {
	Renderer  string   // renderer executable name
	Libraries []string // shaping library candidates, tried in order
	Symbol    string   // no-argument introspection function returning int
	Keyword   string   // name searched for in load failures
	Finder    Finder   // injected for testing
	Loader    Loader   // injected for testing
}

// Run executes the dependency check. It never panics; every failure,
// including one raised by an injected collaborator, becomes a failed Result.
func (c *Check) Run() (result check.Result) {
	result = check.Result{
		Name: fmt.Sprintf("pdf: %s", c.keyword()),
	}

	defer func() {
		if r := recover(); r != nil {
			result = c.fail(result, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := c.probe(&result); err != nil {
		return c.fail(result, err)
	}
	return result.Pass(Message(check.KindNone, nil))
}

func (c *Check) probe(result *check.Result) error {
	renderer := c.renderer()
	path, err := c.finder().LookPath(renderer)
	if err != nil {
		return &ImportError{Name: renderer, Err: err}
	}
	result.AddDetailf("renderer: %s", path)

	lib, err := c.loader().Load(c.libraries()...)
	if err != nil {
		return err
	}
	defer func() { _ = lib.Close() }()

	// Opening alone does not prove the library initializes; one call does.
	encoded, err := lib.Call(c.symbol())
	if err != nil {
		return err
	}

	result.AddDetailf("library: %s", lib.Name())
	if v, err := version.Decode(encoded); err == nil {
		result.AddDetailf("%s: %s", c.keyword(), v)
	}
	return nil
}

func (c *Check) fail(result check.Result, err error) check.Result {
	kind := Classify(err, c.keyword())
	return result.Fail(kind, Message(kind, err), err)
}

func (c *Check) renderer() string {
	if c.Renderer == "" {
		return DefaultRenderer
	}
	return c.Renderer
}

func (c *Check) libraries() []string {
	if len(c.Libraries) == 0 {
		return DefaultLibraries()
	}
	return c.Libraries
}

func (c *Check) symbol() string {
	if c.Symbol == "" {
		return DefaultSymbol
	}
	return c.Symbol
}

func (c *Check) keyword() string {
	if c.Keyword == "" {
		return DefaultKeyword
	}
	return c.Keyword
}

func (c *Check) finder() Finder {
	if c.Finder == nil {
		return &RealFinder{}
	}
	return c.Finder
}

func (c *Check) loader() Loader {
	if c.Loader == nil {
		return &RealLoader{}
	}
	return c.Loader
}
