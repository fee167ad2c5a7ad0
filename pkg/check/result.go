package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Kind classifies why a check failed.
type Kind int

const (
	KindNone      Kind = iota // check passed
	KindLinkNamed             // load/link failure naming the checked library
	KindLinkOther             // any other load/link failure
	KindImport                // the renderer itself is not installed
	KindUnknown               // anything else
)

var kindNames = map[Kind]string{
	KindNone:      "none",
	KindLinkNamed: "link-named",
	KindLinkOther: "link-other",
	KindImport:    "import",
	KindUnknown:   "unknown",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "pdf: pango"
	Status  Status   // OK or FAIL
	Kind    Kind     // KindNone when Status is OK
	Message string   // human-readable summary, may span lines
	Details []string // extra facts, e.g. "renderer: /usr/bin/weasyprint"
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Available reports whether the checked dependency can be used.
func (r Result) Available() bool {
	return r.OK()
}
