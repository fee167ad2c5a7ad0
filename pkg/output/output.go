package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/pdfcheck/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
}

// PrintResult writes the result message, green when available and red
// otherwise. Colors are dropped when stdout is not a color terminal.
func PrintResult(w io.Writer, r check.Result) {
	color := red
	if r.OK() {
		color = green
	}
	_, _ = fmt.Fprintf(w, "%s%s%s\n", color, r.Message, reset)
}

// jsonResult is the machine-readable form of a check.Result.
type jsonResult struct {
	Name      string   `json:"name"`
	Available bool     `json:"available"`
	Kind      string   `json:"kind"`
	Message   string   `json:"message"`
	Details   []string `json:"details,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// PrintJSON writes the result as a single indented JSON object.
func PrintJSON(w io.Writer, r check.Result) error {
	out := jsonResult{
		Name:      r.Name,
		Available: r.Available(),
		Kind:      r.Kind.String(),
		Message:   r.Message,
		Details:   r.Details,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
