package depcheck

import "github.com/vertti/pdfcheck/pkg/check"

const (
	// MsgAvailable is reported when the renderer and Pango both work.
	MsgAvailable = "✓ Pango dependency check passed, PDF export is available"

	// MsgLibraryMissing is reported when the loader names Pango in its failure.
	MsgLibraryMissing = "⚠ Pango dependency is not installed or cannot be loaded; " +
		"PDF export will be unavailable (other features are unaffected)\n" +
		"  See the PDF generation section of requirements.txt for how to install the Pango dependency"

	// Follow-up lines logged after any failure.
	MsgExportOnly   = "Note: PDF export requires the Pango library, but all other features keep working normally"
	MsgInstallGuide = "For installation instructions see the '===== PDF generation =====' section of requirements.txt"
)

// Message returns the user-facing text for a check outcome.
func Message(kind check.Kind, err error) string {
	switch kind {
	case check.KindNone:
		return MsgAvailable
	case check.KindLinkNamed:
		return MsgLibraryMissing
	case check.KindLinkOther:
		return "⚠ PDF dependency failed to load: " + errText(err)
	case check.KindImport:
		return "⚠ WeasyPrint is not installed: " + errText(err)
	default:
		return "⚠ PDF dependency check failed: " + errText(err)
	}
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
