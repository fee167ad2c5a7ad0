// Package report adapts check results onto a leveled logging sink.
package report

import (
	"github.com/vertti/pdfcheck/pkg/check"
	"github.com/vertti/pdfcheck/pkg/depcheck"
)

// Logger is the minimal sink Status writes to.
type Logger interface {
	Success(msg string)
	Warning(msg string)
	Info(msg string)
}

// Status runs c and logs its outcome: one success entry when the dependency
// is available, otherwise a warning followed by two info lines. It returns
// the result's availability unchanged.
func Status(log Logger, c check.Checker) bool {
	result := c.Run()

	if fl, ok := log.(resultLogger); ok {
		log = fl.withResult(result)
	}

	if result.Available() {
		log.Success(result.Message)
		return true
	}

	log.Warning(result.Message)
	log.Info(depcheck.MsgExportOnly)
	log.Info(depcheck.MsgInstallGuide)
	return false
}

// resultLogger is implemented by sinks that can attach result fields.
type resultLogger interface {
	withResult(r check.Result) Logger
}
