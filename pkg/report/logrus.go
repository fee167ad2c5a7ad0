package report

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vertti/pdfcheck/pkg/check"
)

// LogrusLogger writes report entries through logrus. logrus has no success
// level, so successes are Info entries tagged status=ok.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus wraps a logrus logger.
func NewLogrus(l *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

// Success logs msg at info level with status=ok.
func (l *LogrusLogger) Success(msg string) {
	l.entry.WithField("status", "ok").Info(msg)
}

// Warning logs msg at warn level.
func (l *LogrusLogger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Info logs msg at info level.
func (l *LogrusLogger) Info(msg string) {
	l.entry.Info(msg)
}

// withResult attaches the check name, failure kind and details
// ("renderer: /usr/bin/weasyprint" becomes renderer=/usr/bin/weasyprint).
func (l *LogrusLogger) withResult(r check.Result) Logger {
	fields := logrus.Fields{"check": r.Name}
	if !r.OK() {
		fields["kind"] = r.Kind.String()
	}
	for _, d := range r.Details {
		if key, value, ok := strings.Cut(d, ": "); ok {
			fields[key] = value
		}
	}
	return &LogrusLogger{entry: l.entry.WithFields(fields)}
}
