package report

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/pdfcheck/pkg/check"
	"github.com/vertti/pdfcheck/pkg/depcheck"
)

func testLogger() (*logrus.Logger, *test.Hook) {
	l, hook := test.NewNullLogger()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	return l, hook
}

func TestLogrusLevels(t *testing.T) {
	l, hook := testLogger()
	log := NewLogrus(l)

	log.Success("ok")
	log.Warning("careful")
	log.Info("fyi")

	entries := hook.AllEntries()
	require.Len(t, entries, 3)

	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, "ok", entries[0].Message)
	assert.Equal(t, "ok", entries[0].Data["status"])

	assert.Equal(t, logrus.WarnLevel, entries[1].Level)
	assert.Equal(t, "careful", entries[1].Message)

	assert.Equal(t, logrus.InfoLevel, entries[2].Level)
	assert.NotContains(t, entries[2].Data, "status")
}

func TestLogrusStatusFields(t *testing.T) {
	l, hook := testLogger()
	c := &fixedChecker{result: check.Result{
		Name:    "pdf: pango",
		Status:  check.StatusFail,
		Kind:    check.KindImport,
		Message: "⚠ WeasyPrint is not installed: not found",
		Details: []string{"renderer: /usr/bin/weasyprint", "no separator here"},
	}}

	ok := Status(NewLogrus(l), c)

	assert.False(t, ok)
	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	first := entries[0]
	assert.Equal(t, logrus.WarnLevel, first.Level)
	assert.Equal(t, "pdf: pango", first.Data["check"])
	assert.Equal(t, "import", first.Data["kind"])
	assert.Equal(t, "/usr/bin/weasyprint", first.Data["renderer"])
	assert.Equal(t, depcheck.MsgInstallGuide, entries[2].Message)
}

func TestLogrusStatusSuccessHasNoKind(t *testing.T) {
	l, hook := testLogger()
	c := &fixedChecker{result: check.Result{
		Name:    "pdf: pango",
		Status:  check.StatusOK,
		Message: depcheck.MsgAvailable,
		Details: []string{"pango: 1.50.6"},
	}}

	assert.True(t, Status(NewLogrus(l), c))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "1.50.6", entry.Data["pango"])
	assert.Equal(t, "ok", entry.Data["status"])
	assert.NotContains(t, entry.Data, "kind")
}
