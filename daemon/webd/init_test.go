package webd

import (
	"log/slog"
	"testing"

	"github.com/rotblauer/kinecalc/params"
	"github.com/rotblauer/kinecalc/scenario"
)

// newTestWebDaemon creates a new WebDaemon with the default scenario
// and quiets request logging for the duration of the test.
func newTestWebDaemon(t *testing.T) *WebDaemon {
	t.Helper()
	oldLevel := slog.SetLogLoggerLevel(slog.Level(slog.LevelError + 1))
	t.Cleanup(func() {
		slog.SetLogLoggerLevel(oldLevel)
	})
	d, err := NewWebDaemon(params.DefaultTestWebDaemonConfig(), scenario.DefaultInput())
	if err != nil {
		t.Fatal(err)
	}
	return d
}
