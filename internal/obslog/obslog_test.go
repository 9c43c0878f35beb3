package obslog

import (
	"bytes"
	"strings"
	"testing"
)

func TestNormalVerbosityLogsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Normal)
	log.Info("solver started")
	if !strings.Contains(buf.String(), "solver started") {
		t.Errorf("expected log output to contain the message, got %q", buf.String())
	}
}

func TestQuietVerbositySuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Quiet)
	log.Info("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output at Quiet verbosity, got %q", buf.String())
	}
}
