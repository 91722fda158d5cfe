package logger

import (
	"bytes"
	"os"
	"testing"
)

func TestSetVerbose(t *testing.T) {
	// Reset state after test
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("query took %dms", 42)

	if got := buf.String(); got != "[DEBUG] query took 42ms\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Perplexity Query")

	if got := buf.String(); got != "\n=== Perplexity Query ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}
