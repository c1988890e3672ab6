package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunEulerProducesAResponse(t *testing.T) {
	var out, errw bytes.Buffer
	code := run([]string{"EULER", "4", "4", "1"}, &out, &errw)
	if code != 0 {
		t.Fatalf("want exit 0, got %d (stderr=%q)", code, errw.String())
	}
	if out.Len() == 0 || strings.HasPrefix(out.String(), "ERR") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRunUnknownAlgorithmReportsErr(t *testing.T) {
	var out, errw bytes.Buffer
	code := run([]string{"BOGUS", "1", "2", "1"}, &out, &errw)
	if code != 0 {
		t.Fatalf("want exit 0, got %d", code)
	}
	if !strings.HasPrefix(out.String(), "ERR") {
		t.Fatalf("expected ERR-prefixed output, got %q", out.String())
	}
}

func TestRunBadArgCount(t *testing.T) {
	var out, errw bytes.Buffer
	code := run([]string{"EULER", "1"}, &out, &errw)
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
}
