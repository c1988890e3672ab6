package main

import (
	"bytes"
	"testing"
)

func TestRunRejectsBadArgCount(t *testing.T) {
	var out, errw bytes.Buffer
	code := run([]string{"host", "1234"}, &out, &errw)
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
}

func TestRunReportsConnectFailure(t *testing.T) {
	var out, errw bytes.Buffer
	code := run([]string{"127.0.0.1", "1", "EULER 1 2 1"}, &out, &errw)
	if code != 1 {
		t.Fatalf("want exit 1 on connect failure, got %d", code)
	}
	if errw.Len() == 0 {
		t.Fatal("expected a diagnostic on stderr")
	}
}
