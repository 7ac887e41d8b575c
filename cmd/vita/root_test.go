package vita

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vita.db")
	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"--db", path, "init"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestParseDateOrNowRejectsMalformedDate(t *testing.T) {
	t.Parallel()
	if _, err := parseDateOrNow("15-03-2026"); err == nil {
		t.Fatalf("expected malformed date to fail")
	}
}

func TestParseInt64ArgRejectsNonPositive(t *testing.T) {
	t.Parallel()
	if _, err := parseInt64Arg("id", "0"); err == nil {
		t.Fatalf("expected zero id to fail")
	}
	if _, err := parseInt64Arg("id", "abc"); err == nil {
		t.Fatalf("expected non-numeric id to fail")
	}
}
