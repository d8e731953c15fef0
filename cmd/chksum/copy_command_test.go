package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyVerified(t *testing.T) {
	env := setupCLITestEnv(t)
	src := writeCLIFile(t, env.baseDir, "src.bin", "abc")
	dst := filepath.Join(env.baseDir, "dst.bin")

	out, _, err := runCLI(t, []string{"copy", src, dst}, env.configPath, nil)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	requireContains(t, out, "verified")

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(data) != "abc" {
		t.Fatalf("dst content = %q, want %q", data, "abc")
	}
}

func TestCopyMissingSourceFails(t *testing.T) {
	env := setupCLITestEnv(t)
	src := filepath.Join(env.baseDir, "missing.bin")
	dst := filepath.Join(env.baseDir, "dst.bin")

	_, _, err := runCLI(t, []string{"copy", src, dst}, env.configPath, nil)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}
