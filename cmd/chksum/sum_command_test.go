package main

import (
	"path/filepath"
	"strings"
	"testing"
)

const (
	abcDigest      = "900150983cd24fb0d6963f7d28e17f72"
	manifestDigest = "7d2078cc32d114e4a1e4359fa04991fe"
)

func TestSumFilePlainOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeCLIFile(t, env.baseDir, "data.bin", "abc")

	out, _, err := runCLI(t, []string{"sum", path}, env.configPath, nil)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	requireContains(t, out, abcDigest+"  "+path)
}

func TestSumStdin(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sum"}, env.configPath, strings.NewReader("abc"))
	if err != nil {
		t.Fatalf("sum stdin: %v", err)
	}
	requireContains(t, out, abcDigest+"  -")
}

func TestSumUppercaseFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeCLIFile(t, env.baseDir, "data.bin", "abc")

	out, _, err := runCLI(t, []string{"sum", "-U", path}, env.configPath, nil)
	if err != nil {
		t.Fatalf("sum -U: %v", err)
	}
	requireContains(t, out, strings.ToUpper(abcDigest))
}

func TestSumJSONFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeCLIFile(t, env.baseDir, "data.bin", "abc")

	out, _, err := runCLI(t, []string{"sum", "--format", "json", path}, env.configPath, nil)
	if err != nil {
		t.Fatalf("sum --format json: %v", err)
	}
	requireContains(t, out, `"digest": "`+abcDigest+`"`)
	requireContains(t, out, `"kind": "file"`)
}

func TestSumDirectoryManifest(t *testing.T) {
	env := setupCLITestEnv(t)
	root := filepath.Join(env.baseDir, "tree")
	writeCLIFile(t, root, "alpha.txt", "alpha\n")
	writeCLIFile(t, root, filepath.Join("beta", "beta.txt"), "beta\n")

	out, _, err := runCLI(t, []string{"sum", root}, env.configPath, nil)
	if err != nil {
		t.Fatalf("sum dir: %v", err)
	}
	requireContains(t, out, manifestDigest+"  "+root)
}

func TestSumMissingFileFails(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.baseDir, "nope.bin")

	_, stderr, err := runCLI(t, []string{"sum", missing}, env.configPath, nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	requireContains(t, stderr, "chksum:")
}

func TestSumContinuesPastFailures(t *testing.T) {
	env := setupCLITestEnv(t)
	good := writeCLIFile(t, env.baseDir, "good.bin", "abc")
	missing := filepath.Join(env.baseDir, "nope.bin")

	out, _, err := runCLI(t, []string{"sum", missing, good}, env.configPath, nil)
	if err == nil {
		t.Fatal("expected error when any input fails")
	}
	requireContains(t, out, abcDigest+"  "+good)
	requireContains(t, err.Error(), "1 of 2 inputs")
}

func TestSumWritesCheckfile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeCLIFile(t, env.baseDir, "data.bin", "abc")
	checkPath := filepath.Join(env.baseDir, "sums.md5")

	if _, _, err := runCLI(t, []string{"sum", "-o", checkPath, path}, env.configPath, nil); err != nil {
		t.Fatalf("sum -o: %v", err)
	}

	out, _, err := runCLI(t, []string{"verify", checkPath}, env.configPath, nil)
	if err != nil {
		t.Fatalf("verify written checkfile: %v", err)
	}
	requireContains(t, out, path+": OK")
}

func TestSumNoCacheStillHashes(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeCLIFile(t, env.baseDir, "data.bin", "abc")

	out, _, err := runCLI(t, []string{"sum", "--no-cache", path}, env.configPath, nil)
	if err != nil {
		t.Fatalf("sum --no-cache: %v", err)
	}
	requireContains(t, out, abcDigest)
}
