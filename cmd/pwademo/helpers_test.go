package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// isolate runs the test in an empty working directory with its own config dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("PWADEMO_CONFIG_HOME", filepath.Join(dir, "config-home"))
	t.Setenv("PWADEMO_APP_NAME", "")
	t.Setenv("PWADEMO_BASE_PATH", "")
	t.Setenv("PWADEMO_ORIGIN", "")
	return dir
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
