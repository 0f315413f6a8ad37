package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorewood/pwademo/internal/output"
)

func TestPreviewCmd_MissingDir(t *testing.T) {
	isolate(t)

	_, errOut, err := execute(t, "preview", "--dir", "missing", "--addr", "127.0.0.1:0")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(errOut, `web folder "missing" not found`) {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestPreviewCmd_Defaults(t *testing.T) {
	cmd := newPreviewCmd()
	if got := cmd.Flags().Lookup("addr").DefValue; got != "0.0.0.0:4000" {
		t.Errorf("--addr default = %q", got)
	}
	if got := cmd.Flags().Lookup("dir").DefValue; got != "web_server_folder" {
		t.Errorf("--dir default = %q", got)
	}
}

func TestServePreview(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "<div id=\"div_for_wasm_html_injecting\"></div>")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- servePreview(ctx, ln, dir, slog.New(slog.DiscardHandler))
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		cancel()
		t.Fatalf("GET / error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), "div_for_wasm_html_injecting") {
		t.Errorf("body = %q, want index.html", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("servePreview() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("servePreview did not stop after cancel")
	}
}

func TestPreviewCmd_WarnsWithoutIndex(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "site", "app.wasm"), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	var out, errOut strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"preview", "--dir", "site", "--addr", "127.0.0.1:0"})

	if err := cmd.ExecuteContext(ctx); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(errOut.String(), "Warning: no index.html in site") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if !strings.Contains(out.String(), "Serving site on http://127.0.0.1:") {
		t.Errorf("stdout = %q", out.String())
	}
}
