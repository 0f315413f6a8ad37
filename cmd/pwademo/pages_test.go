package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/pwademo/internal/output"
)

func TestPagesCmd_List(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "pages")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, name := range []string{"NAME", "header", "page_with_inputs", "footer", "help", "built-in"} {
		if !strings.Contains(out, name) {
			t.Errorf("list should contain %q:\n%s", name, out)
		}
	}
}

func TestPagesCmd_ListOverride(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".pwademo", "pages", "help.html"),
		"---\nname: help\ndescription: Custom help\n---\n<p>custom</p>\n")

	out, _, err := execute(t, "pages", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result struct {
		Count int `json:"count"`
		Pages []struct {
			Name      string `json:"name"`
			Source    string `json:"source"`
			Overrides string `json:"overrides"`
		} `json:"pages"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\n%s", err, out)
	}
	if result.Count != 4 {
		t.Errorf("count = %d, want 4", result.Count)
	}
	for _, p := range result.Pages {
		if p.Name == "help" && (p.Source != "project" || p.Overrides != "built-in") {
			t.Errorf("help = %+v, want project override of built-in", p)
		}
	}
}

func TestPagesCmd_Show(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "pages", "footer")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"{ph_attr_class_1}", "Source: built-in", "Placeholders: {ph_attr_class_1} {ph_text_node_1}"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestPagesCmd_ShowUnknown(t *testing.T) {
	isolate(t)

	_, errOut, err := execute(t, "pages", "nope")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(errOut, `page "nope" not found`) {
		t.Errorf("stderr = %q", errOut)
	}
}
