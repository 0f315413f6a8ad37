package router

import (
	"bytes"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"testing"

	"github.com/gorewood/pwademo/internal/args"
	"github.com/gorewood/pwademo/internal/config"
	"github.com/gorewood/pwademo/internal/dom"
	"github.com/gorewood/pwademo/internal/page"
)

func newTestRouter(t *testing.T) (*Router, *dom.Memory) {
	t.Helper()
	doc := NewMemoryDocument()
	return New(doc, config.Default()), doc
}

func route(t *testing.T, tokens ...string) *dom.Memory {
	t.Helper()
	r, doc := newTestRouter(t)
	r.Route(append(args.List{"pwademo"}, tokens...))
	return doc
}

func TestRoute_DefaultEqualsPageWithInputs(t *testing.T) {
	bare := route(t)
	explicit := route(t, "page_with_inputs")

	if !maps.Equal(bare.Snapshot(), explicit.Snapshot()) {
		t.Errorf("snapshots differ:\nbare:     %v\nexplicit: %v", bare.Snapshot(), explicit.Snapshot())
	}
}

func TestRoute_PageWithInputs(t *testing.T) {
	doc := route(t)

	body := doc.InnerHTML(ElemBody)
	for _, want := range []string{
		"<h1>pwademo</h1>",
		`id="arg_1" value="upper"`,
		`id="arg_2" value="world"`,
		`<p class="small">bestia.dev</p>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body should contain %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "{ph_") {
		t.Errorf("body has unresolved markers:\n%s", body)
	}
	if got := doc.InnerText(ElemErrors); got != "" {
		t.Errorf("errors = %q, want empty", got)
	}
}

func TestRoute_Header(t *testing.T) {
	doc := route(t, "help")

	header := doc.InnerHTML(ElemRoot)
	for _, want := range []string{`href="/pwademo/#page_with_inputs"`, `href="/pwademo/#help"`, `id="div_body"`} {
		if !strings.Contains(header, want) {
			t.Errorf("header should contain %q:\n%s", want, header)
		}
	}
}

func TestRoute_Help(t *testing.T) {
	doc := route(t, "help")

	text := doc.InnerText(ElemBody)
	for _, want := range []string{
		"Welcome to pwademo !",
		"/pwademo/#print/world",
		"/pwademo/#upper/WORLD",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("help should contain %q:\n%s", want, text)
		}
	}
}

func TestRoute_Print(t *testing.T) {
	doc := route(t, "print", "world")

	if got, want := doc.InnerText(ElemBody), "The result is\nHello world!\n"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if got := doc.InnerText(ElemErrors); got != "" {
		t.Errorf("errors = %q, want empty", got)
	}
}

func TestRoute_PrintEscapesName(t *testing.T) {
	doc := route(t, "print", "<b>x</b>")

	if got := doc.InnerHTML(ElemBody); strings.Contains(got, "<b>") {
		t.Errorf("name should not become markup: %q", got)
	}
}

func TestRoute_Upper(t *testing.T) {
	doc := route(t, "upper", "world")

	if got, want := doc.InnerText(ElemBody), "The result is\nHello WORLD!\n"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestRoute_UpperRejectsUppercase(t *testing.T) {
	doc := route(t, "upper", "WORLD")

	if got, want := doc.InnerText(ElemErrors), "Error: Name `WORLD` is already uppercase."; got != want {
		t.Errorf("errors = %q, want %q", got, want)
	}
	if got := doc.InnerText(ElemBody); got != "" {
		t.Errorf("body = %q, want empty", got)
	}
}

func TestRoute_MissingArgument(t *testing.T) {
	for _, verb := range []string{"print", "upper"} {
		t.Run(verb, func(t *testing.T) {
			doc := route(t, verb)
			want := "Error: Missing second argument for " + verb + "."
			if got := doc.InnerText(ElemErrors); got != want {
				t.Errorf("errors = %q, want %q", got, want)
			}
		})
	}
}

func TestRoute_Unrecognized(t *testing.T) {
	for _, tokens := range [][]string{{"shout"}, {"shout", "world"}, {"shout", "print", "world"}, {""}} {
		doc := route(t, tokens...)
		got := doc.InnerText(ElemErrors)
		if !strings.HasPrefix(got, "Error: Unrecognized arguments.") {
			t.Errorf("route(%q) errors = %q", tokens, got)
		}
		if !strings.HasSuffix(got, "Try\nhttp://localhost:4000/pwademo/#help") {
			t.Errorf("route(%q) should suggest the absolute help URL: %q", tokens, got)
		}
	}
}

func TestRoute_ClearsPreviousError(t *testing.T) {
	r, doc := newTestRouter(t)

	r.Route(args.List{"pwademo", "print"})
	if doc.InnerText(ElemErrors) == "" {
		t.Fatal("expected an error after print without name")
	}
	r.Route(args.List{"pwademo", "print", "world"})
	if got := doc.InnerText(ElemErrors); got != "" {
		t.Errorf("errors = %q, want cleared", got)
	}
}

func TestStart_RoutesCurrentHashAndFollowsChanges(t *testing.T) {
	r, doc := newTestRouter(t)
	doc.SetHash("#print/world")

	if got := r.Start(); got != (Print{Name: "world"}) {
		t.Errorf("Start() = %#v", got)
	}
	if !strings.Contains(doc.InnerText(ElemBody), "Hello world!") {
		t.Errorf("body = %q", doc.InnerText(ElemBody))
	}

	doc.Navigate("upper/world")
	if !strings.Contains(doc.InnerText(ElemBody), "Hello WORLD!") {
		t.Errorf("body after navigation = %q", doc.InnerText(ElemBody))
	}
}

func TestStart_TwiceKeepsOneHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	doc := NewMemoryDocument()
	r := New(doc, config.Default(), WithLogger(logger))

	r.Start()
	r.Start()
	buf.Reset()

	doc.Navigate("help")
	if n := strings.Count(buf.String(), "hash changed"); n != 1 {
		t.Errorf("hash change handled %d times, want 1:\n%s", n, buf.String())
	}
}

func TestClickRun(t *testing.T) {
	r, doc := newTestRouter(t)
	r.Start()

	if err := doc.Click(ButtonRun); err != nil {
		t.Fatalf("Click() error = %v", err)
	}
	if got := doc.Hash(); got != "#upper/world" {
		t.Errorf("Hash() = %q, want #upper/world", got)
	}
	if !strings.Contains(doc.InnerText(ElemBody), "Hello WORLD!") {
		t.Errorf("body = %q", doc.InnerText(ElemBody))
	}
}

func TestClickRun_EncodesArguments(t *testing.T) {
	r, doc := newTestRouter(t)
	r.Start()

	_ = doc.SetInputValue(InputArg1, "print")
	_ = doc.SetInputValue(InputArg2, "John Doe")
	if err := doc.Click(ButtonRun); err != nil {
		t.Fatal(err)
	}
	if got := doc.Opened(); len(got) != 1 || got[0] != "/pwademo/#print/John%20Doe" {
		t.Errorf("Opened() = %v", got)
	}
	if got := doc.InnerText(ElemBody); got != "The result is\nHello John Doe!\n" {
		t.Errorf("body = %q", got)
	}
}

func TestClickRun_RequiresBothArguments(t *testing.T) {
	r, doc := newTestRouter(t)
	r.Start()

	_ = doc.SetInputValue(InputArg2, "")
	if err := doc.Click(ButtonRun); err != nil {
		t.Fatal(err)
	}
	if got := doc.InnerText(ElemErrors); got != "Error: Both arguments are mandatory." {
		t.Errorf("errors = %q", got)
	}
	if len(doc.Opened()) != 0 {
		t.Errorf("Opened() = %v, want nothing", doc.Opened())
	}
}

func TestRoute_ConfigDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.AppName = "demo"
	cfg.BasePath = "/demo/"
	cfg.Defaults = config.Defaults{Arg1: "print", Arg2: `"quoted"`}
	doc := NewMemoryDocument()
	New(doc, cfg).Route(args.List{"demo"})

	body := doc.InnerHTML(ElemBody)
	if !strings.Contains(body, `value="print"`) || !strings.Contains(body, `value="&#34;quoted&#34;"`) {
		t.Errorf("body does not use configured defaults:\n%s", body)
	}
	if !strings.Contains(doc.InnerHTML(ElemRoot), `href="/demo/#help"`) {
		t.Errorf("header does not use base path:\n%s", doc.InnerHTML(ElemRoot))
	}
}

func TestRoute_MissingHostElement(t *testing.T) {
	doc := dom.NewMemory(ElemErrors)
	New(doc, config.Default()).Route(args.List{"pwademo"})

	if got := doc.InnerText(ElemErrors); !strings.Contains(got, ElemRoot) {
		t.Errorf("errors = %q, want mention of %s", got, ElemRoot)
	}
}

func TestRoute_PageOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "footer.html", `<p class="{ph_attr_class_1}">custom {ph_text_node_1}</p>`)

	doc := NewMemoryDocument()
	loader := page.NewLoaderWithDirs(page.Dir{Source: "project", Path: dir})
	New(doc, config.Default(), WithPages(loader)).Route(args.List{"pwademo"})

	if !strings.Contains(doc.InnerHTML(ElemBody), `<p class="small">custom bestia.dev</p>`) {
		t.Errorf("override not used:\n%s", doc.InnerHTML(ElemBody))
	}
}

func TestRoute_MissingHostElementKeepsCommandMessage(t *testing.T) {
	doc := dom.NewMemory(ElemErrors)
	New(doc, config.Default()).Route(args.List{"pwademo", "print"})

	if got := doc.InnerText(ElemErrors); got != "Error: Missing second argument for print." {
		t.Errorf("errors = %q, want the missing-argument message", got)
	}
}

func TestRoute_MarkupReusingErrorsID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "footer.html", `<p id="div_for_errors" class="{ph_attr_class_1}">{ph_text_node_1}</p>`)

	doc := NewMemoryDocument()
	r := New(doc, config.Default(), WithPages(page.NewLoaderWithDirs(page.Dir{Source: "project", Path: dir})))
	r.Route(args.List{"pwademo"})
	r.Route(args.List{"pwademo", "print"})

	if !doc.Has(ElemErrors) {
		t.Fatal("host error area was dropped with the page markup")
	}
	if got := doc.InnerText(ElemErrors); got != "Error: Missing second argument for print." {
		t.Errorf("errors = %q, want the missing-argument message", got)
	}
}

func TestDispatch_EveryCommand(t *testing.T) {
	tests := []struct {
		cmd       Command
		wantError bool
	}{
		{PageWithInputs{}, false},
		{Help{}, false},
		{Print{Name: "world"}, false},
		{Upper{Name: "world"}, false},
		{Upper{Name: "WORLD"}, true},
		{MissingArgument{Command: VerbUpper}, true},
		{Unrecognized{Args: []string{"pwademo", "shout"}}, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.cmd), func(t *testing.T) {
			doc := NewMemoryDocument()
			New(doc, config.Default()).Dispatch(tt.cmd)

			if got := doc.InnerText(ElemErrors) != ""; got != tt.wantError {
				t.Errorf("error shown = %v, want %v (%q)", got, tt.wantError, doc.InnerText(ElemErrors))
			}
		})
	}
}
