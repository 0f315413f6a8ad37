// Package router dispatches hash-fragment arguments to page renderers.
//
// A Router is created once per page. Start registers the hash-change
// handler and renders the page for the current URL; every later hash
// change re-parses the fragment and renders again. Rendering goes through
// a dom.Document, so the same Router drives the browser, the CLI and tests.
//
// Failures never leave Route: a missing argument or a rejected name is
// written to the error area of the page.
package router

import (
	"fmt"
	"log/slog"

	"github.com/gorewood/pwademo/internal/args"
	"github.com/gorewood/pwademo/internal/config"
	"github.com/gorewood/pwademo/internal/dom"
	"github.com/gorewood/pwademo/internal/greet"
	"github.com/gorewood/pwademo/internal/htmlsrc"
	"github.com/gorewood/pwademo/internal/page"
)

// Element ids the router renders into. ElemRoot and ElemErrors belong to
// the host page; the others are created by rendered markup.
const (
	ElemRoot   = "div_for_wasm_html_injecting"
	ElemErrors = "div_for_errors"
	ElemBody   = "div_body"
	InputArg1  = "arg_1"
	InputArg2  = "arg_2"
	ButtonRun  = "btn_run"
)

const (
	phHrefHome htmlsrc.AttrMarker = "{ph_href_home}"
	phHrefHelp htmlsrc.AttrMarker = "{ph_href_help}"

	phAppName   htmlsrc.TextMarker = "{ph_app_name}"
	phArg1      htmlsrc.AttrMarker = "{ph_arg_1}"
	phArg2      htmlsrc.AttrMarker = "{ph_arg_2}"
	phElemP1    htmlsrc.ElemMarker = "{ph_elem_p_1}"
	phAttrClass htmlsrc.AttrMarker = "{ph_attr_class_1}"
	phTextNode  htmlsrc.TextMarker = "{ph_text_node_1}"

	phURLRoot       htmlsrc.TextMarker = "{ph_url_root}"
	phURLHelp       htmlsrc.TextMarker = "{ph_url_help}"
	phURLPrint      htmlsrc.TextMarker = "{ph_url_print}"
	phURLUpper      htmlsrc.TextMarker = "{ph_url_upper}"
	phURLUpperError htmlsrc.TextMarker = "{ph_url_upper_error}"
)

// Router renders pages for argument lists.
type Router struct {
	doc   dom.Document
	cfg   config.Config
	pages *page.Loader
	log   *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithPages sets where page sources come from. The default is the
// built-in pages only.
func WithPages(loader *page.Loader) Option {
	return func(r *Router) {
		r.pages = loader
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.log = logger
	}
}

// New creates a Router drawing on doc.
func New(doc dom.Document, cfg config.Config, opts ...Option) *Router {
	r := &Router{
		doc:   doc,
		cfg:   cfg,
		pages: page.BuiltinLoader(),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewMemoryDocument returns an in-memory document laid out like the host
// page: the injection root and the error area.
func NewMemoryDocument() *dom.Memory {
	return dom.NewMemory(ElemRoot, ElemErrors)
}

// Start registers the hash-change handler and renders the current URL.
// Calling Start again replaces the handler rather than adding another.
func (r *Router) Start() Command {
	r.doc.OnHashChange(func() {
		r.log.Debug("hash changed", "hash", r.doc.Hash())
		r.Route(r.Args())
	})
	return r.Route(r.Args())
}

// Args returns the argument list for the current location hash.
func (r *Router) Args() args.List {
	return args.FromHash(r.cfg.AppName, r.doc.Hash())
}

// Route parses the list, renders the matching page, and returns the
// command that was rendered.
func (r *Router) Route(list args.List) Command {
	cmd := Parse(list)
	r.log.Info("routing", "args", []string(list), "verb", cmd.Verb())
	r.Dispatch(cmd)
	return cmd
}

// Dispatch renders cmd. Every page starts from a cleared error area and a
// fresh header. A header failure is reported but does not stop the
// command's own message; it only skips pages that need the body.
func (r *Router) Dispatch(cmd Command) {
	r.setText(ElemErrors, "")
	headerErr := r.renderHeader()
	if headerErr != nil {
		r.log.Error("rendering header", "error", headerErr)
		r.showError(headerErr)
	}

	switch c := cmd.(type) {
	case PageWithInputs:
		r.renderBody(headerErr, r.renderPageWithInputs)
	case Help:
		r.renderBody(headerErr, r.renderHelp)
	case Print:
		r.renderResult(greet.FormatHelloPhrase(c.Name))
	case Upper:
		phrase, err := greet.FormatUpperHelloPhrase(c.Name)
		if err != nil {
			r.showError(err)
			return
		}
		r.renderResult(phrase)
	case MissingArgument:
		r.showMessage(fmt.Sprintf("Error: Missing second argument for %s.", c.Command))
	case Unrecognized:
		r.showMessage("Error: Unrecognized arguments. Try\n" + r.cfg.AbsURL(VerbHelp))
	default:
		panic(fmt.Sprintf("router: unhandled command %T", cmd))
	}
}

// renderBody runs render unless the header, which holds the body, failed.
func (r *Router) renderBody(headerErr error, render func() error) {
	if headerErr != nil {
		return
	}
	if err := render(); err != nil {
		r.showError(err)
	}
}

func (r *Router) renderHeader() error {
	tmpl, err := r.load(page.Header)
	if err != nil {
		return err
	}
	tmpl.ReplaceAttributeValue(phHrefHome, r.cfg.URL(VerbPageWithInputs))
	tmpl.ReplaceAttributeValue(phHrefHelp, r.cfg.URL(VerbHelp))
	return r.inject(tmpl, ElemRoot)
}

func (r *Router) renderPageWithInputs() error {
	tmpl, err := r.load(page.PageWithInputs)
	if err != nil {
		return err
	}
	footer, err := r.load(page.Footer)
	if err != nil {
		return err
	}

	tmpl.ReplaceTextNode(phAppName, r.cfg.AppName)
	tmpl.ReplaceAttributeValue(phArg1, r.cfg.Defaults.Arg1)
	tmpl.ReplaceAttributeValue(phArg2, r.cfg.Defaults.Arg2)

	footer.ReplaceAttributeValue(phAttrClass, r.cfg.Footer.Class)
	footer.ReplaceTextNode(phTextNode, r.cfg.Footer.Text)
	tmpl.ReplaceHTMLSourceCode(phElemP1, footer)

	if err := r.inject(tmpl, ElemBody); err != nil {
		return err
	}
	if err := r.doc.OnClick(ButtonRun, r.onClickRun); err != nil {
		return fmt.Errorf("attaching run handler: %w", err)
	}
	return nil
}

func (r *Router) renderHelp() error {
	tmpl, err := r.load(page.Help)
	if err != nil {
		return err
	}
	tmpl.ReplaceTextNode(phAppName, r.cfg.AppName)
	tmpl.ReplaceTextNode(phURLRoot, r.cfg.AbsURL(""))
	tmpl.ReplaceTextNode(phURLHelp, r.cfg.AbsURL(VerbHelp))
	tmpl.ReplaceTextNode(phURLPrint, r.cfg.AbsURL(VerbPrint+"/world"))
	tmpl.ReplaceTextNode(phURLUpper, r.cfg.AbsURL(VerbUpper+"/world"))
	tmpl.ReplaceTextNode(phURLUpperError, r.cfg.AbsURL(VerbUpper+"/WORLD"))
	return r.inject(tmpl, ElemBody)
}

func (r *Router) renderResult(phrase string) {
	r.setText(ElemBody, "The result is\n"+phrase+"\n")
}

// onClickRun opens the URL for the two form arguments.
func (r *Router) onClickRun() {
	arg1, err1 := r.doc.InputValue(InputArg1)
	arg2, err2 := r.doc.InputValue(InputArg2)
	if err1 != nil || err2 != nil {
		r.log.Warn("reading form inputs", "arg_1_error", err1, "arg_2_error", err2)
	}
	if arg1 == "" || arg2 == "" {
		r.showMessage("Error: Both arguments are mandatory.")
		return
	}

	list := args.List{r.cfg.AppName, arg1, arg2}
	if err := r.doc.OpenURL(r.cfg.URL(list.Hash())); err != nil {
		r.showError(err)
	}
}

func (r *Router) load(name string) (*htmlsrc.Template, error) {
	tmpl, err := r.pages.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}
	return tmpl.HTML(), nil
}

func (r *Router) inject(tmpl *htmlsrc.Template, id string) error {
	if err := tmpl.InjectInto(r.doc, id); err != nil {
		return fmt.Errorf("rendering into %s: %w", id, err)
	}
	return nil
}

func (r *Router) showError(err error) {
	r.showMessage("Error: " + err.Error())
}

func (r *Router) showMessage(msg string) {
	r.log.Info("showing error", "message", msg)
	r.setText(ElemErrors, msg)
}

func (r *Router) setText(id, text string) {
	if err := r.doc.SetInnerText(id, text); err != nil {
		r.log.Error("setting text", "id", id, "error", err)
	}
}
