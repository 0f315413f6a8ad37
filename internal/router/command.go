package router

import (
	"github.com/gorewood/pwademo/internal/args"
)

// Command is what an argument list asks the page to do.
//
//sumtype:decl
type Command interface {
	command()
	// Verb is the argument that selected the command.
	Verb() string
}

// PageWithInputs renders the input form. It is also the default page.
type PageWithInputs struct{}

// Help renders the usage text.
type Help struct{}

// Print renders the greeting for Name.
type Print struct {
	Name string
}

// Upper renders the greeting for Name in uppercase.
type Upper struct {
	Name string
}

// MissingArgument is a known verb without its required second argument.
type MissingArgument struct {
	Command string
}

// Unrecognized is any argument list no command matches.
type Unrecognized struct {
	Args args.List
}

func (PageWithInputs) command()  {}
func (Help) command()            {}
func (Print) command()           {}
func (Upper) command()           {}
func (MissingArgument) command() {}
func (Unrecognized) command()    {}

// Verb implements Command.
func (PageWithInputs) Verb() string { return VerbPageWithInputs }

// Verb implements Command.
func (Help) Verb() string { return VerbHelp }

// Verb implements Command.
func (Print) Verb() string { return VerbPrint }

// Verb implements Command.
func (Upper) Verb() string { return VerbUpper }

// Verb implements Command.
func (m MissingArgument) Verb() string { return m.Command }

// Verb implements Command.
func (u Unrecognized) Verb() string {
	v, _ := u.Args.Get(1)
	return v
}

// Verbs accepted as the first user argument.
const (
	VerbPageWithInputs = "page_with_inputs"
	VerbHelp           = "help"
	VerbPrint          = "print"
	VerbUpper          = "upper"
)

// Parse maps an argument list to a Command. Only the first two user
// arguments are looked at; extra arguments are ignored.
func Parse(list args.List) Command {
	verb, ok := list.Get(1)
	if !ok {
		return PageWithInputs{}
	}

	switch verb {
	case VerbPageWithInputs:
		return PageWithInputs{}
	case VerbHelp:
		return Help{}
	case VerbPrint:
		name, ok := list.Get(2)
		if !ok {
			return MissingArgument{Command: VerbPrint}
		}
		return Print{Name: name}
	case VerbUpper:
		name, ok := list.Get(2)
		if !ok {
			return MissingArgument{Command: VerbUpper}
		}
		return Upper{Name: name}
	default:
		return Unrecognized{Args: list}
	}
}
