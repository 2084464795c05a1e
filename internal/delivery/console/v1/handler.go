package v1

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/adanyl0v/go-todo-console/internal/services"
)

// CommandFunc handles one command invocation. It never fails: every
// outcome, including bad input, is rendered into a marked message.
type CommandFunc func(args []string, tasks services.TaskService) string

type Command struct {
	// Name is the lowercase name the command is dispatched by.
	Name string

	// Usage is the synopsis shown by help, e.g. "show <id>".
	Usage string

	// Summary is a one-line description.
	Summary string

	// Flags returns a fresh flag set with the command's options
	// defined. Nil if the command takes no options.
	Flags func() *pflag.FlagSet

	Run CommandFunc
}

// Dispatcher maps command names to their handlers. It holds no task
// state; the store is passed to every Dispatch call.
type Dispatcher struct {
	logger   zerolog.Logger
	commands []*Command
	byName   map[string]*Command
}

func New(logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{logger: logger}
	d.commands = []*Command{
		{
			Name:    "add",
			Usage:   "add <title> [--description <desc>]",
			Summary: "Create a new task",
			Flags:   addFlags,
			Run:     d.HandleAdd,
		},
		{
			Name:    "list",
			Usage:   "list [--filter all|pending|completed]",
			Summary: "Show all tasks or a filtered list",
			Flags:   listFlags,
			Run:     d.HandleList,
		},
		{
			Name:    "show",
			Usage:   "show <id>",
			Summary: "Display task details",
			Run:     d.HandleShow,
		},
		{
			Name:    "update",
			Usage:   "update <id> [--title <new>] [--description <new>] [--status pending|completed]",
			Summary: "Update task fields",
			Flags:   updateFlags,
			Run:     d.HandleUpdate,
		},
		{
			Name:    "delete",
			Usage:   "delete <id>",
			Summary: "Remove a task",
			Run:     d.HandleDelete,
		},
		{
			Name:    "help",
			Usage:   "help [command]",
			Summary: "Show this help or help for a command",
			Run:     d.HandleHelp,
		},
	}

	d.byName = make(map[string]*Command, len(d.commands))
	for _, command := range d.commands {
		d.byName[command.Name] = command
	}
	return d
}

// Dispatch runs the command registered under name (case-insensitive)
// against tasks and returns its message. It returns an
// *UnknownCommandError if no such command exists.
func (d *Dispatcher) Dispatch(name string, args []string, tasks services.TaskService) (string, error) {
	command, ok := d.Lookup(name)
	if !ok {
		err := &UnknownCommandError{
			Name:       name,
			Suggestion: suggestCommand(name, d.commands),
		}
		d.logger.Warn().
			Str("command", name).
			Str("suggestion", err.Suggestion).
			Msg("unknown command")
		return "", err
	}

	d.logger.Debug().
		Str("command", command.Name).
		Int("args", len(args)).
		Msg("dispatching command")

	message := command.Run(args, tasks)
	if MarkerOf(message) == ErrorMarker {
		d.logger.Info().
			Str("command", command.Name).
			Str("result", message).
			Msg("command failed")
	}
	return message, nil
}

func (d *Dispatcher) Lookup(name string) (*Command, bool) {
	command, ok := d.byName[normalizeName(name)]
	return command, ok
}

// Commands returns the registered commands in help order.
func (d *Dispatcher) Commands() []*Command {
	return append([]*Command(nil), d.commands...)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
