package v1

import (
	"fmt"
	"strings"

	"github.com/adanyl0v/go-todo-console/internal/services"
)

// sessionCommands are handled by the console itself and never reach
// Dispatch. They are listed here so that help can describe them.
var sessionCommands = []*Command{
	{
		Name:    "quit",
		Usage:   "quit (or exit)",
		Summary: "Exit the application",
	},
}

func (d *Dispatcher) HandleHelp(args []string, _ services.TaskService) string {
	if len(args) == 0 {
		return info("%s", d.renderCommandList())
	}

	name := normalizeName(args[0])
	if command, ok := d.Lookup(name); ok {
		return info("%s", renderUsage(command))
	}
	for _, command := range sessionCommands {
		if name == command.Name || (name == "exit" && command.Name == "quit") {
			return info("%s", renderUsage(command))
		}
	}

	if suggestion := suggestCommand(name, d.commands); suggestion != "" {
		return failure("Unknown command: %s (did you mean %q?)", args[0], suggestion)
	}
	return failure("Unknown command: %s", args[0])
}

func (d *Dispatcher) renderCommandList() string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, command := range append(d.Commands(), sessionCommands...) {
		fmt.Fprintf(&b, "\n  %-10s - %s", command.Name, command.Summary)
	}
	return b.String()
}

func renderUsage(command *Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n  %s", command.Usage, command.Summary)

	if command.Flags != nil {
		if usages := command.Flags().FlagUsages(); usages != "" {
			fmt.Fprintf(&b, "\n\nFlags:\n%s", strings.TrimRight(usages, "\n"))
		}
	}
	return b.String()
}
