package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog"

	v1 "github.com/adanyl0v/go-todo-console/internal/delivery/console/v1"
	"github.com/adanyl0v/go-todo-console/internal/services"
)

const menuText = `
Available commands:
  1. add      Create a task
  2. list     Show all tasks
  3. show     Task details
  4. update   Modify task
  5. delete   Remove task
  6. help     Help
  7. quit     Exit
`

const shellOperators = ";&|<>()`"

var menuCommands = map[string]string{
	"1": "add",
	"2": "list",
	"3": "show",
	"4": "update",
	"5": "delete",
	"6": "help",
	"7": "quit",
}

type ConsoleOptions struct {
	Prompt   string
	ShowMenu bool
	// Color enables marker coloring; ForceColor skips terminal detection.
	Color      bool
	ForceColor bool
}

// Console is an interactive session reading one command per line.
// Every session owns a fresh task store.
type Console struct {
	logger     zerolog.Logger
	in         io.Reader
	out        io.Writer
	opts       ConsoleOptions
	palette    palette
	dispatcher *v1.Dispatcher
}

func NewConsole(logger zerolog.Logger, in io.Reader, out io.Writer, opts ConsoleOptions) *Console {
	logger = logger.With().
		Str("session_id", uuid.NewString()).
		Logger()

	return &Console{
		logger:     logger,
		in:         in,
		out:        out,
		opts:       opts,
		palette:    newPalette(out, opts.Color, opts.ForceColor),
		dispatcher: v1.New(logger),
	}
}

// Run reads and executes commands until quit, end of input or ctx
// cancellation. Only a failure to read input ends it with an error.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := services.NewTaskService(c.logger)
	input := c.readLines(ctx)

	c.println("Welcome to Todo App!")
	c.println("Type 'help' for available commands, or use menu numbers below:")
	if c.opts.ShowMenu {
		c.println(menuText)
	}
	c.logger.Info().Msg("started console session")

	for {
		c.print(c.opts.Prompt)

		line, err := input.readLine(ctx)
		if err != nil {
			return c.end(err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, args, err := c.parseLine(ctx, input, line)
		if err != nil {
			return c.end(err)
		}

		switch strings.ToLower(name) {
		case "quit", "exit":
			c.println("Goodbye!")
			c.logger.Info().Msg("console session ended")
			return nil
		}

		c.println(c.palette.render(c.execute(name, args, tasks)))
	}
}

// execute dispatches a single command. Unknown commands and panics are
// turned into error messages so the session keeps going.
func (c *Console) execute(name string, args []string, tasks services.TaskService) (message string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Str("command", name).
				Interface("panic", r).
				Msg("command panicked")
			message = fmt.Sprintf("%s An unexpected error occurred: %v", v1.ErrorMarker, r)
		}
	}()

	message, err := c.dispatcher.Dispatch(name, args, tasks)
	if err != nil {
		var unknown *v1.UnknownCommandError
		if errors.As(err, &unknown) {
			return renderUnknownCommand(unknown)
		}

		c.logger.Error().
			Err(err).
			Str("command", name).
			Msg("failed to dispatch command")
		return fmt.Sprintf("%s An unexpected error occurred: %v", v1.ErrorMarker, err)
	}
	return message
}

func renderUnknownCommand(err *v1.UnknownCommandError) string {
	message := fmt.Sprintf("%s Unknown command: %s", v1.ErrorMarker, err.Name)
	if err.Suggestion != "" {
		message += fmt.Sprintf(" (did you mean %q?)", err.Suggestion)
	}
	return message + ". Type 'help' for available commands."
}

// parseLine turns a raw line into a command name and its arguments.
// A bare menu number selects a command and prompts for its inputs.
func (c *Console) parseLine(ctx context.Context, input *lineReader, line string) (string, []string, error) {
	if name, ok := menuCommands[line]; ok {
		args, err := c.promptArgs(ctx, input, name)
		return name, args, err
	}

	parts := splitWords(line)
	return parts[0], parts[1:], nil
}

func (c *Console) promptArgs(ctx context.Context, input *lineReader, name string) ([]string, error) {
	switch name {
	case "add":
		title, err := c.ask(ctx, input, "  Enter task title: ")
		if err != nil || title == "" {
			return nil, err
		}
		description, err := c.ask(ctx, input, "  Enter description (optional): ")
		if err != nil {
			return nil, err
		}
		var args []string
		if description != "" {
			args = append(args, "--description", description)
		}
		return append(args, "--", title), nil

	case "list":
		filter, err := c.ask(ctx, input, "  Filter (all/pending/completed) [all]: ")
		if err != nil || filter == "" {
			return nil, err
		}
		return []string{"--filter", filter}, nil

	case "show", "delete", "update":
		id, err := c.ask(ctx, input, "  Enter task ID: ")
		if err != nil {
			return nil, err
		}
		var args []string
		if id != "" {
			args = append(args, id)
		}
		if name != "update" {
			return args, nil
		}
		updates, err := c.ask(ctx, input, "  Enter updates (e.g., --title 'New' --status completed): ")
		if err != nil || updates == "" {
			return args, err
		}
		return append(args, splitWords(updates)...), nil
	}

	return nil, nil
}

func (c *Console) ask(ctx context.Context, input *lineReader, question string) (string, error) {
	c.print(question)
	line, err := input.readLine(ctx)
	return strings.TrimSpace(line), err
}

// end closes the session after input stopped. End of input and
// cancellation are normal exits; read failures are returned.
func (c *Console) end(err error) error {
	c.println("\nGoodbye!")
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		c.logger.Info().
			Err(err).
			Msg("console input closed")
		return nil
	}

	c.logger.Error().
		Err(err).
		Msg("failed to read console input")
	return fmt.Errorf("read console input: %w", err)
}

// lineReader feeds input lines from a background scanner. err is set
// before lines is closed.
type lineReader struct {
	lines chan string
	err   error
}

func (c *Console) readLines(ctx context.Context) *lineReader {
	input := &lineReader{lines: make(chan string)}
	go func() {
		defer close(input.lines)

		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case input.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		input.err = scanner.Err()
	}()
	return input
}

func (r *lineReader) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-r.lines:
		if !ok {
			if r.err != nil {
				return "", r.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// splitWords splits a line the way a shell would, honoring quotes.
// Shell operators such as & or ; are kept as literal text. Unbalanced
// quotes fall back to splitting on whitespace.
func splitWords(line string) []string {
	parser := shellwords.NewParser()
	parts, err := parser.Parse(escapeOperators(line))
	if err != nil || parser.Position != -1 || len(parts) == 0 {
		parts = strings.Fields(line)
	}
	return parts
}

// escapeOperators backslash-escapes the characters the parser would
// otherwise stop at or treat as command substitution, outside of quotes.
func escapeOperators(line string) string {
	var b strings.Builder
	var escaped, singleQuoted, doubleQuoted bool
	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && !singleQuoted:
			escaped = true
		case r == '\'' && !doubleQuoted:
			singleQuoted = !singleQuoted
		case r == '"' && !singleQuoted:
			doubleQuoted = !doubleQuoted
		case !singleQuoted && !doubleQuoted && strings.ContainsRune(shellOperators, r):
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
