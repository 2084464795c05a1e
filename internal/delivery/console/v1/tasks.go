package v1

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"github.com/adanyl0v/go-todo-console/internal/models"
	"github.com/adanyl0v/go-todo-console/internal/services"
)

func addFlags() *pflag.FlagSet {
	flagSet := newFlagSet("add")
	flagSet.String("description", "", "optional task description")
	return flagSet
}

func listFlags() *pflag.FlagSet {
	flagSet := newFlagSet("list")
	flagSet.String("filter", models.FilterAll, "one of all, pending, completed")
	return flagSet
}

func updateFlags() *pflag.FlagSet {
	flagSet := newFlagSet("update")
	flagSet.String("title", "", "new task title")
	flagSet.String("description", "", "new task description")
	flagSet.String("status", "", "pending or completed")
	return flagSet
}

func (d *Dispatcher) HandleAdd(args []string, tasks services.TaskService) string {
	flagSet := addFlags()
	if message, ok := d.parseCommandFlags("add", flagSet, args); !ok {
		return message
	}

	description, _ := flagSet.GetString("description")
	task, err := tasks.CreateTask(services.CreateTaskParams{
		Title:       strings.Join(flagSet.Args(), " "),
		Description: description,
	})
	if err != nil {
		return renderServiceError(err)
	}

	return success("Task added with ID %d: %s", task.ID, task.Title)
}

func (d *Dispatcher) HandleList(args []string, tasks services.TaskService) string {
	flagSet := listFlags()
	if message, ok := d.parseCommandFlags("list", flagSet, args); !ok {
		return message
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return renderArgumentError(&unexpectedArgumentError{arg: rest[0], hint: "use --filter to choose tasks"})
	}

	filter, _ := flagSet.GetString("filter")
	filter = strings.ToLower(strings.TrimSpace(filter))
	list, err := tasks.ListTasks(filter)
	if err != nil {
		return renderServiceError(err)
	}

	if len(list) == 0 {
		if filter == models.FilterAll {
			return info("No tasks yet")
		}
		return info("No %s tasks", filter)
	}

	return success("%d task(s) (filter: %s)", len(list), filter) + "\n" + renderTaskTable(list)
}

func (d *Dispatcher) HandleShow(args []string, tasks services.TaskService) string {
	id, err := parseTaskID(args)
	if err != nil {
		return renderArgumentError(err)
	}

	task, ok := tasks.GetTask(id)
	if !ok {
		return failure("Task not found (ID: %d)", id)
	}

	return success("Task %d", task.ID) + "\n" + renderTaskDetails(task)
}

func (d *Dispatcher) HandleUpdate(args []string, tasks services.TaskService) string {
	flagSet := updateFlags()
	leadingID, args, hasID := splitLeadingID(args)
	if message, ok := d.parseCommandFlags("update", flagSet, args); !ok {
		return message
	}

	positional := flagSet.Args()
	if hasID {
		positional = append([]string{leadingID}, positional...)
	}
	id, err := parseTaskID(positional)
	if err != nil {
		return renderArgumentError(err)
	}

	params := services.UpdateTaskParams{ID: id}
	if flagSet.Changed("title") {
		title, _ := flagSet.GetString("title")
		params.Title = &title
	}
	if flagSet.Changed("description") {
		description, _ := flagSet.GetString("description")
		params.Description = &description
	}
	if flagSet.Changed("status") {
		status, _ := flagSet.GetString("status")
		var completed bool
		switch strings.ToLower(strings.TrimSpace(status)) {
		case models.StatusPending:
			completed = false
		case models.StatusCompleted:
			completed = true
		default:
			return renderArgumentError(errInvalidTaskStatus)
		}
		params.Completed = &completed
	}

	_, err = tasks.UpdateTask(params)
	if err != nil {
		return renderServiceError(err)
	}

	return success("Task %d updated", id)
}

func (d *Dispatcher) HandleDelete(args []string, tasks services.TaskService) string {
	id, err := parseTaskID(args)
	if err != nil {
		return renderArgumentError(err)
	}

	if !tasks.DeleteTask(id) {
		return failure("Task not found (ID: %d)", id)
	}

	return success("Task %d deleted", id)
}

// parseCommandFlags parses args into flagSet. When it returns false the
// message is the one to show instead of running the command.
func (d *Dispatcher) parseCommandFlags(name string, flagSet *pflag.FlagSet, args []string) (string, bool) {
	err := parseFlags(flagSet, args)
	if err == nil {
		return "", true
	}
	if errors.Is(err, pflag.ErrHelp) {
		command, _ := d.Lookup(name)
		return info("%s", renderUsage(command)), false
	}

	d.logger.Debug().
		Err(err).
		Str("command", name).
		Msg("failed to parse flags")
	return failure("%s", err), false
}

func renderServiceError(err error) string {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return failure("Task not found (ID: %d)", notFound.ID)
	}

	var validation *services.ValidationError
	if errors.As(err, &validation) {
		return failure("%s", validation.Message)
	}

	return failure("%s", err)
}
