package v1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-todo-console/internal/models"
	"github.com/adanyl0v/go-todo-console/internal/services"
)

func seed(t *testing.T, d *Dispatcher, tasks services.TaskService) {
	t.Helper()

	dispatch(t, d, tasks, "add", "Buy milk", "--description", "whole milk")
	dispatch(t, d, tasks, "add", "Call mom")
	dispatch(t, d, tasks, "add", "Write report")
	dispatch(t, d, tasks, "update", "2", "--status", "completed")
}

func TestHandleAdd(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	message := dispatch(t, d, tasks, "add", "Buy milk", "--description", "whole milk")
	assert.Equal(t, "✓ Task added with ID 1: Buy milk", message)

	task, ok := tasks.GetTask(1)
	require.True(t, ok)
	assert.Equal(t, "whole milk", task.Description)

	message = dispatch(t, d, tasks, "add", "Second")
	assert.Contains(t, message, "ID 2")
}

func TestHandleAdd_JoinsTitleTokens(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	message := dispatch(t, d, tasks, "add", "Buy", "oat", "milk")
	assert.Equal(t, "✓ Task added with ID 1: Buy oat milk", message)
}

func TestHandleAdd_Failures(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	assert.Equal(t, "✗ Task title cannot be empty", dispatch(t, d, tasks, "add"))
	assert.Equal(t, "✗ Task title cannot be empty", dispatch(t, d, tasks, "add", "   "))
	assert.Equal(t, "✗ Task title cannot be empty", dispatch(t, d, tasks, "add", "--description", "only"))

	message := dispatch(t, d, tasks, "add", "Task", "--descripton", "x")
	assert.True(t, strings.HasPrefix(message, "✗ unknown flag: --descripton"), message)
	assert.Contains(t, message, "did you mean --description?")

	message = dispatch(t, d, tasks, "add", "Task", "--description")
	assert.True(t, strings.HasPrefix(message, "✗"), message)

	list, err := tasks.ListTasks(models.FilterAll)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHandleAdd_DashTitleAfterTerminator(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	message := dispatch(t, d, tasks, "add", "--", "-5 degrees")
	assert.Equal(t, "✓ Task added with ID 1: -5 degrees", message)
}

func TestHandleList(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	assert.Equal(t, "ℹ No tasks yet", dispatch(t, d, tasks, "list"))

	seed(t, d, tasks)

	message := dispatch(t, d, tasks, "list")
	lines := strings.Split(message, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "✓ 3 task(s) (filter: all)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ID | Title"), lines[1])
	assert.Contains(t, lines[1], "| Status")
	assert.Contains(t, lines[1], "| Created")
	assert.Contains(t, lines[3], "Buy milk")
	assert.Contains(t, lines[3], "pending")
	assert.Contains(t, lines[4], "Call mom")
	assert.Contains(t, lines[4], "completed")
	assert.Contains(t, lines[5], "Write report")

	pending := dispatch(t, d, tasks, "list", "--filter", "pending")
	assert.Contains(t, pending, "Buy milk")
	assert.Contains(t, pending, "Write report")
	assert.NotContains(t, pending, "Call mom")

	completed := dispatch(t, d, tasks, "list", "--filter=completed")
	assert.Contains(t, completed, "Call mom")
	assert.NotContains(t, completed, "Buy milk")
}

func TestHandleList_EmptyFiltered(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	dispatch(t, d, tasks, "add", "Only pending")
	assert.Equal(t, "ℹ No completed tasks", dispatch(t, d, tasks, "list", "--filter", "completed"))
}

func TestHandleList_InvalidFilter(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	message := dispatch(t, d, tasks, "list", "--filter", "bogus")
	assert.Equal(t, "✗ Invalid filter. Use 'all', 'pending', or 'completed'.", message)
}

func TestHandleList_RejectsPositionalArguments(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	seed(t, d, tasks)

	message := dispatch(t, d, tasks, "list", "pending")
	assert.Equal(t, `✗ Unexpected argument "pending" (use --filter to choose tasks)`, message)
}

func TestHandleList_LongTitleNotTruncated(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	title := strings.Repeat("very long title ", 8)
	dispatch(t, d, tasks, "add", title)

	assert.Contains(t, dispatch(t, d, tasks, "list"), strings.TrimSpace(title))
}

func TestHandleShow(t *testing.T) {
	d, tasks := newTestDispatcher(t)
	seed(t, d, tasks)

	message := dispatch(t, d, tasks, "show", "1")
	lines := strings.Split(message, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "✓ Task 1", lines[0])
	assert.Equal(t, "ID:          1", lines[1])
	assert.Equal(t, "Title:       Buy milk", lines[2])
	assert.Equal(t, "Description: whole milk", lines[3])
	assert.Equal(t, "Status:      pending", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "Created:     "))
	assert.Equal(t, "Completed:   —", lines[6])

	message = dispatch(t, d, tasks, "show", "2")
	assert.Contains(t, message, "Status:      completed")
	assert.Contains(t, message, "Description: —")
	assert.NotContains(t, message, "Completed:   —")
}

func TestHandleShow_Failures(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	assert.Equal(t, "✗ Task not found (ID: 1)", dispatch(t, d, tasks, "show", "1"))
	assert.Equal(t, "✗ Invalid task ID", dispatch(t, d, tasks, "show", "abc"))
	assert.Equal(t, "✗ Invalid task ID", dispatch(t, d, tasks, "show"))
	assert.Equal(t, "✗ Invalid task ID", dispatch(t, d, tasks, "show", "1.5"))
}

func TestHandleUpdate(t *testing.T) {
	d, tasks := newTestDispatcher(t)
	dispatch(t, d, tasks, "add", "Old", "--description", "keep me")

	assert.Equal(t, "✓ Task 1 updated", dispatch(t, d, tasks, "update", "1", "--title", "New"))
	task, _ := tasks.GetTask(1)
	assert.Equal(t, "New", task.Title)
	assert.Equal(t, "keep me", task.Description)

	dispatch(t, d, tasks, "update", "1", "--description", "New desc")
	task, _ = tasks.GetTask(1)
	assert.Equal(t, "New desc", task.Description)
	assert.Equal(t, "New", task.Title)

	dispatch(t, d, tasks, "update", "1", "--status", "completed")
	task, _ = tasks.GetTask(1)
	assert.True(t, task.Completed)
	assert.NotNil(t, task.CompletedAt)

	dispatch(t, d, tasks, "update", "1", "--status", "pending")
	task, _ = tasks.GetTask(1)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)

	dispatch(t, d, tasks, "update", "1", "--description", "")
	task, _ = tasks.GetTask(1)
	assert.Empty(t, task.Description)
}

func TestHandleUpdate_Failures(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	assert.Equal(t, "✗ Task not found (ID: 999)", dispatch(t, d, tasks, "update", "999", "--title", "x"))
	assert.Equal(t, "✗ Invalid task ID", dispatch(t, d, tasks, "update", "abc", "--title", "x"))
	assert.Equal(t, "✗ Invalid task ID", dispatch(t, d, tasks, "update"))
	assert.Equal(t, "✗ Task not found (ID: -1)", dispatch(t, d, tasks, "update", "-1", "--title", "x"))
	assert.Equal(t, "✗ Task not found (ID: -1)", dispatch(t, d, tasks, "update", "--title", "x", "--", "-1"))

	dispatch(t, d, tasks, "add", "Task")
	assert.Equal(t,
		"✗ Invalid status. Use 'pending' or 'completed'.",
		dispatch(t, d, tasks, "update", "1", "--status", "done"))
	assert.Equal(t, "✗ Task title cannot be empty", dispatch(t, d, tasks, "update", "1", "--title", " "))

	message := dispatch(t, d, tasks, "update", "1", "--title", "New", "Title")
	assert.Equal(t, `✗ Unexpected argument "Title" (quote values that contain spaces)`, message)

	message = dispatch(t, d, tasks, "update", "1", "--titel", "x")
	assert.Contains(t, message, "did you mean --title?")

	task, _ := tasks.GetTask(1)
	assert.Equal(t, "Task", task.Title)
	assert.False(t, task.Completed)
}

func TestHandleDelete(t *testing.T) {
	d, tasks := newTestDispatcher(t)
	dispatch(t, d, tasks, "add", "Task")

	assert.Equal(t, "✓ Task 1 deleted", dispatch(t, d, tasks, "delete", "1"))
	_, ok := tasks.GetTask(1)
	assert.False(t, ok)

	assert.Equal(t, "✗ Task not found (ID: 1)", dispatch(t, d, tasks, "delete", "1"))
	assert.Equal(t, "✗ Invalid task ID", dispatch(t, d, tasks, "delete", "one"))
	assert.Equal(t, "✗ Invalid task ID", dispatch(t, d, tasks, "delete"))
}

func TestWorkflow(t *testing.T) {
	d, tasks := newTestDispatcher(t)

	assert.Contains(t, dispatch(t, d, tasks, "add", "Buy milk", "--description", "whole milk"), "ID 1")
	assert.Contains(t, dispatch(t, d, tasks, "list"), "pending")
	assert.Contains(t, dispatch(t, d, tasks, "show", "1"), "whole milk")
	assert.Equal(t, "✓ Task 1 updated", dispatch(t, d, tasks, "update", "1", "--title", "Buy 2% milk"))
	assert.Equal(t, "✓ Task 1 updated", dispatch(t, d, tasks, "update", "1", "--status", "completed"))
	assert.Contains(t, dispatch(t, d, tasks, "list", "--filter", "completed"), "Buy 2% milk")
	assert.Equal(t, "✓ Task 1 deleted", dispatch(t, d, tasks, "delete", "1"))
	assert.Equal(t, "ℹ No tasks yet", dispatch(t, d, tasks, "list"))
}
