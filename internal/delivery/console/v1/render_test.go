package v1

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-todo-console/internal/models"
)

func TestRenderTaskTable_AlignsWideRunes(t *testing.T) {
	created := time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)
	tasks := []models.Task{
		{ID: 1, Title: "牛乳を買う", CreatedAt: created},
		{ID: 12, Title: "Call mom", Completed: true, CreatedAt: created},
	}

	lines := strings.Split(renderTaskTable(tasks), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "1  | 牛乳を買う | pending"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "| 2026-01-02 15:04:05"), lines[3])

	statusColumn := func(line string) int {
		index := strings.LastIndex(line, " | ")
		require.GreaterOrEqual(t, index, 0, line)
		return runewidth.StringWidth(line[:index])
	}
	want := statusColumn(lines[0])
	for _, line := range []string{lines[2], lines[3]} {
		assert.Equal(t, want, statusColumn(line), line)
	}
	assert.Equal(t, runewidth.StringWidth(lines[2]), len(lines[1]))
}

func TestRenderTaskDetails(t *testing.T) {
	created := time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)
	completed := created.Add(time.Hour)

	details := renderTaskDetails(models.Task{
		ID:          3,
		Title:       "Write report",
		Completed:   true,
		CreatedAt:   created,
		CompletedAt: &completed,
	})

	assert.Equal(t, strings.Join([]string{
		"ID:          3",
		"Title:       Write report",
		"Description: —",
		"Status:      completed",
		"Created:     2026-01-02 15:04:05",
		"Completed:   2026-01-02 16:04:05",
	}, "\n"), details)
}
