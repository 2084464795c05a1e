package v1

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/adanyl0v/go-todo-console/internal/models"
)

const (
	timeLayout = time.DateTime
	emptyField = "—"
)

var tableHeader = []string{"ID", "Title", "Status", "Created"}

// renderTaskTable lays tasks out as a "|"-separated table. Column widths
// are measured in terminal cells so that wide runes stay aligned.
func renderTaskTable(tasks []models.Task) string {
	rows := make([][]string, 0, len(tasks)+1)
	rows = append(rows, tableHeader)
	for _, task := range tasks {
		rows = append(rows, []string{
			strconv.FormatInt(task.ID, 10),
			task.Title,
			task.Status(),
			task.CreatedAt.Format(timeLayout),
		})
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lineWidth := 0
	for _, width := range widths {
		lineWidth += width
	}
	lineWidth += 3 * (len(widths) - 1)

	var b strings.Builder
	for i, row := range rows {
		b.WriteString(renderRow(row, widths))
		b.WriteByte('\n')
		if i == 0 {
			b.WriteString(strings.Repeat("-", lineWidth))
			b.WriteByte('\n')
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderRow(row []string, widths []int) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		if i == len(row)-1 {
			cells[i] = cell
			continue
		}
		cells[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(cells, " | ")
}

func renderTaskDetails(task models.Task) string {
	description := task.Description
	if description == "" {
		description = emptyField
	}
	completed := emptyField
	if task.CompletedAt != nil {
		completed = task.CompletedAt.Format(timeLayout)
	}

	lines := []string{
		"ID:          " + strconv.FormatInt(task.ID, 10),
		"Title:       " + task.Title,
		"Description: " + description,
		"Status:      " + task.Status(),
		"Created:     " + task.CreatedAt.Format(timeLayout),
		"Completed:   " + completed,
	}
	return strings.Join(lines, "\n")
}
