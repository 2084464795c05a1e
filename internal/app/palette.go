package app

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	v1 "github.com/adanyl0v/go-todo-console/internal/delivery/console/v1"
)

// palette colors the leading marker of command messages.
type palette struct {
	enabled bool
	styles  map[string]lipgloss.Style
}

func newPalette(w io.Writer, enabled, force bool) palette {
	if !enabled {
		return palette{}
	}

	renderer := lipgloss.NewRenderer(w)
	if force {
		renderer.SetColorProfile(termenv.ANSI)
	}

	return palette{
		enabled: true,
		styles: map[string]lipgloss.Style{
			v1.SuccessMarker: renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
			v1.ErrorMarker:   renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			v1.InfoMarker:    renderer.NewStyle().Foreground(lipgloss.Color("4")),
		},
	}
}

func (p palette) render(message string) string {
	if !p.enabled {
		return message
	}

	marker := v1.MarkerOf(message)
	style, ok := p.styles[marker]
	if !ok {
		return message
	}
	return style.Render(marker) + strings.TrimPrefix(message, marker)
}
